package transport

import (
	"io"
	"os"
	"time"

	"github.com/yanun0323/errors"
)

// FileClient replays a recorded FIX byte stream from a file and appends
// outbound messages to a sibling "<path>.out" file. It drives the same
// engine loop as a live connection, which makes offline replay and capture
// testing cheap.
type FileClient struct {
	conn
	path  string
	rfile *os.File
	wfile *os.File
}

func NewFileClient(path string, cbs Callbacks) *FileClient {
	return &FileClient{conn: newConn(cbs), path: path}
}

func (f *FileClient) Connect() error {
	if f.active {
		return nil
	}
	rfile, err := os.Open(f.path)
	if err != nil {
		f.notifyError(-1, err.Error())
		return errors.Wrap(err, "open replay file").With("path", f.path)
	}
	f.rfile = rfile
	f.notifyConnect()
	return nil
}

func (f *FileClient) Disconnect() error {
	if !f.active {
		return nil
	}
	f.notifyDisconnect()
	if err := f.rfile.Close(); err != nil {
		return errors.Wrap(err, "close replay file")
	}
	if f.wfile != nil {
		if err := f.wfile.Close(); err != nil {
			return errors.Wrap(err, "close output file")
		}
		f.wfile = nil
	}
	return nil
}

// Poll reads the next chunk of the file into the ring. Hitting the end of
// the file tears the session down the way a closed socket would.
func (f *FileClient) Poll() int {
	if f.rfile == nil || !f.active {
		return 0
	}
	dst := f.ring.WriteSlice(maxReadSize)
	if len(dst) == 0 {
		return 0
	}
	n, err := f.rfile.Read(dst)
	if n > 0 {
		f.ring.MoveTail(n)
		f.lastRead = time.Now().UnixNano()
	}
	if err != nil {
		if err != io.EOF {
			f.notifyError(-1, err.Error())
		}
		f.notifyDisconnect()
		_ = f.rfile.Close()
		if f.wfile != nil {
			_ = f.wfile.Close()
			f.wfile = nil
		}
	}
	return n
}

func (f *FileClient) SendMessage(buf []byte) (int, error) {
	if !f.active {
		return 0, errors.New("file transport is not connected")
	}
	if f.wfile == nil {
		wfile, err := os.OpenFile(f.path+".out", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			f.notifyError(-1, err.Error())
			return 0, errors.Wrap(err, "open output file").With("path", f.path+".out")
		}
		f.wfile = wfile
	}
	n, err := f.wfile.Write(buf)
	if err != nil {
		f.notifyError(-1, err.Error())
		return n, errors.Wrap(err, "write output file")
	}
	f.lastSent = time.Now().UnixNano()
	return n, nil
}
