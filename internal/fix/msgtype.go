package fix

// MsgType enumerates the message types the engine dispatches on.
type MsgType uint8

const (
	MsgTypeUnknown MsgType = iota
	MsgTypeHeartbeat
	MsgTypeTestRequest
	MsgTypeLogon
	MsgTypeLogout
	MsgTypeExecutionReport
	MsgTypeNewOrderSingle
	MsgTypeMarketDataRequest
	MsgTypeMarketDataRequestReject
	MsgTypeMarketDataSnapshotFullRefresh
	MsgTypeMarketDataIncrementalRefresh

	msgTypeCount
)

// MsgTypeCount is the number of known message types including Unknown.
const MsgTypeCount = int(msgTypeCount)

// MsgTypeFromCode maps the tag-35 ASCII code to the enum. Unrecognised
// codes map to MsgTypeUnknown.
func MsgTypeFromCode(code string) MsgType {
	switch code {
	case "0":
		return MsgTypeHeartbeat
	case "1":
		return MsgTypeTestRequest
	case "A":
		return MsgTypeLogon
	case "5":
		return MsgTypeLogout
	case "8":
		return MsgTypeExecutionReport
	case "D":
		return MsgTypeNewOrderSingle
	case "V":
		return MsgTypeMarketDataRequest
	case "Y":
		return MsgTypeMarketDataRequestReject
	case "W":
		return MsgTypeMarketDataSnapshotFullRefresh
	case "X":
		return MsgTypeMarketDataIncrementalRefresh
	default:
		return MsgTypeUnknown
	}
}

// MsgTypeFromBytes is MsgTypeFromCode over raw value bytes, allocation free
// for the single-byte codes the engine sees on the hot path.
func MsgTypeFromBytes(code []byte) MsgType {
	if len(code) != 1 {
		return MsgTypeUnknown
	}
	switch code[0] {
	case '0':
		return MsgTypeHeartbeat
	case '1':
		return MsgTypeTestRequest
	case 'A':
		return MsgTypeLogon
	case '5':
		return MsgTypeLogout
	case '8':
		return MsgTypeExecutionReport
	case 'D':
		return MsgTypeNewOrderSingle
	case 'V':
		return MsgTypeMarketDataRequest
	case 'Y':
		return MsgTypeMarketDataRequestReject
	case 'W':
		return MsgTypeMarketDataSnapshotFullRefresh
	case 'X':
		return MsgTypeMarketDataIncrementalRefresh
	default:
		return MsgTypeUnknown
	}
}

// Code returns the tag-35 ASCII code, empty for Unknown.
func (t MsgType) Code() string {
	switch t {
	case MsgTypeHeartbeat:
		return "0"
	case MsgTypeTestRequest:
		return "1"
	case MsgTypeLogon:
		return "A"
	case MsgTypeLogout:
		return "5"
	case MsgTypeExecutionReport:
		return "8"
	case MsgTypeNewOrderSingle:
		return "D"
	case MsgTypeMarketDataRequest:
		return "V"
	case MsgTypeMarketDataRequestReject:
		return "Y"
	case MsgTypeMarketDataSnapshotFullRefresh:
		return "W"
	case MsgTypeMarketDataIncrementalRefresh:
		return "X"
	default:
		return ""
	}
}

func (t MsgType) String() string {
	switch t {
	case MsgTypeHeartbeat:
		return "Heartbeat"
	case MsgTypeTestRequest:
		return "TestRequest"
	case MsgTypeLogon:
		return "Logon"
	case MsgTypeLogout:
		return "Logout"
	case MsgTypeExecutionReport:
		return "ExecutionReport"
	case MsgTypeNewOrderSingle:
		return "NewOrderSingle"
	case MsgTypeMarketDataRequest:
		return "MarketDataRequest"
	case MsgTypeMarketDataRequestReject:
		return "MarketDataRequestReject"
	case MsgTypeMarketDataSnapshotFullRefresh:
		return "MarketDataSnapshotFullRefresh"
	case MsgTypeMarketDataIncrementalRefresh:
		return "MarketDataIncrementalRefresh"
	default:
		return "Unknown"
	}
}
