/*
Package fix implements the FIX 4.x tag-value codec.

# Module
  - field: typed tag=value pairs (char, string, data, int, float, timestamp)
  - group: ordered field schemas with construction-time uniqueness checks
  - repeating: count-driven Array and Vector containers of sub-groups
  - message: header | body | trailer assembly with body length and checksum

# Source
  - raw message bytes delivered by a transport

# Produce
  - on-wire FIX byte sequences

# Sharded
  - none; instances are single-session and not synchronised
*/
package fix
