// Package registry retrieves raw text from a routing registry over the whois protocol.
//
// Two clients implement the same Client interface:
//   - WhoisClient opens a TCP connection to port 43, writes the query and reads
//     until the server closes the connection.
//   - CommandClient spawns a local whois binary, for hosts where outbound port 43
//     is only reachable through a wrapper.
//
// Every query is bounded by the configured timeout. Failures wrap ErrLookup; no
// query is ever retried.
package registry
