// Package router extracts BGP neighbors from router configuration text.
//
// It understands the Cisco/Quagga neighbor statement convention:
//
//	neighbor 192.0.2.1 remote-as 64500
//	neighbor 192.0.2.1 peer-group TRANSIT
//	neighbor 192.0.2.1 description upstream-a
//
// Only neighbors addressed by an IP literal become peers.
package router
