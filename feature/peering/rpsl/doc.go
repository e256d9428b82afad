// Package rpsl extracts peering information from routing registry (RPSL) text.
//
// Only the handful of aut-num attributes the reconciliation needs are read:
// import, export, descr and as-name. Continuation lines, mp-import/mp-export and
// the rest of the RPSL grammar are ignored.
//
// # Object boundaries
//
// An aut-num object starts at its `aut-num:` line and ends at the first blank line
// or at the next `aut-num:` line for another AS. Import lines of unrelated objects
// that follow in the same whois answer are therefore never picked up.
//
// # Usage
//
//	reg := rpsl.NewRegistry(client, "whois.ripe.net")
//	imports, err := reg.FetchImports(ctx, "64496")
//	info, err := reg.LookupAsInfo(ctx, 64500, "64496")
package rpsl
