// Package reconcile correlates router peers with registry peers and reports the
// discrepancies.
//
// # Algorithm
//
// A single pass evaluates two left outer joins from the peer store:
//
//  1. router LEFT JOIN registry: every router peer without a registry import is a
//     router-only finding. The peer's own aut-num object is looked up to suggest an
//     import/export stanza (see Stanza); lookup failures fall back to name "" and
//     announced set "ANY".
//  2. registry LEFT JOIN router: every registry import without a router neighbor is
//     a registry-only finding carrying its accept expression.
//
// The discrepancy count is the sum of both. A report without discrepancies states
// that no differences exist; any other report carries ReviewCaveat.
//
// # Caching
//
// InfoCache wraps an InfoLookup with a TTL cache and singleflight, so a long-lived
// server does not query the registry for the same peer on every request.
//
// # Usage
//
//	rec := reconcile.NewReconciler(reconcile.NewInfoCache(registry, time.Hour), reconcile.Options{
//	    SelfAsno:   "64496",
//	    DefaultSet: "AS-EXAMPLE",
//	}, logger)
//	report, err := rec.Reconcile(ctx, peerStore)
package reconcile
