// Package store persists the router and registry peer relations of one run.
//
// Both relations are keyed by AS number. Inserts are idempotent: a second row for
// an ASN already present is silently dropped, so the first occurrence wins. The
// two joins are left outer joins: every row of the left relation appears exactly
// once, with the right-hand side present only when the same ASN exists there.
//
// The store runs on any GORM dialect; the application uses sqlite by default and
// MySQL when configured.
package store
