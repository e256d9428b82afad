package reconcile

import (
	"context"
	"fmt"

	"peerdiff/feature/peering/models"

	"go.uber.org/zap"
)

// Reconciler correlates the two peer relations by ASN.
type Reconciler struct {
	lookup InfoLookup
	opts   Options
	logger *zap.Logger
}

// NewReconciler creates a Reconciler. lookup may be nil, in which case every
// suggested stanza uses the defaulted AsInfo.
func NewReconciler(lookup InfoLookup, opts Options, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{lookup: lookup, opts: opts, logger: logger}
}

// Reconcile evaluates both joins and classifies every peer.
// Per-peer lookup failures degrade to defaults; only store errors are returned.
func (r *Reconciler) Reconcile(ctx context.Context, store PeerJoiner) (*Report, error) {
	report := &Report{Findings: []Finding{}, Matched: []Match{}}

	routerRows, err := store.JoinRouterLeftOfRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate router join: %w", err)
	}
	report.Summary.RouterPeers = len(routerRows)

	for _, row := range routerRows {
		if row.Accept != nil {
			report.Matched = append(report.Matched, Match{
				ASN:             row.ASN,
				NeighborAddress: row.NeighborAddress,
				PeerGroup:       row.PeerGroup,
				Accept:          *row.Accept,
			})
			continue
		}
		report.Findings = append(report.Findings, r.routerOnly(ctx, row.RouterPeer))
		report.Summary.RouterOnly++
	}

	registryRows, err := store.JoinRegistryLeftOfRouter(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate registry join: %w", err)
	}
	report.Summary.RegistryPeers = len(registryRows)

	for _, row := range registryRows {
		if row.Router != nil {
			continue
		}
		report.Findings = append(report.Findings, Finding{
			Kind:   KindRegistryOnly,
			ASN:    row.ASN,
			Accept: row.AcceptExpression,
		})
		report.Summary.RegistryOnly++
	}

	report.Summary.Matched = len(report.Matched)
	report.Summary.Discrepancies = report.Summary.RouterOnly + report.Summary.RegistryOnly
	report.NoDifferences = report.Summary.Discrepancies == 0
	if !report.NoDifferences {
		report.Caveat = ReviewCaveat
	}

	return report, nil
}

func (r *Reconciler) routerOnly(ctx context.Context, peer models.RouterPeer) Finding {
	f := Finding{
		Kind:            KindRouterOnly,
		ASN:             peer.ASN,
		NeighborAddress: peer.NeighborAddress,
		PeerGroup:       peer.PeerGroup,
		Description:     peer.Description,
	}

	info := models.AsInfo{AnnouncedSet: models.AnySet}
	if r.lookup != nil && !r.opts.SkipLookup {
		got, err := r.lookup.LookupAsInfo(ctx, peer.ASN, r.opts.SelfAsno)
		if err != nil {
			r.logger.Warn("AS lookup failed, using defaults",
				zap.Uint32("asno", peer.ASN),
				zap.Error(err),
			)
			f.LookupError = err.Error()
		} else {
			info = got
		}
	}
	if info.AnnouncedSet == "" {
		info.AnnouncedSet = models.AnySet
	}

	f.Info = &info
	f.Stanza = Stanza(peer.ASN, info, r.opts.DefaultSet)
	return f
}
