package reconcile

import (
	"context"
	"errors"
	"testing"

	"peerdiff/feature/peering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory PeerJoiner computing both outer joins from two slices.
type fakeStore struct {
	router   []models.RouterPeer
	registry []models.RegistryPeer
	err      error
}

func (s *fakeStore) JoinRouterLeftOfRegistry(ctx context.Context) ([]models.RouterJoinRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	rows := []models.RouterJoinRow{}
	for _, r := range s.router {
		row := models.RouterJoinRow{RouterPeer: r}
		for _, w := range s.registry {
			if w.ASN == r.ASN {
				accept := w.AcceptExpression
				row.Accept = &accept
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *fakeStore) JoinRegistryLeftOfRouter(ctx context.Context) ([]models.RegistryJoinRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	rows := []models.RegistryJoinRow{}
	for _, w := range s.registry {
		row := models.RegistryJoinRow{RegistryPeer: w}
		for _, r := range s.router {
			if r.ASN == w.ASN {
				peer := r
				row.Router = &peer
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) LookupAsInfo(ctx context.Context, asn uint32, selfAsno string) (models.AsInfo, error) {
	args := m.Called(ctx, asn, selfAsno)
	return args.Get(0).(models.AsInfo), args.Error(1)
}

var opts = Options{SelfAsno: "64496", DefaultSet: "AS-EXAMPLE"}

func TestReconcile_RouterOnly(t *testing.T) {
	store := &fakeStore{
		router: []models.RouterPeer{
			{ASN: 64500, NeighborAddress: "192.0.2.1"},
			{ASN: 64501, NeighborAddress: "192.0.2.2", PeerGroup: "IX"},
		},
		registry: []models.RegistryPeer{{ASN: 64500, AcceptExpression: "AS-A"}},
	}
	lookup := new(mockLookup)
	lookup.On("LookupAsInfo", mock.Anything, uint32(64501), "64496").
		Return(models.AsInfo{Name: "Peer B", AnnouncedSet: "AS-B"}, nil)

	report, err := NewReconciler(lookup, opts, nil).Reconcile(context.Background(), store)
	require.NoError(t, err)

	require.Len(t, report.Findings, 1)
	f := report.Findings[0]
	assert.Equal(t, KindRouterOnly, f.Kind)
	assert.Equal(t, uint32(64501), f.ASN)
	assert.Equal(t, "IX", f.PeerGroup)
	assert.Equal(t, "remarks: ----- Peer B\nimport: from AS64501 accept AS-B\nexport: to AS64501 announce AS-EXAMPLE", f.Stanza)
	assert.Empty(t, f.LookupError)

	assert.Equal(t, 1, report.Summary.Discrepancies)
	assert.Equal(t, 1, report.Summary.Matched)
	assert.False(t, report.NoDifferences)
	assert.Equal(t, ReviewCaveat, report.Caveat)
	lookup.AssertExpectations(t)
}

func TestReconcile_RegistryOnly(t *testing.T) {
	store := &fakeStore{
		registry: []models.RegistryPeer{{ASN: 64503, AcceptExpression: "ANY"}},
	}
	lookup := new(mockLookup)

	report, err := NewReconciler(lookup, opts, nil).Reconcile(context.Background(), store)
	require.NoError(t, err)

	require.Len(t, report.Findings, 1)
	assert.Equal(t, Finding{Kind: KindRegistryOnly, ASN: 64503, Accept: "ANY"}, report.Findings[0])
	assert.Equal(t, 1, report.Summary.RegistryOnly)
	// Registry-only findings never trigger lookups.
	lookup.AssertNotCalled(t, "LookupAsInfo", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_NoDifferences(t *testing.T) {
	store := &fakeStore{
		router:   []models.RouterPeer{{ASN: 64500, NeighborAddress: "192.0.2.1"}},
		registry: []models.RegistryPeer{{ASN: 64500, AcceptExpression: "AS-A"}},
	}

	report, err := NewReconciler(nil, opts, nil).Reconcile(context.Background(), store)
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
	assert.True(t, report.NoDifferences)
	assert.Empty(t, report.Caveat)
	assert.Zero(t, report.Summary.Discrepancies)
}

func TestReconcile_DiscrepancyCount(t *testing.T) {
	store := &fakeStore{
		router: []models.RouterPeer{
			{ASN: 1, NeighborAddress: "192.0.2.1"},
			{ASN: 2, NeighborAddress: "192.0.2.2"},
			{ASN: 3, NeighborAddress: "192.0.2.3"},
		},
		registry: []models.RegistryPeer{
			{ASN: 3, AcceptExpression: "ANY"},
			{ASN: 4, AcceptExpression: "ANY"},
		},
	}

	report, err := NewReconciler(nil, opts, nil).Reconcile(context.Background(), store)
	require.NoError(t, err)
	s := report.Summary
	assert.Equal(t, 2, s.RouterOnly)
	assert.Equal(t, 1, s.RegistryOnly)
	assert.Equal(t, s.RouterOnly+s.RegistryOnly, s.Discrepancies)
	assert.Len(t, report.Findings, 3)
	assert.Equal(t, KindRouterOnly, report.Findings[0].Kind)
	assert.Equal(t, KindRegistryOnly, report.Findings[2].Kind)
}

func TestReconcile_LookupFailureFallsBack(t *testing.T) {
	store := &fakeStore{router: []models.RouterPeer{{ASN: 64501, NeighborAddress: "192.0.2.2"}}}
	lookup := new(mockLookup)
	lookup.On("LookupAsInfo", mock.Anything, uint32(64501), "64496").
		Return(models.AsInfo{}, errors.New("timeout"))

	report, err := NewReconciler(lookup, opts, nil).Reconcile(context.Background(), store)
	require.NoError(t, err)

	f := report.Findings[0]
	assert.Equal(t, &models.AsInfo{AnnouncedSet: models.AnySet}, f.Info)
	assert.Equal(t, "timeout", f.LookupError)
	assert.Equal(t, "remarks: ----- \nimport: from AS64501 accept ANY\nexport: to AS64501 announce AS-EXAMPLE", f.Stanza)
}

func TestReconcile_SkipLookup(t *testing.T) {
	store := &fakeStore{router: []models.RouterPeer{{ASN: 64501, NeighborAddress: "192.0.2.2"}}}
	lookup := new(mockLookup)

	o := opts
	o.SkipLookup = true
	report, err := NewReconciler(lookup, o, nil).Reconcile(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, models.AnySet, report.Findings[0].Info.AnnouncedSet)
	lookup.AssertNotCalled(t, "LookupAsInfo", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_StoreError(t *testing.T) {
	_, err := NewReconciler(nil, opts, nil).Reconcile(context.Background(), &fakeStore{err: errors.New("db gone")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db gone")
}

func TestStanza(t *testing.T) {
	assert.Equal(t,
		"remarks: ----- Transit A\nimport: from AS64500 accept AS-TRANSIT\nexport: to AS64500 announce AS-EXAMPLE",
		Stanza(64500, models.AsInfo{Name: "Transit A", AnnouncedSet: "AS-TRANSIT"}, "AS-EXAMPLE"))
	assert.Contains(t, Stanza(64500, models.AsInfo{}, "AS-EXAMPLE"), "accept ANY")
}
