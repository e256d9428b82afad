package store

import (
	"context"
	"fmt"

	"peerdiff/feature/peering/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store holds the two peer relations of one reconciliation run.
// It only supports insert-if-absent and reads; rows are never updated.
type Store struct {
	db *gorm.DB
}

// New wraps db without touching its schema; use Open for a fresh run.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Attach prepares db for use, creating both tables when missing. Existing rows are kept.
func Attach(ctx context.Context, db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if err := db.WithContext(ctx).AutoMigrate(&models.RouterPeer{}, &models.RegistryPeer{}); err != nil {
		return nil, fmt.Errorf("failed to create peer tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Open prepares db for a fresh run: it creates both tables when missing and empties them.
func Open(ctx context.Context, db *gorm.DB) (*Store, error) {
	s, err := Attach(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := s.ResetRouter(ctx); err != nil {
		return nil, err
	}
	if err := s.ResetRegistry(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ResetRouter empties the router relation.
func (s *Store) ResetRouter(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RouterPeer{}).Error; err != nil {
		return fmt.Errorf("failed to clear router peers: %w", err)
	}
	return nil
}

// ResetRegistry empties the registry relation.
func (s *Store) ResetRegistry(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RegistryPeer{}).Error; err != nil {
		return fmt.Errorf("failed to clear registry peers: %w", err)
	}
	return nil
}

// InsertRouter adds peer unless its ASN is already present.
// It reports whether a row was inserted; a duplicate is not an error.
func (s *Store) InsertRouter(ctx context.Context, peer models.RouterPeer) (bool, error) {
	return s.insert(ctx, &peer)
}

// InsertRegistry adds peer unless its ASN is already present.
// It reports whether a row was inserted; a duplicate is not an error.
func (s *Store) InsertRegistry(ctx context.Context, peer models.RegistryPeer) (bool, error) {
	return s.insert(ctx, &peer)
}

func (s *Store) insert(ctx context.Context, row any) (bool, error) {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert peer: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

type routerJoinScan struct {
	ASN             uint32  `gorm:"column:asno"`
	NeighborAddress string  `gorm:"column:ip"`
	PeerGroup       string  `gorm:"column:peer_group"`
	Description     string  `gorm:"column:description"`
	Accept          *string `gorm:"column:accept"`
	Matched         *uint32 `gorm:"column:matched"`
}

// JoinRouterLeftOfRegistry returns one row per router peer, ordered by ASN.
// Accept is set only when the registry has an import for the same ASN.
func (s *Store) JoinRouterLeftOfRegistry(ctx context.Context) ([]models.RouterJoinRow, error) {
	var scanned []routerJoinScan
	err := s.db.WithContext(ctx).
		Table("router").
		Select("router.asno, router.ip, router.peer_group, router.description, whois.accept, whois.asno AS matched").
		Joins("LEFT JOIN whois ON whois.asno = router.asno").
		Order("router.asno").
		Scan(&scanned).Error
	if err != nil {
		return nil, fmt.Errorf("failed to join router peers: %w", err)
	}

	rows := make([]models.RouterJoinRow, 0, len(scanned))
	for _, r := range scanned {
		row := models.RouterJoinRow{
			RouterPeer: models.RouterPeer{
				ASN:             r.ASN,
				NeighborAddress: r.NeighborAddress,
				PeerGroup:       r.PeerGroup,
				Description:     r.Description,
			},
		}
		// Presence follows the joined key, so an empty accept still counts as a match.
		if r.Matched != nil {
			accept := ""
			if r.Accept != nil {
				accept = *r.Accept
			}
			row.Accept = &accept
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type registryJoinScan struct {
	ASN             uint32  `gorm:"column:asno"`
	Accept          string  `gorm:"column:accept"`
	Matched         *uint32 `gorm:"column:matched"`
	NeighborAddress *string `gorm:"column:ip"`
	PeerGroup       *string `gorm:"column:peer_group"`
	Description     *string `gorm:"column:description"`
}

// JoinRegistryLeftOfRouter returns one row per registry peer, ordered by ASN.
// Router is set only when the router configuration has a neighbor with the same ASN.
func (s *Store) JoinRegistryLeftOfRouter(ctx context.Context) ([]models.RegistryJoinRow, error) {
	var scanned []registryJoinScan
	err := s.db.WithContext(ctx).
		Table("whois").
		Select("whois.asno, whois.accept, router.asno AS matched, router.ip, router.peer_group, router.description").
		Joins("LEFT JOIN router ON router.asno = whois.asno").
		Order("whois.asno").
		Scan(&scanned).Error
	if err != nil {
		return nil, fmt.Errorf("failed to join registry peers: %w", err)
	}

	rows := make([]models.RegistryJoinRow, 0, len(scanned))
	for _, r := range scanned {
		row := models.RegistryJoinRow{
			RegistryPeer: models.RegistryPeer{ASN: r.ASN, AcceptExpression: r.Accept},
		}
		if r.Matched != nil {
			row.Router = &models.RouterPeer{
				ASN:             *r.Matched,
				NeighborAddress: deref(r.NeighborAddress),
				PeerGroup:       deref(r.PeerGroup),
				Description:     deref(r.Description),
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Counts returns the number of rows in each relation.
func (s *Store) Counts(ctx context.Context) (routerPeers, registryPeers int64, err error) {
	if err = s.db.WithContext(ctx).Model(&models.RouterPeer{}).Count(&routerPeers).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count router peers: %w", err)
	}
	if err = s.db.WithContext(ctx).Model(&models.RegistryPeer{}).Count(&registryPeers).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count registry peers: %w", err)
	}
	return routerPeers, registryPeers, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
