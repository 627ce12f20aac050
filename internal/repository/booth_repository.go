package repository

import (
	"fmt"
	"path/filepath"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/store"
)

// Booth store file names.
const (
	BoothFile       = "booth.txt"
	BoothRefundFile = "boothRefunds.txt"
)

// BoothRepo persists the booth rental ledger in booth.txt.  The ledger
// is authoritative for occupancy: a cell is taken iff a row for that
// venue+cell has the rented flag set.
type BoothRepo struct {
	store *store.Store[model.Booth]
}

// NewBoothRepo returns a booth repository rooted at dataDir.
func NewBoothRepo(dataDir string) *BoothRepo {
	return &BoothRepo{store: store.New(filepath.Join(dataDir, BoothFile), model.EncodeBooth, model.DecodeBooth)}
}

// LoadAll returns every booth ledger row, refunded ones included.
func (r *BoothRepo) LoadAll() ([]model.Booth, error) { return r.store.LoadAll() }

// SaveAll rewrites the booth ledger with exactly the given rows.
func (r *BoothRepo) SaveAll(bs []model.Booth) error { return r.store.SaveAll(bs) }

// BoothRefundAudit is one append-only row of the booth refund log.
type BoothRefundAudit struct {
	OwnerEmail string
	VenueID    string
	CellID     string
	Amount     float64
}

// BoothRefundLog appends refund audit rows to boothRefunds.txt.
type BoothRefundLog struct {
	store *store.Store[BoothRefundAudit]
}

// NewBoothRefundLog returns the booth refund audit log rooted at dataDir.
func NewBoothRefundLog(dataDir string) *BoothRefundLog {
	return &BoothRefundLog{store: store.New(
		filepath.Join(dataDir, BoothRefundFile),
		encodeBoothRefund,
		decodeBoothRefund,
	)}
}

// Append records one refund.
func (l *BoothRefundLog) Append(a BoothRefundAudit) error { return l.store.Append(a) }

func encodeBoothRefund(a BoothRefundAudit) []string {
	fields := model.EncodeBooth(model.Booth{
		OwnerEmail: a.OwnerEmail,
		VenueID:    a.VenueID,
		CellID:     a.CellID,
		Rented:     false,
		Amount:     a.Amount,
	})
	return append(fields, "REFUNDED")
}

func decodeBoothRefund(fields []string) (BoothRefundAudit, error) {
	if len(fields) != 6 || fields[5] != "REFUNDED" {
		return BoothRefundAudit{}, fmt.Errorf("booth refund record has %d fields, want 6 ending in REFUNDED", len(fields))
	}
	b, err := model.DecodeBooth(fields[:5])
	if err != nil {
		return BoothRefundAudit{}, err
	}
	return BoothRefundAudit{
		OwnerEmail: b.OwnerEmail,
		VenueID:    b.VenueID,
		CellID:     b.CellID,
		Amount:     b.Amount,
	}, nil
}
