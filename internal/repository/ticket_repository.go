package repository

import (
	"fmt"
	"path/filepath"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/store"
)

// Ticket store file names.  TicketRefundFile keeps the exact historical
// casing of the original system.
const (
	TicketFile       = "ticket.txt"
	TicketRefundFile = "Ticketrefunds.txt"
)

// TicketRepo persists the ticket ledger in ticket.txt.
type TicketRepo struct {
	store *store.Store[model.Ticket]
}

// NewTicketRepo returns a ticket repository rooted at dataDir.
func NewTicketRepo(dataDir string) *TicketRepo {
	return &TicketRepo{store: store.New(filepath.Join(dataDir, TicketFile), model.EncodeTicket, model.DecodeTicket)}
}

// LoadAll returns every ticket ledger row.
func (r *TicketRepo) LoadAll() ([]model.Ticket, error) { return r.store.LoadAll() }

// SaveAll rewrites the ticket ledger with exactly the given rows.
func (r *TicketRepo) SaveAll(ts []model.Ticket) error { return r.store.SaveAll(ts) }

// TicketRefundAudit is one append-only row of the ticket refund log: the
// refunded ledger row plus the literal REFUNDED marker.
type TicketRefundAudit struct {
	OwnerEmail string
	TicketID   string
	EventName  string
	TypeName   string
	Amount     float64
}

// TicketRefundLog appends refund audit rows to Ticketrefunds.txt.  The
// log is never rewritten or read back by the system; it exists for audit.
type TicketRefundLog struct {
	store *store.Store[TicketRefundAudit]
}

// NewTicketRefundLog returns the ticket refund audit log rooted at dataDir.
func NewTicketRefundLog(dataDir string) *TicketRefundLog {
	return &TicketRefundLog{store: store.New(
		filepath.Join(dataDir, TicketRefundFile),
		encodeTicketRefund,
		decodeTicketRefund,
	)}
}

// Append records one refund.
func (l *TicketRefundLog) Append(a TicketRefundAudit) error { return l.store.Append(a) }

func encodeTicketRefund(a TicketRefundAudit) []string {
	fields := model.EncodeTicket(model.Ticket{
		OwnerEmail: a.OwnerEmail,
		ID:         a.TicketID,
		EventName:  a.EventName,
		TypeName:   a.TypeName,
		Amount:     a.Amount,
	})
	return append(fields, "REFUNDED")
}

func decodeTicketRefund(fields []string) (TicketRefundAudit, error) {
	if len(fields) != 6 || fields[5] != "REFUNDED" {
		return TicketRefundAudit{}, fmt.Errorf("ticket refund record has %d fields, want 6 ending in REFUNDED", len(fields))
	}
	t, err := model.DecodeTicket(fields[:5])
	if err != nil {
		return TicketRefundAudit{}, err
	}
	return TicketRefundAudit{
		OwnerEmail: t.OwnerEmail,
		TicketID:   t.ID,
		EventName:  t.EventName,
		TypeName:   t.TypeName,
		Amount:     t.Amount,
	}, nil
}
