package engine

import (
	"fmt"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// BoothEngine rents and refunds booth grid cells.  The booth ledger is
// the authoritative occupancy record; the rented flags inside the venue
// record are a cache kept in step on book and refund but never consulted
// for a decision.
type BoothEngine struct {
	venues  *repository.VenueRepo
	booths  *repository.BoothRepo
	refunds *repository.BoothRefundLog
	locks   *VenueLocks
}

// NewBoothEngine wires the booth engine to its stores.
func NewBoothEngine(venues *repository.VenueRepo, booths *repository.BoothRepo, refunds *repository.BoothRefundLog, locks *VenueLocks) *BoothEngine {
	if venues == nil || booths == nil || refunds == nil || locks == nil {
		panic("nil dependency passed to NewBoothEngine")
	}
	return &BoothEngine{venues: venues, booths: booths, refunds: refunds, locks: locks}
}

// Book rents a grid cell to an exhibitor at the venue's fixed cell
// price.  The cell must exist in the grid and must not have a live
// rental row in the ledger.
func (e *BoothEngine) Book(venueID, cellID, renterEmail string) (model.Booth, error) {
	unlock := e.locks.Lock(venueID)
	defer unlock()

	vs, err := e.venues.LoadAll()
	if err != nil {
		return model.Booth{}, fmt.Errorf("load venues: %w", err)
	}
	idx := -1
	for i := range vs {
		if vs[i].ID == venueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Booth{}, repository.ErrVenueNotFound
	}
	if vs[idx].Available {
		return model.Booth{}, ErrNoActiveEvent
	}
	if err := ValidateCell(vs[idx], cellID); err != nil {
		return model.Booth{}, err
	}
	bt := vs[idx].BoothType(cellID)
	if bt == nil {
		// The grid predicate passed, so the venue record is missing a
		// generated cell: a corrupt store, not a caller error.
		return model.Booth{}, fmt.Errorf("venue %s has no booth type for cell %s", venueID, cellID)
	}

	ledger, err := e.booths.LoadAll()
	if err != nil {
		return model.Booth{}, fmt.Errorf("load booths: %w", err)
	}
	for _, b := range ledger {
		if b.VenueID == venueID && b.CellID == cellID && b.Rented {
			return model.Booth{}, fmt.Errorf("%w: booth %s is already rented", ErrAlreadyOccupied, cellID)
		}
	}

	booked := model.Booth{
		OwnerEmail: renterEmail,
		VenueID:    venueID,
		CellID:     cellID,
		Rented:     true,
		Amount:     bt.Price,
	}
	if err := e.booths.SaveAll(append(ledger, booked)); err != nil {
		return model.Booth{}, fmt.Errorf("save booths: %w", err)
	}

	bt.Rented = true
	if err := e.venues.SaveAll(vs); err != nil {
		return model.Booth{}, fmt.Errorf("save venues: %w", err)
	}
	return booked, nil
}

// Refund releases a rented cell: the audit row is appended, the ledger
// row keeps its place with the rented flag cleared (rows are flagged,
// never deleted, unlike ticket refunds), and the venue's cached cell
// flag is cleared too.
func (e *BoothEngine) Refund(venueID, cellID, renterEmail string) (model.Booth, error) {
	unlock := e.locks.Lock(venueID)
	defer unlock()

	ledger, err := e.booths.LoadAll()
	if err != nil {
		return model.Booth{}, fmt.Errorf("load booths: %w", err)
	}
	found := -1
	for i, b := range ledger {
		if b.VenueID == venueID && b.CellID == cellID && b.OwnerEmail == renterEmail && b.Rented {
			found = i
			break
		}
	}
	if found < 0 {
		return model.Booth{}, repository.ErrBoothNotFound
	}

	if err := e.refunds.Append(repository.BoothRefundAudit{
		OwnerEmail: renterEmail,
		VenueID:    venueID,
		CellID:     cellID,
		Amount:     ledger[found].Amount,
	}); err != nil {
		return model.Booth{}, fmt.Errorf("append refund audit: %w", err)
	}

	ledger[found].Rented = false
	if err := e.booths.SaveAll(ledger); err != nil {
		return model.Booth{}, fmt.Errorf("save booths: %w", err)
	}

	vs, err := e.venues.LoadAll()
	if err != nil {
		return model.Booth{}, fmt.Errorf("load venues: %w", err)
	}
	for i := range vs {
		if vs[i].ID != venueID {
			continue
		}
		if bt := vs[i].BoothType(cellID); bt != nil {
			bt.Rented = false
		}
		if err := e.venues.SaveAll(vs); err != nil {
			return model.Booth{}, fmt.Errorf("save venues: %w", err)
		}
		break
	}
	return ledger[found], nil
}

// ListByOwner returns the exhibitor's rental rows, refunded ones included.
func (e *BoothEngine) ListByOwner(ownerEmail string) ([]model.Booth, error) {
	ledger, err := e.booths.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load booths: %w", err)
	}
	var mine []model.Booth
	for _, b := range ledger {
		if b.OwnerEmail == ownerEmail {
			mine = append(mine, b)
		}
	}
	return mine, nil
}

// LayoutCell is one grid position in a rendered layout.
type LayoutCell struct {
	CellID   string  `json:"cell_id"`
	Price    float64 `json:"price"`
	Occupied bool    `json:"occupied"`
}

// Layout renders the venue's booth grid row by row.  Occupancy is
// derived from the ledger alone: a cell shows occupied iff a live
// rental row exists for it, so the layout stays truthful even if the
// venue's cached flags ever drift.
func (e *BoothEngine) Layout(venueID string) ([][]LayoutCell, error) {
	v, err := e.venues.GetByID(venueID)
	if err != nil {
		return nil, err
	}
	if v.Available {
		return nil, ErrNoActiveEvent
	}
	ledger, err := e.booths.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load booths: %w", err)
	}
	rented := make(map[string]bool)
	for _, b := range ledger {
		if b.VenueID == venueID && b.Rented {
			rented[b.CellID] = true
		}
	}
	grid := make([][]LayoutCell, v.Rows)
	for row := 0; row < v.Rows; row++ {
		grid[row] = make([]LayoutCell, v.Columns)
		for col := 0; col < v.Columns; col++ {
			id := CellID(row, col)
			price := 0.0
			if bt := v.BoothType(id); bt != nil {
				price = bt.Price
			}
			grid[row][col] = LayoutCell{CellID: id, Price: price, Occupied: rented[id]}
		}
	}
	return grid, nil
}
