package model

import (
	"fmt"
	"strconv"
)

// Booth is one ledger row in booth.txt and the authoritative record of
// who rents which grid cell.  Refunds flip Rented to false but keep the
// row, unlike tickets which are deleted outright.
//
// Persisted layout: ownerEmail,venueID,boothID,rentedFlag(1/0),amount
type Booth struct {
	OwnerEmail string
	VenueID    string
	CellID     string
	Rented     bool
	Amount     float64
}

// EncodeBooth flattens a booth ledger row.
func EncodeBooth(b Booth) []string {
	return []string{b.OwnerEmail, b.VenueID, b.CellID, encodeFlag(b.Rented), formatPrice(b.Amount)}
}

// DecodeBooth parses a booth ledger row.
func DecodeBooth(fields []string) (Booth, error) {
	if len(fields) != 5 {
		return Booth{}, fmt.Errorf("booth record has %d fields, want 5", len(fields))
	}
	rented, err := decodeFlag(fields[3])
	if err != nil {
		return Booth{}, fmt.Errorf("booth rented flag: %w", err)
	}
	amount, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Booth{}, fmt.Errorf("booth amount: %w", err)
	}
	return Booth{
		OwnerEmail: fields[0],
		VenueID:    fields[1],
		CellID:     fields[2],
		Rented:     rented,
		Amount:     amount,
	}, nil
}
