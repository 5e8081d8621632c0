package stock

import "time"

// Row is a product's stock position. It is owned exclusively by the ledger:
// no other component writes on_hand, reserved, or version directly.
type Row struct {
	ProductID int64     `db:"product_id"`
	OnHand    int       `db:"on_hand"`
	Reserved  int       `db:"reserved"`
	Version   int64     `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Available returns the quantity free to reserve.
func (r Row) Available() int {
	return r.OnHand - r.Reserved
}
