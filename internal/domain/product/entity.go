package product

import "github.com/shopspring/decimal"

// Product is the catalog entity a reservation references. The reservation
// engine does not own product data; it only reads ID, price, and active
// status to decide whether a hold can be created.
type Product struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Active    bool            `db:"active"`
}
