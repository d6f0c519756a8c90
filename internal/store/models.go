package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one row of the vendas table. The owner is always the
// canonical organizational identity of the operator the sale is
// attributed to; the date is the calendar day the sale was recorded
// against, which the operator may backdate at entry time.
type SaleRecord struct {
	ID        int64           `db:"id" json:"id"`
	Owner     string          `db:"username" json:"owner"`
	Date      time.Time       `db:"data" json:"date"`
	Client    string          `db:"cliente" json:"client"`
	Agreement string          `db:"convenio" json:"agreement"`
	Product   string          `db:"produto" json:"product"`
	Amount    decimal.Decimal `db:"valor" json:"amount"`
}

// UserAccount is one row of the users table. Password holds a bcrypt
// hash, never the credential itself.
type UserAccount struct {
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
}
