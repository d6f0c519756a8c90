package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Sales interface {
		Insert(ctx context.Context, sale *SaleRecord) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context, owner string) ([]SaleRecord, error)
		DistinctOwners(ctx context.Context) ([]string, error)
		SaleDates(ctx context.Context, owner string) ([]time.Time, error)
		Latest(ctx context.Context, limit int) ([]SaleRecord, error)
	}

	Users interface {
		Find(ctx context.Context, username string) (*UserAccount, error)
		Create(ctx context.Context, username, passwordHash, role string) error
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Sales: &SalesStore{db: db},
		Users: &UsersStore{db: db},
	}
}
