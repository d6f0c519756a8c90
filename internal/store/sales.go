package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AllOwners is the aggregate scope: List and SaleDates treat it (and
// the empty string) as "every operator's records".
const AllOwners = "Todos"

type SalesStore struct {
	db *sqlx.DB
}

// Insert persists a new sale and fills in the id the store assigned.
// Amount validation happens at entry; the store does not re-check it.
func (ss *SalesStore) Insert(ctx context.Context, sale *SaleRecord) error {
	query := `
	INSERT INTO vendas (username, data, cliente, convenio, produto, valor)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

	err := ss.db.QueryRowxContext(ctx, query,
		sale.Owner, sale.Date, sale.Client, sale.Agreement, sale.Product, sale.Amount,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	return nil
}

// Delete removes a sale by id. Deleting an id that does not exist is a
// no-op, not an error.
func (ss *SalesStore) Delete(ctx context.Context, id int64) error {
	if _, err := ss.db.ExecContext(ctx, `DELETE FROM vendas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", id, err)
	}
	return nil
}

// List returns the records visible under the given scope: a single
// owner's rows, or every row for the AllOwners aggregate.
func (ss *SalesStore) List(ctx context.Context, owner string) ([]SaleRecord, error) {
	query := `SELECT id, username, data, cliente, convenio, produto, valor FROM vendas`

	records := []SaleRecord{}
	var err error
	if owner == "" || owner == AllOwners {
		err = ss.db.SelectContext(ctx, &records, query+` ORDER BY id`)
	} else {
		err = ss.db.SelectContext(ctx, &records, query+` WHERE username = $1 ORDER BY id`, owner)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	return records, nil
}

// DistinctOwners returns every operator identity present in the store.
func (ss *SalesStore) DistinctOwners(ctx context.Context) ([]string, error) {
	owners := []string{}
	err := ss.db.SelectContext(ctx, &owners,
		`SELECT DISTINCT username FROM vendas ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct owners: %w", err)
	}
	return owners, nil
}

// SaleDates returns the distinct calendar days on which the owner has
// at least one sale. It feeds the streak calculator, which does not
// depend on ordering.
func (ss *SalesStore) SaleDates(ctx context.Context, owner string) ([]time.Time, error) {
	dates := []time.Time{}
	var err error
	if owner == "" || owner == AllOwners {
		err = ss.db.SelectContext(ctx, &dates, `SELECT DISTINCT data FROM vendas`)
	} else {
		err = ss.db.SelectContext(ctx, &dates,
			`SELECT DISTINCT data FROM vendas WHERE username = $1`, owner)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sale dates: %w", err)
	}
	return dates, nil
}

// Latest returns the most recently inserted records, newest first.
func (ss *SalesStore) Latest(ctx context.Context, limit int) ([]SaleRecord, error) {
	records := []SaleRecord{}
	err := ss.db.SelectContext(ctx, &records,
		`SELECT id, username, data, cliente, convenio, produto, valor FROM vendas ORDER BY id DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest sales: %w", err)
	}
	return records, nil
}
