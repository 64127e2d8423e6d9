// Package store holds the persistence plumbing shared by every per-user resource.
// The central piece is Owned, a generic repository whose reads and deletes are always
// scoped by the owning user's id, so "does not exist" and "belongs to someone else"
// come back as the same ErrNotFound.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no row matches an id/owner pair.
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of *pgxpool.Pool (and pgx.Tx) the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Table describes how a record type maps onto SQL.
// Name must have `id` and `user_id` columns. Columns are selected in order and
// handed to Scan, so they should be qualified when Join is used.
type Table[T any] struct {
	Name    string
	Columns []string
	Join    string
	Scan    func(row pgx.Row) (T, error)
}

func (t Table[T]) selectFrom() string {
	q := "SELECT " + strings.Join(t.Columns, ", ") + " FROM " + t.Name
	if t.Join != "" {
		q += " " + t.Join
	}
	return q
}

// Owned is the owned-record repository for one table.
type Owned[T any] struct {
	db    DBTX
	table Table[T]
}

// NewOwned creates an owned-record repository for table.
func NewOwned[T any](db DBTX, table Table[T]) *Owned[T] {
	return &Owned[T]{db: db, table: table}
}

// Returning renders the RETURNING clause matching the table's Scan.
func (o *Owned[T]) Returning() string {
	return " RETURNING " + strings.Join(o.table.Columns, ", ")
}

// FindOwned loads the record with id only if it belongs to userID.
func (o *Owned[T]) FindOwned(ctx context.Context, id int64, userID string) (T, error) {
	q := fmt.Sprintf("%s WHERE %s.id = $1 AND %s.user_id = $2", o.table.selectFrom(), o.table.Name, o.table.Name)
	return o.QueryOne(ctx, q, id, userID)
}

// ListOwned returns userID's records matching f, ordered by id and paged by p.
func (o *Owned[T]) ListOwned(ctx context.Context, userID string, f *Filter, p Page) ([]T, error) {
	args := []any{userID}
	where := []string{fmt.Sprintf("%s.user_id = $1", o.table.Name)}
	if f != nil {
		for _, c := range f.conds {
			args = append(args, c.arg)
			where = append(where, strings.Replace(c.expr, "?", fmt.Sprintf("$%d", len(args)), 1))
		}
	}
	q := fmt.Sprintf("%s WHERE %s ORDER BY %s.id LIMIT $%d OFFSET $%d",
		o.table.selectFrom(), strings.Join(where, " AND "), o.table.Name, len(args)+1, len(args)+2)
	args = append(args, p.Take, p.Skip)

	rows, err := o.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", o.table.Name, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := o.table.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", o.table.Name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", o.table.Name, err)
	}
	return items, nil
}

// DeleteOwned removes the record with id if it belongs to userID.
// Deleting something already gone yields ErrNotFound.
func (o *Owned[T]) DeleteOwned(ctx context.Context, id int64, userID string) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", o.table.Name)
	tag, err := o.db.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("delete %s: %w", o.table.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// QueryOne runs a single-row query whose columns match the table's Scan.
func (o *Owned[T]) QueryOne(ctx context.Context, sql string, args ...any) (T, error) {
	return QueryOne(ctx, o.db, o.table.Scan, sql, args...)
}

// QueryOne runs sql and scans one row with scan, mapping pgx.ErrNoRows onto ErrNotFound.
func QueryOne[T any](ctx context.Context, db DBTX, scan func(pgx.Row) (T, error), sql string, args ...any) (T, error) {
	item, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return item, nil
}
