package gormstore

import (
	"context"
	"errors"
	"maps"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/pkg/utils"
)

const (
	lockForUpdate = "UPDATE"
	lockForShare  = "SHARE"
)

// recordStore holds the primitives shared by every entity family: keyed lookup
// and partial update with a refreshed updated_at.
type recordStore[T any] struct {
	db    *gorm.DB
	clock utils.Clock
}

func (s recordStore[T]) insert(ctx context.Context, record *T) error {
	return translateError(s.db.WithContext(ctx).Create(record).Error)
}

func (s recordStore[T]) find(ctx context.Context, db *gorm.DB, column string, key any) (*T, error) {
	var record T
	result := db.WithContext(ctx).Where(eq(column, key)).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &record, nil
}

func (s recordStore[T]) update(ctx context.Context, column string, key any, columns map[string]any) (*T, error) {
	var updated *T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.updateTx(ctx, tx, column, key, columns)
		updated = record
		return err
	})
	if err != nil {
		return nil, translateError(err)
	}
	return updated, nil
}

// updateTx must run inside a transaction. It locks the row, applies columns and
// moves updated_at strictly past its previous value.
func (s recordStore[T]) updateTx(ctx context.Context, tx *gorm.DB, column string, key any, columns map[string]any) (*T, error) {
	var stamps []time.Time
	if err := lockRow(tx, lockForUpdate).
		Model(new(T)).
		Where(eq(column, key)).
		Limit(1).
		Pluck("updated_at", &stamps).Error; err != nil {
		return nil, err
	}
	if len(stamps) == 0 {
		return nil, nil
	}

	values := make(map[string]any, len(columns)+1)
	maps.Copy(values, columns)
	values["updated_at"] = utils.NextAfter(s.clock.Now(), stamps[0])

	if err := tx.Model(new(T)).Where(eq(column, key)).Updates(values).Error; err != nil {
		return nil, err
	}
	return s.find(ctx, tx, column, key)
}

func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

// lockRow adds a row lock on PostgreSQL. SQLite has no row locks; the sqlite
// connection is limited to a single writer instead.
func lockRow(tx *gorm.DB, strength string) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: strength})
	}
	return tx
}

// translateError maps driver errors onto the repository sentinels while keeping
// the original error as the cause.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	if sentinel := classify(err); sentinel != nil {
		return &repository.StoreError{Sentinel: sentinel, Cause: err}
	}
	return &repository.StoreError{Sentinel: repository.ErrStoreUnavailable, Cause: err}
}

func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrConstraintViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return repository.ErrParentNotFound
	}

	// pgx exposes the SQLSTATE through (*pgconn.PgError).SQLState.
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505", "23514": // unique_violation, check_violation
			return repository.ErrConstraintViolation
		case "23503": // foreign_key_violation
			return repository.ErrParentNotFound
		}
	}

	// The sqlite driver only reports constraint failures through the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"):
		return repository.ErrConstraintViolation
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return repository.ErrParentNotFound
	}
	return nil
}
