// Package store is the durable entity store: keyed record tables backed by
// gorm (sqlite by default, postgres when configured) plus the change
// notification that drives live queries. Every successful mutation reports
// the touched table to the Notifier; inside a Transaction the tables are
// collected and published only after commit, so subscribers never observe
// rolled-back state.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store wraps the database handle and the change notifier.
type Store struct {
	db       *gorm.DB
	notifier *Notifier
	recorder *txRecorder // set only on the Store handed to a Transaction fn
}

// New creates a Store over an open gorm handle. The handle should be opened
// with TranslateError enabled so duplicate-key violations are recognizable
// across drivers.
func New(db *gorm.DB) *Store {
	return &Store{db: db, notifier: NewNotifier()}
}

// Notifier exposes the change-notification side of the store for live
// query subscriptions.
func (s *Store) Notifier() *Notifier {
	return s.notifier
}

// All loads a snapshot of every record in dest's table, insertion order.
func (s *Store) All(ctx context.Context, dest any) error {
	if err := s.db.WithContext(ctx).Find(dest).Error; err != nil {
		return fmt.Errorf("load all: %w", err)
	}
	return nil
}

// Get loads the record with the given id into dest.
func (s *Store) Get(ctx context.Context, dest any, id string) error {
	err := s.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	return nil
}

// FindBy loads every record whose column equals value. The column name
// always comes from code, never from user input.
func (s *Store) FindBy(ctx context.Context, dest any, column string, value any) error {
	if err := s.db.WithContext(ctx).Where(column+" = ?", value).Find(dest).Error; err != nil {
		return fmt.Errorf("find by %s: %w", column, err)
	}
	return nil
}

// Insert creates the record, failing with ErrDuplicateKey when its id is
// already taken.
func (s *Store) Insert(ctx context.Context, record any) error {
	tx := s.db.WithContext(ctx).Create(record)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert: %w: %w", ErrStoreWrite, tx.Error)
	}
	s.publish(tableOf(tx))
	return nil
}

// Put inserts the record or replaces the existing one with the same id.
// Replace means the full row, not a merge. Put is idempotent.
func (s *Store) Put(ctx context.Context, record any) error {
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(record)
	if tx.Error != nil {
		return fmt.Errorf("put: %w: %w", ErrStoreWrite, tx.Error)
	}
	s.publish(tableOf(tx))
	return nil
}

// Delete removes the record with the given id from model's table. Deleting
// an absent id is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, model any, id string) error {
	tx := s.db.WithContext(ctx).Delete(model, "id = ?", id)
	if tx.Error != nil {
		return fmt.Errorf("delete: %w: %w", ErrStoreWrite, tx.Error)
	}
	if tx.RowsAffected > 0 {
		s.publish(tableOf(tx))
	}
	return nil
}

// DeleteBy removes every record whose column equals value and reports how
// many rows went away.
func (s *Store) DeleteBy(ctx context.Context, model any, column string, value any) (int64, error) {
	tx := s.db.WithContext(ctx).Where(column+" = ?", value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete by %s: %w: %w", column, ErrStoreWrite, tx.Error)
	}
	if tx.RowsAffected > 0 {
		s.publish(tableOf(tx))
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn against a transactional Store. Change notifications
// raised inside fn are buffered and published once, after commit; a
// rollback publishes nothing.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	rec := &txRecorder{}
	err := s.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		return fn(&Store{db: txdb, notifier: s.notifier, recorder: rec})
	})
	if err != nil {
		return err
	}
	s.notifier.Publish(rec.tables()...)
	return nil
}

func (s *Store) publish(table string) {
	if table == "" {
		return
	}
	if s.recorder != nil {
		s.recorder.add(table)
		return
	}
	s.notifier.Publish(table)
}

func tableOf(tx *gorm.DB) string {
	if tx.Statement == nil {
		return ""
	}
	return tx.Statement.Table
}

type txRecorder struct {
	mu   sync.Mutex
	seen []string
}

func (r *txRecorder) add(table string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.seen {
		if t == table {
			return
		}
	}
	r.seen = append(r.seen, table)
}

func (r *txRecorder) tables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen
}
