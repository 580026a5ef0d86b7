package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	expensesKey = "expenses"
	targetKey   = "daily_target"
)

// Repository owns the expense list and the daily target. The list is read
// and written as a whole: newest record first, insertion order is the only
// ordering guarantee.
type Repository struct {
	store KVStore
}

func NewRepository(store KVStore) *Repository {
	return &Repository{store: store}
}

// ListAll returns every saved expense, newest first. A missing key or a
// payload that does not parse reads as a fresh install: empty list, no
// error. Store faults are returned.
func (r *Repository) ListAll(ctx context.Context) ([]expense.Record, error) {
	raw, err := r.store.Get(ctx, expensesKey)
	if errors.Is(err, ErrNotFound) {
		return []expense.Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}

	var records []expense.Record
	if err = json.Unmarshal([]byte(raw), &records); err != nil {
		return []expense.Record{}, nil
	}
	return records, nil
}

// Append prepends the record and writes the whole list back. Single active
// writer is assumed: there is no lock and no concurrency check.
func (r *Repository) Append(ctx context.Context, rec expense.Record) error {
	records, err := r.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "append expense")
	}

	records = append([]expense.Record{rec}, records...)
	raw, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "append expense")
	}
	return errors.Wrap(r.store.Set(ctx, expensesKey, string(raw)), "append expense")
}

// Target returns the daily target and whether one is set. An unset or
// unparsable value reads as unset, not as an error.
func (r *Repository) Target(ctx context.Context) (float64, bool, error) {
	raw, err := r.store.Get(ctx, targetKey)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "get target")
	}

	target, err := strconv.ParseFloat(raw, 64)
	if err != nil || target <= 0 {
		return 0, false, nil
	}
	return target, true, nil
}

// SetTarget overwrites the daily target. There is no history.
func (r *Repository) SetTarget(ctx context.Context, target float64) error {
	raw := strconv.FormatFloat(target, 'f', -1, 64)
	return errors.Wrap(r.store.Set(ctx, targetKey, raw), "set target")
}
