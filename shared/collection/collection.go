// Package collection persists ordered collections owned by a hotel or an
// activity. Every write runs in one transaction and leaves sort_order as
// 0..n-1 for the owner.
package collection

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"resort/infras/postgres"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Store is the slice of a repository an ordered collection needs.
type Store[T any] interface {
	EntriesTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]ordering.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]T, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ReorderTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, filter gDto.FilterGroup) error
}

// Codec reads the payload back from a stored row of T and names the
// columns a payload writes.
type Codec[T, P any] interface {
	ID(row T) string
	Payload(row T) P
	Columns(payload P) map[string]any
}

// Manager applies edits of a collection of T whose display payload is P.
type Manager[T, P any] struct {
	store   Store[T]
	codec   Codec[T, P]
	db      postgres.Transactor
	table   string
	idField string
	newID   func() string
}

func NewManager[T, P any](store Store[T], codec Codec[T, P], db postgres.Transactor, table, idField string) *Manager[T, P] {
	return &Manager[T, P]{
		store:   store,
		codec:   codec,
		db:      db,
		table:   table,
		idField: idField,
		newID:   uuid.NewString,
	}
}

// WithIDGenerator replaces the id source of new items.
func (m *Manager[T, P]) WithIDGenerator(newID func() string) *Manager[T, P] {
	m.newID = newID

	return m
}

// Sync makes the persisted collection equal desired: removed items are
// deleted, edited items updated, new items inserted with build and the
// whole list reordered.
func (m *Manager[T, P]) Sync(ctx context.Context, owner gDto.FilterGroup, desired []ordering.DisplayItem[P], build func(item ordering.DisplayItem[P]) T) (plan ordering.Plan[P], err error) {
	err = m.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := m.store.EntriesTx(ctx, tx, owner)
		if err != nil {
			return err
		}

		stored, err := m.storedColumns(ctx, tx, owner)
		if err != nil {
			return err
		}

		plan, err = ordering.Diff(current, desired, m.newID, func(item ordering.DisplayItem[P]) bool {
			return !maps.Equal(stored[item.ID], m.codec.Columns(item.Payload))
		})
		if err != nil {
			return failure.BadRequest(err)
		}

		if len(plan.Deletes) > 0 {
			if err := m.store.DeleteTx(ctx, tx, m.scoped(owner, plan.Deletes)); err != nil {
				return err
			}
		}

		user, _ := ctx.Value(constant.ContextKeyUserID).(string)

		for _, item := range plan.Updates {
			mod := m.codec.Columns(item.Payload)
			mod[constant.FieldModifiedAt] = timezone.Now()
			mod[constant.FieldModifiedBy] = user

			if err := m.store.UpdateTx(ctx, tx, mod, m.scoped(owner, []string{item.ID})); err != nil {
				return err
			}
		}

		for _, item := range plan.Inserts {
			if err := m.store.InsertTx(ctx, tx, build(item)); err != nil {
				return err
			}
		}

		return m.reorder(ctx, tx, plan.OrderedIDs, owner)
	})
	if err != nil {
		return ordering.Plan[P]{}, fmt.Errorf("failed to sync collection (%s): %w", m.table, err)
	}

	return plan, nil
}

// Reorder rewrites the order to ids, which must be a permutation of the
// persisted ids.
func (m *Manager[T, P]) Reorder(ctx context.Context, owner gDto.FilterGroup, ids []string) error {
	err := m.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := m.store.EntriesTx(ctx, tx, owner)
		if err != nil {
			return err
		}

		persisted := make([]string, len(current))
		for i, entry := range current {
			persisted[i] = entry.ID
		}

		if err := ordering.ValidatePermutation(persisted, ids); err != nil {
			return failure.BadRequest(err)
		}

		return m.reorder(ctx, tx, ids, owner)
	})
	if err != nil {
		return fmt.Errorf("failed to reorder collection (%s): %w", m.table, err)
	}

	return nil
}

// Delete removes one item of the owner and closes the gap it leaves.
func (m *Manager[T, P]) Delete(ctx context.Context, owner gDto.FilterGroup, id string) error {
	err := m.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := m.store.EntriesTx(ctx, tx, owner)
		if err != nil {
			return err
		}

		remaining := make([]string, 0, len(current))
		found := false

		for _, entry := range current {
			if entry.ID == id {
				found = true

				continue
			}

			remaining = append(remaining, entry.ID)
		}

		if !found {
			return failure.NotFound(fmt.Sprintf("%s item not found", m.table))
		}

		if err := m.store.DeleteTx(ctx, tx, m.scoped(owner, []string{id})); err != nil {
			return err
		}

		return m.reorder(ctx, tx, remaining, owner)
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		return fmt.Errorf("failed to delete collection item (%s): %w", m.table, err)
	}

	return nil
}

// storedColumns maps every persisted id of the owner to the columns its
// payload writes.
func (m *Manager[T, P]) storedColumns(ctx context.Context, tx *sqlx.Tx, owner gDto.FilterGroup) (map[string]map[string]any, error) {
	rows, err := m.store.GetAllTx(ctx, tx, owner)
	if err != nil {
		return nil, err
	}

	stored := make(map[string]map[string]any, len(rows))
	for _, row := range rows {
		stored[m.codec.ID(row)] = m.codec.Columns(m.codec.Payload(row))
	}

	return stored, nil
}

func (m *Manager[T, P]) reorder(ctx context.Context, tx *sqlx.Tx, ids []string, owner gDto.FilterGroup) error {
	if len(ids) == 0 {
		return nil
	}

	return m.store.ReorderTx(ctx, tx, ids, owner)
}

func (m *Manager[T, P]) scoped(owner gDto.FilterGroup, ids []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			owner,
			gDto.Filter{
				ArgName:  "collection_ids",
				Field:    m.idField,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    m.table,
			},
		},
	}
}
