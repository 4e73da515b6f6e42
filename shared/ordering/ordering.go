// Package ordering manages drag-sortable collections: display items tagged
// existing or new, splice based moves, dirty detection against a snapshot
// and the diff that turns an edited list into inserts, deletes and a final
// id order.
//
// Every function returns a fresh slice. Orders are always 0..n-1.
package ordering

import (
	"errors"
	"fmt"
	"slices"
)

type ItemType string

const (
	ItemTypeExisting ItemType = "existing"
	ItemTypeNew      ItemType = "new"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrItemNotFound    = errors.New("item not found")
	ErrUnknownID       = errors.New("unknown id")
	ErrMissingID       = errors.New("missing id")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrLengthMismatch  = errors.New("ids and payloads length mismatch")
	ErrInvalidItemType = errors.New("invalid item type")
)

// DisplayItem wraps a payload with its UI state. Existing items carry the
// persisted id, new items a temporary client id.
type DisplayItem[T any] struct {
	ID      string   `json:"id"      validate:"required"`
	Type    ItemType `json:"type"    validate:"required,itemtype"`
	Payload T        `json:"payload"`
	Order   int      `json:"order"   validate:"min=0"`
}

// Entry is a persisted member of a collection.
type Entry struct {
	ID    string `db:"id"`
	Order int    `db:"sort_order"`
}

// Plan is what a save has to apply to reach the desired collection.
// Updates are the existing items whose payload was edited.
type Plan[T any] struct {
	Inserts    []DisplayItem[T]
	Updates    []DisplayItem[T]
	Deletes    []string
	OrderedIDs []string
}

func FromEntities[T any](ids []string, payloads []T) ([]DisplayItem[T], error) {
	if len(ids) != len(payloads) {
		return nil, ErrLengthMismatch
	}

	items := make([]DisplayItem[T], len(ids))
	for i, id := range ids {
		items[i] = DisplayItem[T]{
			ID:      id,
			Type:    ItemTypeExisting,
			Payload: payloads[i],
			Order:   i,
		}
	}

	return items, nil
}

func Append[T any](items []DisplayItem[T], tempID string, payload T) []DisplayItem[T] {
	res := make([]DisplayItem[T], 0, len(items)+1)
	res = append(res, items...)
	res = append(res, DisplayItem[T]{
		ID:      tempID,
		Type:    ItemTypeNew,
		Payload: payload,
	})

	return Renumber(res)
}

// Move takes the item at from out of the list and inserts it at to.
func Move[T any](items []DisplayItem[T], from, to int) ([]DisplayItem[T], error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, fmt.Errorf("move %d to %d of %d items: %w", from, to, len(items), ErrIndexOutOfRange)
	}

	res := slices.Clone(items)
	if from == to {
		return Renumber(res), nil
	}

	moved := res[from]
	res = slices.Delete(res, from, from+1)
	res = slices.Insert(res, to, moved)

	return Renumber(res), nil
}

func Remove[T any](items []DisplayItem[T], id string) ([]DisplayItem[T], error) {
	idx := slices.IndexFunc(items, func(item DisplayItem[T]) bool { return item.ID == id })
	if idx == -1 {
		return nil, fmt.Errorf("remove %s: %w", id, ErrItemNotFound)
	}

	res := slices.Clone(items)
	res = slices.Delete(res, idx, idx+1)

	return Renumber(res), nil
}

func Renumber[T any](items []DisplayItem[T]) []DisplayItem[T] {
	res := slices.Clone(items)
	for i := range res {
		res[i].Order = i
	}

	return res
}

// IsDirty reports whether current differs from the initial snapshot by
// length, or at any position by id, type, order or payload.
func IsDirty[T any](initial, current []DisplayItem[T], equal func(a, b T) bool) bool {
	if len(initial) != len(current) {
		return true
	}

	for i := range initial {
		a, b := initial[i], current[i]
		if a.ID != b.ID || a.Type != b.Type || a.Order != b.Order {
			return true
		}

		if !equal(a.Payload, b.Payload) {
			return true
		}
	}

	return false
}

func OrderedIDs[T any](items []DisplayItem[T]) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	return ids
}

// ValidatePermutation checks that ordered names every id of current exactly once.
func ValidatePermutation(current, ordered []string) error {
	known := make(map[string]struct{}, len(current))
	for _, id := range current {
		known[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(ordered))
	for _, id := range ordered {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%s: %w", id, ErrUnknownID)
		}

		if _, ok := seen[id]; ok {
			return fmt.Errorf("%s: %w", id, ErrDuplicateID)
		}

		seen[id] = struct{}{}
	}

	for _, id := range current {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%s: %w", id, ErrMissingID)
		}
	}

	return nil
}

// Diff plans the writes that turn current into desired. New items receive
// an id from newID and keep their position; existing ids missing from
// desired are deleted in their persisted order. Existing items for which
// changed reports true are planned as updates. A nil changed never updates.
func Diff[T any](current []Entry, desired []DisplayItem[T], newID func() string, changed func(item DisplayItem[T]) bool) (Plan[T], error) {
	plan := Plan[T]{
		Inserts:    []DisplayItem[T]{},
		Updates:    []DisplayItem[T]{},
		Deletes:    []string{},
		OrderedIDs: make([]string, 0, len(desired)),
	}

	persisted := make(map[string]struct{}, len(current))
	for _, entry := range current {
		persisted[entry.ID] = struct{}{}
	}

	kept := make(map[string]struct{}, len(desired))

	for position, item := range desired {
		switch item.Type {
		case ItemTypeExisting:
			if _, ok := persisted[item.ID]; !ok {
				return Plan[T]{}, fmt.Errorf("%s: %w", item.ID, ErrUnknownID)
			}

			if _, ok := kept[item.ID]; ok {
				return Plan[T]{}, fmt.Errorf("%s: %w", item.ID, ErrDuplicateID)
			}

			kept[item.ID] = struct{}{}
			plan.OrderedIDs = append(plan.OrderedIDs, item.ID)

			if changed != nil && changed(item) {
				updated := item
				updated.Order = position

				plan.Updates = append(plan.Updates, updated)
			}
		case ItemTypeNew:
			inserted := item
			inserted.ID = newID()
			inserted.Order = position

			plan.Inserts = append(plan.Inserts, inserted)
			plan.OrderedIDs = append(plan.OrderedIDs, inserted.ID)
		default:
			return Plan[T]{}, fmt.Errorf("%q: %w", item.Type, ErrInvalidItemType)
		}
	}

	sorted := slices.Clone(current)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return a.Order - b.Order })

	for _, entry := range sorted {
		if _, ok := kept[entry.ID]; !ok {
			plan.Deletes = append(plan.Deletes, entry.ID)
		}
	}

	return plan, nil
}
