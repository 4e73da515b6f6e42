package ordering_test

import (
	"fmt"
	"testing"

	"resort/shared/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type policy struct {
	Kind string
	Text string
}

func equalPolicy(a, b policy) bool {
	return a == b
}

func fixture(t *testing.T) []ordering.DisplayItem[policy] {
	t.Helper()

	items, err := ordering.FromEntities(
		[]string{"a", "b", "c", "d"},
		[]policy{
			{Kind: "include", Text: "Breakfast"},
			{Kind: "include", Text: "Airport pickup"},
			{Kind: "exclude", Text: "Minibar"},
			{Kind: "exclude", Text: "Laundry"},
		},
	)
	require.NoError(t, err)

	return items
}

func orders[T any](items []ordering.DisplayItem[T]) []int {
	res := make([]int, len(items))
	for i, item := range items {
		res[i] = item.Order
	}

	return res
}

func sequence(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}

	return res
}

func TestFromEntities(t *testing.T) {
	items := fixture(t)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ordering.OrderedIDs(items))
	assert.Equal(t, sequence(4), orders(items))

	for _, item := range items {
		assert.Equal(t, ordering.ItemTypeExisting, item.Type)
	}

	_, err := ordering.FromEntities([]string{"a"}, []policy{})
	assert.ErrorIs(t, err, ordering.ErrLengthMismatch)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		to       int
		expected []string
		err      error
	}{
		{name: "first to last", from: 0, to: 3, expected: []string{"b", "c", "d", "a"}},
		{name: "last to first", from: 3, to: 0, expected: []string{"d", "a", "b", "c"}},
		{name: "middle down", from: 1, to: 2, expected: []string{"a", "c", "b", "d"}},
		{name: "middle up", from: 2, to: 1, expected: []string{"a", "c", "b", "d"}},
		{name: "same index", from: 2, to: 2, expected: []string{"a", "b", "c", "d"}},
		{name: "from out of range", from: 4, to: 0, err: ordering.ErrIndexOutOfRange},
		{name: "to out of range", from: 0, to: -1, err: ordering.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := fixture(t)

			res, err := ordering.Move(items, tt.from, tt.to)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ordering.OrderedIDs(res))
			assert.Equal(t, sequence(len(res)), orders(res))
			assert.Equal(t, []string{"a", "b", "c", "d"}, ordering.OrderedIDs(items), "input must stay untouched")
		})
	}
}

func TestRemove(t *testing.T) {
	items := fixture(t)

	res, err := ordering.Remove(items, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, ordering.OrderedIDs(res))
	assert.Equal(t, sequence(3), orders(res))

	_, err = ordering.Remove(items, "zzz")
	assert.ErrorIs(t, err, ordering.ErrItemNotFound)
}

func TestAppend(t *testing.T) {
	items := fixture(t)

	res := ordering.Append(items, "tmp-1", policy{Kind: "include", Text: "Spa"})

	require.Len(t, res, 5)
	assert.Equal(t, "tmp-1", res[4].ID)
	assert.Equal(t, ordering.ItemTypeNew, res[4].Type)
	assert.Equal(t, 4, res[4].Order)
	assert.Len(t, items, 4)
}

func TestRenumber(t *testing.T) {
	items := []ordering.DisplayItem[policy]{
		{ID: "x", Order: 7},
		{ID: "y", Order: 3},
		{ID: "z", Order: 3},
	}

	res := ordering.Renumber(items)

	assert.Equal(t, []int{0, 1, 2}, orders(res))
	assert.Equal(t, []int{7, 3, 3}, orders(items))
}

func TestIsDirty(t *testing.T) {
	initial := fixture(t)

	t.Run("identical snapshot is clean", func(t *testing.T) {
		assert.False(t, ordering.IsDirty(initial, fixture(t), equalPolicy))
	})

	t.Run("move is dirty", func(t *testing.T) {
		moved, err := ordering.Move(initial, 0, 2)
		require.NoError(t, err)
		assert.True(t, ordering.IsDirty(initial, moved, equalPolicy))
	})

	t.Run("moving back is clean again", func(t *testing.T) {
		moved, err := ordering.Move(initial, 0, 2)
		require.NoError(t, err)
		back, err := ordering.Move(moved, 2, 0)
		require.NoError(t, err)
		assert.False(t, ordering.IsDirty(initial, back, equalPolicy))
	})

	t.Run("append is dirty", func(t *testing.T) {
		assert.True(t, ordering.IsDirty(initial, ordering.Append(initial, "tmp", policy{}), equalPolicy))
	})

	t.Run("remove is dirty", func(t *testing.T) {
		removed, err := ordering.Remove(initial, "d")
		require.NoError(t, err)
		assert.True(t, ordering.IsDirty(initial, removed, equalPolicy))
	})

	t.Run("payload edit is dirty", func(t *testing.T) {
		edited := ordering.Renumber(initial)
		edited[1].Payload.Text = "Airport pickup and drop"
		assert.True(t, ordering.IsDirty(initial, edited, equalPolicy))
	})

	t.Run("type change is dirty", func(t *testing.T) {
		edited := ordering.Renumber(initial)
		edited[0].Type = ordering.ItemTypeNew
		assert.True(t, ordering.IsDirty(initial, edited, equalPolicy))
	})
}

func TestValidatePermutation(t *testing.T) {
	current := []string{"a", "b", "c"}

	tests := []struct {
		name    string
		ordered []string
		err     error
	}{
		{name: "same order", ordered: []string{"a", "b", "c"}},
		{name: "reversed", ordered: []string{"c", "b", "a"}},
		{name: "unknown id", ordered: []string{"a", "b", "x"}, err: ordering.ErrUnknownID},
		{name: "missing id", ordered: []string{"a", "b"}, err: ordering.ErrMissingID},
		{name: "duplicate id", ordered: []string{"a", "a", "b", "c"}, err: ordering.ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ordering.ValidatePermutation(current, tt.ordered)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	assert.NoError(t, ordering.ValidatePermutation(nil, nil))
}

func TestDiff(t *testing.T) {
	current := []ordering.Entry{
		{ID: "c", Order: 2},
		{ID: "a", Order: 0},
		{ID: "b", Order: 1},
	}

	counter := 0
	newID := func() string {
		counter++

		return fmt.Sprintf("new-%d", counter)
	}

	desired := []ordering.DisplayItem[policy]{
		{ID: "tmp-x", Type: ordering.ItemTypeNew, Payload: policy{Text: "Spa"}},
		{ID: "c", Type: ordering.ItemTypeExisting},
		{ID: "tmp-y", Type: ordering.ItemTypeNew, Payload: policy{Text: "Gym"}},
		{ID: "a", Type: ordering.ItemTypeExisting},
	}

	plan, err := ordering.Diff(current, desired, newID, nil)
	require.NoError(t, err)

	assert.Empty(t, plan.Updates)
	assert.Equal(t, []string{"b"}, plan.Deletes)
	require.Len(t, plan.Inserts, 2)
	assert.Equal(t, "new-1", plan.Inserts[0].ID)
	assert.Equal(t, 0, plan.Inserts[0].Order)
	assert.Equal(t, "Spa", plan.Inserts[0].Payload.Text)
	assert.Equal(t, "new-2", plan.Inserts[1].ID)
	assert.Equal(t, 2, plan.Inserts[1].Order)
	assert.Equal(t, []string{"new-1", "c", "new-2", "a"}, plan.OrderedIDs)

	for _, deleted := range plan.Deletes {
		assert.NotContains(t, ordering.OrderedIDs(desired), deleted)
	}
}

func TestDiff_Empty(t *testing.T) {
	plan, err := ordering.Diff[policy](
		[]ordering.Entry{{ID: "a", Order: 0}, {ID: "b", Order: 1}},
		nil,
		func() string { return "unused" },
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, plan.Deletes)
	assert.Empty(t, plan.Inserts)
	assert.Empty(t, plan.OrderedIDs)
}

func TestDiff_Errors(t *testing.T) {
	current := []ordering.Entry{{ID: "a", Order: 0}}
	newID := func() string { return "n" }

	_, err := ordering.Diff(current, []ordering.DisplayItem[policy]{
		{ID: "zzz", Type: ordering.ItemTypeExisting},
	}, newID, nil)
	assert.ErrorIs(t, err, ordering.ErrUnknownID)

	_, err = ordering.Diff(current, []ordering.DisplayItem[policy]{
		{ID: "a", Type: ordering.ItemTypeExisting},
		{ID: "a", Type: ordering.ItemTypeExisting},
	}, newID, nil)
	assert.ErrorIs(t, err, ordering.ErrDuplicateID)

	_, err = ordering.Diff(current, []ordering.DisplayItem[policy]{
		{ID: "a", Type: "bogus"},
	}, newID, nil)
	assert.ErrorIs(t, err, ordering.ErrInvalidItemType)
}

func TestDiff_EditedPayloads(t *testing.T) {
	current := []ordering.Entry{{ID: "a", Order: 0}, {ID: "b", Order: 1}}
	stored := map[string]policy{"a": {Text: "No pets"}, "b": {Text: "No smoking"}}

	desired := []ordering.DisplayItem[policy]{
		{ID: "b", Type: ordering.ItemTypeExisting, Payload: policy{Text: "No smoking"}},
		{ID: "a", Type: ordering.ItemTypeExisting, Payload: policy{Text: "Pets allowed"}},
	}

	plan, err := ordering.Diff(current, desired, func() string { return "unused" }, func(item ordering.DisplayItem[policy]) bool {
		return stored[item.ID] != item.Payload
	})
	require.NoError(t, err)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, "a", plan.Updates[0].ID)
	assert.Equal(t, 1, plan.Updates[0].Order)
	assert.Equal(t, "Pets allowed", plan.Updates[0].Payload.Text)
	assert.Empty(t, plan.Inserts)
	assert.Empty(t, plan.Deletes)
	assert.Equal(t, []string{"b", "a"}, plan.OrderedIDs)
}
