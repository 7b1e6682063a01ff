package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, l List, name, qty string) List {
	t.Helper()
	next, err := l.Add(name, qty)
	require.NoError(t, err)
	return next
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, in := range []string{"", "abc", "1.5", "0", "-3", " 3 ", "3\n"} {
		_, err := ParseQuantity(in)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "input %q", in)
	}
}

func TestListAdd(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")

	require.Equal(t, 1, l.Len())
	assert.Equal(t, Item{ID: 1, Name: "Bread", Quantity: 2}, l.Items[0])
	assert.False(t, l.IsEditing(1))
}

func TestListAdd_KeepsNameAsTyped(t *testing.T) {
	l := mustAdd(t, List{}, "  Eggs ", "12")
	assert.Equal(t, "  Eggs ", l.Items[0].Name)
}

func TestListAdd_PaddedQuantityRejected(t *testing.T) {
	_, err := List{}.Add("Milk", " 3 ")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestListAdd_BlankNameIgnored(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")

	for _, name := range []string{"", "   ", "\t"} {
		next, err := l.Add(name, "3")
		require.NoError(t, err)
		assert.Equal(t, l, next)
	}
}

func TestListAdd_InvalidQuantity(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")

	next, err := l.Add("Milk", "lots")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, l, next)
}

func TestListAdd_IDsNeverReused(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "1")
	l = mustAdd(t, l, "Milk", "1")
	l = l.Delete(1)
	l = mustAdd(t, l, "Eggs", "6")

	ids := []int{}
	for _, it := range l.Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{2, 3}, ids)
}

func TestListTogglePurchased(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")

	once := l.TogglePurchased(1)
	assert.True(t, once.Items[0].Purchased)
	assert.False(t, once.Items[1].Purchased)

	twice := once.TogglePurchased(1)
	assert.Equal(t, l.Items, twice.Items)
}

func TestListDoesNotMutateSnapshots(t *testing.T) {
	before := mustAdd(t, List{}, "Bread", "2")

	_ = before.TogglePurchased(1)
	_ = before.CompleteEdit(1, "Rye", "3")
	_ = before.Delete(1)

	assert.Equal(t, Item{ID: 1, Name: "Bread", Quantity: 2}, before.Items[0])
	assert.Equal(t, 1, before.Len())
}

func TestListBeginEdit_OneAtATime(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")
	l = mustAdd(t, l, "Eggs", "12")

	for _, id := range []int{1, 3, 2, 2, 1} {
		l = l.BeginEdit(id)
		editing := 0
		for _, it := range l.Items {
			if l.IsEditing(it.ID) {
				editing++
			}
		}
		assert.Equal(t, 1, editing)
		assert.Equal(t, id, l.EditingID)
	}

	it, ok := l.Editing()
	require.True(t, ok)
	assert.Equal(t, "Bread", it.Name)
}

func TestListBeginEdit_MissingID(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2").BeginEdit(1)
	assert.Equal(t, l, l.BeginEdit(42))
}

func TestListCompleteEdit(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")
	l = l.BeginEdit(2)

	l = l.CompleteEdit(2, "Oat milk", "3")
	assert.Equal(t, Item{ID: 2, Name: "Oat milk", Quantity: 3}, l.Items[1])
	assert.Zero(t, l.EditingID)
}

func TestListCompleteEdit_QuantityFallback(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Juice", "4")
	l = l.BeginEdit(2)

	l = l.CompleteEdit(2, "Milk", "abc")
	assert.Equal(t, "Milk", l.Items[1].Name)
	assert.Equal(t, 1, l.Items[1].Quantity)
	_, editing := l.Editing()
	assert.False(t, editing)
}

func TestListCompleteEdit_BlankNameStored(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2").BeginEdit(1)

	blank := l.CompleteEdit(1, "", "5")
	assert.Equal(t, Item{ID: 1, Name: "", Quantity: 5}, blank.Items[0])
	assert.Zero(t, blank.EditingID)

	spaces := l.CompleteEdit(1, "  ", "5")
	assert.Equal(t, "  ", spaces.Items[0].Name)
}

func TestListCancelEdit(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	edited := l.BeginEdit(1).CancelEdit()
	assert.Equal(t, l, edited)
}

func TestListDelete(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")
	l = mustAdd(t, l, "Eggs", "12")

	l = l.Delete(2)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, 1, l.Items[0].ID)
	assert.Equal(t, 3, l.Items[1].ID)
}

func TestListDelete_ClearsEditing(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")

	assert.Zero(t, l.BeginEdit(2).Delete(2).EditingID)
	assert.Equal(t, 2, l.BeginEdit(2).Delete(1).EditingID)
}

func TestListDeletedIDIsNoop(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")
	l = l.Delete(2)

	assert.Equal(t, l, l.Delete(2))
	assert.Equal(t, l, l.TogglePurchased(2))
	assert.Equal(t, l, l.BeginEdit(2))
	assert.Equal(t, l, l.CompleteEdit(2, "Cheese", "1"))
	_, ok := l.Find(2)
	assert.False(t, ok)
}

func TestListStats(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")
	l = mustAdd(t, l, "Eggs", "12")
	l = l.TogglePurchased(3)

	purchased, pending := l.Stats()
	assert.Equal(t, 1, purchased)
	assert.Equal(t, 2, pending)
}

func TestListScenario(t *testing.T) {
	l := mustAdd(t, List{}, "Bread", "2")
	l = mustAdd(t, l, "Milk", "1")
	l = l.TogglePurchased(1)
	l = l.Delete(2)

	assert.Equal(t, []Item{{ID: 1, Name: "Bread", Quantity: 2, Purchased: true}}, l.Items)
}
