package model

import (
	"slices"
	"strings"
)

// List is the whole shopping list state. Methods never modify the receiver;
// each change returns a new List with its own Items slice, so earlier
// snapshots stay valid.
type List struct {
	Items     []Item `json:"items"`
	EditingID int    `json:"editing_id,omitempty"` // 0 when nothing is being edited
	LastID    int    `json:"last_id"`              // highest ID ever issued
}

// Add appends a new item, keeping name as typed. A blank name is ignored.
// Invalid quantity text leaves the list unchanged and returns an error
// wrapping ErrInvalidQuantity.
func (l List) Add(name, quantityText string) (List, error) {
	if strings.TrimSpace(name) == "" {
		return l, nil
	}
	q, err := ParseQuantity(quantityText)
	if err != nil {
		return l, err
	}
	next := l.clone()
	next.LastID++
	next.Items = append(next.Items, Item{ID: next.LastID, Name: name, Quantity: q})
	return next, nil
}

// BeginEdit puts the item with id into editing mode. Any other item being
// edited leaves editing mode.
func (l List) BeginEdit(id int) List {
	if l.index(id) < 0 {
		return l
	}
	next := l.clone()
	next.EditingID = id
	return next
}

// CompleteEdit saves name and quantity on the item with id and ends editing.
// Unparseable quantity text falls back to DefaultQuantity.
func (l List) CompleteEdit(id int, name, quantityText string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	next := l.clone()
	next.EditingID = 0
	next.Items[i].Name = name
	next.Items[i].Quantity = quantityOr(quantityText, DefaultQuantity)
	return next
}

// CancelEdit leaves editing mode without changing any item.
func (l List) CancelEdit() List {
	if l.EditingID == 0 {
		return l
	}
	next := l.clone()
	next.EditingID = 0
	return next
}

// TogglePurchased flips the purchased flag of the item with id.
func (l List) TogglePurchased(id int) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	next := l.clone()
	next.Items[i].Purchased = !next.Items[i].Purchased
	return next
}

// Delete removes the item with id. The remaining items keep their IDs and order.
func (l List) Delete(id int) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	next := l.clone()
	next.Items = slices.Delete(next.Items, i, i+1)
	if next.EditingID == id {
		next.EditingID = 0
	}
	return next
}

// Find returns the item with id.
func (l List) Find(id int) (Item, bool) {
	i := l.index(id)
	if i < 0 {
		return Item{}, false
	}
	return l.Items[i], true
}

// Editing returns the item currently in editing mode, if any.
func (l List) Editing() (Item, bool) {
	if l.EditingID == 0 {
		return Item{}, false
	}
	return l.Find(l.EditingID)
}

func (l List) IsEditing(id int) bool { return id != 0 && l.EditingID == id }

func (l List) Len() int { return len(l.Items) }

// Stats counts purchased and pending items.
func (l List) Stats() (purchased, pending int) {
	for _, it := range l.Items {
		if it.Purchased {
			purchased++
		} else {
			pending++
		}
	}
	return
}

func (l List) index(id int) int {
	return slices.IndexFunc(l.Items, func(it Item) bool { return it.ID == id })
}

func (l List) clone() List {
	l.Items = slices.Clone(l.Items)
	return l
}
