package model

import (
	"errors"
	"fmt"
)

// Op names a change to the list.
type Op string

const (
	OpAdd          Op = "add"
	OpBeginEdit    Op = "begin_edit"
	OpCompleteEdit Op = "complete_edit"
	OpCancelEdit   Op = "cancel_edit"
	OpToggle       Op = "toggle"
	OpDelete       Op = "delete"
)

var ErrUnknownOp = errors.New("unknown op")

// Action is a single requested change. Which fields matter depends on Op:
// add uses Name and Quantity, complete_edit uses all three, the others use ID.
type Action struct {
	Op       Op     `json:"op"`
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity string `json:"quantity,omitempty"`
}

func Add(name, quantity string) Action { return Action{Op: OpAdd, Name: name, Quantity: quantity} }
func BeginEdit(id int) Action          { return Action{Op: OpBeginEdit, ID: id} }
func CompleteEdit(id int, name, quantity string) Action {
	return Action{Op: OpCompleteEdit, ID: id, Name: name, Quantity: quantity}
}
func CancelEdit() Action            { return Action{Op: OpCancelEdit} }
func TogglePurchased(id int) Action { return Action{Op: OpToggle, ID: id} }
func Delete(id int) Action          { return Action{Op: OpDelete, ID: id} }

// Reduce applies a to l and returns the resulting list.
func Reduce(l List, a Action) (List, error) {
	switch a.Op {
	case OpAdd:
		next, err := l.Add(a.Name, a.Quantity)
		if err != nil {
			return l, fmt.Errorf("add: %w", err)
		}
		return next, nil
	case OpBeginEdit:
		return l.BeginEdit(a.ID), nil
	case OpCompleteEdit:
		return l.CompleteEdit(a.ID, a.Name, a.Quantity), nil
	case OpCancelEdit:
		return l.CancelEdit(), nil
	case OpToggle:
		return l.TogglePurchased(a.ID), nil
	case OpDelete:
		return l.Delete(a.ID), nil
	}
	return l, fmt.Errorf("%w: %q", ErrUnknownOp, a.Op)
}
