package model

import (
	"errors"
	"fmt"
	"strconv"
)

// Item is the domain model for a shopping list entry.
type Item struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"purchased"`
}

// ErrInvalidQuantity is returned when quantity text is not a positive integer.
var ErrInvalidQuantity = errors.New("invalid quantity")

// DefaultQuantity is used when an edited quantity cannot be parsed.
const DefaultQuantity = 1

// ParseQuantity parses user-entered quantity text. The text must be a
// base-10 integer of at least 1 with no surrounding whitespace.
func ParseQuantity(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, text)
	}
	return n, nil
}

// quantityOr parses text and falls back to def on failure.
func quantityOr(text string, def int) int {
	n, err := ParseQuantity(text)
	if err != nil {
		return def
	}
	return n
}
