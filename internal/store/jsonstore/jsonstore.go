package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/shoplist/internal/model"
)

// JSON action scripts and list snapshots. Scripts are read-only inputs;
// snapshots are written to whatever writer the caller hands in.

// ErrNoScript is returned when the script file does not exist.
var ErrNoScript = errors.New("script not found")

// action mirrors model.Action but accepts the quantity as a string or number.
type action struct {
	Op       model.Op     `json:"op"`
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Quantity quantityText `json:"quantity"`
}

type quantityText string

func (q *quantityText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = quantityText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("quantity must be a string or number: %w", err)
	}
	*q = quantityText(n.String())
	return nil
}

// LoadActions reads a JSON array of actions from path.
func LoadActions(path string) ([]model.Action, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoScript, path)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return DecodeActions(bytes.NewReader(b))
}

// DecodeActions decodes a JSON array of actions from r.
func DecodeActions(r io.Reader) ([]model.Action, error) {
	var raw []action
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	out := make([]model.Action, 0, len(raw))
	for i, a := range raw {
		if a.Op == "" {
			return nil, fmt.Errorf("action %d: missing op", i+1)
		}
		out = append(out, model.Action{
			Op:       a.Op,
			ID:       a.ID,
			Name:     a.Name,
			Quantity: string(a.Quantity),
		})
	}
	return out, nil
}

// WriteSnapshot writes l as indented JSON.
func WriteSnapshot(w io.Writer, l model.List) error {
	if l.Items == nil {
		l.Items = []model.Item{}
	}
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
