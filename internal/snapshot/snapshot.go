package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/tada/internal/model"
)

// JSON view of a collection at one point in time. Output only: nothing in
// tada reads a snapshot back.

// Snapshot is the document written by Write.
type Snapshot struct {
	Items   []model.Item `json:"items"`
	Done    int          `json:"done"`
	Pending int          `json:"pending"`
}

// Of builds a snapshot of items.
func Of(items []model.Item) Snapshot {
	d, p := model.Stats(items)
	if items == nil {
		items = []model.Item{}
	}
	return Snapshot{Items: items, Done: d, Pending: p}
}

// Write encodes a snapshot of items to w, indented, with a trailing newline.
func Write(w io.Writer, items []model.Item) error {
	b, err := json.MarshalIndent(Of(items), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
