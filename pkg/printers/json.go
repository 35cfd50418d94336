package printers

import (
	"encoding/json"
	"io"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/item"
)

type jsonRow struct {
	Kind         string     `json:"kind"`
	StableID     string     `json:"stableId"`
	Key          string     `json:"key"`
	DayStartMs   int64      `json:"dayStartMs"`
	Category     string     `json:"category,omitempty"`
	DateBoundary bool       `json:"dateBoundary,omitempty"`
	Item         *item.Item `json:"item,omitempty"`
}

// JSON writes rows as an indented JSON array.
func JSON(w io.Writer, rows []dategroup.Row) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		jr := jsonRow{
			Kind:         r.Kind.String(),
			StableID:     r.StableID().String(),
			Key:          r.Key(),
			DayStartMs:   r.DayStartMs(),
			DateBoundary: r.DateBoundary,
		}
		if r.Kind != dategroup.KindDateHeader {
			jr.Category = r.Category.String()
		}
		if r.Kind == dategroup.KindContent {
			it := r.Item
			jr.Item = &it
		}
		out[i] = jr
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
