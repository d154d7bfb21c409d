package cart

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/shopfront/internal/model"
)

func encode(lines []model.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []model.CartLine{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// decode parses a persisted snapshot and restores the one-line-per-id
// invariant: lines with quantity < 1 are dropped and repeated ids are merged
// into the first occurrence.
func decode(b []byte) ([]model.CartLine, error) {
	var raw []model.CartLine
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	out := make([]model.CartLine, 0, len(raw))
	seen := make(map[int]int, len(raw))
	for _, l := range raw {
		if l.Quantity < 1 {
			continue
		}
		if i, ok := seen[l.ID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		seen[l.ID] = len(out)
		out = append(out, l)
	}
	return out, nil
}
