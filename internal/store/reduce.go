package store

import "github.com/Makepad-fr/tada/internal/model"

// Reduce applies in to items and returns the resulting collection.
// The input slice is never modified. Intents that name an id not present in
// items return an unchanged copy.
func Reduce(items []model.Item, in Intent) []model.Item {
	switch in.Kind {
	case KindAdd:
		out := make([]model.Item, len(items), len(items)+1)
		copy(out, items)
		return append(out, model.Item{ID: in.ID, Text: in.Text})

	case KindToggle:
		out := model.Clone(items)
		if i := indexOf(out, in.ID); i >= 0 {
			out[i].Completed = !out[i].Completed
		}
		return out

	case KindEdit:
		out := model.Clone(items)
		if i := indexOf(out, in.ID); i >= 0 {
			out[i].Text = in.Text
		}
		return out

	case KindDelete:
		out := make([]model.Item, 0, len(items))
		for _, it := range items {
			if it.ID != in.ID {
				out = append(out, it)
			}
		}
		return out
	}
	return model.Clone(items)
}

func indexOf(items []model.Item, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
