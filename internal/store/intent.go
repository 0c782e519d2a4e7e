package store

import "fmt"

// Kind names one of the four mutations the store understands.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindToggle
	KindDelete
	KindEdit
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindToggle:
		return "toggle"
	case KindDelete:
		return "delete"
	case KindEdit:
		return "edit"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Intent is a mutation request applied to the collection.
// ID is ignored by the caller for Add; the store assigns it on dispatch.
type Intent struct {
	Kind Kind
	ID   int64
	Text string
}

func Add(text string) Intent            { return Intent{Kind: KindAdd, Text: text} }
func Toggle(id int64) Intent            { return Intent{Kind: KindToggle, ID: id} }
func Delete(id int64) Intent            { return Intent{Kind: KindDelete, ID: id} }
func Edit(id int64, text string) Intent { return Intent{Kind: KindEdit, ID: id, Text: text} }

func (in Intent) String() string {
	switch in.Kind {
	case KindAdd:
		return fmt.Sprintf("add %q", in.Text)
	case KindEdit:
		return fmt.Sprintf("edit %d %q", in.ID, in.Text)
	default:
		return fmt.Sprintf("%s %d", in.Kind, in.ID)
	}
}
