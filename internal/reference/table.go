package reference

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Entry is implemented by every table row
type Entry interface {
	EntryID() string
	EntryName() string
}

// Ref is the identity every table entry embeds
type Ref struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// EntryID returns the stable id
func (r Ref) EntryID() string { return r.ID }

// EntryName returns the display name
func (r Ref) EntryName() string { return r.Name }

// Table is an immutable collection of entries indexed by id and name
type Table[T Entry] struct {
	name    string
	entries []T
	byID    map[string]int
	byName  map[string]int
}

// Resolution is the outcome of resolving a list of ids against a table
type Resolution[T Entry] struct {
	Found      []T
	Unresolved []string
}

// NewTable indexes entries. Every entry needs an id and a name, both unique within the table.
func NewTable[T Entry](name string, entries []T) (*Table[T], error) {
	t := &Table[T]{
		name:    name,
		entries: entries,
		byID:    make(map[string]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	vb := errors.NewValidationBuilder()
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", name, i)
		id, entryName := e.EntryID(), e.EntryName()

		if id == "" {
			vb.Field(field+".id", "is required")
		} else if prev, dup := t.byID[id]; dup {
			vb.Fieldf(field+".id", "duplicate id %q (first at %d)", id, prev)
		} else {
			t.byID[id] = i
		}

		if entryName == "" {
			vb.Field(field+".name", "is required")
		} else if prev, dup := t.byName[entryName]; dup {
			vb.Fieldf(field+".name", "duplicate name %q (first at %d)", entryName, prev)
		} else {
			t.byName[entryName] = i
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return t, nil
}

// Name is the table name used in load errors
func (t *Table[T]) Name() string { return t.name }

// Get looks up an entry by id
func (t *Table[T]) Get(id string) (T, bool) {
	i, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.entries[i], true
}

// Has reports whether id is in the table
func (t *Table[T]) Has(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// FindByName looks up an entry by its exact, case-sensitive display name
func (t *Table[T]) FindByName(name string) (T, bool) {
	i, ok := t.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return t.entries[i], true
}

// All returns the entries in table order. The slice is a copy.
func (t *Table[T]) All() []T {
	out := make([]T, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len is the number of entries
func (t *Table[T]) Len() int { return len(t.entries) }

// Resolve looks up every id, keeping the order of ids. Unknown ids are reported, not dropped.
func (t *Table[T]) Resolve(ids []string) Resolution[T] {
	var res Resolution[T]
	for _, id := range ids {
		if e, ok := t.Get(id); ok {
			res.Found = append(res.Found, e)
			continue
		}
		res.Unresolved = append(res.Unresolved, id)
	}
	return res
}
