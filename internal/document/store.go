// Package document holds the ordered sequence of elements placed on the canvas.
package document

import (
	"strconv"

	"github.com/alexisbeaulieu97/formbuilder/internal/element"
)

// ID identifies a placed element within one store. IDs come from a monotonic
// counter and are never reused, so two appends can never collide.
type ID uint64

// String renders the id in decimal.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID decodes the decimal form produced by String.
func ParseID(s string) (ID, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return ID(v), true
}

// PlacedElement is one entry of the form document.
type PlacedElement struct {
	ID   ID
	Type element.Type
}

// Store is the form document: insertion order is display order. It is owned
// by a single session and is not safe for concurrent use.
type Store struct {
	elements []PlacedElement
	nextID   ID
}

// NewStore creates an empty document.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append places a new element of type t at the end of the document.
func (s *Store) Append(t element.Type) PlacedElement {
	el := PlacedElement{ID: s.nextID, Type: t}
	s.nextID++
	s.elements = append(s.elements, el)
	return el
}

// Remove deletes the element with the given id. Removing an absent id is a
// no-op and reports false.
func (s *Store) Remove(id ID) bool {
	for i, el := range s.elements {
		if el.ID != id {
			continue
		}
		s.elements = append(s.elements[:i:i], s.elements[i+1:]...)
		return true
	}
	return false
}

// List returns a copy of the document in display order.
func (s *Store) List() []PlacedElement {
	out := make([]PlacedElement, len(s.elements))
	copy(out, s.elements)
	return out
}

// Get returns the element with the given id.
func (s *Store) Get(id ID) (PlacedElement, bool) {
	for _, el := range s.elements {
		if el.ID == id {
			return el, true
		}
	}
	return PlacedElement{}, false
}

// Len returns the number of placed elements.
func (s *Store) Len() int {
	return len(s.elements)
}
