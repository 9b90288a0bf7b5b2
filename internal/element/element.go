// Package element defines the closed set of placeable form element types and
// the static catalog describing how each one is presented.
package element

import (
	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

// TransferKey is the drag payload key under which an element token travels.
const TransferKey = "elementType"

// Type enumerates the element kinds a user can place on the canvas. The zero
// value is not a valid type.
type Type int

const (
	FullName Type = iota + 1
	Email
	Phone
)

var tokens = map[Type]string{
	FullName: "fullName",
	Email:    "email",
	Phone:    "phone",
}

// Types returns every element type in palette order.
func Types() []Type {
	return []Type{FullName, Email, Phone}
}

// String returns the wire token for the type.
func (t Type) String() string {
	if tok, ok := tokens[t]; ok {
		return tok
	}
	return "unknown"
}

// Valid reports whether t is one of the enumerated types.
func (t Type) Valid() bool {
	_, ok := tokens[t]
	return ok
}

// ParseType decodes a wire token. Matching is exact; anything else yields a
// *errors.DecodeError.
func ParseType(token string) (Type, error) {
	for t, tok := range tokens {
		if tok == token {
			return t, nil
		}
	}
	return 0, fberrors.NewDecodeError(TransferKey, token)
}
