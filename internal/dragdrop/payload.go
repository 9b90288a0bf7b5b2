package dragdrop

import "github.com/alexisbeaulieu97/formbuilder/internal/element"

// Payload is the loosely typed transfer channel attached to a drag operation.
// Values are plain strings keyed by format name, the same shape a host's
// native data transfer offers.
type Payload struct {
	data map[string]string
}

// NewPayload returns an empty payload.
func NewPayload() Payload {
	return Payload{data: make(map[string]string)}
}

// RawPayload builds a payload carrying token under the element transfer key,
// without checking that token names a known type.
func RawPayload(token string) Payload {
	p := NewPayload()
	p.Set(element.TransferKey, token)
	return p
}

// Set stores value under key.
func (p *Payload) Set(key, value string) {
	if p.data == nil {
		p.data = make(map[string]string)
	}
	p.data[key] = value
}

// Get returns the value stored under key, or "" when absent.
func (p Payload) Get(key string) string {
	return p.data[key]
}

// Empty reports whether nothing has been attached.
func (p Payload) Empty() bool {
	return len(p.data) == 0
}
