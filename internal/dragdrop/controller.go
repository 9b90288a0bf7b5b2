// Package dragdrop mediates the palette-to-canvas handshake: a drag start
// encodes an element type into a payload, a drop decodes it back and appends
// to the document.
package dragdrop

import (
	"github.com/alexisbeaulieu97/formbuilder/internal/document"
	"github.com/alexisbeaulieu97/formbuilder/internal/element"
	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
)

// Controller turns drag payloads into document entries.
type Controller struct {
	store *document.Store
	log   *logger.Logger
}

// NewController binds a controller to the document it appends to.
func NewController(store *document.Store, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{store: store, log: log.WithFields(map[string]any{"component": "dragdrop"})}
}

// DragStart encodes t as the payload of a new drag operation.
func (c *Controller) DragStart(t element.Type) Payload {
	p := NewPayload()
	p.Set(element.TransferKey, t.String())
	c.log.Debug("drag started", "element_type", t.String())
	return p
}

// DragOver accepts every drag hovering the canvas. Hosts must call it before
// delivering a drop; a rejected drag never produces one.
func (c *Controller) DragOver(Payload) bool {
	return true
}

// Drop decodes the payload and appends the element it names. Payloads that do
// not carry a known element token are discarded without touching the document.
func (c *Controller) Drop(p Payload) (document.PlacedElement, bool) {
	if p.Empty() {
		c.log.Warn("drop without payload")
		return document.PlacedElement{}, false
	}
	token := p.Get(element.TransferKey)
	t, err := element.ParseType(token)
	if err != nil {
		c.log.Debug("drop ignored", "reason", err.Error())
		return document.PlacedElement{}, false
	}

	placed := c.store.Append(t)
	c.log.Info("element placed", "element_type", t.String(), "element_id", placed.ID.String())
	return placed, true
}
