// Package carousel implements the coverflow carousel shown on the
// certificates section: a ring of cards with one active index, 3D
// placement derived from circular distance, and a drag tracker that
// turns pointer gestures into next/prev transitions.
package carousel

import (
	"errors"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
)

// ErrEmpty is returned by New when no certificates are supplied. The
// active index invariant cannot hold over an empty ring, so the caller
// decides whether to skip rendering the section entirely.
var ErrEmpty = errors.New("carousel: certificate list is empty")

// Ring holds the carousel state: an immutable certificate list and the
// index of the currently centered card. The index always stays within
// [0, len) and wraps on Next/Prev.
type Ring struct {
	certs  []content.Certificate
	active int
}

// New creates a Ring over the given certificates with the first card
// active.
func New(certs []content.Certificate) (*Ring, error) {
	if len(certs) == 0 {
		return nil, ErrEmpty
	}
	return &Ring{certs: certs}, nil
}

// Len returns the number of cards in the ring.
func (r *Ring) Len() int { return len(r.certs) }

// Active returns the index of the centered card.
func (r *Ring) Active() int { return r.active }

// ActiveCert returns the currently centered certificate.
func (r *Ring) ActiveCert() content.Certificate { return r.certs[r.active] }

// Certificates returns the full card list in ring order.
func (r *Ring) Certificates() []content.Certificate { return r.certs }

// Next advances the active index by one, wrapping past the end.
func (r *Ring) Next() {
	r.active = (r.active + 1) % len(r.certs)
}

// Prev moves the active index back by one, wrapping past the start.
func (r *Ring) Prev() {
	r.active = (r.active - 1 + len(r.certs)) % len(r.certs)
}

// JumpTo centers the card at index i. Out-of-range indexes are ignored,
// as is any jump while drag reports a just-finished gesture: a click
// released at the end of a drag must not also select a card.
func (r *Ring) JumpTo(i int, drag *Drag) {
	if i < 0 || i >= len(r.certs) {
		return
	}
	if drag != nil && drag.WasDrag() {
		return
	}
	r.active = i
}
