// Package asset resolves opaque asset identifiers to locally-owned,
// revocable binary handles. Credentials live in the transport, never in the
// asset's address.
package asset

import (
	"sync"
	"sync/atomic"
)

// Handle is an exclusively-owned, materialized binary resource tied to one
// asset identifier. The owner must call Revoke exactly when it is done with
// the payload; Revoke is safe to call more than once.
type Handle struct {
	key         string
	data        []byte
	contentType string

	revokeOnce sync.Once
	live       *atomic.Int64
}

func newHandle(key string, data []byte, contentType string, live *atomic.Int64) *Handle {
	live.Add(1)
	return &Handle{
		key:         key,
		data:        data,
		contentType: contentType,
		live:        live,
	}
}

// Key returns the asset identifier this handle was materialized from.
func (h *Handle) Key() string {
	return h.key
}

// Bytes returns the binary payload. Nil after revocation.
func (h *Handle) Bytes() []byte {
	return h.data
}

// ContentType returns the payload's content type.
func (h *Handle) ContentType() string {
	return h.contentType
}

// Revoke releases the payload. Idempotent: the second and later calls are
// no-ops, never errors.
func (h *Handle) Revoke() {
	h.revokeOnce.Do(func() {
		h.data = nil
		h.live.Add(-1)
	})
}
