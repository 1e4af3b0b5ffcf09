package asset

import (
	"context"
	"sync/atomic"

	apperrors "gear-garage-backend/internal/errors"
	"gear-garage-backend/internal/logger"
)

// Transport retrieves an asset's raw bytes using ambient credentials.
type Transport interface {
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
}

type disabledTransport struct{}

func (disabledTransport) Get(ctx context.Context, key string) ([]byte, string, error) {
	return nil, "", apperrors.ErrAssetNotFound
}

// Disabled returns a transport that fails every fetch. Used when the store
// is unreachable at startup so image requests degrade instead of panicking.
func Disabled() Transport {
	return disabledTransport{}
}

// Cache materializes assets into revocable handles. It does not deduplicate
// concurrent fetches for the same key: each caller owns its handle and
// revokes it independently, so duplication is acceptable, not a bug.
type Cache struct {
	transport Transport
	live      atomic.Int64
}

// NewCache creates a cache over the given transport.
func NewCache(transport Transport) *Cache {
	return &Cache{transport: transport}
}

// Fetch resolves an asset identifier to a handle.
//
// hasAsset=false is the cheap negative: NotFound without any I/O. Transport
// and authorization failures also degrade to NotFound, since a missing image
// is not fatal to viewing a build; the caller may re-invoke on identifier
// change but the cache never retries on its own.
//
// If the caller's context is already done when the transport resolves
// successfully, the freshly created handle is revoked immediately and the
// context error is returned: the payload must never outlive its owner.
func (c *Cache) Fetch(ctx context.Context, key string, hasAsset bool) (*Handle, error) {
	if !hasAsset || key == "" {
		return nil, apperrors.ErrAssetNotFound
	}

	log := logger.WithContext(ctx).WithField("asset_key", key)

	data, contentType, err := c.transport.Get(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.WithError(err).Warn("Asset fetch failed, degrading to not found")
		return nil, apperrors.ErrAssetNotFound
	}

	handle := newHandle(key, data, contentType, &c.live)

	if ctx.Err() != nil {
		// Owner abandoned the fetch before it resolved.
		handle.Revoke()
		return nil, ctx.Err()
	}

	log.WithFields(map[string]interface{}{
		"size":         len(data),
		"content_type": contentType,
	}).Debug("Asset materialized")
	return handle, nil
}

// LiveHandles returns the number of handles materialized and not yet
// revoked.
func (c *Cache) LiveHandles() int64 {
	return c.live.Load()
}
