package asset_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gear-garage-backend/internal/asset"
	apperrors "gear-garage-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

// fakeTransport lets tests control when and how a fetch resolves.
type fakeTransport struct {
	data        []byte
	contentType string
	err         error
	// cancelBeforeReturn cancels the caller's context from inside Get, so
	// the fetch resolves after the owner has already abandoned it.
	cancelBeforeReturn context.CancelFunc
}

func (t *fakeTransport) Get(ctx context.Context, key string) ([]byte, string, error) {
	if t.cancelBeforeReturn != nil {
		t.cancelBeforeReturn()
	}
	if t.err != nil {
		return nil, "", t.err
	}
	return t.data, t.contentType, nil
}

func TestFetch_Success(t *testing.T) {
	cache := asset.NewCache(&fakeTransport{data: []byte("png-bytes"), contentType: "image/png"})

	handle, err := cache.Fetch(context.Background(), "catalog/frame.png", true)

	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), handle.Bytes())
	assert.Equal(t, "image/png", handle.ContentType())
	assert.Equal(t, "catalog/frame.png", handle.Key())
	assert.Equal(t, int64(1), cache.LiveHandles())

	handle.Revoke()
	assert.Equal(t, int64(0), cache.LiveHandles())
}

func TestFetch_CheapNegativeWithoutIO(t *testing.T) {
	transport := &fakeTransport{err: errors.New("transport must not be called")}
	cache := asset.NewCache(transport)

	handle, err := cache.Fetch(context.Background(), "catalog/frame.png", false)

	assert.Nil(t, handle)
	assert.True(t, apperrors.IsNotFound(err))

	handle, err = cache.Fetch(context.Background(), "", true)
	assert.Nil(t, handle)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFetch_TransportFailureDegradesToNotFound(t *testing.T) {
	cache := asset.NewCache(&fakeTransport{err: errors.New("403 forbidden")})

	handle, err := cache.Fetch(context.Background(), "catalog/frame.png", true)

	assert.Nil(t, handle)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, int64(0), cache.LiveHandles())
}

func TestFetch_AbandonThenResolveRevokesHandle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cache := asset.NewCache(&fakeTransport{
		data:               []byte("late"),
		contentType:        "image/jpeg",
		cancelBeforeReturn: cancel,
	})

	handle, err := cache.Fetch(ctx, "catalog/motor.jpg", true)

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, context.Canceled)
	// The payload materialized after abandonment must already be revoked.
	assert.Equal(t, int64(0), cache.LiveHandles())
}

func TestFetch_CancelledDuringTransportReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cache := asset.NewCache(&fakeTransport{
		err:                context.Canceled,
		cancelBeforeReturn: cancel,
	})

	handle, err := cache.Fetch(ctx, "catalog/motor.jpg", true)

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRevoke_Idempotent(t *testing.T) {
	cache := asset.NewCache(&fakeTransport{data: []byte("x"), contentType: "image/png"})

	handle, err := cache.Fetch(context.Background(), "k", true)
	assert.NoError(t, err)

	handle.Revoke()
	handle.Revoke()
	handle.Revoke()

	assert.Nil(t, handle.Bytes())
	assert.Equal(t, int64(0), cache.LiveHandles())
}

func TestFetch_NoDeduplication(t *testing.T) {
	cache := asset.NewCache(&fakeTransport{data: []byte("x"), contentType: "image/png"})

	first, err := cache.Fetch(context.Background(), "k", true)
	assert.NoError(t, err)
	second, err := cache.Fetch(context.Background(), "k", true)
	assert.NoError(t, err)

	assert.Equal(t, int64(2), cache.LiveHandles())

	// Each owner revokes independently.
	first.Revoke()
	assert.Equal(t, int64(1), cache.LiveHandles())
	assert.Equal(t, []byte("x"), second.Bytes())
	second.Revoke()
	assert.Equal(t, int64(0), cache.LiveHandles())
}

func TestHTTPTransport_AuthorizationHeaderNotInURL(t *testing.T) {
	var gotAuth string
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("payload"))
	}))
	defer upstream.Close()

	transport := asset.NewHTTPTransport(upstream.URL, "secret-token")
	data, contentType, err := transport.Get(context.Background(), "frame.png")

	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.NotContains(t, gotPath, "secret-token")
}

func TestHTTPTransport_Non200IsError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer upstream.Close()

	transport := asset.NewHTTPTransport(upstream.URL, "secret-token")
	_, _, err := transport.Get(context.Background(), "frame.png")

	assert.Error(t, err)
}

func TestHTTPTransport_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer upstream.Close()

	transport := asset.NewHTTPTransport(upstream.URL, "secret-token")
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, _, err := transport.Get(ctx, "frame.png")
	assert.Error(t, err)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream request never started")
	}
}
