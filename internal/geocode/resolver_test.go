package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

type fakeRemote struct {
	calls    int
	location domain.PostalLocation
	found    bool
	err      error
}

func (f *fakeRemote) Lookup(_ context.Context, _ string) (domain.PostalLocation, bool, error) {
	f.calls++
	return f.location, f.found, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver(remote RemoteLookup) *Resolver {
	return NewResolver(remote, NewMapStore(), observability.NewMetricsForTesting(), discardLogger())
}

func TestResolve_StaticTable(t *testing.T) {
	remote := &fakeRemote{}
	r := newTestResolver(remote)

	loc, ok := r.Resolve(context.Background(), "00100")
	require.True(t, ok)

	assert.Equal(t, 60.1699, loc.Lat)
	assert.Equal(t, 24.9384, loc.Lon)
	assert.Equal(t, "Helsinki", loc.City)
	assert.Equal(t, 0, remote.calls, "static hits must not touch the network")
}

func TestResolve_RemoteFallback(t *testing.T) {
	remote := &fakeRemote{
		location: domain.PostalLocation{PostalCode: "99999", Lat: 65.0, Lon: 25.5, City: "Testila"},
		found:    true,
	}
	r := newTestResolver(remote)

	loc, ok := r.Resolve(context.Background(), "99999")
	require.True(t, ok)
	assert.Equal(t, "Testila", loc.City)
	assert.Equal(t, 1, remote.calls)
}

func TestResolve_Idempotent(t *testing.T) {
	remote := &fakeRemote{
		location: domain.PostalLocation{PostalCode: "99999", Lat: 65.0, Lon: 25.5, City: "Testila"},
		found:    true,
	}
	r := newTestResolver(remote)

	first, ok1 := r.Resolve(context.Background(), "99999")
	second, ok2 := r.Resolve(context.Background(), "99999")

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, remote.calls, "second call must hit the cache")
}

func TestResolve_NegativeCaching(t *testing.T) {
	remote := &fakeRemote{found: false}
	r := newTestResolver(remote)

	_, ok := r.Resolve(context.Background(), "99998")
	assert.False(t, ok)

	_, ok = r.Resolve(context.Background(), "99998")
	assert.False(t, ok)
	assert.Equal(t, 1, remote.calls, "cached miss must short-circuit")
}

func TestResolve_RemoteErrorDegradesToNotFound(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection refused")}
	r := newTestResolver(remote)

	_, ok := r.Resolve(context.Background(), "99997")
	assert.False(t, ok)

	// Errors are not cached; the upstream may recover.
	_, ok = r.Resolve(context.Background(), "99997")
	assert.False(t, ok)
	assert.Equal(t, 2, remote.calls)
}

func TestResolve_NilRemote(t *testing.T) {
	r := newTestResolver(nil)

	_, ok := r.Resolve(context.Background(), "00100")
	assert.True(t, ok, "static table works without a remote")

	_, ok = r.Resolve(context.Background(), "99996")
	assert.False(t, ok)
}

func TestMapStore_Reset(t *testing.T) {
	s := NewMapStore()
	s.Put("70100", Entry{Found: true})

	_, ok := s.Get("70100")
	require.True(t, ok)

	s.Reset()
	_, ok = s.Get("70100")
	assert.False(t, ok)
}
