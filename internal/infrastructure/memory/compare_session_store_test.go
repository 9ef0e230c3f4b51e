package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/fitness-directory/api/internal/public/application"
	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration) (*CompareSessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := NewCompareSessionStore(ttl)
	store.now = clock.Now
	return store, clock
}

func TestCompareSessionStore_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(time.Hour)

	session, err := store.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, clock.Now().Add(time.Hour), session.ExpiresAt)

	snap, err := store.Update(ctx, session.ID, func(sel *domain.CompareSelection) {
		sel.Add(domain.Business{ID: 1})
	})
	require.NoError(t, err)
	assert.Len(t, snap.Items, 1)

	snap, err = store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Items[0].ID)
}

func TestCompareSessionStore_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(time.Hour)

	a, err := store.Create(ctx)
	require.NoError(t, err)
	b, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	_, err = store.Update(ctx, a.ID, func(sel *domain.CompareSelection) { sel.Add(domain.Business{ID: 1}) })
	require.NoError(t, err)

	snap, err := store.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestCompareSessionStore_UnknownSession(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(time.Hour)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, application.ErrCompareSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), application.ErrCompareSessionNotFound)
}

func TestCompareSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(10 * time.Minute)

	session, err := store.Create(ctx)
	require.NoError(t, err)

	clock.Advance(9 * time.Minute)
	_, err = store.Get(ctx, session.ID)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, application.ErrCompareSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestCompareSessionStore_EvictExpired(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(time.Minute)

	_, err := store.Create(ctx)
	require.NoError(t, err)
	clock.Advance(30 * time.Second)
	_, err = store.Create(ctx)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, store.EvictExpired())
	assert.Equal(t, 1, store.Len())
}

func TestCompareSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(time.Hour)

	session, err := store.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, application.ErrCompareSessionNotFound)
}

func TestCompareSessionStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(time.Hour)
	session, err := store.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, _ = store.Update(ctx, session.ID, func(sel *domain.CompareSelection) {
				sel.Add(domain.Business{ID: id})
			})
		}(i)
	}
	wg.Wait()

	snap, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, snap.Items, domain.MaxCompareItems)
}

func TestCompareSessionStore_RunJanitorStopsOnCancel(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, time.Millisecond, nil)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
