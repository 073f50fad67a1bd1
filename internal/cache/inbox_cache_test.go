package cache

import (
	"context"
	"testing"
	"time"

	dom "github.com/rezsam09/remuncandygramdatabase/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*InboxCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewInboxCache(rdb, time.Minute), mr
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)
	list, err := c.Get(context.Background(), "bob")
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestSetGetRoundtrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := []dom.Message{
		{ID: 2, Sender: "alice", Recipient: "bob", Alias: "A", Content: "again", Timestamp: time.Date(2025, 3, 1, 12, 1, 0, 0, time.UTC)},
		{ID: 1, Sender: "alice", Recipient: "bob", Alias: "A", Content: "hi", Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, c.Set(ctx, "bob", in))

	out, err := c.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEmptyInboxHitIsNotAMiss(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "bob", nil))
	out, err := c.Get(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, out, "cached empty inbox must stay distinguishable from a miss")
	assert.Empty(t, out)
}

func TestInvalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "bob", []dom.Message{{ID: 1, Recipient: "bob"}}))
	require.True(t, mr.Exists("inbox:bob"))

	require.NoError(t, c.Invalidate(ctx, "bob"))
	assert.False(t, mr.Exists("inbox:bob"))

	list, err := c.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "bob", []dom.Message{{ID: 1, Recipient: "bob"}}))
	mr.FastForward(2 * time.Minute)

	list, err := c.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, list)
}
