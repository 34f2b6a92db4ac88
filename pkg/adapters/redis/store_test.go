package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/nfasim/pkg/adapters/redis"
	"github.com/aretw0/nfasim/pkg/domain"
	contract "github.com/aretw0/nfasim/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newMiniredis(t)
	contract.RunStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newMiniredis(t)

	clock := time.Unix(1_700_000_000, 0)
	store := redis.NewFromClient(client,
		redis.WithTTL(time.Second),
		redis.WithClock(func() time.Time { return clock }),
	)
	ctx := context.Background()
	runID := "run-ttl"

	err := store.Save(ctx, &domain.RunRecord{ID: runID, Automaton: "ab", Verdict: domain.VerdictAccept})
	require.NoError(t, err)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, runID)

	// Expire the key in redis and move the index clock past the score.
	mr.FastForward(2 * time.Second)
	clock = clock.Add(2 * time.Second)

	_, err = store.Load(ctx, runID)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newMiniredis(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()
	runID := "my-run"

	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: runID}))

	assert.True(t, mr.Exists("custom:app:data:my-run"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, runID)
}

func TestRedisStore_IndexIDDoesNotClobberIndex(t *testing.T) {
	mr, client := newMiniredis(t)

	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "index", Verdict: domain.VerdictAccept}))
	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "other"}))

	keyType, err := client.Type(ctx, "nfasim:run:index").Result()
	require.NoError(t, err)
	assert.Equal(t, "zset", keyType)
	assert.True(t, mr.Exists("nfasim:run:data:index"))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index", "other"}, ids)

	rec, err := store.Load(ctx, "index")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictAccept, rec.Verdict)
}

func TestRedisStore_NoTTLNeverPruned(t *testing.T) {
	_, client := newMiniredis(t)

	clock := time.Now()
	store := redis.NewFromClient(client, redis.WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "forever"}))
	clock = clock.Add(24 * 365 * time.Hour)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"forever"}, ids)
}
