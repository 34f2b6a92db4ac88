package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/nfasim/pkg/adapters/memory"
	"github.com/aretw0/nfasim/pkg/domain"
	contract "github.com/aretw0/nfasim/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	contract.RunStoreContract(t, memory.NewStore())
}

func TestMemoryStore_CopyOnReadWrite(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	rec := &domain.RunRecord{ID: "r1", Input: []string{"a"}, Trace: [][]string{{"a", "1"}}}
	require.NoError(t, store.Save(ctx, rec))
	rec.Input[0] = "changed"

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, loaded.Input)

	loaded.Trace[0][1] = "0"
	again, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "1", again.Trace[0][1])
}
