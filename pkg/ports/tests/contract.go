// Package tests holds reusable contract suites for ports implementations.
package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/aretw0/nfasim/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store ports.RunStore) {
	t.Helper()
	ctx := context.Background()
	runID := "contract-run-" + time.Now().Format("20060102150405")

	newRecord := func(id string) *domain.RunRecord {
		return &domain.RunRecord{
			ID:        id,
			Automaton: "ab",
			Input:     []string{"a", "b"},
			Verdict:   domain.VerdictAccept,
			Trace:     [][]string{{"a", "0", "1", "0"}, {"b", "0", "0", "1"}},
			States:    []string{"q0", "q1", "q2"},
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		rec := newRecord(runID)
		require.NoError(t, store.Save(ctx, rec), "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, rec.Automaton, loaded.Automaton)
		assert.Equal(t, rec.Input, loaded.Input)
		assert.Equal(t, rec.Verdict, loaded.Verdict)
		assert.Equal(t, rec.Trace, loaded.Trace)
		assert.Equal(t, rec.States, loaded.States)
		assert.True(t, rec.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		rec := newRecord(runID)
		rec.Verdict = domain.VerdictReject
		require.NoError(t, store.Save(ctx, rec))

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictReject, loaded.Verdict)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRecord(runID)))
		require.NoError(t, store.Delete(ctx, runID), "Delete should not return error")

		_, err := store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		assert.NoError(t, store.Delete(ctx, runID), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		require.NoError(t, store.Save(ctx, newRecord(id1)))
		require.NoError(t, store.Save(ctx, newRecord(id2)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

// DefinitionLoaderContract verifies that a loader serves exactly the definitions in want,
// keyed by ID.
func DefinitionLoaderContract(t *testing.T, loader ports.DefinitionLoader, want map[string]domain.Definition) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		for id, expected := range want {
			def, err := loader.Load(ctx, id)
			require.NoError(t, err, "loading %s", id)
			assert.Equal(t, expected.States, def.States, "states of %s", id)
			assert.Equal(t, expected.Alphabet, def.Alphabet, "alphabet of %s", id)
			assert.Equal(t, expected.Start, def.Start, "start of %s", id)
			assert.Equal(t, expected.Accept, def.Accept, "accept of %s", id)
			assert.Equal(t, expected.Transitions, def.Transitions, "transitions of %s", id)
			assert.NotEmpty(t, def.Name, "loaders always name the definition")
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-automaton")
		assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
	})

	t.Run("List", func(t *testing.T) {
		ids, err := loader.List(ctx)
		require.NoError(t, err)
		assert.Len(t, ids, len(want), fmt.Sprintf("listed %v", ids))
		for id := range want {
			assert.Contains(t, ids, id)
		}
		assert.IsIncreasing(t, ids)
	})
}
