package jsonstore_test

import (
	"os"
	"testing"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/infrastructure/persistence/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	repo := jsonstore.NewSessionRepository(newTestStore(t))

	require.NoError(t, repo.Save(ctx, entity.CaptureURLs([]string{"x", "y", "z"})))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, snap.URLs)
}

func TestSessionRepository_EmptySnapshotIsWritten(t *testing.T) {
	ctx := testCtx()
	store := newTestStore(t)
	repo := jsonstore.NewSessionRepository(store)

	require.NoError(t, repo.Save(ctx, entity.SessionSnapshot{}))

	data, err := os.ReadFile(store.Path(jsonstore.SessionDocument))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, snap.URLs)
	assert.Empty(t, snap.URLs)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := jsonstore.NewSessionRepository(newTestStore(t))

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Save(ctx, entity.CaptureURLs([]string{"x"})))
	require.NoError(t, repo.Delete(ctx))

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionRepository_EmptyOrNullURLIsCorrupt(t *testing.T) {
	for _, body := range []string{`["", "https://a.example"]`, `[null, "https://a.example"]`} {
		t.Run(body, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, store.EnsureDir())
			require.NoError(t, os.WriteFile(store.Path(jsonstore.SessionDocument), []byte(body), 0o644))

			snapshot, err := jsonstore.NewSessionRepository(store).Load(testCtx())

			require.ErrorIs(t, err, repository.ErrCorruptData)
			assert.Empty(t, snapshot.URLs)
		})
	}
}
