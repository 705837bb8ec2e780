package store

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/models"
)

func newTestAssetStorage(t *testing.T) AssetStorage {
	t.Helper()
	s, err := NewFileAssetStorage(config.Assets{Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestAssetStorage_SaveOpenRoundTrip(t *testing.T) {
	s := newTestAssetStorage(t)
	ctx := context.Background()

	content := []byte("%PDF-1.4 test payload")
	require.NoError(t, s.Save(ctx, models.CategoryDocument, "abc123.pdf", content))

	rc, err := s.Open(ctx, models.CategoryDocument, "abc123.pdf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestAssetStorage_AreasAreSeparate(t *testing.T) {
	s := newTestAssetStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.CategoryDocument, "only-here.png", []byte("x")))

	ok, err := s.Exists(ctx, models.CategoryDocument, "only-here.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, models.CategoryResidenceProof, "only-here.png")
	require.NoError(t, err)
	assert.False(t, ok, "a name saved in one category must not exist in the other")
}

func TestAssetStorage_OpenMissingFile(t *testing.T) {
	s := newTestAssetStorage(t)

	_, err := s.Open(context.Background(), models.CategoryDocument, "missing.png")
	assert.ErrorIs(t, err, ErrAssetFileNotFound)
}

func TestAssetStorage_RemoveIsIdempotent(t *testing.T) {
	s := newTestAssetStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.CategoryDocument, "gone.png", []byte("x")))
	require.NoError(t, s.Remove(ctx, models.CategoryDocument, "gone.png"))
	require.NoError(t, s.Remove(ctx, models.CategoryDocument, "gone.png"))

	ok, err := s.Exists(ctx, models.CategoryDocument, "gone.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssetStorage_RejectsPathTraversal(t *testing.T) {
	s := newTestAssetStorage(t)
	ctx := context.Background()

	for _, name := range []string{"", "../escape.png", "sub/dir.png", `..\win.png`} {
		err := s.Save(ctx, models.CategoryDocument, name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidAssetName, "name %q must be rejected", name)

		_, err = s.Open(ctx, models.CategoryDocument, name)
		assert.ErrorIs(t, err, ErrInvalidAssetName, "name %q must be rejected", name)
	}
}

func TestAssetStorage_List(t *testing.T) {
	s := newTestAssetStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.CategoryResidenceProof, "a.png", []byte("x")))
	require.NoError(t, s.Save(ctx, models.CategoryResidenceProof, "b.pdf", []byte("y")))

	assets, err := s.List(ctx, models.CategoryResidenceProof)
	require.NoError(t, err)

	names := make([]string, 0, len(assets))
	for _, asset := range assets {
		names = append(names, asset.Name)
		assert.WithinDuration(t, time.Now(), asset.ModTime, time.Minute,
			"a just-written file must report a current mod time")
	}
	assert.ElementsMatch(t, []string{"a.png", "b.pdf"}, names)
}
