package qr_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeadura/leegion-party/internal/lib/qr"
)

func TestGenerator(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "qr-codes")

	gen, err := qr.New("http://localhost:4000", dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000/verify/42", gen.VerifyURL(42))
	assert.Equal(t, "qr-codes/reservation_42.png", qr.ArtifactPath(42))

	rel, err := gen.Generate(42)
	require.NoError(t, err)
	assert.Equal(t, "qr-codes/reservation_42.png", rel)

	info, err := os.Stat(filepath.Join(dir, "reservation_42.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Same id, same path, freshly rendered.
	rel2, err := gen.Generate(42)
	require.NoError(t, err)
	assert.Equal(t, rel, rel2)
}

func TestGenerator_MissingDirIsCreated(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "qr-codes")

	_, err := qr.New("http://localhost:4000", dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
