package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/shroud/pkg/secret"
)

func TestEnvResolve(t *testing.T) {
	t.Setenv("SHROUD_TEST_TOKEN", "from-process")
	t.Setenv("SHROUD_TEST_EMPTY", "")

	src := NewEnv("env")

	s, err := src.Resolve(context.Background(), "SHROUD_TEST_TOKEN")
	require.NoError(t, err)
	defer s.Destroy()

	got, err := secret.Use(s, func(v string) string { return v })
	require.NoError(t, err)
	assert.Equal(t, "from-process", got)

	var notFound *NotFoundError
	_, err = src.Resolve(context.Background(), "SHROUD_TEST_EMPTY")
	assert.ErrorAs(t, err, &notFound, "empty variables count as missing")

	_, err = src.Resolve(context.Background(), "SHROUD_TEST_UNSET")
	assert.ErrorAs(t, err, &notFound)
}

func TestEnvFileOverlay(t *testing.T) {
	t.Setenv("SHROUD_TEST_TOKEN", "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHROUD_TEST_TOKEN=from-file\nONLY_IN_FILE=file-value\n"), 0o600))

	src, err := NewEnvFile("dotenv", path)
	require.NoError(t, err)

	s, err := src.Resolve(context.Background(), "SHROUD_TEST_TOKEN")
	require.NoError(t, err)
	defer s.Destroy()
	got, err := secret.Use(s, func(v string) string { return v })
	require.NoError(t, err)
	assert.Equal(t, "from-file", got, "file variables win over process ones")

	s2, err := src.Resolve(context.Background(), "ONLY_IN_FILE")
	require.NoError(t, err)
	defer s2.Destroy()
	got, err = secret.Use(s2, func(v string) string { return v })
	require.NoError(t, err)
	assert.Equal(t, "file-value", got)
}

func TestEnvFileMissing(t *testing.T) {
	t.Parallel()

	_, err := NewEnvFile("dotenv", filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
