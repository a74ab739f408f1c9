package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/shroud/pkg/secret"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(NewStatic("b", nil))
	r.Register(NewStatic("a", nil))

	s, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.Name())

	_, err = r.Get("nope")
	var unknown *UnknownSourceError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)

	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestStaticResolve(t *testing.T) {
	t.Parallel()

	src := NewStatic("fixtures", map[string]string{"API_KEY": "abc123"})
	src.Set("DB_PASSWORD", "hunter2")

	s, err := src.Resolve(context.Background(), "DB_PASSWORD")
	require.NoError(t, err)
	defer s.Destroy()

	got, err := secret.Use(s, func(v string) string { return v })
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	_, err = src.Resolve(context.Background(), "MISSING")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "fixtures", notFound.Source)
	assert.Equal(t, "MISSING", notFound.Key)
}
