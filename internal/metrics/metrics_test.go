package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/shroud/pkg/secret"
)

func TestLifecycleCounters(t *testing.T) {
	Install()
	defer Uninstall()

	createdBefore := testutil.ToFloat64(createdTotal)
	destroyedBefore := testutil.ToFloat64(destroyedTotal)
	deniedBefore := testutil.ToFloat64(accessDeniedTotal)

	s, err := secret.New("metered", secret.String())
	require.NoError(t, err)
	s.Destroy()
	s.Destroy() // idempotent repeat must not count twice
	_, _ = secret.Use(s, func(v string) string { return v })

	assert.Equal(t, createdBefore+1, testutil.ToFloat64(createdTotal))
	assert.Equal(t, destroyedBefore+1, testutil.ToFloat64(destroyedTotal))
	assert.Equal(t, deniedBefore+1, testutil.ToFloat64(accessDeniedTotal))
}

func TestInstallTwiceDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Install()
		Install()
	})
	Uninstall()
}
