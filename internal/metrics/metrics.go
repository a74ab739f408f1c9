// Package metrics records secret container lifecycle counters via the
// core package's observer hook.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/systmms/shroud/pkg/secret"
)

var (
	createdTotal      prometheus.Counter
	destroyedTotal    prometheus.Counter
	accessDeniedTotal prometheus.Counter

	registerOnce sync.Once
)

// Install registers the counters with the default prometheus registry and
// hooks them into the secret package's lifecycle observer. Safe to call
// more than once; registration happens on the first call.
func Install() {
	registerOnce.Do(func() {
		createdTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "shroud_secrets_created_total",
			Help: "Total number of secret containers constructed",
		})
		destroyedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "shroud_secrets_destroyed_total",
			Help: "Total number of secret containers destroyed",
		})
		accessDeniedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Name: "shroud_access_denied_total",
			Help: "Total number of accesses refused on destroyed containers",
		})
	})
	secret.SetObserver(record)
}

// Uninstall detaches the observer. Counters stay registered.
func Uninstall() {
	secret.SetObserver(nil)
}

func record(e secret.Event) {
	switch e {
	case secret.EventCreated:
		createdTotal.Inc()
	case secret.EventDestroyed:
		destroyedTotal.Inc()
	case secret.EventAccessDenied:
		accessDeniedTotal.Inc()
	}
}
