package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/systmms/shroud/pkg/secret"
)

// KeyringClient is the narrow slice of the OS keyring this source needs.
// The indirection exists so tests can substitute a fake; production code
// uses the system client.
type KeyringClient interface {
	Get(service, account string) (string, error)
}

// systemKeyring talks to the real OS keyring (macOS Keychain, Linux
// Secret Service, Windows Credential Manager).
type systemKeyring struct{}

func (systemKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

// Keyring resolves "service/account" keys against the OS keyring.
type Keyring struct {
	name          string
	servicePrefix string
	client        KeyringClient
}

// KeyringOption configures a Keyring source.
type KeyringOption func(*Keyring)

// WithServicePrefix prepends prefix plus a dot to every service name, e.g.
// prefix "com.example" and key "app/user" query service "com.example.app".
func WithServicePrefix(prefix string) KeyringOption {
	return func(k *Keyring) { k.servicePrefix = prefix }
}

// WithKeyringClient substitutes the keyring client, primarily for tests.
func WithKeyringClient(c KeyringClient) KeyringOption {
	return func(k *Keyring) { k.client = c }
}

// NewKeyring returns a keyring source.
func NewKeyring(name string, opts ...KeyringOption) *Keyring {
	k := &Keyring{name: name, client: systemKeyring{}}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the source identifier.
func (k *Keyring) Name() string { return k.name }

// Resolve parses key as "service/account" and queries the keyring.
func (k *Keyring) Resolve(ctx context.Context, key string) (*secret.Secret[string], error) {
	service, account, ok := strings.Cut(key, "/")
	if !ok || service == "" || account == "" {
		return nil, fmt.Errorf("source %q: key %q is not of the form service/account", k.name, key)
	}
	if k.servicePrefix != "" {
		service = k.servicePrefix + "." + service
	}

	v, err := k.client.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, &NotFoundError{Source: k.name, Key: key}
		}
		return nil, fmt.Errorf("source %q: keyring query for %s/%s: %w", k.name, service, account, err)
	}
	return wrap(v)
}
