// Package redact adapts secret containers to serialization frameworks.
//
// A redact.String unmarshals a plaintext scalar from JSON, YAML, or CBOR
// straight into an obfuscated container, and marshals back as either the
// fixed placeholder (default) or the value's deterministic tag. There is
// no mode in which the plaintext is emitted: configuration structs can
// embed secrets and be round-tripped, logged, or diffed without ever
// serializing the value itself.
package redact

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/systmms/shroud/pkg/secret"
)

// String wraps a string-valued container for use in serializable structs.
// The zero value is empty: it marshals as the placeholder and holds no
// secret until unmarshaled into or assigned via Wrap.
type String struct {
	sec    *secret.Secret[string]
	tagged bool
}

// Wrap adopts an existing container. The String shares the container; it
// does not copy it.
func Wrap(s *secret.Secret[string]) String {
	return String{sec: s}
}

// Tagged returns a copy that marshals as the deterministic tag instead of
// the placeholder, for callers that need log-correlatable output.
func (s String) Tagged() String {
	s.tagged = true
	return s
}

// Secret returns the wrapped container, or nil for an empty String. All
// access to the value goes through the container's own combinators.
func (s String) Secret() *secret.Secret[string] {
	return s.sec
}

// token is the externally visible stand-in for the value. Tag mode reads
// the plaintext through the sanctioned Use combinator; everything else -
// empty, destroyed, tag-mode failure - falls back to the placeholder.
func (s String) token() string {
	if !s.tagged || s.sec == nil || s.sec.IsDestroyed() {
		return secret.Placeholder
	}
	tag, err := secret.Use(s.sec, secret.TagString)
	if err != nil {
		return secret.Placeholder
	}
	return tag
}

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.token())
}

// UnmarshalJSON implements json.Unmarshaler, wrapping the scalar into a
// fresh container.
func (s *String) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return s.adopt(v)
}

// MarshalYAML implements yaml.Marshaler.
func (s String) MarshalYAML() (interface{}, error) {
	return s.token(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	return s.adopt(v)
}

// MarshalCBOR implements cbor.Marshaler.
func (s String) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.token())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *String) UnmarshalCBOR(data []byte) error {
	var v string
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	return s.adopt(v)
}

func (s *String) adopt(v string) error {
	sec, err := secret.New(v, secret.String())
	if err != nil {
		return err
	}
	s.sec = sec
	return nil
}
