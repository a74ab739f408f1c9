package redact

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/systmms/shroud/pkg/secret"
)

type dbConfig struct {
	Host     string `json:"host" yaml:"host"`
	Password String `json:"password" yaml:"password"`
}

func TestJSONRoundTripGuardsPlaintext(t *testing.T) {
	in := []byte(`{"host":"db.internal","password":"my_password"}`)

	var cfg dbConfig
	require.NoError(t, json.Unmarshal(in, &cfg))
	require.NotNil(t, cfg.Password.Secret())
	defer cfg.Password.Secret().Destroy()

	got, err := secret.Use(cfg.Password.Secret(), func(v string) string { return v })
	require.NoError(t, err)
	assert.Equal(t, "my_password", got)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "my_password")
	assert.Contains(t, string(out), secret.Placeholder)
}

func TestYAMLRoundTripGuardsPlaintext(t *testing.T) {
	in := []byte("host: db.internal\npassword: my_password\n")

	var cfg dbConfig
	require.NoError(t, yaml.Unmarshal(in, &cfg))
	require.NotNil(t, cfg.Password.Secret())
	defer cfg.Password.Secret().Destroy()

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "my_password")
	assert.Contains(t, string(out), secret.Placeholder)
}

func TestCBORRoundTripGuardsPlaintext(t *testing.T) {
	enc, err := cbor.Marshal("my_password")
	require.NoError(t, err)

	var s String
	require.NoError(t, s.UnmarshalCBOR(enc))
	defer s.Secret().Destroy()

	got, err := secret.Use(s.Secret(), func(v string) string { return v })
	require.NoError(t, err)
	assert.Equal(t, "my_password", got)

	out, err := cbor.Marshal(s)
	require.NoError(t, err)
	var decoded string
	require.NoError(t, cbor.Unmarshal(out, &decoded))
	assert.Equal(t, secret.Placeholder, decoded)
}

func TestTaggedModeEmitsDeterministicTag(t *testing.T) {
	sec, err := secret.New("my_password", secret.String())
	require.NoError(t, err)
	defer sec.Destroy()

	out, err := json.Marshal(Wrap(sec).Tagged())
	require.NoError(t, err)

	var tok string
	require.NoError(t, json.Unmarshal(out, &tok))
	assert.Equal(t, secret.TagString("my_password"), tok)
	assert.NotContains(t, tok, "my_password")
}

func TestDestroyedAndEmptyMarshalPlaceholder(t *testing.T) {
	sec, err := secret.New("gone", secret.String())
	require.NoError(t, err)
	sec.Destroy()

	for _, s := range []String{{}, Wrap(sec), Wrap(sec).Tagged()} {
		out, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `"`+secret.Placeholder+`"`, string(out))
	}
}
