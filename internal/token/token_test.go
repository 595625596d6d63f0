package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:   []byte("test-secret"),
		Issuer:   "blueprint",
		Audience: "blueprint-clients",
		TTL:      2 * time.Hour,
	}
}

func TestIssueDecode_RoundTrip(t *testing.T) {
	c := NewCodec(testConfig())

	tok, err := c.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := c.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestDecode_MalformedInput(t *testing.T) {
	c := NewCodec(testConfig())

	for _, input := range []string{"", "garbage", "a.b.c", "a.b"} {
		_, err := c.Decode(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestDecode_WrongKey(t *testing.T) {
	issuer := NewCodec(testConfig())

	otherCfg := testConfig()
	otherCfg.Secret = []byte("another-secret")
	verifier := NewCodec(otherCfg)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Decode(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = -time.Minute
	expired := NewCodec(cfg)

	tok, err := expired.Issue("alice")
	require.NoError(t, err)

	verifier := NewCodec(testConfig())
	_, err = verifier.Decode(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_WrongIssuerOrAudience(t *testing.T) {
	foreign := testConfig()
	foreign.Issuer = "someone-else"
	tok, err := NewCodec(foreign).Issue("alice")
	require.NoError(t, err)

	_, err = NewCodec(testConfig()).Decode(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign = testConfig()
	foreign.Audience = "other-clients"
	tok, err = NewCodec(foreign).Issue("alice")
	require.NoError(t, err)

	_, err = NewCodec(testConfig()).Decode(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
