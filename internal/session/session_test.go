package session

import (
	"strings"
	"testing"
	"time"

	"sopclassify/internal/config"
	"sopclassify/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, ttlSec int) *Codec {
	t.Helper()
	codec, err := NewCodec(config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "session",
		TTLSec:     ttlSec,
	}, false)
	require.NoError(t, err)
	return codec
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, 3600)

	rec := &model.SessionRecord{ID: "1", Email: "admin@example.com", Role: model.RoleAdmin}
	token, err := codec.Issue(rec)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCodec_Parse_Rejections(t *testing.T) {
	codec := newTestCodec(t, 3600)

	t.Run("empty token", func(t *testing.T) {
		_, err := codec.Parse("")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := codec.Parse("not-a-jwt")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := codec.Issue(&model.SessionRecord{ID: "1", Email: "a@b.c", Role: model.RoleUser})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		parts[2] = "AAAA" + parts[2][4:]

		_, err = codec.Parse(strings.Join(parts, "."))
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewCodec(config.SessionConfig{Secret: "other-secret"}, false)
		require.NoError(t, err)

		token, err := other.Issue(&model.SessionRecord{ID: "1"})
		require.NoError(t, err)

		_, err = codec.Parse(token)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		short, err := NewCodec(config.SessionConfig{Secret: "test-secret", TTLSec: 1}, false)
		require.NoError(t, err)
		// Issue with a TTL already in the past by backdating via a tiny TTL and waiting.
		token, err := short.Issue(&model.SessionRecord{ID: "1"})
		require.NoError(t, err)

		time.Sleep(1100 * time.Millisecond)
		_, err = short.Parse(token)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestCodec_Cookies(t *testing.T) {
	codec, err := NewCodec(config.SessionConfig{
		Secret:     "s",
		CookieName: "session",
		TTLSec:     60 * 60 * 24 * 7,
	}, true)
	require.NoError(t, err)

	ck := codec.Cookie("tok")
	assert.Equal(t, "session", ck.Name)
	assert.Equal(t, "tok", ck.Value)
	assert.True(t, ck.HTTPOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, 60*60*24*7, ck.MaxAge)

	cleared := codec.ExpiredCookie()
	assert.Equal(t, "session", cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec(config.SessionConfig{}, false)
	assert.Error(t, err)
}
