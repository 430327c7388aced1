package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyExtractor(t *testing.T) {
	ex := GreedyExtractor{}

	t.Run("json with surrounding noise", func(t *testing.T) {
		raw := `noise {"isSlowRelease":true,"justification":"ok","referencedSections":[]} trailing`

		res, err := ex.Extract(raw)
		require.NoError(t, err)
		assert.True(t, res.IsSlowRelease)
		assert.Equal(t, "ok", res.Justification)
		assert.Empty(t, res.ReferencedSections)
	})

	t.Run("code fenced json", func(t *testing.T) {
		raw := "```json\n{\"isSlowRelease\":false,\"justification\":\"UI only\",\"referencedSections\":[\"2.1\"],\"metadata\":{\"title\":\"Release SOP\",\"version\":\"1.2\"}}\n```"

		res, err := ex.Extract(raw)
		require.NoError(t, err)
		assert.False(t, res.IsSlowRelease)
		assert.Equal(t, []string{"2.1"}, res.ReferencedSections)
		assert.Equal(t, "Release SOP", res.Metadata.Title)
		assert.Equal(t, "1.2", res.Metadata.Version)
	})

	t.Run("no braces", func(t *testing.T) {
		_, err := ex.Extract("no braces here")
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("closing brace before opening", func(t *testing.T) {
		_, err := ex.Extract("} nothing {")
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ex.Extract(`{"isSlowRelease": tru}`)
		assert.ErrorIs(t, err, ErrMalformedJSON)
	})

	t.Run("missing keys are not an error", func(t *testing.T) {
		res, err := ex.Extract(`{"justification":"partial"}`)
		require.NoError(t, err)
		assert.False(t, res.IsSlowRelease)
		assert.Equal(t, "partial", res.Justification)
	})
}
