package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeward-labs/fixtura/hint"
	"github.com/leeward-labs/fixtura/pattern"
)

func counts(values ...string) map[string]int {
	m := make(map[string]int, len(values))
	for _, v := range values {
		m[v]++
	}

	return m
}

func TestDetectUUID4(t *testing.T) {
	h, ok := pattern.Detect(counts(
		"11111111-2222-4333-8444-555555555555",
		"aaaaaaaa-bbbb-4ccc-9ddd-eeeeeeeeeeee",
	))
	require.True(t, ok)
	assert.Equal(t, hint.UUID4, h.Tag())
}

func TestDetectMAC(t *testing.T) {
	h, ok := pattern.Detect(counts("00:11:22:33:44:55", "aa:bb:cc:dd:ee:ff"))
	require.True(t, ok)
	assert.Equal(t, hint.MAC, h.Tag())
}

func TestDetectAuth0ID(t *testing.T) {
	h, ok := pattern.Detect(counts("auth0|abc123", "auth0|def456"))
	require.True(t, ok)
	assert.Equal(t, hint.Auth0ID, h.Tag())
}

func TestDetectDate(t *testing.T) {
	h, ok := pattern.Detect(counts("2025-01-05", "2025-01-11"))
	require.True(t, ok)
	dh, ok := h.(hint.DateHint)
	require.True(t, ok)
	assert.Equal(t, "2025-01-05", dh.Min)
	assert.Equal(t, "2025-01-11", dh.Max)
}

func TestDetectNumStr(t *testing.T) {
	h, ok := pattern.Detect(counts("10", "20", "30"))
	require.True(t, ok)
	assert.Equal(t, hint.NumStr, h.Tag())
}

func TestDetectVersionFull(t *testing.T) {
	h, ok := pattern.Detect(counts("1.2.3", "1.3.0"))
	require.True(t, ok)
	vh, ok := h.(hint.VersionHint)
	require.True(t, ok)
	assert.Equal(t, hint.VersionFull, vh.PatternType)
}

func TestDetectDurationHMS(t *testing.T) {
	h, ok := pattern.DetectDuration([]string{"01:00:00", "02:00:00"})
	require.True(t, ok)
	dh, ok := h.(hint.DurationHint)
	require.True(t, ok)
	assert.Equal(t, hint.DurationHMS, dh.Fmt)
	assert.Equal(t, 3600.0, dh.Min)
	assert.Equal(t, 7200.0, dh.Max)
}

func TestDetectAlphaRequiresUniformLength(t *testing.T) {
	_, ok := pattern.DetectAlpha([]string{"ab1", "cd2", "ab3"}, 0)
	assert.True(t, ok)

	_, ok = pattern.DetectAlpha([]string{"ab1", "c"}, 0)
	assert.False(t, ok)
}

func TestDetectTextThreshold(t *testing.T) {
	values := []string{
		"this is a fairly long piece of free text with spaces in it",
		"short",
	}
	_, ok := pattern.DetectText(values)
	assert.True(t, ok)
}
