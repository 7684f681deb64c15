package updates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// hostDocument builds a minimal ENC document with the given updates value.
func hostDocument(mode string) map[string]any {
	return map[string]any{
		"environment": "production",
		"classes":     []any{"base", "ntp"},
		"properties": map[string]any{
			"updates": mode,
			"contact": "ops@example.org",
		},
	}
}

// TestHost_UpdateMode verifies reading the updates property.
func TestHost_UpdateMode(t *testing.T) {
	t.Parallel()

	h := NewHost("web01", hostDocument("security"))

	mode, err := h.UpdateMode()
	require.NoError(t, err)
	require.Equal(t, Security, mode)
	require.True(t, mode.Known())
}

// TestHost_UpdateMode_Missing ensures a document without the key is rejected, not defaulted.
func TestHost_UpdateMode_Missing(t *testing.T) {
	t.Parallel()

	// No properties at all.
	h := NewHost("db01", map[string]any{"environment": "production"})
	_, err := h.UpdateMode()
	require.ErrorIs(t, err, ErrNoUpdatesKey)

	// Properties without the updates key.
	h = NewHost("db02", map[string]any{"properties": map[string]any{"contact": "x"}})
	_, err = h.UpdateMode()
	require.ErrorIs(t, err, ErrNoUpdatesKey)

	require.ErrorIs(t, h.SetUpdateMode(Security), ErrNoUpdatesKey)
}

// TestHost_UpdateMode_BadShape ensures non-string values and non-mapping properties are rejected.
func TestHost_UpdateMode_BadShape(t *testing.T) {
	t.Parallel()

	h := NewHost("db03", map[string]any{"properties": map[string]any{"updates": true}})
	_, err := h.UpdateMode()
	require.ErrorIs(t, err, ErrBadDocument)

	h = NewHost("db04", map[string]any{"properties": "oops"})
	_, err = h.UpdateMode()
	require.ErrorIs(t, err, ErrBadDocument)
}

// TestHost_SetUpdateMode ensures the switch only touches the updates property.
func TestHost_SetUpdateMode(t *testing.T) {
	t.Parallel()

	h := NewHost("web02", hostDocument("security"))
	require.NoError(t, h.SetUpdateMode(None))

	mode, err := h.UpdateMode()
	require.NoError(t, err)
	require.Equal(t, None, mode)

	// Everything else survives untouched.
	doc := h.Document()
	require.Equal(t, "production", doc["environment"])

	properties, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ops@example.org", properties["contact"])
}

// TestUpdateMode_Description covers the report wording including unknown values.
func TestUpdateMode_Description(t *testing.T) {
	t.Parallel()

	cases := map[UpdateMode]string{
		Security:    "security updates ON",
		SecurityOff: "security updates OFF",
		None:        "no updates",
		"whatever":  "unknown updates status",
	}
	for mode, want := range cases {
		require.Equal(t, want, mode.Description())
	}

	require.False(t, UpdateMode("whatever").Known())
}

// TestDetectActor ensures hostname and username are detected and non-empty.
func TestDetectActor(t *testing.T) {
	t.Parallel()

	a, err := DetectActor()
	require.NoError(t, err)
	require.NotEmpty(t, a.Hostname)
	require.NotEmpty(t, a.Username)
}
