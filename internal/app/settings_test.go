package app

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/testutil"
)

func TestLoadSettings_MissingOptionalFile(t *testing.T) {
	t.Parallel()

	s, err := LoadSettings(filepath.Join(t.TempDir(), DefaultSettingsFile), true)

	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestLoadSettings_MissingRequiredFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"), false)

	assert.ErrorContains(t, err, "failed to open settings file")
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{DefaultSettingsFile: "workers: 3\n"})

	s, err := LoadSettings(filepath.Join(dir, DefaultSettingsFile), false)

	require.NoError(t, err)
	assert.Equal(t, 3, s.Workers)
}

func TestDecodeSettings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty file", input: ""},
		{name: "unknown key", input: "wrokers: 3\n", wantErr: "field wrokers not found"},
		{name: "wrong type", input: "workers: many\n", wantErr: "failed to decode settings file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := DecodeSettings(strings.NewReader(tc.input), "langtour.yaml")

			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestSettingsSchema(t *testing.T) {
	t.Parallel()

	// --- Act ---
	b, err := SettingsSchema()
	require.NoError(t, err)

	// --- Assert ---
	var schema struct {
		Title      string                    `json:"title"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(b, &schema))
	assert.Equal(t, "langtour settings", schema.Title)
	assert.Contains(t, schema.Properties, "workers")
	assert.Contains(t, schema.Properties, "timeout")
	assert.Equal(t, []any{"plain", "pretty", "json"}, schema.Properties["format"]["enum"])
}
