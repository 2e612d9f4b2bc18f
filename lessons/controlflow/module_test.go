package controlflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/testutil"
)

func TestLessons_PrintDocumentedOutput(t *testing.T) {
	t.Parallel()
	testutil.RequireDocumentedOutput(t, &Module{})
}

func TestExceptions_ErrorGoesToStderr(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := console.New(nil)

	// --- Act ---
	require.NoError(t, exceptions(t.Context(), c))

	// --- Assert ---
	entries := c.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, console.Stdout, entries[0].Stream)
	assert.Equal(t, console.Stderr, entries[1].Stream)
	assert.Equal(t, console.Stderr, entries[2].Stream)
	assert.Equal(t, console.Stdout, entries[3].Stream)
}

func TestSafeDayName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		day     int
		want    string
		wantErr bool
	}{
		{name: "first day", day: 1, want: "Sunday"},
		{name: "last day", day: 7, want: "Saturday"},
		{name: "zero", day: 0, wantErr: true},
		{name: "past the week", day: 8, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := safeDayName(tc.day)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
