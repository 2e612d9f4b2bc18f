package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/runner"
)

func sampleReport() *runner.Report {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &runner.Report{
		RunID:     uuid.MustParse("6f1c1f5e-3b0a-4c1e-9d43-8f8a2d0c1b7e"),
		StartedAt: start,
		EndedAt:   start.Add(3 * time.Millisecond),
		Verified:  true,
		Results: []*runner.Result{
			{
				Topic:  "loops",
				Name:   "for",
				Title:  "Counted for loop",
				Status: runner.StatusPassed,
				Output: []console.Entry{{Stream: console.Stdout, Text: "0 -> for"}},
			},
			{
				Topic:  "controlflow",
				Name:   "exceptions",
				Title:  "Errors as values",
				Status: runner.StatusFailed,
				Output: []console.Entry{
					{Stream: console.Stdout, Text: "It's Thursday."},
					{Stream: console.Stderr, Text: "Invalid day code"},
				},
				Diff: "- wrong\n+ right\n",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestWrite_PlainPrintsOnlyLessonOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleReport(), FormatPlain))

	assert.Equal(t, "0 -> for\nIt's Thursday.\nInvalid day code\n", buf.String())
}

func TestWrite_PrettyGroupsByTopicAndSummarises(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer

	// --- Act ---
	require.NoError(t, Write(&buf, sampleReport(), FormatPretty))

	// --- Assert ---
	out := buf.String()
	assert.Contains(t, out, "== loops ==")
	assert.Contains(t, out, "== controlflow ==")
	assert.Contains(t, out, "✓ loops/for Counted for loop")
	assert.Contains(t, out, "✗ controlflow/exceptions")
	assert.Contains(t, out, "    Invalid day code")
	assert.Contains(t, out, "+ right")
	assert.Contains(t, out, "2 lessons, 1 passed, 1 failed")
}

func TestWrite_JSONRoundTripsIdentity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatJSON))

	var decoded struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Topic  string `json:"topic"`
			Status string `json:"status"`
			Output []struct {
				Stream string `json:"stream"`
				Text   string `json:"text"`
			} `json:"output"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "6f1c1f5e-3b0a-4c1e-9d43-8f8a2d0c1b7e", decoded.RunID)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "failed", decoded.Results[1].Status)
	assert.Equal(t, "stderr", decoded.Results[1].Output[1].Stream)
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, sampleReport(), Format("xml"))

	assert.Error(t, err)
}
