package console

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_JoinsOperandsWithSpaces(t *testing.T) {
	t.Parallel()

	c := New(nil)
	c.Log("Dangol", 6)
	c.Log(100, 3.14159265359)
	c.Log(true, false, "Dog")

	require.Equal(t, []string{"Dangol 6", "100 3.14159265359", "true false Dog"}, c.Lines())
}

func TestLogf_SplitsEmbeddedNewlines(t *testing.T) {
	t.Parallel()

	c := New(nil)
	c.Logf("%d -> for\n%d -> for", 0, 1)

	require.Equal(t, []string{"0 -> for", "1 -> for"}, c.Lines())
}

func TestError_RecordsStream(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := &Console{}

	// --- Act ---
	c.Log("before")
	c.Error("Error")
	c.Errorf("%s", "Invalid day code")

	// --- Assert ---
	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Stdout, entries[0].Stream)
	assert.Equal(t, Entry{Stream: Stderr, Text: "Error"}, entries[1])
	assert.Equal(t, Entry{Stream: Stderr, Text: "Invalid day code"}, entries[2])
}

func TestTee_ReceivesLinesLive(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	c := New(out)
	c.Log("Vivie")
	c.Error("boom")

	require.Equal(t, "Vivie\nboom\n", out.String())
}

func TestConsole_ConcurrentLogging(t *testing.T) {
	t.Parallel()

	c := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Log("tick")
		}()
	}
	wg.Wait()

	require.Len(t, c.Lines(), 50)
}
