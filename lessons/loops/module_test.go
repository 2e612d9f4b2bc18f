package loops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/testutil"
)

func TestLessons_PrintDocumentedOutput(t *testing.T) {
	t.Parallel()
	testutil.RequireDocumentedOutput(t, &Module{})
}

func TestLabeledBreak_StopsAfterNineLines(t *testing.T) {
	t.Parallel()

	// --- Act ---
	lines := testutil.RunNamed(t, &Module{}, Topic, "labeled_break")

	// --- Assert ---
	require.Len(t, lines, 9)
	assert.Equal(t, "Outer loops: 0", lines[0])
	assert.Equal(t, "Outer loops: 2", lines[6])
	assert.Equal(t, "Inner loops: 2", lines[8])
}

func TestContinue_SkipsThree(t *testing.T) {
	t.Parallel()

	lines := testutil.RunNamed(t, &Module{}, Topic, "continue")

	assert.Equal(t, []string{"1", "3", "7", "12"}, lines)
}
