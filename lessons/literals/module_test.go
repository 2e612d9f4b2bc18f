package literals

import (
	"testing"

	"github.com/vk/langtour/internal/testutil"
)

func TestLessons_PrintDocumentedOutput(t *testing.T) {
	t.Parallel()
	testutil.RequireDocumentedOutput(t, &Module{})
}
