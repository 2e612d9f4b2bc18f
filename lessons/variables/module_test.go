package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/langtour/internal/testutil"
)

func TestLessons_PrintDocumentedOutput(t *testing.T) {
	t.Parallel()
	testutil.RequireDocumentedOutput(t, &Module{})
}

func TestPackageVariables_InitialisedInDependencyOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, total)
	assert.Equal(t, 4, packageQ())
}
