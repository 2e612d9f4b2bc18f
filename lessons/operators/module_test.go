package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/langtour/internal/testutil"
)

func TestLessons_PrintDocumentedOutput(t *testing.T) {
	t.Parallel()
	testutil.RequireDocumentedOutput(t, &Module{})
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	zero := 0

	assert.Equal(t, 7, coalesce[int](nil, 7))
	assert.Equal(t, 0, coalesce(&zero, 7))
}

func TestTernary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yes", ternary(true, "yes", "no"))
	assert.Equal(t, 2, ternary(false, 1, 2))
}

func TestDivmod(t *testing.T) {
	t.Parallel()

	q, r := divmod(-17, 5)

	assert.Equal(t, -3, q)
	assert.Equal(t, -2, r)
}
