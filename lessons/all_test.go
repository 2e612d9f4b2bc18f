package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/testutil"
)

func TestAll_RegistersEveryTopicOnce(t *testing.T) {
	t.Parallel()

	// --- Act ---
	r := testutil.NewRegistry(All()...)

	// --- Assert ---
	topics := r.Topics()
	require.Len(t, topics, 9)
	assert.Equal(t, "datatypes", topics[0].Key)
	assert.Equal(t, "dynamic", topics[8].Key)

	for _, topic := range topics {
		assert.NotEmpty(t, r.Lessons(topic.Key), "topic %s has no lessons", topic.Key)
	}
}

func TestAll_EveryLessonDocumentsItsOutput(t *testing.T) {
	t.Parallel()

	r := testutil.NewRegistry(All()...)

	for _, l := range r.All() {
		assert.NotEmpty(t, l.Expect, "lesson %s has no documented output", l.ID())
		assert.NotEmpty(t, l.Title, "lesson %s has no title", l.ID())
	}
}
