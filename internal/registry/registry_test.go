package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/config"
	"github.com/vk/langtour/internal/console"
)

func noop(context.Context, *console.Console) error { return nil }

// newTestRegistry builds two topics registered out of order to exercise sorting.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()
	r.RegisterTopic(&Topic{Key: "loops", Title: "Loops", Order: 4})
	r.RegisterTopic(&Topic{Key: "types", Title: "Types", Order: 2})
	r.RegisterLesson(&Lesson{Topic: "loops", Name: "for", Expect: []string{"0 -> for"}, Run: noop})
	r.RegisterLesson(&Lesson{Topic: "loops", Name: "while", Expect: []string{"1 ->while loop"}, Run: noop})
	r.RegisterLesson(&Lesson{Topic: "types", Name: "primitives", Expect: []string{"string"}, Run: noop})
	return r
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Lesson.ID()
	}
	return out
}

func TestRegistry_TopicsAndAllAreOrdered(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	topics := r.Topics()
	require.Len(t, topics, 2)
	assert.Equal(t, "types", topics[0].Key)
	assert.Equal(t, "loops", topics[1].Key)

	var all []string
	for _, l := range r.All() {
		all = append(all, l.ID())
	}
	assert.Equal(t, []string{"types/primitives", "loops/for", "loops/while"}, all)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	require.Panics(t, func() { r.RegisterTopic(&Topic{Key: "loops"}) })
	require.Panics(t, func() { r.RegisterLesson(&Lesson{Topic: "loops", Name: "for", Run: noop}) })
	require.Panics(t, func() { r.RegisterLesson(&Lesson{Topic: "nope", Name: "x", Run: noop}) })
	require.Panics(t, func() { r.RegisterLesson(&Lesson{Topic: "loops", Name: "bodyless"}) })
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	plan := &config.Model{Selections: []*config.Selection{
		{Topic: "loops", Source: "a.hcl:1"},
		{Topic: "ghost", Source: "a.hcl:2"},
		{Topic: "loops", Lesson: "until", Source: "a.hcl:3"},
		{Topic: "types", ExpectSet: true, Source: "a.hcl:4"},
	}}

	err := r.Validate(context.Background(), plan)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.hcl:2: unknown topic 'ghost'")
	assert.Contains(t, err.Error(), "a.hcl:3: unknown lesson 'loops/until'")
	assert.Contains(t, err.Error(), "a.hcl:4: topic 'types' cannot declare expect")
	assert.NotContains(t, err.Error(), "a.hcl:1")
}

func TestValidate_EmptyPlan(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	require.NoError(t, r.Validate(context.Background(), nil))
	require.NoError(t, r.Validate(context.Background(), &config.Model{}))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		plan      *config.Model
		selectors []string
		want      []string
		wantErr   string
	}{
		{
			name: "empty plan runs everything",
			want: []string{"types/primitives", "loops/for", "loops/while"},
		},
		{
			name:      "selectors narrow the run",
			selectors: []string{"loops/while", "types"},
			want:      []string{"types/primitives", "loops/while"},
		},
		{
			name: "plan order is kept and duplicates collapse",
			plan: &config.Model{Selections: []*config.Selection{
				{Topic: "loops", Lesson: "while"},
				{Topic: "loops"},
				{Topic: "types"},
			}},
			want: []string{"loops/while", "loops/for", "types/primitives"},
		},
		{
			name: "lesson skip wins over its topic",
			plan: &config.Model{Selections: []*config.Selection{
				{Topic: "loops"},
				{Topic: "loops", Lesson: "for", Skip: true},
			}},
			want: []string{"loops/while"},
		},
		{
			name:      "unknown selector topic",
			selectors: []string{"strings"},
			wantErr:   "unknown topic 'strings'",
		},
		{
			name:      "unknown selector lesson",
			selectors: []string{"loops/until"},
			wantErr:   "unknown lesson 'loops/until'",
		},
		{
			name:      "malformed selector",
			selectors: []string{"a/b/c"},
			wantErr:   "invalid selector",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRegistry(t)

			entries, err := r.Resolve(tc.plan, tc.selectors)

			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, ids(entries))
		})
	}
}

func TestResolve_ExpectOverride(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	plan := &config.Model{Selections: []*config.Selection{
		{Topic: "loops", Lesson: "for", Expect: []string{"custom"}, ExpectSet: true},
		{Topic: "loops", Lesson: "while", Expect: []string{}, ExpectSet: true},
		{Topic: "types"},
	}}

	entries, err := r.Resolve(plan, nil)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"custom"}, entries[0].Expect)
	assert.Empty(t, entries[1].Expect)
	assert.Equal(t, []string{"string"}, entries[2].Expect)
}
