// Package variables covers declaration forms, constants, block scope,
// shadowing and package-level names.
package variables

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "variables"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Variables and scope",
		Summary: "var, :=, const, block scope, shadowing and package-level declarations.",
		Order:   2,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:    "declaration",
			Title:   "Declaring without a value",
			Summary: "A declared variable starts at its zero value and is assigned later.",
			Expect:  []string{"0", "123", `""`, "<nil>"},
			Run:     declaration,
		},
		{
			Name:    "constants",
			Title:   "Constants",
			Summary: "Only basic values can be constants; a map held in a variable stays mutable.",
			Expect:  []string{"3.14", "map[key:otherValue]", "[HTML CSS GO]"},
			Run:     constants,
		},
		{
			Name:   "block_scope",
			Title:  "Block scope and shadowing",
			Expect: []string{"1", "inner", "outer"},
			Run:    blockScope,
		},
		{
			Name:    "hoisting",
			Title:   "Declaration order",
			Summary: "Package-level variables are initialised in dependency order, not source order.",
			Expect:  []string{"declared below", "42", "true"},
			Run:     hoisting,
		},
		{
			Name:    "globals",
			Title:   "Package-level variables",
			Summary: "A local declaration shadows the package-level name for the rest of its block.",
			Expect:  []string{"4 5", "5 4"},
			Run:     globals,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
