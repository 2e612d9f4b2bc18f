// Package datatypes introduces Go's built-in value kinds and how fmt reports
// their types.
package datatypes

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "datatypes"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Grammar and types",
		Summary: "Primitive and composite values, zero values and %T.",
		Order:   1,
	})

	r.RegisterLesson(&registry.Lesson{
		Topic:   Topic,
		Name:    "primitives",
		Title:   "Primitive values",
		Summary: "Every variable has a static type; an unassigned one holds its type's zero value.",
		Expect: []string{
			"string",
			"int",
			"float64",
			"bool",
			"*string true",
			"0",
			"*big.Int 9007199254740993",
			"*datatypes.symbol false",
		},
		Run: primitives,
	})
	r.RegisterLesson(&registry.Lesson{
		Topic:   Topic,
		Name:    "composites",
		Title:   "Composite values",
		Summary: "Structs, maps and slices.",
		Expect: []string{
			"datatypes.person",
			"{FirstName:Samrid Age:27}",
			"map[string]interface {}",
			"map[age:27 firstName:Samrid]",
			"[]string",
			"[HTML CSS]",
		},
		Run: composites,
	})
}
