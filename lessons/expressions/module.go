// Package expressions covers primary expressions: receivers, grouping,
// selectors, nil-safe access, allocation and embedding.
package expressions

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "expressions"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Basic expressions",
		Summary: "Method receivers, grouping, field and key access, new/make and embedding.",
		Order:   7,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:    "this",
			Title:   "Method receivers",
			Summary: "The receiver plays the part of the object a method is called on.",
			Expect: []string{
				"{FirstName:Harsha MiddleName:Narayan LastName:Dangol}",
				"Harsha Narayan Dangol",
				"{FirstName:Maiya MiddleName: LastName:Dangol}",
				"Maiya Dangol",
				"Harsha Narayan Dangol",
			},
			Run: receivers,
		},
		{
			Name:   "grouping",
			Title:  "Grouping operator",
			Expect: []string{"7", "9", "9"},
			Run:    grouping,
		},
		{
			Name:   "property_access",
			Title:  "Selectors and index expressions",
			Expect: []string{"Harsha", "Narayan", "Dangol"},
			Run:    propertyAccess,
		},
		{
			Name:    "optional_chaining",
			Title:   "Nil-safe access",
			Summary: "Dereferencing nil panics; check first or give the method a nil-aware receiver.",
			Expect: []string{
				"<nil>",
				"runtime error: invalid memory address or nil pointer dereference",
				`"" false`,
				"Samrid",
				"S true",
				`""`,
			},
			Run: optionalChaining,
		},
		{
			Name:   "new",
			Title:  "new, make and composite literals",
			Expect: []string{"[Dad Mom]", "[]string", "0", "1"},
			Run:    allocation,
		},
		{
			Name:    "super",
			Title:   "Embedding",
			Summary: "An embedded struct's fields and methods are promoted; the outer type can still call the inner method.",
			Expect:  []string{"Samrid", "Dangol", "Hello from the Dangol family, I'm Samrid"},
			Run:     embedding,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
