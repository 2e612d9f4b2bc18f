// Package controlflow covers if, switch, error values and panic/recover.
package controlflow

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "controlflow"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Control flow and error handling",
		Summary: "Conditionals, switch, returned errors, defer and panic/recover.",
		Order:   4,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:   "if_else",
			Title:  "if / else",
			Expect: []string{"I'm learning Go.", "small"},
			Run:    ifElse,
		},
		{
			Name:    "switch",
			Title:   "switch",
			Summary: "Cases do not fall through unless asked to.",
			Expect:  []string{"I'm single.", "one", "two", "It's complicated.", "weekend"},
			Run:     switchStatement,
		},
		{
			Name:    "exceptions",
			Title:   "Errors as values",
			Summary: "A failing call returns an error; a deferred call runs however the function exits.",
			Expect:  []string{"It's Thursday.", "*errors.errorString", "Invalid day code", "Have a nice day!"},
			Run:     exceptions,
		},
		{
			Name:    "panic_recover",
			Title:   "panic, recover and typed errors",
			Summary: "recover in a deferred function turns a panic back into an error.",
			Expect: []string{
				"Monday <nil>",
				`"" recovered: invalid day code 9`,
				"true 0",
				"true",
				"deferred 3",
				"deferred 2",
				"deferred 1",
			},
			Run: panicRecover,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
