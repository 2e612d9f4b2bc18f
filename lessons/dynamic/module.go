// Package dynamic contrasts Go's static types with a dynamically typed
// expression language. The values here are go-cty values and the source is
// HCL, evaluated at run time.
package dynamic

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "dynamic"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Dynamic values",
		Summary: "Run-time typed values with go-cty and the HCL expression language.",
		Order:   9,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:    "typeof",
			Title:   "Types known only at run time",
			Summary: "Each evaluated expression carries its own type.",
			Expect: []string{
				`"Samrid Dangol" is string`,
				"28 is number",
				"true is bool",
				"null is dynamic",
				`{ firstName = "Samrid", age = 27 } is object`,
				`["HTML", "CSS"] is tuple`,
				`{"age":27,"firstName":"Samrid"}`,
			},
			Run: typeOf,
		},
		{
			Name:    "equality",
			Title:   "Strict and loose equality",
			Summary: "Values of different types are never equal until one is converted.",
			Expect:  []string{"false", "false", "true", "42 true", "true"},
			Run:     equality,
		},
		{
			Name:    "null_and_unknown",
			Title:   "Null and unknown",
			Summary: "Null is a value that is absent; unknown is a value not yet computed.",
			Expect:  []string{"true true", "false false", "false", "true", "Samrid", "true"},
			Run:     nullAndUnknown,
		},
		{
			Name:  "template_literal",
			Title: "String templates",
			Expect: []string{
				"My name is Samrid Dangol and I'm 27 years old. It is true that I'm studying Go.",
				"adult",
			},
			Run: templateLiteral,
		},
		{
			Name:    "precedence",
			Title:   "Arithmetic on arbitrary-precision numbers",
			Summary: "Numbers are not split into ints and floats, so 7 / 2 is 3.5.",
			Expect:  []string{"1 + 2 * 3 = 7", "(1 + 2) * 3 = 9", "7 / 2 = 3.5", "10 % 3 = 1"},
			Run:     precedence,
		},
		{
			Name:    "conditional",
			Title:   "Conditional expression",
			Summary: "The two results are unified to one type.",
			Expect:  []string{"adult", "minor", "1 string"},
			Run:     conditional,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
