// Package literals shows the literal forms Go accepts for each kind of value.
package literals

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "literals"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Literals",
		Summary: "Fixed values written directly in source.",
		Order:   3,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:   "array",
			Title:  "Slice and array literals",
			Expect: []string{"3", "[3]string", "[apple banana orange]"},
			Run:    arrayLiteral,
		},
		{
			Name:   "boolean",
			Title:  "Boolean literals",
			Expect: []string{"true", "false"},
			Run:    booleanLiteral,
		},
		{
			Name:    "numeric",
			Title:   "Numeric literals",
			Summary: "Decimal, hex, octal and binary integers, digit separators, floats and exponents.",
			Expect:  []string{"100 3.14159265359", "255 15 10 1000000", "1000 0.0025"},
			Run:     numericLiteral,
		},
		{
			Name:   "object",
			Title:  "Struct and map literals",
			Expect: []string{"Harsha Narayan Dangol Maiya Dangol Samrid Dangol", "map[4:Samrid Dangol]"},
			Run:    objectLiteral,
		},
		{
			Name:   "regexp",
			Title:  "Regular expressions",
			Expect: []string{"ab+c", "true false"},
			Run:    regexpLiteral,
		},
		{
			Name:    "string",
			Title:   "String literals",
			Summary: "len counts bytes; runes are counted separately.",
			Expect:  []string{"Dangol 6", `C:\path\to\file`, "6 5"},
			Run:     stringLiteral,
		},
		{
			Name:   "template",
			Title:  "Formatted strings",
			Expect: []string{"My name is Samrid Dangol and I'm 27 years old. It is true that I'm studying Go."},
			Run:    templateLiteral,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
