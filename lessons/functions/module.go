// Package functions covers declarations, function values, closures and the
// ways Go passes and receives arguments.
package functions

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "functions"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Functions and closures",
		Summary: "Declarations, function literals, closures, variadic parameters and timers.",
		Order:   6,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:   "declaration",
			Title:  "Function declaration",
			Expect: []string{"The area of the square is 144."},
			Run:    declaration,
		},
		{
			Name:    "pass_by_value",
			Title:   "Arguments are copies",
			Summary: "A struct argument is copied; a pointer or a slice shares the underlying data.",
			Expect:  []string{"aviator", "ather", "SnigdhTech", "AlpinistStudios"},
			Run:     passByValue,
		},
		{
			Name:   "nested",
			Title:  "Function literal inside a function",
			Expect: []string{"400"},
			Run:    nested,
		},
		{
			Name:    "expressions",
			Title:   "Function values",
			Summary: "A function literal that recurses must be declared before it is assigned.",
			Expect:  []string{"The area of the square is 144.", "6", "40320"},
			Run:     functionValues,
		},
		{
			Name:   "higher_order",
			Title:  "Functions as arguments",
			Expect: []string{"[0 1 8 125 1000]"},
			Run:    higherOrder,
		},
		{
			Name:   "conditional",
			Title:  "Conditionally defined function",
			Expect: []string{"Function defined inside if statement is running"},
			Run:    conditional,
		},
		{
			Name:   "recursion",
			Title:  "Recursion",
			Expect: []string{"1 2 6 24 120"},
			Run:    recursion,
		},
		{
			Name:    "declaration_order",
			Title:   "Declaration order",
			Summary: "Package-level functions can be called from code that appears above them.",
			Expect:  []string{"25", "25"},
			Run:     declarationOrder,
		},
		{
			Name:    "closures",
			Title:   "Closures",
			Summary: "A returned function keeps the variables of the call that created it.",
			Expect:  []string{"Vivie", "3"},
			Run:     closures,
		},
		{
			Name:   "scope_chain",
			Title:  "Scope chain",
			Expect: []string{"6"},
			Run:    scopeChain,
		},
		{
			Name:   "name_conflicts",
			Title:  "Shadowed parameters",
			Expect: []string{"20"},
			Run:    nameConflicts,
		},
		{
			Name:    "default_params",
			Title:   "Default parameter values",
			Summary: "Go has no defaults; an optional trailing variadic argument stands in for one.",
			Expect:  []string{"5", "10"},
			Run:     defaultParams,
		},
		{
			Name:   "rest_params",
			Title:  "Variadic parameters",
			Expect: []string{"[2 4 6]", "[3 6 9]", "[]"},
			Run:    restParams,
		},
		{
			Name:   "arrow",
			Title:  "Short function literals",
			Expect: []string{"[8 6 7 9]"},
			Run:    arrow,
		},
		{
			Name:    "timer",
			Title:   "Recurring callback",
			Summary: "A goroutine driven by a ticker increments a counter until it is told to stop.",
			Expect:  []string{"tick 1", "tick 2", "tick 3", "counter stopped at 3"},
			Run:     timer,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
