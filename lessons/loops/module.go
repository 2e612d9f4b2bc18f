// Package loops covers Go's single loop keyword and the shapes it takes:
// counted, condition-only, infinite with break, labeled and range loops.
package loops

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "loops"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Loops and iteration",
		Summary: "for in all its forms, break and continue with labels, range over slices and maps.",
		Order:   5,
	})

	for _, l := range []*registry.Lesson{
		{
			Name:    "for",
			Title:   "Counted for loop",
			Summary: "init; condition; post",
			Expect:  []string{"0 -> for", "1 -> for", "2 -> for", "3 -> for", "4 -> for"},
			Run:     countedLoop,
		},
		{
			Name:    "do_while",
			Title:   "Body first, condition last",
			Summary: "Go has no do-while; an infinite loop that breaks at the bottom runs the body at least once.",
			Expect:  []string{"1 -> do-while", "2 -> do-while", "3 -> do-while", "4 -> do-while", "5 -> do-while"},
			Run:     doWhile,
		},
		{
			Name:    "while",
			Title:   "Condition-only for",
			Summary: "for with just a condition is Go's while.",
			Expect:  []string{"1 ->while loop", "2 ->while loop", "3 ->while loop"},
			Run:     whileLoop,
		},
		{
			Name:    "break",
			Title:   "Leaving a loop early",
			Expect:  []string{"Current Iteration ; 0", "Current Iteration ; 1", "Value found at index 1 of an array"},
			Run:     breakLoop,
		},
		{
			Name:    "labeled_break",
			Title:   "break with a label",
			Summary: "A labeled break leaves the outer loop from inside the inner one.",
			Expect: []string{
				"Outer loops: 0", "Inner loops: 1", "Inner loops: 2",
				"Outer loops: 1", "Inner loops: 1", "Inner loops: 2",
				"Outer loops: 2", "Inner loops: 1", "Inner loops: 2",
			},
			Run: labeledBreak,
		},
		{
			Name:    "continue",
			Title:   "Skipping an iteration",
			Expect:  []string{"1", "3", "7", "12"},
			Run:     continueLoop,
		},
		{
			Name:    "labeled_continue",
			Title:   "continue with a label",
			Summary: "continue label jumps to the next iteration of the named loop.",
			Expect: []string{
				"0", "10", "9 is odd.", "9", "8", "7 is odd.", "7", "6", "5 is odd.", "5",
				"i1 = 1", "j1 = 4",
				"1", "i1 = 2", "j1 = 4",
				"2", "i1 = 3", "j1 = 4",
				"3", "i1 = 4", "j1 = 4",
				"(0,1)", "(1,0)", "(2,0)", "(2,1)",
			},
			Run: labeledContinue,
		},
		{
			Name:    "for_in",
			Title:   "Ranging over map keys",
			Summary: "Map iteration order is unspecified; sort the keys for stable output.",
			Expect:  []string{"car.make = Ford", "car.model = Mustang"},
			Run:     forIn,
		},
		{
			Name:    "for_of",
			Title:   "Index or value",
			Summary: "range yields the index first and the element second.",
			Expect:  []string{"0", "1", "2", "3", "5", "7"},
			Run:     forOf,
		},
		{
			Name:   "entries",
			Title:  "Key and value together",
			Expect: []string{"make Honda", "model Aviator"},
			Run:    entries,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
