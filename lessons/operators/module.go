// Package operators walks through Go's operators: assignment, comparison,
// arithmetic, bitwise and logical, plus the idioms that replace operators Go
// does not have.
package operators

import "github.com/vk/langtour/internal/registry"

// Topic is the registry key of this package.
const Topic = "operators"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the topic and its lessons.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{
		Key:     Topic,
		Title:   "Expressions and operators",
		Summary: "Assignment, comparison, arithmetic, bitwise, logical, big numbers and type inspection.",
		Order:   8,
	})

	for _, l := range []*registry.Lesson{
		{Name: "assignment", Title: "Assignment", Expect: []string{"4", "5"}, Run: assignment},
		{Name: "precedence", Title: "Operator precedence", Expect: []string{"7 7", "9"}, Run: precedence},
		{
			Name:    "compound_assignment",
			Title:   "Compound assignment",
			Summary: "Go has no **= operator; math.Pow stands in for it.",
			Expect:  []string{"5 4", "10 2", "1 8", "6 3", "30 0.6", "0 0.07776"},
			Run:     compoundAssignment,
		},
		{
			Name:   "properties",
			Title:  "Assigning to fields and keys",
			Expect: []string{"3", "map[x:3]", "5", "map[x:3 y:5]", "{X:3 Y:0}"},
			Run:    properties,
		},
		{
			Name:    "destructuring",
			Title:   "Multiple assignment",
			Summary: "No destructuring syntax; index, multiple return values and tuple assignment do the job.",
			Expect:  []string{"one two three", "four five six", "3 2", "2 1"},
			Run:     destructuring,
		},
		{
			Name:    "comparison",
			Title:   "Comparison",
			Summary: "Operands must have the same type; strings compare byte-wise.",
			Expect:  []string{"true true true true true true", "true true", "false"},
			Run:     comparison,
		},
		{
			Name:    "arithmetic",
			Title:   "Arithmetic",
			Summary: "Integer division truncates; convert to float64 for a fraction.",
			Expect:  []string{"5 -1 6 0", "0.6666666666666666"},
			Run:     arithmetic,
		},
		{Name: "remainder_power", Title: "Remainder and power", Expect: []string{"2 8", "-1"}, Run: remainderPower},
		{
			Name:    "increment",
			Title:   "Increment and decrement",
			Summary: "++ and -- are statements and have no value.",
			Expect:  []string{"2", "1"},
			Run:     increment,
		},
		{Name: "unary", Title: "Unary operators", Expect: []string{"-1", "1", "int 1 <nil>", "1"}, Run: unary},
		{
			Name:   "bitwise_logical",
			Title:  "Bitwise logical operators",
			Expect: []string{"9 15 6", "-16 -10", "6", "0110"},
			Run:    bitwiseLogical,
		},
		{
			Name:    "bitwise_shift",
			Title:   "Shift operators",
			Summary: "Right shift of a signed value is arithmetic; shift an unsigned value to fill with zeros.",
			Expect:  []string{"36 2", "-3", "1073741821", "5"},
			Run:     bitwiseShift,
		},
		{
			Name:    "logical",
			Title:   "Logical operators",
			Summary: "&& and || take booleans only; cmp.Or picks the first non-zero value.",
			Expect: []string{
				"true false false false",
				"true true true false",
				"false true",
				"Cat Cat 4",
				"1 0",
			},
			Run: logical,
		},
		{
			Name:    "bigint",
			Title:   "Arbitrary-precision integers",
			Summary: "math/big values never mix with plain ints without an explicit conversion.",
			Expect:  []string{"3 0 10000000000000000", "-3 -4", "3 3", "false true"},
			Run:     bigint,
		},
		{Name: "string", Title: "String concatenation", Expect: []string{"samrid dangol", "samrid", "a-b-c"}, Run: stringOps},
		{
			Name:    "conditional",
			Title:   "Conditional expression",
			Summary: "No ternary operator: an if statement, or a small generic helper.",
			Expect:  []string{"adult", "adult"},
			Run:     conditional,
		},
		{
			Name:    "comma",
			Title:   "Parallel assignment in a loop",
			Summary: "Go has no comma operator; the post statement assigns both counters at once.",
			Expect:  []string{"a[0][9]= 9", "a[1][8]= 8", "a[2][7]= 7", "a[3][6]= 6", "a[4][5]= 5"},
			Run:     comma,
		},
		{
			Name:   "delete",
			Title:  "Deleting keys and elements",
			Expect: []string{"map[prop:object]", `"" false`, "map[]", "0", "[redwood cedar] 2"},
			Run:    deleteOps,
		},
		{
			Name:  "typeof",
			Title: "Inspecting types",
			Expect: []string{
				"func() string",
				"string",
				"int",
				"[]interface {}",
				"time.Time",
				"string",
				"int",
				"float64",
				"func(string) (int, error)",
				"<nil>",
				"func",
			},
			Run: typeOf,
		},
		{
			Name:    "in",
			Title:   "Membership",
			Summary: "Index bounds for slices, comma-ok for maps, slices.Contains for values.",
			Expect:  []string{"true false", "true", "5", "true false"},
			Run:     membership,
		},
		{
			Name:    "instanceof",
			Title:   "Type assertions",
			Expect:  []string{"It is not the instance of Map", "It is a slice of int", "true langtour.yaml"},
			Run:     instanceOf,
		},
	} {
		l.Topic = Topic
		r.RegisterLesson(l)
	}
}
