package variables

import (
	"context"

	"github.com/vk/langtour/internal/console"
)

// total refers to base, which is declared after it.
var total = base * 2

var base = 21

var q = 4

func declaration(_ context.Context, c *console.Console) error {
	var x int
	c.Log(x)
	x = 123
	c.Log(x)

	var s string
	c.Logf("%q", s)

	var p *int
	c.Log(p)
	return nil
}

func constants(_ context.Context, c *console.Console) error {
	const PI = 3.14
	c.Log(PI)
	// PI = 3.15 does not compile: cannot assign to PI.

	myObject := map[string]string{"key": "value"}
	myObject["key"] = "otherValue"
	c.Log(myObject)

	myArray := []string{"HTML", "CSS"}
	myArray = append(myArray, "GO")
	c.Log(myArray)
	return nil
}

func blockScope(_ context.Context, c *console.Console) error {
	a := 0
	if a == 0 {
		a = 1
		b := 2
		_ = b
	}
	c.Log(a)
	// c.Log(b) does not compile: undefined: b

	x := "outer"
	if x != "" {
		x := "inner"
		c.Log(x)
	}
	c.Log(x)
	return nil
}

func hoisting(_ context.Context, c *console.Console) error {
	c.Log(laterDeclared)
	c.Log(total)

	// Inside a function the order is strict: using z before this line
	// would be a compile error, not a zero value.
	var z int
	c.Log(z == 0)
	return nil
}

var laterDeclared = "declared below"

func packageQ() int {
	return q
}

func globals(_ context.Context, c *console.Console) error {
	r := 5
	c.Log(q, r)

	q := q + 1
	c.Log(q, packageQ())
	return nil
}
