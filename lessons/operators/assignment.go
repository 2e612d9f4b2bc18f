package operators

import (
	"context"
	"math"

	"github.com/vk/langtour/internal/console"
)

func f() int {
	return 5
}

func assignment(_ context.Context, c *console.Console) error {
	a := 4
	b := f()
	c.Log(a)
	c.Log(b)
	return nil
}

func precedence(_ context.Context, c *console.Console) error {
	p, q := 1+2*3, 2*3+1
	c.Log(p, q)
	r := (1 + 2) * 3
	c.Log(r)
	return nil
}

func compoundAssignment(_ context.Context, c *console.Console) error {
	a := 4
	b := float64(f())

	a += 1
	b -= 1
	c.Log(a, b)

	a *= 2
	b /= 2
	c.Log(a, b)

	a %= 3
	b = math.Pow(b, 3)
	c.Log(a, b)

	a += f()
	b -= float64(f())
	c.Log(a, b)

	a *= f()
	b /= float64(f())
	c.Log(a, b)

	a %= f()
	b = math.Pow(b, float64(f()))
	// 0.6 has no exact binary form, so the power is rounded for display.
	c.Logf("%d %.5g", a, b)
	return nil
}

type point struct {
	X, Y int
}

func properties(_ context.Context, c *console.Console) error {
	obj := map[string]int{}
	obj["x"] = 3
	c.Log(obj["x"])
	c.Log(obj)

	key := "y"
	obj[key] = 5
	c.Log(obj[key])
	c.Log(obj)

	var pt point
	pt.X = 3
	c.Logf("%+v", pt)
	return nil
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

func destructuring(_ context.Context, c *console.Console) error {
	foo := []string{"one", "two", "three"}
	one, two, three := foo[0], foo[1], foo[2]
	c.Log(one, two, three)

	fooo := [3]string{"four", "five", "six"}
	four, five, six := fooo[0], fooo[1], fooo[2]
	c.Log(four, five, six)

	quotient, remainder := divmod(17, 5)
	c.Log(quotient, remainder)

	x, y := 1, 2
	x, y = y, x
	c.Log(x, y)
	return nil
}
