package functions

import (
	"context"

	"github.com/vk/langtour/internal/console"
)

func pet(name string) func() string {
	getName := func() string {
		return name
	}
	return getName
}

func makeCounter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

func closures(_ context.Context, c *console.Console) error {
	myPet := pet("Vivie")
	c.Log(myPet())

	next := makeCounter()
	next()
	next()
	c.Log(next())
	return nil
}

func scopeChain(_ context.Context, c *console.Console) error {
	a := func(x int) {
		b := func(y int) {
			cc := func(z int) {
				c.Log(x + y + z)
			}
			cc(3)
		}
		b(2)
	}
	a(1)
	return nil
}

func outside() func(int) int {
	x := 5
	inside := func(x int) int {
		return x * 2
	}
	_ = x // never read: the parameter of inside shadows it
	return inside
}

func nameConflicts(_ context.Context, c *console.Console) error {
	c.Log(outside()(10))
	return nil
}
