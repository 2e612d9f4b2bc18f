package functions

import (
	"context"
	"fmt"

	"github.com/vk/langtour/internal/console"
)

func calcSquareArea(length int) string {
	return fmt.Sprintf("The area of the square is %d.", length*length)
}

func declaration(_ context.Context, c *console.Console) error {
	c.Log(calcSquareArea(12))
	return nil
}

type scooter struct {
	Model string
}

func renameCopy(s scooter) {
	s.Model = "ather"
}

func rename(s *scooter) {
	s.Model = "ather"
}

func newOffice(office []string) {
	office[0] = "AlpinistStudios"
}

func passByValue(_ context.Context, c *console.Console) error {
	s := scooter{Model: "aviator"}
	renameCopy(s)
	c.Log(s.Model)
	rename(&s)
	c.Log(s.Model)

	office := []string{"SnigdhTech"}
	c.Log(office[0])
	newOffice(office)
	c.Log(office[0])
	return nil
}

func addSquares(a, b int) int {
	square := func(x int) int {
		return x * x
	}
	return square(a) + square(b)
}

func nested(_ context.Context, c *console.Console) error {
	c.Log(addSquares(12, 16))
	return nil
}

func functionValues(_ context.Context, c *console.Console) error {
	calcSquareAreaExp := func(length int) string {
		return fmt.Sprintf("The area of the square is %d.", length*length)
	}
	c.Log(calcSquareAreaExp(12))

	var fact func(n int) int
	fact = func(n int) int {
		if n < 2 {
			return 1
		}
		return n * fact(n-1)
	}
	c.Log(fact(3))
	c.Log(fact(8))
	return nil
}

func conditional(_ context.Context, c *console.Console) error {
	var myFunction func()
	num := 0
	if num == 0 {
		myFunction = func() {
			c.Log("Function defined inside if statement is running")
		}
	}
	if myFunction != nil {
		myFunction()
	}
	return nil
}

func factorial(n int) int {
	if n == 0 || n == 1 {
		return 1
	}
	return n * factorial(n-1)
}

func recursion(_ context.Context, c *console.Console) error {
	c.Log(factorial(1), factorial(2), factorial(3), factorial(4), factorial(5))
	return nil
}

func declarationOrder(_ context.Context, c *console.Console) error {
	c.Log(square1(5))

	// A local function value is only usable after the assignment:
	// calling square2 above this line would not compile.
	square2 := func(n int) int { return n * n }
	c.Log(square2(5))
	return nil
}

func square1(n int) int {
	return n * n
}
