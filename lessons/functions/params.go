package functions

import (
	"context"
	"time"

	"github.com/vk/langtour/internal/console"
)

func multiply(a int, opt ...int) int {
	b := 1
	if len(opt) > 0 {
		b = opt[0]
	}
	return a * b
}

func defaultParams(_ context.Context, c *console.Console) error {
	c.Log(multiply(5))
	c.Log(multiply(5, 2))
	return nil
}

func scaleAll(multiplier int, args ...int) []int {
	out := make([]int, 0, len(args))
	for _, x := range args {
		out = append(out, multiplier*x)
	}
	return out
}

func restParams(_ context.Context, c *console.Console) error {
	c.Log(scaleAll(2, 1, 2, 3))
	nums := []int{1, 2, 3}
	c.Log(scaleAll(3, nums...))
	c.Log(scaleAll(4))
	return nil
}

func mapInts(f func(int) int, a []int) []int {
	result := make([]int, len(a))
	for i, v := range a {
		result[i] = f(v)
	}
	return result
}

func higherOrder(_ context.Context, c *console.Console) error {
	cube := func(x int) int { return x * x * x }
	numbers := []int{0, 1, 2, 5, 10}
	c.Log(mapInts(cube, numbers))
	return nil
}

func arrow(_ context.Context, c *console.Console) error {
	elements := []string{"Hydrogen", "Helium", "Lithium", "Beryllium"}

	length := func(s string) int { return len(s) }
	lengths := make([]int, 0, len(elements))
	for _, e := range elements {
		lengths = append(lengths, length(e))
	}
	c.Log(lengths)
	return nil
}

func timer(ctx context.Context, c *console.Console) error {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	done := make(chan int, 1)
	go func() {
		count := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count++
				c.Logf("tick %d", count)
				if count == 3 {
					done <- count
					return
				}
			}
		}
	}()

	select {
	case n := <-done:
		c.Logf("counter stopped at %d", n)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
