package loops

import (
	"context"

	"github.com/vk/langtour/internal/console"
)

func labeledBreak(_ context.Context, c *console.Console) error {
	p := 0
	var q int

cancelLoops:
	for {
		c.Log("Outer loops:", p)
		p++
		q = 1
		for {
			c.Log("Inner loops:", q)
			q++
			if q == 3 && p == 3 {
				break cancelLoops
			} else if q == 3 {
				break
			}
		}
	}
	return nil
}

func labeledContinue(_ context.Context, c *console.Console) error {
	i1, j1 := 0, 10

	// Go rejects labels that are never used, so only the inner loop is named.
	for i1 < 4 {
		c.Log(i1)
		i1++

	checkJ:
		for j1 > 4 {
			c.Log(j1)
			j1--
			if j1%2 == 0 {
				continue checkJ
			}
			c.Log(j1, "is odd.")
		}
		c.Logf("i1 = %d", i1)
		c.Logf("j1 = %d", j1)
	}

	// A labeled continue on the outer loop abandons the rest of the row.
rows:
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j == 2 {
				continue rows
			}
			if i == j {
				continue
			}
			c.Logf("(%d,%d)", i, j)
		}
	}
	return nil
}
