package loops

import (
	"context"

	"github.com/vk/langtour/internal/console"
)

func countedLoop(_ context.Context, c *console.Console) error {
	for i := 0; i < 5; i++ {
		c.Logf("%d -> for", i)
	}
	return nil
}

func doWhile(_ context.Context, c *console.Console) error {
	j := 0
	for {
		j++
		c.Logf("%d -> do-while", j)
		if j >= 5 {
			break
		}
	}
	return nil
}

func whileLoop(_ context.Context, c *console.Console) error {
	m := 0
	for m < 3 {
		m++
		c.Logf("%d ->while loop", m)
	}
	return nil
}

func breakLoop(_ context.Context, c *console.Console) error {
	arr := []int{8, 9, 10}
	theValue := 9

	for i := 0; i < len(arr); i++ {
		c.Logf("Current Iteration ; %d", i)
		if arr[i] == theValue {
			c.Logf("Value found at index %d of an array", i)
			break
		}
	}
	return nil
}

func continueLoop(_ context.Context, c *console.Console) error {
	i, total := 0, 0
	for i < 5 {
		i++
		if i == 3 {
			continue
		}
		total += i
		c.Log(total)
	}
	return nil
}
