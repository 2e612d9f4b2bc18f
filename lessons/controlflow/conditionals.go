package controlflow

import (
	"context"

	"github.com/vk/langtour/internal/console"
)

func ifElse(_ context.Context, c *console.Console) error {
	learningGo := true
	if learningGo {
		c.Log("I'm learning Go.")
	} else {
		c.Log("I'm not learning Go.")
	}

	if n := 3; n > 10 {
		c.Log("big")
	} else {
		c.Log("small")
	}
	return nil
}

func switchStatement(_ context.Context, c *console.Console) error {
	relationshipStatus := "Single"
	switch relationshipStatus {
	case "Married":
		c.Log("I'm married.")
	case "Single":
		c.Log("I'm single.")
	default:
		c.Log("It's complicated.")
	}

	switch n := 1; n {
	case 1:
		c.Log("one")
		fallthrough
	case 2:
		c.Log("two")
	case 3:
		c.Log("three")
	}

	switch relationshipStatus = "Unknown"; relationshipStatus {
	case "Married", "Single":
		c.Log("It's simple.")
	default:
		c.Log("It's complicated.")
	}

	day := 6
	switch {
	case day == 0 || day == 6:
		c.Log("weekend")
	default:
		c.Log("weekday")
	}
	return nil
}
