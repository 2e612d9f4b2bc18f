package datatypes

import (
	"context"
	"math/big"

	"github.com/vk/langtour/internal/console"
)

// symbol values are only ever equal to themselves.
type symbol struct {
	desc string
}

type person struct {
	FirstName string
	Age       int
}

func primitives(_ context.Context, c *console.Console) error {
	name := "Samrid Dangol"
	age := 28
	pi := 3.14159
	isStudent := true
	c.Logf("%T", name)
	c.Logf("%T", age)
	c.Logf("%T", pi)
	c.Logf("%T", isStudent)

	var empty *string
	c.Logf("%T %t", empty, empty == nil)

	var x1 int
	c.Log(x1)

	// 2^53 + 1 is past what a float64 holds exactly.
	bigInteger, _ := new(big.Int).SetString("9007199254740993", 10)
	c.Logf("%T %v", bigInteger, bigInteger)

	id := &symbol{desc: "id"}
	c.Logf("%T %t", id, id == &symbol{desc: "id"})
	return nil
}

func composites(_ context.Context, c *console.Console) error {
	p := person{FirstName: "Samrid", Age: 27}
	c.Logf("%T", p)
	c.Logf("%+v", p)

	m := map[string]any{"firstName": "Samrid", "age": 27}
	c.Logf("%T", m)
	c.Log(m)

	skills := []string{"HTML", "CSS"}
	c.Logf("%T", skills)
	c.Log(skills)
	return nil
}
