package expressions

import (
	"context"
	"reflect"

	"github.com/vk/langtour/internal/console"
)

type person struct {
	FirstName  string
	MiddleName string
	LastName   string
}

// FullName skips an empty middle name.
func (p person) FullName() string {
	if p.MiddleName != "" {
		return p.FirstName + " " + p.MiddleName + " " + p.LastName
	}
	return p.FirstName + " " + p.LastName
}

var (
	father = person{FirstName: "Harsha", MiddleName: "Narayan", LastName: "Dangol"}
	mother = person{FirstName: "Maiya", LastName: "Dangol"}
)

func receivers(_ context.Context, c *console.Console) error {
	c.Logf("%+v", father)
	c.Log(father.FullName())
	c.Logf("%+v", mother)
	c.Log(mother.FullName())

	// A method value binds its receiver.
	getName := father.FullName
	c.Log(getName())
	return nil
}

func grouping(_ context.Context, c *console.Console) error {
	a, b, d := 1, 2, 3

	numOne := a + b*d
	numTwo := a + (b * d) + 2
	numThree := (a + b) * d
	c.Log(numOne)
	c.Log(numTwo)
	c.Log(numThree)
	return nil
}

func propertyAccess(_ context.Context, c *console.Console) error {
	c.Log(father.FirstName)

	names := map[string]string{"middleName": "Narayan"}
	c.Log(names["middleName"])

	// Looking a field up by a name only known at run time needs reflection.
	c.Log(reflect.ValueOf(mother).FieldByName("LastName").String())
	return nil
}
