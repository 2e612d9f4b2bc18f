package literals

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/vk/langtour/internal/console"
)

type family struct {
	Father string
	Mother string
	Child  map[int]string
}

func arrayLiteral(_ context.Context, c *console.Console) error {
	fruits := []string{"apple", "banana", "orange"}
	c.Log(len(fruits))

	fixed := [...]string{"apple", "banana", "orange"}
	c.Logf("%T", fixed)
	c.Log(fixed)
	return nil
}

func booleanLiteral(_ context.Context, c *console.Console) error {
	isWinter := true
	isSummer := !isWinter
	c.Log(isWinter)
	c.Log(isSummer)
	return nil
}

func numericLiteral(_ context.Context, c *console.Console) error {
	num := 100
	pi := 3.14159265359
	c.Log(num, pi)
	c.Log(0xFF, 0o17, 0b1010, 1_000_000)
	c.Log(1e3, 2.5e-3)
	return nil
}

func objectLiteral(_ context.Context, c *console.Console) error {
	f := family{
		Father: "Harsha Narayan Dangol",
		Mother: "Maiya Dangol",
		Child:  map[int]string{4: "Samrid Dangol"},
	}
	c.Log(f.Father, f.Mother, f.Child[4])
	c.Log(f.Child)
	return nil
}

func regexpLiteral(_ context.Context, c *console.Console) error {
	re := regexp.MustCompile(`ab+c`)
	c.Log(re)
	c.Log(re.MatchString("abbbc"), re.MatchString("ac"))
	return nil
}

func stringLiteral(_ context.Context, c *console.Console) error {
	familyName := "Dangol"
	c.Log(familyName, len(familyName))
	c.Log(`C:\path\to\file`)
	c.Log(len("héllo"), utf8.RuneCountInString("héllo"))
	return nil
}

func templateLiteral(_ context.Context, c *console.Console) error {
	firstName, lastName := "Samrid", "Dangol"
	age := 27
	studying := true
	c.Log(fmt.Sprintf("My name is %s %s and I'm %d years old. It is %t that I'm studying Go.",
		firstName, lastName, age, studying))
	return nil
}
