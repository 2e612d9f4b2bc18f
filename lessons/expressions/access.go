package expressions

import (
	"context"
	"fmt"

	"github.com/vk/langtour/internal/console"
)

type son struct {
	FirstName string
	Nickname  *string
}

// Name works on a nil *son.
func (s *son) Name() string {
	if s == nil {
		return ""
	}
	return s.FirstName
}

func initial(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return (*p)[:1], true
}

func deref(p *string) (v string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return *p, nil
}

func optionalChaining(_ context.Context, c *console.Console) error {
	s := &son{FirstName: "Samrid"}
	c.Log(s.Nickname)

	if _, err := deref(s.Nickname); err != nil {
		c.Error(err)
	}

	v, ok := initial(s.Nickname)
	c.Logf("%q %t", v, ok)

	c.Log(s.FirstName)
	c.Log(initial(&s.FirstName))

	var nobody *son
	c.Logf("%q", nobody.Name())
	return nil
}

func allocation(_ context.Context, c *console.Console) error {
	members := []string{"Dad", "Mom"}
	c.Log(members)
	c.Logf("%T", members)

	p := new(int)
	c.Log(*p)

	ages := make(map[string]int, 2)
	ages["Dad"] = 60
	c.Log(len(ages))
	return nil
}

type parent struct {
	LastName string
}

func (p parent) Greeting() string {
	return "Hello from the " + p.LastName + " family"
}

type child struct {
	parent
	FirstName string
}

// Greeting extends the embedded parent's greeting.
func (ch child) Greeting() string {
	return ch.parent.Greeting() + ", I'm " + ch.FirstName
}

func newChild(firstName, lastName string) child {
	return child{parent: parent{LastName: lastName}, FirstName: firstName}
}

func embedding(_ context.Context, c *console.Console) error {
	ch := newChild("Samrid", "Dangol")
	c.Log(ch.FirstName)
	c.Log(ch.LastName)
	c.Log(ch.Greeting())
	return nil
}
