package operators

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/vk/langtour/internal/console"
)

func deleteOps(_ context.Context, c *console.Console) error {
	myObj := map[string]string{"prop": "object"}
	c.Log(myObj)

	delete(myObj, "prop")
	v, ok := myObj["prop"]
	c.Logf("%q %t", v, ok)
	c.Log(myObj)

	delete(myObj, "missing")
	c.Log(len(myObj))

	trees := []string{"redwood", "bay", "cedar"}
	trees = slices.Delete(trees, 1, 2)
	c.Log(trees, len(trees))
	return nil
}

func typeOf(_ context.Context, c *console.Console) error {
	fn := func() string { return "I'm a function" }
	funcType := "function literal"
	length := 1
	funcArray := []any{fn(), funcType, length}
	var today time.Time

	c.Logf("%T", fn)
	c.Logf("%T", funcType)
	c.Logf("%T", length)
	c.Logf("%T", funcArray)
	c.Logf("%T", today)
	c.Logf("%T", funcArray[1])
	c.Logf("%T", len(funcArray))
	c.Logf("%T", math.Pi)
	c.Logf("%T", strconv.Atoi)
	c.Logf("%T", nil)
	c.Log(reflect.TypeOf(fn).Kind())
	return nil
}

func membership(_ context.Context, c *console.Console) error {
	trees := []string{"redwood", "bay", "cedar", "oak", "maple"}
	inRange := func(i int) bool { return i >= 0 && i < len(trees) }
	c.Log(inRange(2), inRange(5))
	c.Log(slices.Contains(trees, "cedar"))
	c.Log(len(trees))

	myBike := map[string]any{"make": "Honda", "model": "Aviator", "year": 1998}
	_, hasMake := myBike["make"]
	_, hasColor := myBike["color"]
	c.Log(hasMake, hasColor)
	return nil
}

func instanceOf(_ context.Context, c *console.Console) error {
	var obj1 any = []int{}
	if _, ok := obj1.(map[string]int); ok {
		c.Log("It is the instance of Map")
	} else {
		c.Log("It is not the instance of Map")
	}

	switch obj1.(type) {
	case map[string]int:
		c.Log("It is a map")
	case []int:
		c.Log("It is a slice of int")
	}

	err := fmt.Errorf("open settings: %w", &fs.PathError{Op: "open", Path: "langtour.yaml", Err: fs.ErrNotExist})
	var pe *fs.PathError
	if errors.As(err, &pe) {
		c.Log(true, pe.Path)
	}
	return nil
}
