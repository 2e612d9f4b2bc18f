package controlflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/langtour/internal/console"
)

// The message is printed as is, so it keeps its capital.
var errInvalidDay = errors.New("Invalid day code")

var days = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// dayError reports a day code outside 1..7.
type dayError struct {
	Day int
}

func (e *dayError) Error() string {
	return fmt.Sprintf("invalid day code %d", e.Day)
}

func evaluateDayName(c *console.Console, day int) (string, error) {
	day--
	if day < 0 || day >= len(days) {
		return "", errInvalidDay
	}
	c.Logf("It's %s.", days[day])
	return days[day], nil
}

func exceptions(_ context.Context, c *console.Console) error {
	today, tomorrow := 9, 5

	func() {
		defer c.Log("Have a nice day!")

		if _, err := evaluateDayName(c, tomorrow); err != nil {
			c.Error(err)
			return
		}
		if _, err := evaluateDayName(c, today); err != nil {
			c.Errorf("%T", err)
			c.Error(err)
			return
		}
	}()
	return nil
}

func mustDayName(day int) string {
	if day < 1 || day > len(days) {
		panic(&dayError{Day: day})
	}
	return days[day-1]
}

func safeDayName(day int) (name string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return mustDayName(day), nil
}

func panicRecover(_ context.Context, c *console.Console) error {
	c.Log(safeDayName(2))

	name, err := safeDayName(9)
	c.Logf("%q %v", name, err)

	wrapped := fmt.Errorf("loading schedule: %w", &dayError{Day: 0})
	var de *dayError
	if errors.As(wrapped, &de) {
		c.Log(true, de.Day)
	}
	c.Log(errors.Is(fmt.Errorf("lookup: %w", errInvalidDay), errInvalidDay))

	func() {
		for i := 1; i <= 3; i++ {
			defer c.Log("deferred", i)
		}
	}()
	return nil
}
