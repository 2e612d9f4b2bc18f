package loops

import (
	"context"
	"maps"
	"slices"

	"github.com/vk/langtour/internal/console"
)

func forIn(_ context.Context, c *console.Console) error {
	car := map[string]string{"make": "Ford", "model": "Mustang"}

	for _, key := range slices.Sorted(maps.Keys(car)) {
		c.Logf("car.%s = %s", key, car[key])
	}
	return nil
}

func forOf(_ context.Context, c *console.Console) error {
	arr := []int{3, 5, 7}

	for i := range arr {
		c.Log(i)
	}
	for _, v := range arr {
		c.Log(v)
	}
	return nil
}

func entries(_ context.Context, c *console.Console) error {
	scooter := map[string]string{"make": "Honda", "model": "Aviator"}

	for _, key := range slices.Sorted(maps.Keys(scooter)) {
		val := scooter[key]
		c.Log(key, val)
	}
	return nil
}
