package operators

import (
	"cmp"
	"context"

	"github.com/vk/langtour/internal/console"
)

func bitwiseLogical(_ context.Context, c *console.Console) error {
	num1, num2 := 15, 9
	c.Log(num1&num2, num1|num2, num1^num2)
	c.Log(^num1, ^num2)
	c.Log(num1 &^ num2)
	c.Logf("%04b", num1^num2)
	return nil
}

func bitwiseShift(_ context.Context, c *console.Console) error {
	n := 9
	c.Log(n<<2, n>>2)

	m := -9
	c.Log(m >> 2)

	m32 := int32(-9)
	c.Log(uint32(m32) >> 2)

	// Converting to a narrower type keeps the low bits.
	wide := int64(1)<<32 + 5
	c.Log(int32(wide))
	return nil
}

// coalesce returns *p, or fallback when p is nil.
func coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

func logical(_ context.Context, c *console.Console) error {
	yes, alsoYes := true, true
	no, alsoNo := false, false
	c.Log(yes && alsoYes, yes && no, no && yes, no && alsoNo)
	c.Log(yes || alsoYes, no || yes, yes || no, no || alsoNo)
	c.Log(!yes, !no)

	c.Log(cmp.Or("Cat", "Dog"), cmp.Or("", "Cat"), cmp.Or(0, 4))

	zero := 0
	c.Log(coalesce[int](nil, 1), coalesce(&zero, 4))
	return nil
}

// ternary evaluates both branches before choosing, unlike an if statement.
func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

func conditional(_ context.Context, c *console.Console) error {
	age := 27

	status := "minor"
	if age >= 18 {
		status = "adult"
	}
	c.Log(status)

	c.Log(ternary(age >= 18, "adult", "minor"))
	return nil
}

func comma(_ context.Context, c *console.Console) error {
	x := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := [][]int{x, x, x, x, x}

	for i, j := 0, 9; i <= j; i, j = i+1, j-1 {
		c.Logf("a[%d][%d]= %d", i, j, a[i][j])
	}
	return nil
}
