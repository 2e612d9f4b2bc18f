package operators

import (
	"context"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/vk/langtour/internal/console"
)

func comparison(_ context.Context, c *console.Console) error {
	var1, var2 := 3, 4
	c.Log(var1 == 3, var1 != 4, var2 > var1, var2 >= var1, var1 < var2, var1 <= var2)

	// "3" == var1 does not compile; convert one side explicitly.
	n, err := strconv.Atoi("3")
	if err != nil {
		return err
	}
	c.Log(n == var1, strconv.Itoa(var1) == "3")

	twelve, two := "12", "2"
	c.Log(twelve > two)
	return nil
}

func arithmetic(_ context.Context, c *console.Console) error {
	x, y := 2, 3
	c.Log(x+y, x-y, x*y, x/y)
	c.Log(float64(x) / float64(y))
	return nil
}

func remainderPower(_ context.Context, c *console.Console) error {
	x, y := 2, 3
	c.Log(x%y, int(math.Pow(float64(x), float64(y))))

	// The sign follows the dividend.
	n := -7
	c.Log(n % 3)
	return nil
}

func increment(_ context.Context, c *console.Console) error {
	n := 1
	n++
	c.Log(n)
	// c.Log(n++) does not compile.
	n--
	c.Log(n)
	return nil
}

func unary(_ context.Context, c *console.Console) error {
	e := 1
	c.Log(-e)
	c.Log(+e)

	n, err := strconv.Atoi("1")
	c.Logf("%T %d %v", n, n, err)

	c.Log(boolToInt(true))
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func bigint(_ context.Context, c *console.Console) error {
	b1 := new(big.Int).Add(big.NewInt(1), big.NewInt(2))
	b2 := new(big.Int).Quo(big.NewInt(1), big.NewInt(2))
	n, _ := new(big.Int).SetString("40000000000000000", 10)
	b3 := new(big.Int).Rsh(n, 2)
	c.Log(b1, b2, b3)

	// Quo truncates toward zero; Div is Euclidean.
	q := new(big.Int).Quo(big.NewInt(-7), big.NewInt(2))
	d := new(big.Int).Div(big.NewInt(-7), big.NewInt(2))
	c.Log(q, d)

	// big.NewInt(1) + 2 does not compile.
	one := big.NewInt(1)
	ec1 := one.Int64() + 2
	ec2 := new(big.Int).Add(one, big.NewInt(2))
	c.Log(ec1, ec2)

	c.Log(one.Cmp(big.NewInt(2)) > 0, big.NewInt(3).Cmp(big.NewInt(2)) > 0)
	return nil
}

func stringOps(_ context.Context, c *console.Console) error {
	c.Log("samrid " + "dangol")

	myString := "sam"
	myString += "rid"
	c.Log(myString)

	var sb strings.Builder
	for i, part := range []string{"a", "b", "c"} {
		if i > 0 {
			sb.WriteString("-")
		}
		sb.WriteString(part)
	}
	c.Log(sb.String())
	return nil
}
