package dynamic

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/langtour/internal/console"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

func typeOf(_ context.Context, c *console.Console) error {
	sources := []string{
		`"Samrid Dangol"`,
		`28`,
		`true`,
		`null`,
		`{ firstName = "Samrid", age = 27 }`,
		`["HTML", "CSS"]`,
	}

	for _, src := range sources {
		v, err := eval(src, nil)
		if err != nil {
			return err
		}
		c.Logf("%s is %s", src, v.Type().FriendlyName())
	}

	obj, err := eval(`{ firstName = "Samrid", age = 27 }`, nil)
	if err != nil {
		return err
	}
	s, err := render(obj)
	if err != nil {
		return err
	}
	c.Log(s)
	return nil
}

func equality(_ context.Context, c *console.Console) error {
	three := cty.NumberIntVal(3)
	threeStr := cty.StringVal("3")
	c.Log(three.Equals(threeStr).True())

	v, err := eval(`3 == "3"`, nil)
	if err != nil {
		return err
	}
	c.Log(v.True())

	converted, err := convert.Convert(threeStr, cty.Number)
	if err != nil {
		return err
	}
	c.Log(three.Equals(converted).True())

	asString, err := convert.Convert(cty.NumberIntVal(42), cty.String)
	if err != nil {
		return err
	}
	c.Log(asString.AsString(), asString.Type() == cty.String)

	_, err = convert.Convert(cty.StringVal("Samrid"), cty.Number)
	c.Log(err != nil)
	return nil
}

func nullAndUnknown(_ context.Context, c *console.Console) error {
	null := cty.NullVal(cty.String)
	c.Log(null.IsNull(), null.IsKnown())

	unknown := cty.UnknownVal(cty.String)
	c.Log(unknown.IsNull(), unknown.IsKnown())

	// Anything compared with an unknown is itself unknown.
	c.Log(unknown.Equals(cty.StringVal("x")).IsKnown())
	c.Log(null.Equals(cty.NullVal(cty.String)).True())

	v, err := eval(`coalesce(nickname, name)`, map[string]cty.Value{
		"nickname": cty.NullVal(cty.String),
		"name":     cty.StringVal("Samrid"),
	})
	if err != nil {
		return err
	}
	c.Log(v.AsString())

	// A name that was never declared is an error, not a value.
	_, err = eval(`undeclared`, nil)
	c.Log(err != nil)
	return nil
}

func templateLiteral(_ context.Context, c *console.Console) error {
	vars := map[string]cty.Value{
		"first":    cty.StringVal("Samrid"),
		"last":     cty.StringVal("Dangol"),
		"age":      cty.NumberIntVal(27),
		"studying": cty.True,
	}

	for _, src := range []string{
		"My name is ${first} ${last} and I'm ${age} years old. It is ${studying} that I'm studying Go.",
		"%{ if age >= 18 }adult%{ else }minor%{ endif }",
	} {
		tmpl, diags := hclsyntax.ParseTemplate([]byte(src), "lesson.hcl", hcl.InitialPos)
		if diags.HasErrors() {
			return diags
		}
		v, diags := tmpl.Value(newEvalContext(vars))
		if diags.HasErrors() {
			return diags
		}
		c.Log(v.AsString())
	}
	return nil
}

func precedence(_ context.Context, c *console.Console) error {
	for _, src := range []string{"1 + 2 * 3", "(1 + 2) * 3", "7 / 2", "10 % 3"} {
		v, err := eval(src, nil)
		if err != nil {
			return err
		}
		s, err := render(v)
		if err != nil {
			return err
		}
		c.Logf("%s = %s", src, s)
	}
	return nil
}

func conditional(_ context.Context, c *console.Console) error {
	for _, age := range []int64{27, 12} {
		v, err := eval(`age >= 18 ? "adult" : "minor"`, map[string]cty.Value{"age": cty.NumberIntVal(age)})
		if err != nil {
			return err
		}
		c.Log(v.AsString())
	}

	v, err := eval(`true ? 1 : "one"`, nil)
	if err != nil {
		return err
	}
	s, err := render(v)
	if err != nil {
		return err
	}
	c.Log(s, v.Type().FriendlyName())
	return nil
}
