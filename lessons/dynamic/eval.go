package dynamic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

func newEvalContext(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: vars,
		Functions: map[string]function.Function{
			"coalesce": stdlib.CoalesceFunc,
		},
	}
}

// eval parses src as a single expression and evaluates it.
func eval(src string, vars map[string]cty.Value) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "lesson.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse %q: %w", src, diags)
	}
	val, diags := expr.Value(newEvalContext(vars))
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate %q: %w", src, diags)
	}
	return val, nil
}

// render formats a known primitive the way a template would print it and
// falls back to JSON for anything else.
func render(v cty.Value) (string, error) {
	switch {
	case v.IsNull():
		return "null", nil
	case !v.IsKnown():
		return "(unknown)", nil
	case v.Type() == cty.String:
		return v.AsString(), nil
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	case v.Type() == cty.Bool:
		return strconv.FormatBool(v.True()), nil
	}

	b, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "", fmt.Errorf("failed to render %s value: %w", v.Type().FriendlyName(), err)
	}
	return strings.TrimSpace(string(b)), nil
}
