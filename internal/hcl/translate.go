package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/langtour/internal/config"
	"github.com/vk/langtour/internal/ctxlog"
	"github.com/vk/langtour/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateTopic converts a topic block into the agnostic model.
func translateTopic(b *schema.TopicBlock, source string) *config.Selection {
	return &config.Selection{Topic: b.Key, Source: source}
}

// translateLesson converts a lesson block into the agnostic model, evaluating
// its expect expression when one was written.
func (l *Loader) translateLesson(ctx context.Context, b *schema.LessonBlock, source string) (*config.Selection, error) {
	sel := &config.Selection{
		Topic:  b.Topic,
		Lesson: b.Name,
		Skip:   b.Skip,
		Source: source,
	}
	if !isExprDefined(ctx, b.Expect, "expect") {
		return sel, nil
	}

	lines, err := l.evalLines(b.Expect)
	if err != nil {
		return nil, fmt.Errorf("%s: lesson '%s/%s': %w", source, b.Topic, b.Name, err)
	}
	sel.Expect = lines
	sel.ExpectSet = true
	return sel, nil
}

// evalLines evaluates expr and binds the result to a list of strings. Numbers
// and bools inside the list are converted the way HCL templates would.
func (l *Loader) evalLines(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(l.evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid expect expression: %w", diags)
	}
	if val.IsNull() {
		return nil, fmt.Errorf("expect must not be null")
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("expect must be known at load time")
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("expect must be a list of strings: %w", err)
	}

	lines := []string{}
	if list.LengthInt() == 0 {
		return lines, nil
	}
	if err := gocty.FromCtyValue(list, &lines); err != nil {
		return nil, fmt.Errorf("failed to bind expect: %w", err)
	}
	return lines, nil
}

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional expression fields with a zero-width
// placeholder, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}
