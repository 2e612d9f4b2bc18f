package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/langtour/internal/config"
	"github.com/vk/langtour/internal/ctxlog"
)

// Validate checks that every topic and lesson the plan references is
// registered. All problems are reported in a single error.
func (r *Registry) Validate(ctx context.Context, plan *config.Model) error {
	if plan.Empty() {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for _, sel := range plan.Selections {
		if _, ok := r.topics[sel.Topic]; !ok {
			errs = append(errs, fmt.Sprintf("%s: unknown topic '%s'", sel.Source, sel.Topic))
			continue
		}
		if sel.IsTopic() {
			if sel.ExpectSet {
				errs = append(errs, fmt.Sprintf("%s: topic '%s' cannot declare expect; set it on a lesson", sel.Source, sel.Topic))
			}
			continue
		}
		if _, ok := r.Lookup(sel.Topic, sel.Lesson); !ok {
			errs = append(errs, fmt.Sprintf("%s: unknown lesson '%s'", sel.Source, sel.ID()))
			continue
		}
		if sel.Skip && sel.ExpectSet {
			logger.Warn("Plan sets expect on a skipped lesson; it will not be checked.", "lesson", sel.ID(), "source", sel.Source)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("plan validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
