package registry

import (
	"fmt"
	"strings"

	"github.com/vk/langtour/internal/config"
)

// Entry is a lesson scheduled to run together with the output it must print.
type Entry struct {
	Lesson *Lesson
	Expect []string
}

// Selector is a parsed "topic" or "topic/lesson" command-line argument.
type Selector struct {
	Topic  string
	Lesson string
}

// ParseSelector parses "topic" or "topic/lesson".
func ParseSelector(s string) (Selector, error) {
	topic, lesson, _ := strings.Cut(strings.TrimSpace(s), "/")
	if topic == "" || strings.Contains(lesson, "/") {
		return Selector{}, fmt.Errorf("invalid selector %q: want 'topic' or 'topic/lesson'", s)
	}
	return Selector{Topic: topic, Lesson: lesson}, nil
}

func (s Selector) matches(l *Lesson) bool {
	return s.Topic == l.Topic && (s.Lesson == "" || s.Lesson == l.Name)
}

// Resolve expands a plan into the ordered lessons to run, then narrows them to
// the given selectors. An empty plan selects every lesson. Lesson-level plan
// selections override the expectations and skip flag of the topic they belong
// to, whatever their position in the plan.
func (r *Registry) Resolve(plan *config.Model, selectors []string) ([]Entry, error) {
	sels := make([]Selector, 0, len(selectors))
	for _, raw := range selectors {
		sel, err := ParseSelector(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := r.topics[sel.Topic]; !ok {
			return nil, fmt.Errorf("unknown topic '%s'", sel.Topic)
		}
		if sel.Lesson != "" {
			if _, ok := r.Lookup(sel.Topic, sel.Lesson); !ok {
				return nil, fmt.Errorf("unknown lesson '%s/%s'", sel.Topic, sel.Lesson)
			}
		}
		sels = append(sels, sel)
	}

	var ordered []*Lesson
	overrides := make(map[string]*config.Selection)
	if plan.Empty() {
		ordered = r.All()
	} else {
		seen := make(map[string]bool)
		add := func(l *Lesson) {
			if !seen[l.ID()] {
				seen[l.ID()] = true
				ordered = append(ordered, l)
			}
		}
		for _, sel := range plan.Selections {
			if sel.IsTopic() {
				for _, l := range r.lessons[sel.Topic] {
					add(l)
				}
				continue
			}
			l, ok := r.Lookup(sel.Topic, sel.Lesson)
			if !ok {
				return nil, fmt.Errorf("%s: unknown lesson '%s'", sel.Source, sel.ID())
			}
			add(l)
			overrides[l.ID()] = sel
		}
	}

	entries := make([]Entry, 0, len(ordered))
	for _, l := range ordered {
		if len(sels) > 0 && !matchesAny(sels, l) {
			continue
		}
		entry := Entry{Lesson: l, Expect: l.Expect}
		if sel, ok := overrides[l.ID()]; ok {
			if sel.Skip {
				continue
			}
			if sel.ExpectSet {
				entry.Expect = sel.Expect
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func matchesAny(sels []Selector, l *Lesson) bool {
	for _, s := range sels {
		if s.matches(l) {
			return true
		}
	}
	return false
}
