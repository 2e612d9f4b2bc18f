package app

import (
	"fmt"
	"strings"
)

// List writes the catalog of topics and lessons to the App's output, in run
// order. Selectors narrow it the same way they narrow Run.
func (a *App) List() error {
	entries, err := a.registry.Resolve(a.plan, a.cfg.Selectors)
	if err != nil {
		return err
	}

	var b strings.Builder
	topic := ""
	for _, e := range entries {
		l := e.Lesson
		if l.Topic != topic {
			topic = l.Topic
			t, _ := a.registry.Topic(topic)
			fmt.Fprintf(&b, "%s: %s\n", t.Key, t.Title)
		}
		fmt.Fprintf(&b, "  %-32s %s\n", l.ID(), l.Title)
	}
	_, err = fmt.Fprint(a.outW, b.String())
	return err
}
