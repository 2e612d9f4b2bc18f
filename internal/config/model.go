package config

// Model is the unified representation of a tour plan.
type Model struct {
	Title      string
	Selections []*Selection
}

// Selection picks a whole topic (Lesson empty) or a single lesson.
type Selection struct {
	Topic  string
	Lesson string

	// Expect replaces the lesson's built-in expected output when ExpectSet
	// is true. An empty Expect with ExpectSet asserts the lesson prints nothing.
	Expect    []string
	ExpectSet bool

	Skip bool

	// Source is the "file:line" the selection was declared at, for errors.
	Source string
}

// IsTopic reports whether the selection covers a whole topic.
func (s *Selection) IsTopic() bool {
	return s.Lesson == ""
}

// ID returns the "topic" or "topic/lesson" key of the selection.
func (s *Selection) ID() string {
	if s.IsTopic() {
		return s.Topic
	}
	return s.Topic + "/" + s.Lesson
}

// Empty reports whether the plan selects nothing, meaning "run everything".
func (m *Model) Empty() bool {
	return m == nil || len(m.Selections) == 0
}
