package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/langtour/internal/console"
)

// Func is the body of a lesson. It prints to c and returns an error only when
// the lesson itself is broken; errors a lesson demonstrates are printed.
type Func func(ctx context.Context, c *console.Console) error

// Lesson is one annotated snippet.
type Lesson struct {
	Topic   string
	Name    string
	Title   string
	Summary string
	// Expect is the output the lesson's annotations document, line by line.
	Expect []string
	Run    Func
}

// ID returns the "topic/name" key of the lesson.
func (l *Lesson) ID() string {
	return l.Topic + "/" + l.Name
}

// Topic groups lessons about one area of the language.
type Topic struct {
	Key     string
	Title   string
	Summary string
	Order   int
}

// Module is the interface that all lesson packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the topics and lessons of a single application instance.
type Registry struct {
	topics  map[string]*Topic
	lessons map[string][]*Lesson
	index   map[string]*Lesson
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		topics:  make(map[string]*Topic),
		lessons: make(map[string][]*Lesson),
		index:   make(map[string]*Lesson),
	}
}

// RegisterTopic adds a topic. Registering a key twice is a programmer error.
func (r *Registry) RegisterTopic(t *Topic) {
	if _, exists := r.topics[t.Key]; exists {
		panic(fmt.Sprintf("topic '%s' already registered", t.Key))
	}
	slog.Debug("Registering topic.", "topic", t.Key)
	r.topics[t.Key] = t
}

// RegisterLesson adds a lesson to its topic, which must already be registered.
func (r *Registry) RegisterLesson(l *Lesson) {
	if _, ok := r.topics[l.Topic]; !ok {
		panic(fmt.Sprintf("lesson '%s' registered for unknown topic '%s'", l.Name, l.Topic))
	}
	if l.Run == nil {
		panic(fmt.Sprintf("lesson '%s' has no body", l.ID()))
	}
	if _, exists := r.index[l.ID()]; exists {
		panic(fmt.Sprintf("lesson '%s' already registered", l.ID()))
	}
	slog.Debug("Registering lesson.", "lesson", l.ID())
	r.index[l.ID()] = l
	r.lessons[l.Topic] = append(r.lessons[l.Topic], l)
}

// Lookup returns the lesson registered under topic and name.
func (r *Registry) Lookup(topic, name string) (*Lesson, bool) {
	l, ok := r.index[topic+"/"+name]
	return l, ok
}

// Topic returns the topic registered under key.
func (r *Registry) Topic(key string) (*Topic, bool) {
	t, ok := r.topics[key]
	return t, ok
}

// Topics returns every topic ordered by Order, then Key.
func (r *Registry) Topics() []*Topic {
	out := make([]*Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Lessons returns the lessons of a topic in registration order.
func (r *Registry) Lessons(topic string) []*Lesson {
	return append([]*Lesson(nil), r.lessons[topic]...)
}

// All returns every lesson, topics in order, lessons in registration order.
func (r *Registry) All() []*Lesson {
	var out []*Lesson
	for _, t := range r.Topics() {
		out = append(out, r.lessons[t.Key]...)
	}
	return out
}

// Len returns the number of registered lessons.
func (r *Registry) Len() int {
	return len(r.index)
}
