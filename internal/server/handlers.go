package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vk/langtour/internal/registry"
)

// LessonInfo describes a lesson without running it.
type LessonInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Summary string   `json:"summary,omitempty"`
	Expect  []string `json:"expect"`
}

// TopicInfo describes a topic and its lessons.
type TopicInfo struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Summary string       `json:"summary,omitempty"`
	Lessons []LessonInfo `json:"lessons"`
}

func (s *Server) topicInfo(t *registry.Topic) TopicInfo {
	info := TopicInfo{Key: t.Key, Title: t.Title, Summary: t.Summary, Lessons: []LessonInfo{}}
	for _, l := range s.registry.Lessons(t.Key) {
		info.Lessons = append(info.Lessons, LessonInfo{
			Name:    l.Name,
			Title:   l.Title,
			Summary: l.Summary,
			Expect:  l.Expect,
		})
	}
	return info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	topics := s.registry.Topics()
	out := make([]TopicInfo, 0, len(topics))
	for _, t := range topics {
		out = append(out, s.topicInfo(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "topic")
	t, ok := s.registry.Topic(key)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown topic '%s'", key))
		return
	}
	writeJSON(w, http.StatusOK, s.topicInfo(t))
}

func (s *Server) handleRunLesson(w http.ResponseWriter, r *http.Request) {
	topic, name := chi.URLParam(r, "topic"), chi.URLParam(r, "name")
	l, ok := s.registry.Lookup(topic, name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown lesson '%s/%s'", topic, name))
		return
	}

	res := s.runner.RunOne(r.Context(), registry.Entry{Lesson: l, Expect: l.Expect})
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
