// Package schema holds the gohcl decoding targets for tour plan files.
package schema

import "github.com/hashicorp/hcl/v2"

// TourBlock carries plan-wide settings.
type TourBlock struct {
	Title string `hcl:"title,optional"`
}

// TopicBlock selects every lesson of a topic.
type TopicBlock struct {
	Key string `hcl:"key,label"`
}

// LessonBlock selects a single lesson and may override its expectation.
type LessonBlock struct {
	Topic  string         `hcl:"topic,label"`
	Name   string         `hcl:"name,label"`
	Expect hcl.Expression `hcl:"expect,optional"`
	Skip   bool           `hcl:"skip,optional"`
}

// PlanFile is the top-level structure of a plan file.
type PlanFile struct {
	Tour    *TourBlock     `hcl:"tour,block"`
	Topics  []*TopicBlock  `hcl:"topic,block"`
	Lessons []*LessonBlock `hcl:"lesson,block"`
}
