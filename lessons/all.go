// Package lessons lists every topic module of the tour.
package lessons

import (
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/lessons/controlflow"
	"github.com/vk/langtour/lessons/datatypes"
	"github.com/vk/langtour/lessons/dynamic"
	"github.com/vk/langtour/lessons/expressions"
	"github.com/vk/langtour/lessons/functions"
	"github.com/vk/langtour/lessons/literals"
	"github.com/vk/langtour/lessons/loops"
	"github.com/vk/langtour/lessons/operators"
	"github.com/vk/langtour/lessons/variables"
)

// All returns a fresh instance of every topic module.
func All() []registry.Module {
	return []registry.Module{
		&datatypes.Module{},
		&variables.Module{},
		&literals.Module{},
		&controlflow.Module{},
		&loops.Module{},
		&functions.Module{},
		&expressions.Module{},
		&operators.Module{},
		&dynamic.Module{},
	}
}
