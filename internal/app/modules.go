package app

import (
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/lessons"
)

// coreModules is the definitive list of all lesson modules compiled into the
// langtour binary.
var coreModules = lessons.All()

// CoreModules returns the modules NewApp registers when given none.
func CoreModules() []registry.Module {
	return coreModules
}
