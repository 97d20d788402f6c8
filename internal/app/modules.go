package app

import (
	"github.com/vk/framejump/internal/registry"
	"github.com/vk/framejump/modules/showdetails"
	"github.com/vk/framejump/modules/unityjump"
)

// coreModules is the definitive list of all modules that are compiled into
// the framejump binary.
var coreModules = []registry.Module{
	&showdetails.Module{},
	&unityjump.Module{},
}
