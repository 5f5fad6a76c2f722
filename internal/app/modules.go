package app

import (
	"github.com/vk/readmegen/internal/registry"
	"github.com/vk/readmegen/modules/activity"
	"github.com/vk/readmegen/modules/header"
	"github.com/vk/readmegen/modules/languages"
	"github.com/vk/readmegen/modules/stats"
)

// coreModules is the definitive list of all section modules that are
// compiled into the readmegen binary.
var coreModules = []registry.Module{
	&header.Module{},
	&languages.Module{},
	&stats.Module{},
	&activity.Module{},
}
