package modules

import (
	"github.com/crackedpillars/chisel/internal/services/web/modules/authapi"
	"github.com/crackedpillars/chisel/internal/services/web/modules/explore"
	"github.com/crackedpillars/chisel/internal/services/web/modules/home"
)

// Default returns the stable web modules in mount order.
func Default() []Module {
	return []Module{
		authapi.New(),
		explore.New(),
		home.New(),
	}
}
