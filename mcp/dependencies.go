package mcp

import (
	"github.com/ludo-technologies/datestamp/app"
	"github.com/ludo-technologies/datestamp/domain"
	"github.com/ludo-technologies/datestamp/internal/config"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	config *config.Config
	clock  app.Clock
}

// NewDependencies constructs the dependency set with sane defaults.
// A nil clock reads the current time on every call.
func NewDependencies(cfg *config.Config, clock app.Clock) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Dependencies{config: cfg, clock: clock}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// DefaultStampOptions returns the configured stamp options tool arguments
// start from
func (d *Dependencies) DefaultStampOptions() domain.StampOptions {
	return d.config.StampOptions()
}

// BuildNameUseCase assembles a NameUseCase sharing the server clock
func (d *Dependencies) BuildNameUseCase() *app.NameUseCase {
	return app.NewNameUseCase(nil, nil, d.clock)
}
