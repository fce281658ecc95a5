// Package api provides the HTTP API for the application
package api

import (
	"tubelens/internal/platform/config"
	"tubelens/internal/platform/logger"
	phttp "tubelens/internal/platform/net/http"
	"tubelens/internal/platform/store"

	"tubelens/internal/modkit"
	"tubelens/internal/modkit/httpkit"
	"tubelens/internal/modkit/module"
	"tubelens/internal/modkit/swaggerkit"

	analysismod "tubelens/internal/services/analysis/module"
	metamod "tubelens/internal/services/api/meta/module"
	insightsmod "tubelens/internal/services/insights/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct the insights module first and extract its Archiver port
	insights := insightsmod.New(deps)
	arch := module.MustPortsOf[insightsmod.Ports](insights).Archiver

	// Inject that Archiver into the analysis module
	analysis := analysismod.New(
		deps,
		modkit.WithPorts(analysismod.Ports{
			Archiver: arch,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		insights, // include insights so its ports are registered
		analysis, // depends on the insights Archiver
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
