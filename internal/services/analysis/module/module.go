// Package module wires analysis into the API using modkit
package module

import (
	"net/http"

	"tubelens/internal/adapters/ingest/youtube"
	"tubelens/internal/adapters/llm/openai"
	modkit "tubelens/internal/modkit"
	"tubelens/internal/modkit/httpkit"
	str "tubelens/internal/platform/strings"
	ahttp "tubelens/internal/services/analysis/http"
	asvc "tubelens/internal/services/analysis/service"
	insdom "tubelens/internal/services/insights/domain"
)

// Module implements the analysis module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// Ports declares the injected port(s) for this module
type Ports struct {
	Archiver insdom.ArchivePort
}

// New constructs the analysis module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analysis"),
		modkit.WithPrefix("/analysis"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	ytc := youtube.NewClient(youtube.Options{
		Host:       cfg.YTHost,
		APIKey:     cfg.YTKey,
		Timeout:    cfg.YTTimeout,
		MaxRetries: cfg.YTMaxRetries,
		RetryBase:  cfg.YTRetryBase,
		PageDelay:  cfg.YTPageDelay,
	})
	llm := openai.NewClient(openai.Options{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})

	svc := asvc.New(ytc, llm, asvc.Options{Archiver: injected.Archiver})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAnalysisPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
