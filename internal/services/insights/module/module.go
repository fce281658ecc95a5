// Package module wires insights into the API using modkit
package module

import (
	"net/http"

	modkit "tubelens/internal/modkit"
	"tubelens/internal/modkit/httpkit"
	str "tubelens/internal/platform/strings"
	inshttp "tubelens/internal/services/insights/http"
	insrepo "tubelens/internal/services/insights/repo"
	inssvc "tubelens/internal/services/insights/service"
)

// Module implements the insights module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc inssvc.Service
}

// New constructs the insights module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("insights"), modkit.WithPrefix("/insights")}, opts...)...)

	binder := insrepo.NewHybrid(deps.CH)
	svc := inssvc.New(deps.PG, binder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Archiver: svc, Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		inshttp.Register(r, m.svc)
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
