package router

import "github.com/gin-gonic/gin"

const DefaultBasePath = "/api"

type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
	registered  bool
}

func NewRegistry(engine *gin.Engine) *Registry {
	return NewRegistryWithBase(engine, DefaultBasePath)
}

// NewRegistryWithBase mounts every module under basePath instead of /api.
func NewRegistryWithBase(engine *gin.Engine, basePath string) *Registry {
	return &Registry{Engine: engine, API: engine.Group(basePath)}
}

// Use adds middleware that runs for module routes only.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts middleware and modules. Calls after the first are no-ops;
// gin panics on duplicate routes.
func (r *Registry) RegisterAll() {
	if r.registered {
		return
	}
	r.registered = true
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
