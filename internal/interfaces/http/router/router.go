package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that mount routes onto a group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts API route groups onto a gin engine.
type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func New(engine *gin.Engine) *Router {
	return &Router{
		engine: engine,
		api:    engine.Group("/api/v1"),
	}
}

// Register mounts the given handlers under /api/v1.
func (r *Router) Register(registrars ...RouteRegistrar) {
	for _, registrar := range registrars {
		registrar.RegisterRoutes(r.api)
	}
}

// Static serves a local directory under the given URL prefix, for the
// local media backend.
func (r *Router) Static(prefix, dir string) {
	r.engine.Static(prefix, dir)
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
