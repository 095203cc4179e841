// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// DocumentRouteHandler defines the interface for transaction document handlers.
// Documents are post-only: no update, no unpost.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Post(c *gin.Context)
	Get(c *gin.Context)
	Delete(c *gin.Context)
	BulkDelete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// Reads are open to any authenticated user; writes pass writeGuard.
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, writeGuard gin.HandlerFunc) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", writeGuard, handler.Create)
	group.PUT("/:id", writeGuard, handler.Update)
	group.DELETE("/:id", writeGuard, handler.Delete)
	group.POST("/:id/deletion-mark", writeGuard, handler.SetDeletionMark)
}

// RegisterDocumentRoutes registers post/read/delete routes for a document.
// Posting passes postGuard, deletion passes deleteGuard.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler, postGuard, deleteGuard gin.HandlerFunc) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", postGuard, handler.Post)
	group.DELETE("/:id", deleteGuard, handler.Delete)
	group.POST("/bulk-delete", deleteGuard, handler.BulkDelete)
}
