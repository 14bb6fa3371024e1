// Package httpapi exposes the search engine over HTTP: one endpoint to run a
// search against a grid posted as JSON, one to list the available agents.
package httpapi

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter() *gin.Engine {
	router := gin.Default()
	api := router.Group("/api")
	{
		api.POST("/findpath", findPathHandler)
		api.GET("/agents", agentsHandler)
	}
	return router
}
