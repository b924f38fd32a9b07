package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pviana/retail_banking_app/pkg/config"
)

// registerHomeRoutes registers the branch info route.
func registerHomeRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":       "retail-banking-api",
			"branchCode":    cfg.BranchCode,
			"branchAddress": cfg.BranchAddress,
		})
	})
}
