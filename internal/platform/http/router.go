package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zone2fun/py-asset/internal/auth"
	"github.com/zone2fun/py-asset/internal/business/catalog"
	"github.com/zone2fun/py-asset/internal/business/lead"
	"github.com/zone2fun/py-asset/internal/business/media"
)

// Router wires HTTP handlers.
type Router struct {
	catalog  *catalog.Service
	leads    *lead.Service
	uploader *media.Uploader
	auth     *auth.Service
	origins  string
}

func NewRouter(catalogSvc *catalog.Service, leadSvc *lead.Service, uploader *media.Uploader, authSvc *auth.Service, allowedOrigins string) *gin.Engine {
	r := &Router{
		catalog:  catalogSvc,
		leads:    leadSvc,
		uploader: uploader,
		auth:     authSvc,
		origins:  allowedOrigins,
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())
	router.MaxMultipartMemory = 32 << 20

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/properties", r.listProperties)
		api.GET("/properties/recommended", r.recommendedProperties)
		api.GET("/properties/:id", r.getProperty)
		api.POST("/properties/:id/views", r.recordView)

		api.POST("/leads", r.submitLead)

		api.POST("/auth/login", r.login)
		api.POST("/auth/logout", r.logout)

		admin := api.Group("/admin", auth.Middleware(r.auth))
		{
			admin.POST("/properties", r.createProperty)
			admin.PATCH("/properties/:id", r.updateProperty)
			admin.POST("/properties/:id/cover", r.setCover)
			admin.DELETE("/properties/:id", r.deleteProperty)

			admin.GET("/leads", r.listLeads)
			admin.GET("/leads/:id", r.getLead)
			admin.PATCH("/leads/:id/status", r.setLeadStatus)
		}
	}

	return router
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.origins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := "*"
		for _, o := range trimmed {
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}
		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}
