package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zone2fun/py-asset/internal/business/catalog"
	"github.com/zone2fun/py-asset/pkg/model"
)

func (r *Router) listProperties(c *gin.Context) {
	cat, err := catalog.ParseCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key := catalog.ParseSortKey(c.Query("sort"))

	items := r.catalog.List(c.Request.Context(), cat, key)
	if items == nil {
		items = []model.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (r *Router) recommendedProperties(c *gin.Context) {
	items := r.catalog.Recommended(c.Request.Context())
	if items == nil {
		items = []model.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (r *Router) getProperty(c *gin.Context) {
	p, ok := r.catalog.Get(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// recordView acknowledges immediately and increments in the background so a
// slow or failing counter can never delay the detail page.
func (r *Router) recordView(c *gin.Context) {
	id := c.Param("id")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		r.catalog.RecordView(ctx, id)
	}()
	c.Status(http.StatusAccepted)
}
