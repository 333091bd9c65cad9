package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zone2fun/py-asset/internal/business/catalog"
	"github.com/zone2fun/py-asset/internal/business/lead"
	"github.com/zone2fun/py-asset/internal/business/media"
	"github.com/zone2fun/py-asset/internal/repository"
)

var validationErrs = []error{
	catalog.ErrNoImages,
	catalog.ErrVideoCoverCount,
	catalog.ErrVideoURLRequired,
	catalog.ErrBadType,
	catalog.ErrBadStatus,
	lead.ErrMissingContact,
	lead.ErrMissingTitle,
	lead.ErrNoImages,
	lead.ErrBadType,
	lead.ErrBadStatus,
	media.ErrImageTooLarge,
	media.ErrVideoTooLarge,
	media.ErrNotAnImage,
	media.ErrNotAVideo,
}

// respondError maps service errors onto HTTP statuses: validation failures
// become 400, unknown ids 404, everything else 500 with the wrapped message.
func respondError(c *gin.Context, err error) {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
