package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zone2fun/py-asset/internal/business/catalog"
	"github.com/zone2fun/py-asset/pkg/model"
)

// createProperty handles the admin create form. Media constraints are
// checked before any byte is uploaded; only then are images (and the
// optional video) pushed to the bucket and the record written.
func (r *Router) createProperty(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	contentType := model.ContentType(c.DefaultPostForm("contentType", string(model.ContentPost)))
	videoURL := c.PostForm("videoUrl")
	imageHeaders := form.File["images"]
	videoHeaders := form.File["video"]
	hasVideo := videoURL != "" || len(videoHeaders) > 0

	if err := catalog.ValidateMedia(contentType, len(imageHeaders), hasVideo); err != nil {
		respondError(c, err)
		return
	}

	files, closeFiles, err := openFiles(imageHeaders)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer closeFiles()

	ctx := c.Request.Context()
	imageURLs, err := r.uploader.Images(ctx, "properties", files)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(videoHeaders) > 0 {
		videoFiles, closeVideo, err := openFiles(videoHeaders[:1])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer closeVideo()
		videoURL, err = r.uploader.Video(ctx, "videos", videoFiles[0])
		if err != nil {
			respondError(c, err)
			return
		}
	}

	in := catalog.CreateInput{
		Title:       c.PostForm("title"),
		Price:       c.PostForm("price"),
		Location:    c.DefaultPostForm("location", "พะเยา"),
		Type:        model.PropertyType(c.PostForm("type")),
		Size:        c.PostForm("size"),
		Description: c.PostForm("description"),
		ContentType: contentType,
		VideoURL:    videoURL,
		Images:      imageURLs,
		Recommended: c.PostForm("recommended") == "true",
		Status:      c.PostForm("status"),
	}
	if lat, lng := optionalFloat(c.PostForm("latitude")), optionalFloat(c.PostForm("longitude")); lat != nil && lng != nil {
		in.Coordinates = &model.Coordinates{Lat: *lat, Lng: *lng}
	}

	id, err := r.catalog.Create(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type updatePropertyReq struct {
	Title       *string            `json:"title"`
	Price       *string            `json:"price"`
	Location    *string            `json:"location"`
	Type        *string            `json:"type"`
	Size        *string            `json:"size"`
	Description *string            `json:"description"`
	Status      *string            `json:"status"`
	Recommended *bool              `json:"recommended"`
	ContentType *string            `json:"contentType"`
	VideoURL    *string            `json:"videoUrl"`
	Images      *[]string          `json:"images"`
	Coordinates *model.Coordinates `json:"coordinates"`
}

func (r *Router) updateProperty(c *gin.Context) {
	var req updatePropertyReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	in := catalog.PatchInput{
		Title:       req.Title,
		Price:       req.Price,
		Location:    req.Location,
		Size:        req.Size,
		Description: req.Description,
		Status:      req.Status,
		Recommended: req.Recommended,
		VideoURL:    req.VideoURL,
		Images:      req.Images,
		Coordinates: req.Coordinates,
	}
	if req.Type != nil {
		t := model.PropertyType(*req.Type)
		in.Type = &t
	}
	if req.ContentType != nil {
		ct := model.ContentType(*req.ContentType)
		in.ContentType = &ct
	}

	if err := r.catalog.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

type setCoverReq struct {
	Index *int `json:"index" binding:"required"`
}

func (r *Router) setCover(c *gin.Context) {
	var req setCoverReq
	if err := c.BindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
		return
	}
	if err := r.catalog.SetCover(c.Request.Context(), c.Param("id"), *req.Index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "cover": strconv.Itoa(*req.Index)})
}

func (r *Router) deleteProperty(c *gin.Context) {
	if err := r.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
