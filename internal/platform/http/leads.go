package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zone2fun/py-asset/internal/business/lead"
	"github.com/zone2fun/py-asset/pkg/model"
)

func (r *Router) submitLead(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	in := lead.SubmitInput{
		Name:        c.PostForm("name"),
		Phone:       c.PostForm("phone"),
		Title:       c.PostForm("title"),
		Price:       c.PostForm("price"),
		Type:        model.PropertyType(c.PostForm("type")),
		Size:        c.PostForm("size"),
		Description: c.PostForm("description"),
		Latitude:    optionalFloat(c.PostForm("latitude")),
		Longitude:   optionalFloat(c.PostForm("longitude")),
	}

	files, closeFiles, err := openFiles(form.File["images"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer closeFiles()
	in.Files = files

	result, err := r.leads.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (r *Router) listLeads(c *gin.Context) {
	leads, err := r.leads.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	if leads == nil {
		leads = []model.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"items": leads, "total": len(leads)})
}

func (r *Router) getLead(c *gin.Context) {
	l, err := r.leads.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

type setLeadStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (r *Router) setLeadStatus(c *gin.Context) {
	var req setLeadStatusReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := r.leads.SetStatus(c.Request.Context(), c.Param("id"), model.LeadStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
