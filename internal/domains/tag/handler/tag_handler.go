package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"articles-backend/internal/domains/tag"
	"articles-backend/internal/shared/response"
)

type TagHandler struct {
	service tag.Service
}

func NewTagHandler(svc tag.Service) *TagHandler {
	return &TagHandler{
		service: svc,
	}
}

// List - GET /v1/tags
// All tags, alphabetical by name.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	data := make([]tag.TagResponse, len(tags))
	for i := range tags {
		data[i] = *tags[i].ToResponse()
	}

	response.Success(c, http.StatusOK, data)
}

// GetByID - GET /v1/tags/:id
func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, tag.ToHTTPStatus(err), tag.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, t.ToResponse())
}

// GetBySlug - GET /v1/tags/slug/:slug
func (h *TagHandler) GetBySlug(c *gin.Context) {
	t, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, tag.ToHTTPStatus(err), tag.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, t.ToResponse())
}

// Create - POST /v1/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req tag.CreateTagRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, tag.ToHTTPStatus(err), tag.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// Update - PUT /v1/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req tag.UpdateTagRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, tag.ToHTTPStatus(err), tag.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /v1/tags/:id
// Untags every article carrying this tag; the articles remain.
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, tag.ToHTTPStatus(err), tag.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
