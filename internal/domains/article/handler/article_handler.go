package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"articles-backend/internal/domains/article"
	"articles-backend/internal/shared/response"
)

type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(svc article.Service) *ArticleHandler {
	return &ArticleHandler{
		service: svc,
	}
}

// List - GET /v1/articles
// Published articles only, newest first. An empty list is a normal
// response, not an error.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, toListResponse(articles))
}

// GetByID - GET /v1/articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse(time.Now()))
}

// GetBySlug - GET /v1/articles/slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse(time.Now()))
}

// ByAuthor - GET /v1/authors/:id/articles
func (h *ArticleHandler) ByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	articles, err := h.service.ByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, toListResponse(articles))
}

// ByTag - GET /v1/tags/:id/articles
func (h *ArticleHandler) ByTag(c *gin.Context) {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	articles, err := h.service.ByTag(c.Request.Context(), tagID)
	if err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, toListResponse(articles))
}

// Create - POST /v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.CreateArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse(time.Now()))
}

// Update - PUT /v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req article.UpdateArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse(time.Now()))
}

// Delete - DELETE /v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, article.ToHTTPStatus(err), article.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func toListResponse(articles []article.Article) *article.ArticleListResponse {
	now := time.Now()
	data := make([]article.ArticleResponse, len(articles))
	for i := range articles {
		data[i] = *articles[i].ToResponse(now)
	}
	return &article.ArticleListResponse{
		Data:  data,
		Total: len(data),
	}
}
