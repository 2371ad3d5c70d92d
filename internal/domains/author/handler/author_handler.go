package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"articles-backend/internal/domains/author"
	"articles-backend/internal/shared/response"
	"articles-backend/pkg/jwt"
)

type AuthorHandler struct {
	service    author.Service
	jwtManager *jwt.Manager
}

func NewAuthorHandler(svc author.Service, jwtManager *jwt.Manager) *AuthorHandler {
	return &AuthorHandler{
		service:    svc,
		jwtManager: jwtManager,
	}
}

// List - GET /v1/authors
// All authors, alphabetical by user name.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	data := make([]author.AuthorResponse, len(authors))
	for i := range authors {
		data[i] = *authors[i].ToResponse()
	}

	response.Success(c, http.StatusOK, data)
}

// GetByID - GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// GetBySlug - GET /v1/authors/slug/:slug
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// Update - PUT /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /v1/authors/:id
// Deleting an author also removes their articles.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Login - POST /v1/auth/login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.Authenticate(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(a.ID.String(), a.UserName)
	if err != nil {
		response.InternalServerError(c, "Failed to generate access token")
		return
	}
	refreshToken, err := h.jwtManager.GenerateRefreshToken(a.ID.String())
	if err != nil {
		response.InternalServerError(c, "Failed to generate refresh token")
		return
	}

	response.Success(c, http.StatusOK, author.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh - POST /v1/auth/refresh
// Exchanges a refresh token for a new access token.
func (h *AuthorHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		response.Unauthorized(c, "Invalid refresh token")
		return
	}

	id, err := uuid.Parse(claims.AuthorID)
	if err != nil {
		response.Unauthorized(c, "Invalid refresh token")
		return
	}

	// The author may have been deleted since the token was issued.
	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Unauthorized(c, "Invalid refresh token")
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(a.ID.String(), a.UserName)
	if err != nil {
		response.InternalServerError(c, "Failed to generate access token")
		return
	}
	refreshToken, err := h.jwtManager.GenerateRefreshToken(a.ID.String())
	if err != nil {
		response.InternalServerError(c, "Failed to generate refresh token")
		return
	}

	response.Success(c, http.StatusOK, author.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
