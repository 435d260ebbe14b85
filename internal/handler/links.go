package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"relink/internal/model"
	"relink/internal/service"

	"github.com/gin-gonic/gin"
)

// ownerIDHeader is set by the external auth middleware in front of the API
const ownerIDHeader = "X-Owner-ID"

// LinkHandler handles link management endpoints for the dashboard
type LinkHandler struct {
	service service.LinkServiceInterface
	domain  string
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.LinkServiceInterface, domain string) *LinkHandler {
	return &LinkHandler{service: service, domain: domain}
}

// Create handles POST /api/v1/links
// @Summary Create a short link
// @Description Creates a short link, allocating a code when none is supplied
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} Response{data=model.LinkResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	ownerID, ok := ownerFromHeader(c)
	if !ok {
		return
	}

	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	link, err := h.service.CreateLink(c.Request.Context(), ownerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrCodeTaken):
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Short code already in use",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to create link: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    h.buildResponse(link),
	})
}

// Update handles PATCH /api/v1/links/:id
// @Summary Update link validity fields
// @Description Updates active flag, expiry or max-click cap and invalidates the cached snapshot
// @Tags links
// @Accept json
// @Produce json
// @Param id path int true "Link ID"
// @Param request body model.UpdateLinkRequest true "Update request"
// @Success 200 {object} Response{data=model.LinkResponse}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/links/:id [patch]
func (h *LinkHandler) Update(c *gin.Context) {
	ownerID, ok := ownerFromHeader(c)
	if !ok {
		return
	}

	linkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid link id",
		})
		return
	}

	var req model.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	link, err := h.service.UpdateLink(c.Request.Context(), ownerID, linkID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Link owned by another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to update link: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    h.buildResponse(link),
	})
}

// Recent handles GET /api/v1/links/recent
// @Summary List recent links
// @Description Returns the owner's newest links
// @Tags links
// @Produce json
// @Param limit query int false "Maximum number of links" default(5)
// @Success 200 {object} Response{data=[]model.LinkResponse}
// @Router /api/v1/links/recent [get]
func (h *LinkHandler) Recent(c *gin.Context) {
	ownerID, ok := ownerFromHeader(c)
	if !ok {
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
			return
		}
		limit = n
	}

	links, err := h.service.RecentLinks(c.Request.Context(), ownerID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list links",
		})
		return
	}

	resp := make([]*model.LinkResponse, 0, len(links))
	for i := range links {
		resp = append(resp, h.buildResponse(&links[i]))
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// buildResponse builds a link response with the full short link URL
func (h *LinkHandler) buildResponse(link *model.Link) *model.LinkResponse {
	return &model.LinkResponse{
		ID:        link.ID,
		ShortLink: fmt.Sprintf("%s/%s", h.domain, link.ShortCode),
		ShortCode: link.ShortCode,
		URL:       link.OriginalURL,
		Active:    link.Active,
		ExpiresAt: link.ExpiresAt,
		MaxClicks: link.MaxClicks,
		Visits:    link.Visits,
		CreatedAt: link.CreatedAt,
	}
}

// ownerFromHeader extracts the owner ID set by the auth layer
func ownerFromHeader(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(ownerIDHeader)
	if raw == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing owner identity",
		})
		return 0, false
	}
	ownerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid owner identity",
		})
		return 0, false
	}
	return ownerID, true
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
