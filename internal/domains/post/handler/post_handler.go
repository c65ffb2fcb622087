package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/domains/post/model"
	"dadadu-backend/internal/domains/post/service"
	"dadadu-backend/internal/shared/middleware"
	"dadadu-backend/internal/shared/response"
	"dadadu-backend/pkg/logger"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// RecordAsset persists an uploaded file's CDN URL onto the caller's post.
// POST /api/v1/posts/assets
func (h *PostHandler) RecordAsset(c *gin.Context) {
	// Step 1: Get user ID from JWT
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.RecordAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing postId, fileKey, or assetType")
		return
	}

	// Step 3: Validate — a bad assetType never reaches the database
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 4: Call service
	resp, err := h.postService.RecordAsset(c.Request.Context(), userID, req)
	if err != nil {
		h.respondRecordAssetError(c, err)
		return
	}

	// Step 5: Return updated row and computed URL
	response.JSON(c, http.StatusOK, resp)
}

func (h *PostHandler) respondRecordAssetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCDNNotConfigured):
		logger.Error("Server configuration error", err)
		response.InternalServerError(c, "Server configuration error: CDN hostname missing")
	case errors.Is(err, model.ErrPostNotFound):
		// 404 on purpose, even for authenticated non-owners; see
		// model.ErrPostNotFound.
		response.NotFound(c, "Post not found or unauthorized to update.")
	default:
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Error updating post with asset URL", err)
		response.InternalServerError(c, "Failed to record asset URL")
	}
}
