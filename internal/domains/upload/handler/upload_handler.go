package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/domains/upload/model"
	"dadadu-backend/internal/domains/upload/service"
	"dadadu-backend/internal/shared/middleware"
	"dadadu-backend/internal/shared/response"
	"dadadu-backend/pkg/logger"
)

// =====================================================
// UPLOAD HANDLER
// =====================================================

type UploadHandler struct {
	uploadService service.ServiceInterface

	// configErr is non-nil when the storage credentials were missing
	// at startup. The endpoint stays mounted and reports the fault as
	// a server configuration error on each call, never a client error.
	configErr error
}

func NewUploadHandler(uploadService service.ServiceInterface, configErr error) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		configErr:     configErr,
	}
}

// SignUpload mints a pre-signed upload URL for the authenticated user.
// POST /api/v1/uploads/sign
func (h *UploadHandler) SignUpload(c *gin.Context) {
	// Step 1: Get user ID from JWT
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.SignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing filename or contentType")
		return
	}

	// Step 3: Validate request
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Missing filename or contentType")
		return
	}

	// Step 4: Storage credentials are a server fault, not the client's
	if h.configErr != nil {
		logger.Error("Server configuration error", h.configErr)
		response.InternalServerError(c, "Server configuration error: storage credentials missing")
		return
	}

	// Step 5: Build key and sign
	resp, err := h.uploadService.SignUpload(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Error generating signed URL", err)
		response.InternalServerError(c, "Failed to generate signed URL")
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
