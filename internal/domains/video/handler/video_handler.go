package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dadadu-backend/internal/domains/video/model"
	"dadadu-backend/internal/domains/video/service"
	"dadadu-backend/internal/shared/middleware"
	"dadadu-backend/internal/shared/response"
)

// =====================================================
// VIDEO HANDLER
// =====================================================

type VideoHandler struct {
	videoService service.ServiceInterface
}

func NewVideoHandler(videoService service.ServiceInterface) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// CreateVideo creates a video record and queues caption moderation.
// POST /api/v1/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	// Step 1: Get user ID from JWT
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Validate request
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 4: Call service
	video, err := h.videoService.CreateVideo(c.Request.Context(), userID, req)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	// Step 5: Return created record
	response.JSON(c, http.StatusCreated, video)
}
