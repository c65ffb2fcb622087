package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dadadu-backend/internal/domains/video/model"
	"dadadu-backend/internal/domains/video/service"
	"dadadu-backend/internal/shared/middleware"
	"dadadu-backend/pkg/jwt"
)

type fakeService struct {
	video *model.Video
	err   error

	lastUserID uuid.UUID
	lastReq    model.CreateVideoRequest
}

func (f *fakeService) CreateVideo(ctx context.Context, userID uuid.UUID, req model.CreateVideoRequest) (*model.Video, error) {
	f.lastUserID = userID
	f.lastReq = req
	return f.video, f.err
}

func (f *fakeService) ModerateCaption(ctx context.Context, videoID uuid.UUID) (string, error) {
	return "", nil
}

func (f *fakeService) RefreshVisibility(ctx context.Context) (int, error) {
	return 0, nil
}

var _ service.ServiceInterface = (*fakeService)(nil)

func setupVideoRouter(t *testing.T, svc service.ServiceInterface) (*gin.Engine, uuid.UUID, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret")
	userID := uuid.New()
	token, err := manager.GenerateToken(userID.String(), "user@example.com", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/v1/videos",
		middleware.AuthMiddleware(manager),
		NewVideoHandler(svc).CreateVideo,
	)
	return r, userID, token
}

func postVideo(r *gin.Engine, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateVideo_ReturnsCreatedRecord(t *testing.T) {
	svc := &fakeService{video: &model.Video{
		ID:      uuid.New(),
		Caption: "sunrise run",
		Status:  model.StatusHidden,
	}}
	r, userID, token := setupVideoRouter(t, svc)

	w := postVideo(r, token, `{"caption": "sunrise run"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sunrise run", resp["caption"])
	assert.Equal(t, model.StatusHidden, resp["status"])

	assert.Equal(t, userID, svc.lastUserID, "caller identity comes from the token, not the body")
	assert.Equal(t, "sunrise run", svc.lastReq.Caption)
}

func TestCreateVideo_RequiresAuth(t *testing.T) {
	r, _, _ := setupVideoRouter(t, &fakeService{})

	w := postVideo(r, "", `{"caption": "hi"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateVideo_ServiceFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("failed to enqueue moderation: redis down")}
	r, _, token := setupVideoRouter(t, svc)

	w := postVideo(r, token, `{"caption": "hi"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
