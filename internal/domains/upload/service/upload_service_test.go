package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dadadu-backend/internal/domains/upload/model"
)

type fakePresigner struct {
	err        error
	lastKey    string
	lastType   string
	lastExpiry time.Duration
}

func (f *fakePresigner) PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	f.lastType = contentType
	f.lastExpiry = expiry
	return "https://s3.us-east-1.wasabisys.com/bucket/" + key + "?X-Amz-Signature=abc", nil
}

func TestBuildFileKey(t *testing.T) {
	userID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	now := time.UnixMilli(1700000000123)

	key := BuildFileKey(userID, "clip.mp4", now)

	assert.Equal(t, "uploads/11111111-2222-3333-4444-555555555555/1700000000123_clip.mp4", key)
}

func TestSignUpload_KeyShapeAndExpiry(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewUploadService(presigner)
	userID := uuid.New()

	before := time.Now().UnixMilli()
	resp, err := svc.SignUpload(context.Background(), userID, model.SignUploadRequest{
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
	})
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	assert.Equal(t, presigner.lastKey, resp.FileKey)
	assert.Contains(t, resp.SignedURL, resp.FileKey)
	assert.Equal(t, "video/mp4", presigner.lastType)
	assert.Equal(t, UploadURLExpiry, presigner.lastExpiry)

	// Key is namespaced by caller and stamped in milliseconds.
	require.True(t, strings.HasPrefix(resp.FileKey, "uploads/"+userID.String()+"/"))

	var gotMillis int64
	var gotName string
	_, err = fmt.Sscanf(resp.FileKey, "uploads/"+userID.String()+"/%d_%s", &gotMillis, &gotName)
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", gotName)
	assert.GreaterOrEqual(t, gotMillis, before)
	assert.LessOrEqual(t, gotMillis, after)
}

func TestSignUpload_ValidatesRequest(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewUploadService(presigner)

	_, err := svc.SignUpload(context.Background(), uuid.New(), model.SignUploadRequest{
		Filename: "clip.mp4",
	})

	require.Error(t, err)
	assert.Empty(t, presigner.lastKey, "invalid request must not be signed")
}

func TestSignUpload_PresignerFailure(t *testing.T) {
	svc := NewUploadService(&fakePresigner{err: errors.New("connection refused")})

	_, err := svc.SignUpload(context.Background(), uuid.New(), model.SignUploadRequest{
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
	})

	require.Error(t, err)
}
