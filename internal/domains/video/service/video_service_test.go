package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dadadu-backend/internal/domains/video/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeVideoRepo struct {
	videos map[uuid.UUID]*model.Video

	createErr error
	listErr   error
	batchErr  error

	statusWrites map[uuid.UUID]string
	batchCalls   [][]model.VisibilityUpdate
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{
		videos:       make(map[uuid.UUID]*model.Video),
		statusWrites: make(map[uuid.UUID]string),
	}
}

func (f *fakeVideoRepo) Create(ctx context.Context, video *model.Video) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.videos[video.ID] = video
	return nil
}

func (f *fakeVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, model.ErrVideoNotFound
	}
	return v, nil
}

func (f *fakeVideoRepo) ListByModerationStatus(ctx context.Context, status string) ([]model.Video, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Video
	for _, v := range f.videos {
		if v.ModerationStatus == status {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) UpdateModerationStatus(ctx context.Context, id uuid.UUID, status string) error {
	v, ok := f.videos[id]
	if !ok {
		return model.ErrVideoNotFound
	}
	v.ModerationStatus = status
	f.statusWrites[id] = status
	return nil
}

func (f *fakeVideoRepo) UpdateVisibilityBatch(ctx context.Context, updates []model.VisibilityUpdate) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batchCalls = append(f.batchCalls, updates)
	for _, u := range updates {
		if v, ok := f.videos[u.ID]; ok {
			v.VisibilityLevel = u.VisibilityLevel
			v.Status = u.Status
			v.Trending = u.Trending
		}
	}
	return nil
}

type fakeClassifier struct {
	output string
	err    error
	calls  int
}

func (f *fakeClassifier) ClassifyCaption(ctx context.Context, text string) (string, error) {
	f.calls++
	return f.output, f.err
}

type fakeEnqueuer struct {
	err      error
	enqueued []uuid.UUID
}

func (f *fakeEnqueuer) EnqueueModerateVideo(ctx context.Context, videoID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, videoID)
	return nil
}

// =====================================================
// CREATE VIDEO
// =====================================================

func TestCreateVideo_PersistsAndEnqueues(t *testing.T) {
	repo := newFakeVideoRepo()
	enq := &fakeEnqueuer{}
	svc := NewVideoService(repo, &fakeClassifier{}, enq)

	userID := uuid.New()
	video, err := svc.CreateVideo(context.Background(), userID, model.CreateVideoRequest{
		Caption: "first ride of the season",
	})

	require.NoError(t, err)
	require.NotNil(t, video)
	assert.Equal(t, userID, video.UserID)
	assert.Equal(t, "", video.ModerationStatus, "moderation status is absent until the worker runs")
	assert.Equal(t, model.StatusHidden, video.Status)
	assert.Equal(t, 0, video.VisibilityLevel)

	require.Len(t, enq.enqueued, 1)
	assert.Equal(t, video.ID, enq.enqueued[0])
}

func TestCreateVideo_EnqueueFailureFailsRequest(t *testing.T) {
	repo := newFakeVideoRepo()
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	svc := NewVideoService(repo, &fakeClassifier{}, enq)

	_, err := svc.CreateVideo(context.Background(), uuid.New(), model.CreateVideoRequest{
		Caption: "hello",
	})

	require.Error(t, err)
}

func TestCreateVideo_CaptionTooLong(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo, &fakeClassifier{}, &fakeEnqueuer{})

	_, err := svc.CreateVideo(context.Background(), uuid.New(), model.CreateVideoRequest{
		Caption: strings.Repeat("x", 2201),
	})

	require.Error(t, err)
	assert.Empty(t, repo.videos, "invalid request must not reach the repository")
}
