package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dadadu-backend/internal/domains/video/model"
)

// =====================================================
// VISIBILITY LADDER
// =====================================================

func TestVisibilityFor(t *testing.T) {
	tests := []struct {
		diamonds     int
		wantLevel    int
		wantStatus   string
		wantTrending bool
	}{
		{0, 0, model.StatusHidden, false},
		{1, 1, model.StatusActive, false},
		{2, 1, model.StatusActive, false},
		{3, 2, model.StatusActive, false},
		{4, 2, model.StatusActive, false},
		{5, 3, model.StatusActive, true},
		{100, 3, model.StatusActive, true},
	}

	for _, tt := range tests {
		level, status, trending := VisibilityFor(tt.diamonds)
		assert.Equal(t, tt.wantLevel, level, "diamonds=%d", tt.diamonds)
		assert.Equal(t, tt.wantStatus, status, "diamonds=%d", tt.diamonds)
		assert.Equal(t, tt.wantTrending, trending, "diamonds=%d", tt.diamonds)
	}
}

// =====================================================
// REFRESH
// =====================================================

func seedModerated(repo *fakeVideoRepo, status string, diamonds int) uuid.UUID {
	id := uuid.New()
	repo.videos[id] = &model.Video{
		ID:               id,
		UserID:           uuid.New(),
		ModerationStatus: status,
		Diamonds:         diamonds,
		Status:           model.StatusHidden,
	}
	return id
}

func TestRefreshVisibility_OnlySafeVideosRanked(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo, &fakeClassifier{}, &fakeEnqueuer{})

	safeID := seedModerated(repo, model.ModerationStatusSafe, 7)
	blockedID := seedModerated(repo, model.ModerationStatusBlocked, 7)
	pendingID := seedModerated(repo, "", 7)

	count, err := svc.RefreshVisibility(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, 3, repo.videos[safeID].VisibilityLevel)
	assert.Equal(t, model.StatusActive, repo.videos[safeID].Status)
	assert.True(t, repo.videos[safeID].Trending)

	// Diamonds alone never surface an unmoderated or blocked video.
	assert.Equal(t, 0, repo.videos[blockedID].VisibilityLevel)
	assert.Equal(t, model.StatusHidden, repo.videos[blockedID].Status)
	assert.Equal(t, 0, repo.videos[pendingID].VisibilityLevel)
}

func TestRefreshVisibility_ZeroDiamondsHides(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo, &fakeClassifier{}, &fakeEnqueuer{})

	id := seedModerated(repo, model.ModerationStatusSafe, 0)
	repo.videos[id].Status = model.StatusActive
	repo.videos[id].VisibilityLevel = 2

	count, err := svc.RefreshVisibility(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, repo.videos[id].VisibilityLevel)
	assert.Equal(t, model.StatusHidden, repo.videos[id].Status)
}

func TestRefreshVisibility_NoSafeVideosIsNoop(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo, &fakeClassifier{}, &fakeEnqueuer{})

	seedModerated(repo, model.ModerationStatusBlocked, 5)

	count, err := svc.RefreshVisibility(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, repo.batchCalls, "no batch write without safe videos")
}

func TestRefreshVisibility_Idempotent(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo, &fakeClassifier{}, &fakeEnqueuer{})

	id := seedModerated(repo, model.ModerationStatusSafe, 4)

	_, err := svc.RefreshVisibility(context.Background())
	require.NoError(t, err)
	first := *repo.videos[id]

	_, err = svc.RefreshVisibility(context.Background())
	require.NoError(t, err)
	second := *repo.videos[id]

	assert.Equal(t, first.VisibilityLevel, second.VisibilityLevel)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Trending, second.Trending)
}
