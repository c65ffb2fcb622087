package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dadadu-backend/internal/config"
	"dadadu-backend/internal/domains/referral/model"
)

type fakeClickRepo struct {
	err    error
	clicks []*model.ReferralClick
}

func (f *fakeClickRepo) InsertClick(ctx context.Context, click *model.ReferralClick) error {
	if f.err != nil {
		return f.err
	}
	f.clicks = append(f.clicks, click)
	return nil
}

func testURLs() config.ReferralConfig {
	return config.ReferralConfig{
		PlayStoreURL: "https://play.google.com/store/apps/details?id=com.dadadu.app",
		AppStoreURL:  "https://apps.apple.com/app/id0000000000",
		FallbackURL:  "https://brosisus.com",
	}
}

func TestDestination(t *testing.T) {
	svc := NewReferralService(&fakeClickRepo{}, testURLs())

	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"android phone", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", testURLs().PlayStoreURL},
		{"android any case", "mozilla/5.0 (linux; ANDROID 14)", testURLs().PlayStoreURL},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", testURLs().AppStoreURL},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", testURLs().AppStoreURL},
		{"ipod", "Mozilla/5.0 (iPod touch; CPU iPhone OS 15_0)", testURLs().AppStoreURL},
		// The device tokens are matched exactly as the devices spell
		// themselves; a lower-cased token is not an iOS device.
		{"lowercase iphone is not ios", "mozilla/5.0 (iphone)", testURLs().FallbackURL},
		{"desktop browser", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", testURLs().FallbackURL},
		{"empty user agent", "", testURLs().FallbackURL},
		{"curl", "curl/8.4.0", testURLs().FallbackURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Destination(tt.userAgent))
		})
	}
}

func TestLogClick_RecordsAttribution(t *testing.T) {
	repo := &fakeClickRepo{}
	svc := NewReferralService(repo, testURLs())

	svc.LogClick(context.Background(), "ref-abc", "203.0.113.9", "Mozilla/5.0 (iPhone)")

	require.Len(t, repo.clicks, 1)
	click := repo.clicks[0]
	assert.Equal(t, "ref-abc", click.ReferralID)
	assert.Equal(t, "203.0.113.9", click.IPAddress)
	assert.Equal(t, "Mozilla/5.0 (iPhone)", click.UserAgent)
	assert.False(t, click.CreatedAt.IsZero())
}

func TestLogClick_AbsorbsRepositoryFailure(t *testing.T) {
	repo := &fakeClickRepo{err: errors.New("connection refused")}
	svc := NewReferralService(repo, testURLs())

	// Must not panic or propagate; the redirect is the product.
	svc.LogClick(context.Background(), "ref-abc", "203.0.113.9", "curl/8.4.0")

	assert.Empty(t, repo.clicks)
}
