package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mamlesh45/Myntra-Clone/internal/domain"
	apperrors "github.com/Mamlesh45/Myntra-Clone/pkg/errors"
)

func setupTestRedis(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewSessionRepository(client, 24*time.Hour)
	return repo, mr
}

func sampleSession() *domain.Session {
	s := domain.NewSession("sess-001")
	s.Cart.AddOrMerge(domain.Product{
		Identity:        3,
		DisplayName:     "Product 4",
		ImageRef:        "images/product-4.jpg",
		Price:           2100,
		OriginalPrice:   3150,
		DiscountPercent: 33,
	}, domain.SizeXL)
	s.Wishlist.Add(domain.Product{
		Identity:        5,
		DisplayName:     "Product 6",
		ImageRef:        "images/product-6.jpg",
		Price:           900,
		OriginalPrice:   1350,
		DiscountPercent: 33,
	})
	return s
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestSessionRepository_Get_Success(t *testing.T) {
	repo, mr := setupTestRedis(t)

	session := sampleSession()
	data, err := json.Marshal(session)
	require.NoError(t, err)

	// Set data directly in miniredis.
	require.NoError(t, mr.Set("session:"+session.ID, string(data)))

	got, err := repo.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	require.Len(t, got.Cart.Lines, 1)
	assert.Equal(t, 3, got.Cart.Lines[0].Identity)
	assert.Equal(t, domain.SizeXL, got.Cart.Lines[0].Size)
	assert.Equal(t, 2100, got.Cart.Lines[0].Price)
	require.Len(t, got.Wishlist.Entries, 1)
	assert.Equal(t, 5, got.Wishlist.Entries[0].Identity)
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupTestRedis(t)

	got, err := repo.Get(context.Background(), "nonexistent-session")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSessionRepository_Get_InvalidJSON(t *testing.T) {
	repo, mr := setupTestRedis(t)

	// Set corrupted JSON data.
	require.NoError(t, mr.Set("session:sess-bad", "{{not-valid-json"))

	got, err := repo.Get(context.Background(), "sess-bad")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal session")
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestSessionRepository_Save_Success(t *testing.T) {
	repo, mr := setupTestRedis(t)

	session := sampleSession()
	err := repo.Save(context.Background(), session)
	require.NoError(t, err)

	// Verify key exists in Redis.
	assert.True(t, mr.Exists("session:"+session.ID))

	// Verify JSON content.
	raw, err := mr.Get("session:" + session.ID)
	require.NoError(t, err)

	var stored domain.Session
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, session.ID, stored.ID)
	require.Len(t, stored.Cart.Lines, 1)
	assert.Equal(t, 1, stored.Cart.Lines[0].Quantity)
}

func TestSessionRepository_Save_TTL(t *testing.T) {
	repo, mr := setupTestRedis(t)

	session := sampleSession()
	err := repo.Save(context.Background(), session)
	require.NoError(t, err)

	ttl := mr.TTL("session:" + session.ID)
	// TTL should be approximately 24 hours (allow some margin for test execution).
	assert.True(t, ttl > 23*time.Hour, "expected TTL > 23h, got %v", ttl)
	assert.True(t, ttl <= 24*time.Hour, "expected TTL <= 24h, got %v", ttl)
}

func TestSessionRepository_Save_RoundTrip(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	session := sampleSession()
	session.Overlay.OpenDetail(session.Wishlist.Entries[0])
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OverlayDetailOpen, got.Overlay.State)
	require.NotNil(t, got.Overlay.Detail)
	assert.Equal(t, 5, got.Overlay.Detail.Identity)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestSessionRepository_Delete(t *testing.T) {
	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	session := sampleSession()
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, session.ID))

	assert.False(t, mr.Exists("session:"+session.ID))
}

func TestSessionRepository_Delete_Missing(t *testing.T) {
	repo, _ := setupTestRedis(t)
	assert.NoError(t, repo.Delete(context.Background(), "never-existed"))
}
