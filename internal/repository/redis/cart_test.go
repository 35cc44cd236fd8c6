package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kev3770/aura-cart-service/internal/domain"
)

func setupTestStore(t *testing.T) (*CartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewCartStore(client, 24*time.Hour, logger), mr
}

func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{
			ProductID: "prod-1",
			Size:      "M",
			Quantity:  2,
			Name:      "Linen Shirt",
			Price:     120000,
			Discount:  10,
			Image:     "https://img.example.com/shirt.jpg",
		},
		{
			ProductID: "prod-2",
			Size:      "42",
			Quantity:  1,
			Name:      "Leather Shoes",
			Price:     350000,
			Discount:  0,
		},
	}
}

// ---------------------------------------------------------------------------
// Save / Load round trip
// ---------------------------------------------------------------------------

func TestCartStore_SaveLoad_RoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	items := sampleItems()
	require.NoError(t, store.Save(ctx, "user-1", items))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCartStore_Save_WritesEnvelope(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", sampleItems()))

	raw, err := mr.Get("cart:user-1")
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.Contains(t, env, "items")
	assert.Contains(t, env, "timestamp")
	assert.JSONEq(t, `"1.0"`, string(env["version"]))

	var ts string
	require.NoError(t, json.Unmarshal(env["timestamp"], &ts))
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestCartStore_Save_NilItems(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", nil))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

// ---------------------------------------------------------------------------
// Load edge cases
// ---------------------------------------------------------------------------

func TestCartStore_Load_AbsentKey(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCartStore_Load_CorruptPayload(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set("cart:user-bad", "{{not-valid-json"))

	got, err := store.Load(context.Background(), "user-bad")
	require.NoError(t, err)
	assert.Empty(t, got)

	// The corrupt key was cleared.
	assert.False(t, mr.Exists("cart:user-bad"))
}

func TestCartStore_Load_ItemsNotAList(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set("cart:user-1", `{"items": "oops", "version": "1.0"}`))

	got, err := store.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, mr.Exists("cart:user-1"))
}

func TestCartStore_Load_MissingItemsField(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set("cart:user-1", `{"version": "1.0"}`))

	got, err := store.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Self-healing on read
// ---------------------------------------------------------------------------

func TestCartStore_Load_DropsInvalidItems(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	payload := envelope{
		Items: []domain.LineItem{
			{ProductID: "prod-1", Size: "M", Quantity: 2, Name: "Shirt", Price: 100000},
			{ProductID: "prod-2", Size: "L", Quantity: 0, Name: "Broken", Price: 50000},
			{ProductID: "", Size: "S", Quantity: 1, Name: "No ID", Price: 50000},
			{ProductID: "prod-4", Size: "", Quantity: 1, Name: "No size", Price: 50000},
			{ProductID: "prod-5", Size: "M", Quantity: 1, Name: "", Price: 50000},
			{ProductID: "prod-6", Size: "M", Quantity: 1, Name: "Negative", Price: -1},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   schemaVersion,
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, mr.Set("cart:user-1", string(data)))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "prod-1", got[0].ProductID)

	// The cleaned list was re-saved: a second load without any writes in
	// between returns the same single item.
	again, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

// ---------------------------------------------------------------------------
// Clear
// ---------------------------------------------------------------------------

func TestCartStore_Clear(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", sampleItems()))
	require.True(t, mr.Exists("cart:user-1"))

	require.NoError(t, store.Clear(ctx, "user-1"))
	assert.False(t, mr.Exists("cart:user-1"))

	got, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCartStore_Clear_Idempotent(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx, "user-1"))
	require.NoError(t, store.Clear(ctx, "user-1"))
}

func TestCartStore_Save_Unavailable(t *testing.T) {
	store, mr := setupTestStore(t)
	mr.Close()

	err := store.Save(context.Background(), "user-1", sampleItems())
	assert.Error(t, err)
}

func TestCartStore_Load_Unavailable(t *testing.T) {
	store, mr := setupTestStore(t)
	mr.Close()

	got, err := store.Load(context.Background(), "user-1")
	assert.Error(t, err)
	assert.Empty(t, got)
}
