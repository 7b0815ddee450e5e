package rest

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/memcache"
	"github.com/alien2112/menu-rwad-sub005/pkg/utils"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/alien2112/menu-rwad-sub005/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCategoryRepo struct {
	categories map[string]domainCategory.Category
	listCalls  int
}

func (m *memCategoryRepo) Create(_ context.Context, c *domainCategory.Category) error {
	if c.ID == "" {
		c.ID = "c" + time.Now().Format("150405.000000000")
	}
	m.categories[c.ID] = *c
	return nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id string) (*domainCategory.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, domainCategory.ErrNotFound
	}
	return &c, nil
}

func (m *memCategoryRepo) List(_ context.Context) ([]domainCategory.Category, error) {
	m.listCalls++
	out := make([]domainCategory.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategoryRepo) Update(_ context.Context, c *domainCategory.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return domainCategory.ErrNotFound
	}
	m.categories[c.ID] = *c
	return nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return domainCategory.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func newCategoryApp(t *testing.T) (*fiber.App, *memCategoryRepo, *memcache.Cache) {
	t.Helper()

	repo := &memCategoryRepo{categories: map[string]domainCategory.Category{}}
	store := memcache.New()
	svc := usecase.NewCategoryService(repo, store, usecase.NewInvalidationRegistry(store, nil))

	app := fiber.New()
	app.Use(middleware.Recovery())
	api := app.Group("/api", middleware.CacheHeaders(domainCache.TTLFiveMinutes))
	InitRestCategory(api, api, svc)
	return app, repo, store
}

func TestCategoryListPopulatesCache(t *testing.T) {
	app, repo, store := newCategoryApp(t)
	repo.categories["c1"] = domainCategory.Category{ID: "c1", Name: "Hot drinks", Active: true}

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()
	}

	assert.Equal(t, 1, repo.listCalls, "repeat public reads must be served from cache")
	_, hit := store.Get(context.Background(), domainCache.KeyCategoriesAll)
	assert.True(t, hit)
}

func TestCategoryAdminListBypassesCache(t *testing.T) {
	app, repo, store := newCategoryApp(t)
	repo.categories["c1"] = domainCategory.Category{ID: "c1", Name: "Hot drinks", Active: true}

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/categories?admin=true", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0", resp.Header.Get(fiber.HeaderCacheControl))
		resp.Body.Close()
	}

	assert.Equal(t, 2, repo.listCalls, "admin reads always hit the database")
	_, hit := store.Get(context.Background(), domainCache.KeyCategoriesAll)
	assert.False(t, hit, "admin reads must not populate the cache")
}

func TestCategoryUpdateInvalidatesThenRefetches(t *testing.T) {
	app, repo, store := newCategoryApp(t)
	repo.categories["c1"] = domainCategory.Category{ID: "c1", Name: "Hot drinks", Active: true}

	// warm the cache
	resp, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, repo.listCalls)

	body := strings.NewReader(`{"name": "Cold drinks"}`)
	req := httptest.NewRequest("PUT", "/api/categories/c1", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	// invalidation ran before the response: both family keys are gone
	_, hit := store.Get(context.Background(), domainCache.KeyCategoriesAll)
	assert.False(t, hit)
	_, hit = store.Get(context.Background(), domainCache.KeyCategory("c1"))
	assert.False(t, hit)

	// next public read re-queries and sees the new name
	resp, err = app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 2, repo.listCalls)

	var payload utils.ResponseData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	raw, err := json.Marshal(payload.Results)
	require.NoError(t, err)

	var categories []domainCategory.Category
	require.NoError(t, json.Unmarshal(raw, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Cold drinks", categories[0].Name)
}

func TestCategoryNotFoundEnvelope(t *testing.T) {
	app, _, _ := newCategoryApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/categories/ghost", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)

	var payload utils.ResponseData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "NOT_FOUND", payload.Code)
}

func TestCategoryCreateValidation(t *testing.T) {
	app, _, _ := newCategoryApp(t)

	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name": ""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)

	var payload utils.ResponseData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "VALIDATION_ERROR", payload.Code)
}
