package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mappingapp "github.com/shopadmin/backend/internal/application/mapping"
	vendorapp "github.com/shopadmin/backend/internal/application/vendor"
	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/mapping"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/vendor"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// In-memory repository stubs. The mapping service only touches the read and
// batch-write paths from these handlers, the rest return empty results.

type stubCategoryRepo struct {
	categories []catalog.Category
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return nil, shared.ErrNotFound
}

func (s *stubCategoryRepo) FindByCode(ctx context.Context, code string) (*catalog.Category, error) {
	return nil, shared.ErrNotFound
}

func (s *stubCategoryRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepo) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	return nil, nil
}

func (s *stubCategoryRepo) FindRootCategories(ctx context.Context) ([]catalog.Category, error) {
	return nil, nil
}

func (s *stubCategoryRepo) FindDescendants(ctx context.Context, categoryID uuid.UUID) ([]catalog.Category, error) {
	return nil, nil
}

func (s *stubCategoryRepo) Save(ctx context.Context, category *catalog.Category) error { return nil }
func (s *stubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

func (s *stubCategoryRepo) HasChildren(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) HasProducts(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubCategoryRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return int64(len(s.categories)), nil
}

func (s *stubCategoryRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

type stubMappingRepo struct {
	rows map[string]*mapping.CategoryMapping // vendorCode|vendorCategoryID
}

func newStubMappingRepo() *stubMappingRepo {
	return &stubMappingRepo{rows: make(map[string]*mapping.CategoryMapping)}
}

func mappingKey(vendorCode, vendorCategoryID string) string {
	return vendorCode + "|" + vendorCategoryID
}

func (s *stubMappingRepo) FindByID(ctx context.Context, id uuid.UUID) (*mapping.CategoryMapping, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *stubMappingRepo) FindByOurCategory(ctx context.Context, ourCategoryID string) ([]mapping.CategoryMapping, error) {
	out := make([]mapping.CategoryMapping, 0)
	for _, row := range s.rows {
		if row.OurCategoryID == ourCategoryID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubMappingRepo) FindByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) (*mapping.CategoryMapping, error) {
	if row, ok := s.rows[mappingKey(vendorCode, vendorCategoryID)]; ok {
		return row, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubMappingRepo) FindAll(ctx context.Context, filter mapping.Filter) ([]mapping.CategoryMapping, error) {
	out := make([]mapping.CategoryMapping, 0)
	for _, row := range s.rows {
		if filter.VendorCode != "" && row.VendorCode != filter.VendorCode {
			continue
		}
		if filter.IsActive != nil && row.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubMappingRepo) Count(ctx context.Context, filter mapping.Filter) (int64, error) {
	rows, _ := s.FindAll(ctx, filter)
	return int64(len(rows)), nil
}

func (s *stubMappingRepo) ExistsByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) (bool, error) {
	_, ok := s.rows[mappingKey(vendorCode, vendorCategoryID)]
	return ok, nil
}

func (s *stubMappingRepo) Save(ctx context.Context, m *mapping.CategoryMapping) error {
	s.rows[mappingKey(m.VendorCode, m.VendorCategoryID)] = m
	return nil
}

func (s *stubMappingRepo) SaveBatch(ctx context.Context, mappings []*mapping.CategoryMapping) error {
	for _, m := range mappings {
		s.rows[mappingKey(m.VendorCode, m.VendorCategoryID)] = m
	}
	return nil
}

func (s *stubMappingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for key, row := range s.rows {
		if row.ID == id {
			delete(s.rows, key)
			return nil
		}
	}
	return mapping.ErrMappingNotFound
}

func (s *stubMappingRepo) DeleteByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) error {
	key := mappingKey(vendorCode, vendorCategoryID)
	if _, ok := s.rows[key]; !ok {
		return mapping.ErrMappingNotFound
	}
	delete(s.rows, key)
	return nil
}

type stubFeedRepo struct {
	rows map[string][]vendor.FeedCategory
}

func (s *stubFeedRepo) FindByVendor(ctx context.Context, vendorCode string) ([]vendor.FeedCategory, error) {
	return s.rows[vendorCode], nil
}

func (s *stubFeedRepo) ReplaceForVendor(ctx context.Context, vendorCode string, rows []vendor.FeedCategory) error {
	s.rows[vendorCode] = rows
	return nil
}

func (s *stubFeedRepo) DeleteByVendor(ctx context.Context, vendorCode string) error {
	delete(s.rows, vendorCode)
	return nil
}

func (s *stubFeedRepo) CountByVendor(ctx context.Context, vendorCode string) (int64, error) {
	return int64(len(s.rows[vendorCode])), nil
}

type stubVendorRepo struct {
	vendors map[string]*vendor.Vendor
}

func (s *stubVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	for _, v := range s.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *stubVendorRepo) FindByCode(ctx context.Context, code string) (*vendor.Vendor, error) {
	if v, ok := s.vendors[code]; ok {
		return v, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubVendorRepo) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Vendor, error) {
	out := make([]vendor.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (s *stubVendorRepo) FindActive(ctx context.Context) ([]vendor.Vendor, error) {
	out := make([]vendor.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		if v.IsActive() {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *stubVendorRepo) Save(ctx context.Context, v *vendor.Vendor) error {
	s.vendors[v.Code] = v
	return nil
}

func (s *stubVendorRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubVendorRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := s.vendors[code]
	return ok, nil
}

// adminTestEnv wires a real mapping service over the stubs so the handlers
// exercise the full request path.
type adminTestEnv struct {
	engine      *gin.Engine
	mappingRepo *stubMappingRepo
	shoesID     string
	apparelID   string
}

func newAdminTestEnv(t *testing.T) *adminTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	apparel, err := catalog.NewCategory("APP", "Apparel")
	require.NoError(t, err)
	shoes, err := catalog.NewChildCategory("SHOES", "Shoes", apparel)
	require.NoError(t, err)
	shoes.ProductCount = 3

	catRepo := &stubCategoryRepo{categories: []catalog.Category{*apparel, *shoes}}

	northwind, err := vendor.NewVendor("northwind", "Northwind Traders")
	require.NoError(t, err)
	unlisted, err := vendor.NewVendor("unlisted", "Unlisted Imports")
	require.NoError(t, err)
	vendorRepo := &stubVendorRepo{vendors: map[string]*vendor.Vendor{
		"northwind": northwind,
		"unlisted":  unlisted,
	}}

	feedRepo := &stubFeedRepo{rows: map[string][]vendor.FeedCategory{
		"northwind": {
			{VendorCode: "northwind", ExternalID: "NW-1", Name: "Footwear", ProductCount: 10},
			{VendorCode: "northwind", ExternalID: "NW-2", Name: "Running Shoes", ParentExternalID: "NW-1", ProductCount: 4},
		},
	}}

	mappingRepo := newStubMappingRepo()
	existing, err := mapping.NewCategoryMapping(shoes.ID.String(), "northwind", "NW-2")
	require.NoError(t, err)
	existing.OurCategoryName = "Shoes"
	existing.OurParentName = "Apparel"
	existing.VendorCategoryName = "Running Shoes"
	require.NoError(t, mappingRepo.Save(context.Background(), existing))

	allowed := []string{"northwind"}
	mappingService := mappingapp.NewService(catRepo, mappingRepo, feedRepo, vendorRepo, nil, allowed)
	vendorService := vendorapp.NewService(vendorRepo, feedRepo, nil, allowed)

	h := NewAdminMappingHandler(mappingService, vendorService)

	engine := gin.New()
	admin := engine.Group("/api/v1/admin")
	admin.GET("/get-our-categories", h.GetOurCategories)
	admin.GET("/search-our-categories", h.SearchOurCategories)
	admin.GET("/get-category-for-mappings", h.GetCategoryForMappings)
	admin.GET("/get-mapped-categories", h.GetMappedCategories)
	admin.POST("/map-vendor-category", h.MapVendorCategory)
	admin.POST("/unmap-vendor-category", h.UnmapVendorCategory)
	admin.GET("/get-vendor-list", h.GetVendorList)

	return &adminTestEnv{
		engine:      engine,
		mappingRepo: mappingRepo,
		shoesID:     shoes.ID.String(),
		apparelID:   apparel.ID.String(),
	}
}

func (env *adminTestEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestAdminMappingHandler_GetOurCategories(t *testing.T) {
	env := newAdminTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-our-categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	forest := resp.Data.([]interface{})
	require.Len(t, forest, 1)
	root := forest[0].(map[string]interface{})
	assert.Equal(t, "Apparel", root["name"])
	children := root["children"].([]interface{})
	require.Len(t, children, 1)
	child := children[0].(map[string]interface{})
	assert.Equal(t, "Shoes", child["name"])
	assert.Equal(t, float64(3), child["productCount"])
}

func TestAdminMappingHandler_SearchOurCategories(t *testing.T) {
	env := newAdminTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/api/v1/admin/search-our-categories?search=shoe", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	matches := resp.Data.([]interface{})
	require.Len(t, matches, 1)
	match := matches[0].(map[string]interface{})
	category := match["category"].(map[string]interface{})
	assert.Equal(t, "Shoes", category["name"])
	parentPath := match["parentPath"].([]interface{})
	require.Len(t, parentPath, 1)
	assert.Equal(t, "Apparel", parentPath[0].(map[string]interface{})["name"])
}

func TestAdminMappingHandler_GetCategoryForMappings(t *testing.T) {
	env := newAdminTestEnv(t)

	t.Run("returns vendor forest", func(t *testing.T) {
		w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-category-for-mappings?vendorId=northwind", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		forest := resp.Data.([]interface{})
		require.Len(t, forest, 1)
		root := forest[0].(map[string]interface{})
		assert.Equal(t, "Footwear", root["name"])
		assert.Equal(t, float64(10), root["productCount"])
		require.Len(t, root["children"].([]interface{}), 1)
	})

	t.Run("rejects vendor outside the allow-list", func(t *testing.T) {
		w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-category-for-mappings?vendorId=unlisted", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VENDOR_NOT_ALLOWED", resp.Error.Code)
	})

	t.Run("rejects missing vendor", func(t *testing.T) {
		w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-category-for-mappings", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_VENDOR", resp.Error.Code)
	})
}

func TestAdminMappingHandler_GetMappedCategories(t *testing.T) {
	env := newAdminTestEnv(t)

	t.Run("returns grouped listing", func(t *testing.T) {
		w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-mapped-categories?vendorId=northwind&page=1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		payload := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), payload["totalPages"])

		groups := payload["data"].([]interface{})
		require.Len(t, groups, 1)
		group := groups[0].(map[string]interface{})
		assert.Equal(t, env.shoesID, group["ourCategoryId"])
		assert.Equal(t, "Shoes", group["ourCategoryName"])
		assert.Equal(t, "Apparel", group["ourParentName"])

		vendors := group["vendors"].([]interface{})
		require.Len(t, vendors, 1)
		assert.Equal(t, "NW-2", vendors[0].(map[string]interface{})["vendorCategoryId"])
	})

	t.Run("search misses yield empty page", func(t *testing.T) {
		w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-mapped-categories?vendorId=northwind&search=nonexistent", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		payload := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), payload["totalPages"])
		assert.Empty(t, payload["data"])
	})

	t.Run("rejects non-numeric page", func(t *testing.T) {
		w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-mapped-categories?vendorId=northwind&page=abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
	})
}

func TestAdminMappingHandler_MapVendorCategory(t *testing.T) {
	env := newAdminTestEnv(t)

	t.Run("maps a vendor category and returns the refreshed listing", func(t *testing.T) {
		body := map[string]any{
			"vendorId":           "northwind",
			"our_category_id":    env.apparelID,
			"vendor_category_id": []string{"NW-1"},
		}
		w, resp := env.do(t, http.MethodPost, "/api/v1/admin/map-vendor-category", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)

		saved, err := env.mappingRepo.FindByVendorCategory(context.Background(), "northwind", "NW-1")
		require.NoError(t, err)
		assert.Equal(t, env.apparelID, saved.OurCategoryID)
		assert.Equal(t, "Apparel", saved.OurCategoryName)
		assert.Equal(t, "Footwear", saved.VendorCategoryName)

		payload := resp.Data.(map[string]interface{})
		groups := payload["data"].([]interface{})
		assert.Len(t, groups, 2)
	})

	t.Run("moves an already-mapped vendor category", func(t *testing.T) {
		body := map[string]any{
			"vendorId":           "northwind",
			"our_category_id":    env.apparelID,
			"vendor_category_id": []string{"NW-2"},
		}
		w, _ := env.do(t, http.MethodPost, "/api/v1/admin/map-vendor-category", body)

		assert.Equal(t, http.StatusOK, w.Code)
		moved, err := env.mappingRepo.FindByVendorCategory(context.Background(), "northwind", "NW-2")
		require.NoError(t, err)
		assert.Equal(t, env.apparelID, moved.OurCategoryID)
	})

	t.Run("rejects blank vendor selection", func(t *testing.T) {
		body := map[string]any{
			"vendorId":           "northwind",
			"our_category_id":    env.apparelID,
			"vendor_category_id": []string{"   "},
		}
		w, resp := env.do(t, http.MethodPost, "/api/v1/admin/map-vendor-category", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "EMPTY_SELECTION", resp.Error.Code)
	})

	t.Run("rejects unknown our category", func(t *testing.T) {
		body := map[string]any{
			"vendorId":           "northwind",
			"our_category_id":    uuid.NewString(),
			"vendor_category_id": []string{"NW-1"},
		}
		w, resp := env.do(t, http.MethodPost, "/api/v1/admin/map-vendor-category", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "OUR_CATEGORY_NOT_FOUND", resp.Error.Code)
	})

	t.Run("rejects missing body fields", func(t *testing.T) {
		w, resp := env.do(t, http.MethodPost, "/api/v1/admin/map-vendor-category", map[string]any{"vendorId": "northwind"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestAdminMappingHandler_UnmapVendorCategory(t *testing.T) {
	env := newAdminTestEnv(t)

	t.Run("removes an existing mapping", func(t *testing.T) {
		body := map[string]any{
			"vendorId":           "northwind",
			"vendor_category_id": "NW-2",
		}
		w, resp := env.do(t, http.MethodPost, "/api/v1/admin/unmap-vendor-category", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)

		_, err := env.mappingRepo.FindByVendorCategory(context.Background(), "northwind", "NW-2")
		assert.Error(t, err)
	})

	t.Run("unknown vendor category yields not found", func(t *testing.T) {
		body := map[string]any{
			"vendorId":           "northwind",
			"vendor_category_id": "NW-999",
		}
		w, resp := env.do(t, http.MethodPost, "/api/v1/admin/unmap-vendor-category", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "MAPPING_NOT_FOUND", resp.Error.Code)
	})
}

func TestAdminMappingHandler_GetVendorList(t *testing.T) {
	env := newAdminTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/api/v1/admin/get-vendor-list", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	payload := resp.Data.(map[string]interface{})
	vendors := payload["vendors"].([]interface{})
	require.Len(t, vendors, 1)
	assert.Equal(t, "northwind", vendors[0].(map[string]interface{})["code"])
}
