package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T, srvURL string, name string) map[string]any {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srvURL+"/product/", map[string]any{
		"name":        name,
		"price":       19.99,
		"description": "A plain cotton shirt.",
		"variants": []map[string]any{
			{"color": "Red", "size": "M", "in_stock": true},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return dataField(t, body)
}

func TestProductCRUD(t *testing.T) {
	srv := newTestServer(t)

	created := createTestProduct(t, srv.URL, "Test Shirt")
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "Test Shirt", created["name"])
	variants, _ := created["variants"].([]any)
	require.Len(t, variants, 1)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/product/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Test Shirt", dataField(t, body)["name"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/product/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, dataList(t, body), 1)

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/product/"+id, map[string]any{
		"price": 24.99,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := dataField(t, body)
	require.InDelta(t, 24.99, updated["price"].(float64), 0.001)
	require.Equal(t, "Test Shirt", updated["name"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/product/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/product/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestProductValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/product/", map[string]any{
		"name":        "Bad Price",
		"price":       -2,
		"description": "Negative price.",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/product/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, body))
}

func TestProductImages(t *testing.T) {
	srv := newTestServer(t)
	created := createTestProduct(t, srv.URL, "Jacket")
	id := created["id"].(string)

	// Empty image batch is rejected.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/product/"+id+"/images", map[string]any{
		"images": []map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/product/"+id+"/images", map[string]any{
		"images": []map[string]any{
			{"image_url": "https://cdn.example.com/jacket.jpg"},
			{"color": "red", "image_url": "https://cdn.example.com/jacket-red.jpg"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.EqualValues(t, 2, dataField(t, body)["added"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/product/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	images := dataField(t, body)["images"].([]any)
	require.Len(t, images, 2)

	imageID := images[0].(map[string]any)["id"].(string)
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/product/"+id+"/images/"+imageID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/product/"+id+"/images/"+imageID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestProductVariants(t *testing.T) {
	srv := newTestServer(t)
	created := createTestProduct(t, srv.URL, "Sweater")
	id := created["id"].(string)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/product/"+id+"/variants", map[string]any{
		"color": "Green", "size": "L", "in_stock": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	variant := dataField(t, body)
	variantID := variant["id"].(string)

	// Same (color, size) pair again conflicts.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/product/"+id+"/variants", map[string]any{
		"color": "Green", "size": "L",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "CONFLICT", errorCode(t, body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/product/"+id+"/variants", map[string]any{
		"color": "Green", "size": "XXXL",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, body))

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/product/variant/"+variantID, map[string]any{
		"color": "Green", "size": "XL", "in_stock": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "XL", dataField(t, body)["size"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/product/variant/"+variantID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/product/variant/"+variantID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestProductRecommendations(t *testing.T) {
	srv := newTestServer(t)
	base := createTestProduct(t, srv.URL, "Camera")
	rec := createTestProduct(t, srv.URL, "Tripod")
	baseID := base["id"].(string)
	recID := rec["id"].(string)

	// Self-recommendation is invalid input.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/product/"+baseID+"/recommendations/"+baseID, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, body))

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/product/"+baseID+"/recommendations/"+recID, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate edge conflicts.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/product/"+baseID+"/recommendations/"+recID, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "CONFLICT", errorCode(t, body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/product/"+baseID+"/recommendations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	edges := dataList(t, body)
	require.Len(t, edges, 1)
	edgeID := edges[0].(map[string]any)["id"].(string)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/product/recommendations/"+edgeID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/product/"+baseID+"/recommendations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, dataList(t, body))
}
