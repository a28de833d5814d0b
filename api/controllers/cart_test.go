package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedProductWithVariant(t *testing.T, srvURL string) string {
	t.Helper()
	product := createTestProduct(t, srvURL, "Cart Seed Shirt")
	variants := product["variants"].([]any)
	return variants[0].(map[string]any)["id"].(string)
}

func TestCartLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cart/", map[string]any{"session_id": "s1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := dataField(t, body)
	require.Equal(t, "s1", created["session_id"])
	require.Empty(t, created["items"])

	// Idempotent create returns the same cart.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/cart/", map[string]any{"session_id": "s1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, created["id"], dataField(t, body)["id"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/cart/s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created["id"], dataField(t, body)["id"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/cart/unknown", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestCartItemFlow(t *testing.T) {
	srv := newTestServer(t)
	variantID := seedProductWithVariant(t, srv.URL)

	// First add implicitly creates the cart.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cart/s1/items", map[string]any{
		"variant_id": variantID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cart := dataField(t, body)
	items := cart["items"].([]any)
	require.Len(t, items, 1)
	require.EqualValues(t, 2, items[0].(map[string]any)["quantity"])
	itemID := items[0].(map[string]any)["id"].(string)

	// Adding the same variant increments the line.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/cart/s1/items", map[string]any{
		"variant_id": variantID,
		"quantity":   3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	items = dataField(t, body)["items"].([]any)
	require.Len(t, items, 1)
	require.EqualValues(t, 5, items[0].(map[string]any)["quantity"])

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/cart/s1/items/"+itemID, map[string]any{
		"quantity": 7,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items = dataField(t, body)["items"].([]any)
	require.EqualValues(t, 7, items[0].(map[string]any)["quantity"])

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/cart/s1/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, dataField(t, body)["items"])
}

func TestCartItemErrors(t *testing.T) {
	srv := newTestServer(t)
	variantID := seedProductWithVariant(t, srv.URL)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cart/s1/items", map[string]any{
		"variant_id": "00000000-0000-0000-0000-000000000001",
		"quantity":   1,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/cart/s1/items", map[string]any{
		"variant_id": variantID,
		"quantity":   0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, body))
}

func TestCartItemOwnership(t *testing.T) {
	srv := newTestServer(t)
	variantID := seedProductWithVariant(t, srv.URL)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cart/owner/items", map[string]any{
		"variant_id": variantID,
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	itemID := dataField(t, body)["items"].([]any)[0].(map[string]any)["id"].(string)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/cart/", map[string]any{"session_id": "intruder"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A valid item under someone else's cart is forbidden, not missing.
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/cart/intruder/items/"+itemID, map[string]any{
		"quantity": 9,
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "FORBIDDEN", errorCode(t, body))

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/cart/intruder/items/"+itemID, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "FORBIDDEN", errorCode(t, body))

	// With no cart at all the session gets NotFound instead.
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/cart/ghost/items/"+itemID, map[string]any{
		"quantity": 9,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestClearCartEndpoint(t *testing.T) {
	srv := newTestServer(t)
	variantID := seedProductWithVariant(t, srv.URL)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cart/s1/items", map[string]any{
		"variant_id": variantID,
		"quantity":   4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodDelete, srv.URL+"/cart/s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, dataField(t, body)["items"])

	// The emptied cart is still readable.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/cart/s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, dataField(t, body)["items"])

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/cart/ghost", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(t, body))
}
