package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListReviews(t *testing.T) {
	srv := newTestServer(t)

	payload := map[string]any{
		"product_id":  uuid.NewString(),
		"title":       "Excellent purchase",
		"description": "Arrived quickly and the fabric feels durable.",
		"author_name": "Sam",
		"score":       4,
	}
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/review/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := dataField(t, body)
	require.Equal(t, payload["title"], created["title"])
	require.EqualValues(t, 4, created["score"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/review/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, dataList(t, body), 1)
}

func TestCreateReviewValidation(t *testing.T) {
	srv := newTestServer(t)

	base := func() map[string]any {
		return map[string]any{
			"product_id":  uuid.NewString(),
			"title":       "Excellent purchase",
			"description": "Arrived quickly and the fabric feels durable.",
			"author_name": "Sam",
			"score":       4,
		}
	}

	for name, mutate := range map[string]func(map[string]any){
		"short title":      func(m map[string]any) { m["title"] = "Too short" },
		"long title":       func(m map[string]any) { m["title"] = strings.Repeat("a", 121) },
		"short desc":       func(m map[string]any) { m["description"] = "too short" },
		"long desc":        func(m map[string]any) { m["description"] = strings.Repeat("b", 301) },
		"score low":        func(m map[string]any) { m["score"] = 0 },
		"score high":       func(m map[string]any) { m["score"] = 6 },
		"bad product uuid": func(m map[string]any) { m["product_id"] = "nope" },
	} {
		payload := base()
		mutate(payload)
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/review/", payload)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		require.Equal(t, "VALIDATION_ERROR", errorCode(t, body), name)
	}
}
