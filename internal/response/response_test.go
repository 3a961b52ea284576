package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_office/internal/apperror"
	"fleet_office/internal/pagination"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestList(t *testing.T) {
	c, rec := newTestContext()

	pages := pagination.Calculate(pagination.Options{Page: 2, Limit: 10})
	List(c, "Vehicles fetched successfully", NewMeta(pages, 25), []string{"a"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2.0, meta["page"])
	assert.Equal(t, 10.0, meta["limit"])
	assert.Equal(t, 25.0, meta["total"])
	assert.Equal(t, 3.0, meta["totalPage"])
}

func TestOK_OmitsMeta(t *testing.T) {
	c, rec := newTestContext()

	OK(c, "Vehicle fetched successfully", map[string]string{"reg_no": "KAA 001A"})

	body := decode(t, rec)
	assert.NotContains(t, body, "meta")
	assert.Equal(t, "Vehicle fetched successfully", body["message"])
}

func TestOK_NilDataRendersAsNull(t *testing.T) {
	c, rec := newTestContext()

	OK(c, "Vehicle retrieved successfully", nil)

	body := decode(t, rec)
	require.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestFail(t *testing.T) {
	t.Run("classified errors keep their status and message", func(t *testing.T) {
		c, rec := newTestContext()

		Fail(c, apperror.NotFound("Vehicle not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Vehicle not found", body["message"])
	})

	t.Run("unclassified errors are masked as 500", func(t *testing.T) {
		c, rec := newTestContext()

		Fail(c, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Internal server error", body["message"])
	})
}
