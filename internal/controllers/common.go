package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fleet_office/internal/pagination"
	"fleet_office/internal/response"
)

// filterParams flattens the query string into the filter map handed to the
// services. The per-entity filter specs decide which keys actually apply.
func filterParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

// paginationOptions binds page/limit/sortBy/sortOrder. Binding errors are
// deliberately ignored: unusable values fall back to the defaults.
func paginationOptions(c *gin.Context) pagination.Options {
	var opts pagination.Options
	_ = c.ShouldBindQuery(&opts)
	return opts
}

// parseID reads the :id path parameter. On failure it has already written
// the 400 envelope; callers just return.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
