// Package response renders the uniform API envelope.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleet_office/internal/apperror"
	"fleet_office/internal/pagination"
)

// Meta is the pagination block of a list response.
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

// Envelope is the uniform success/failure payload. Data stays in the
// payload even when nil: a missing entity renders as "data": null.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Meta       *Meta  `json:"meta,omitempty"`
	Data       any    `json:"data"`
}

// NewMeta derives the meta block, with totalPage = ceil(total/limit).
func NewMeta(pages pagination.Pages, total int64) *Meta {
	return &Meta{
		Page:      pages.Page,
		Limit:     pages.Limit,
		Total:     total,
		TotalPage: pagination.TotalPages(total, pages.Limit),
	}
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	})
}

// List writes a 200 envelope with pagination meta.
func List(c *gin.Context, message string, meta *Meta, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Meta:       meta,
		Data:       data,
	})
}

// Fail translates a service error into the envelope. Unclassified errors
// become a plain 500; the detail goes to the log, never across the wire.
func Fail(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
		message = "Internal server error"
	}

	c.JSON(status, Envelope{
		Success:    false,
		StatusCode: status,
		Message:    message,
	})
}

// BadRequest rejects a malformed body or query before any service runs.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success:    false,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	})
}
