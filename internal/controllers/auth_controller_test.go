package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"fleet_office/internal/store"
)

func newAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(store.NewUserStore(db))
	r.POST("/auth/signup", ctrl.Signup)
	return r, mock
}

func TestAuthController_Signup(t *testing.T) {
	t.Run("administrative roles cannot be self-granted", func(t *testing.T) {
		r, mock := newAuthRouter(t)

		body := `{"name":"Eve","email":"eve@example.com","password":"secret1","role":"super_admin"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("admin role is rejected the same way", func(t *testing.T) {
		r, mock := newAuthRouter(t)

		body := `{"name":"Eve","email":"eve@example.com","password":"secret1","role":"admin"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("omitted role defaults to helper", func(t *testing.T) {
		r, mock := newAuthRouter(t)

		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		body := `{"name":"Alice","email":"alice@example.com","password":"secret1"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"helper"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
