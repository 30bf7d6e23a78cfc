package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Bayu-x3/Washify-Backend/config"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	config.DB = db
	t.Cleanup(func() {
		config.DB = nil
		sqlDB.Close()
	})

	return mock
}

func performRequest(handler gin.HandlerFunc, method, path string, params gin.Params) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	c.Params = params

	handler(c)
	return w
}

func outletRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "nama", "alamat", "tlp", "created_at"}).
		AddRow(1, "Outlet 1", "Alamat 1", 1234567891, time.Now()).
		AddRow(2, "Outlet 2", "Alamat 2", 1234567892, time.Now())
}

func TestGetOutletsOrderedByID(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `outlets` ORDER BY id asc").
		WillReturnRows(outletRows())

	w := performRequest(GetOutlets, http.MethodGet, "/api/outlets", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOutletByIDNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `outlets`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(GetOutletByID, http.MethodGet, "/api/outlets/99",
		gin.Params{{Key: "id", Value: "99"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestDeleteOutletCascadesDependentsFirst(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `outlets`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama", "alamat", "tlp", "created_at"}).
			AddRow(5, "Outlet 5", "Alamat 5", 1234567895, time.Now()))

	// dependents go first, all inside one transaction
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `detail_transaksis`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `transaksis`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `pakets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `outlets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(DeleteOutlet, http.MethodDelete, "/api/outlets/5",
		gin.Params{{Key: "id", Value: "5"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOutletRollsBackOnFailure(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `outlets`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama", "alamat", "tlp", "created_at"}).
			AddRow(5, "Outlet 5", "Alamat 5", 1234567895, time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `detail_transaksis`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `transaksis`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	w := performRequest(DeleteOutlet, http.MethodDelete, "/api/outlets/5",
		gin.Params{{Key: "id", Value: "5"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
