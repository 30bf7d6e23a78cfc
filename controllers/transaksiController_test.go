package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performJSONRequest(handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

// diskon over 100 must fail before any persistence happens; no DB
// expectations are registered, so reaching the store would fail the test.
func TestCreateTransaksiRejectsDiskonOver100(t *testing.T) {
	newMockDB(t)

	body := `{
		"id_outlet": 1,
		"kode_invoice": "INV010",
		"id_member": 1,
		"tgl": "2025-01-10T08:00:00Z",
		"batas_waktu": "2025-01-13T08:00:00Z",
		"biaya_tambahan": 1000,
		"diskon": 150,
		"pajak": 500,
		"status": "baru",
		"dibayar": "belum_dibayar",
		"id_user": 1
	}`

	w := performJSONRequest(CreateTransaksi, http.MethodPost, "/api/transaksi", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "diskon")
}

func TestCreateTransaksiAcceptsBoundaryDiskon(t *testing.T) {
	for _, diskon := range []string{"0", "100"} {
		mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `transaksis`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		body := `{
			"id_outlet": 1,
			"kode_invoice": "INV011",
			"id_member": 1,
			"tgl": "2025-01-10T08:00:00Z",
			"batas_waktu": "2025-01-13T08:00:00Z",
			"diskon": ` + diskon + `,
			"status": "baru",
			"dibayar": "belum_dibayar",
			"id_user": 1
		}`

		w := performJSONRequest(CreateTransaksi, http.MethodPost, "/api/transaksi", body)

		require.Equal(t, http.StatusCreated, w.Code, "diskon %s", diskon)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestGetTransaksiOrderedWithRelations(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `transaksis` ORDER BY id asc").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "id_outlet", "kode_invoice", "id_member", "tgl", "batas_waktu",
			"tgl_bayar", "biaya_tambahan", "diskon", "pajak", "status", "dibayar", "id_user",
		}).
			AddRow(1, 1, "INV001", 1, now, now, now, 5000, 10, 2000, "baru", "dibayar", 1).
			AddRow(2, 2, "INV002", 2, now, now, nil, 3000, 5, 1500, "proses", "belum_dibayar", 2))

	// eager loads run in association-name order: Member, Outlet, User
	mock.ExpectQuery("SELECT \\* FROM `members`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama", "alamat", "jenis_kelamin", "tlp", "created_at"}).
			AddRow(1, "Icy Man", "Jl. Raya 1", "laki_laki", 1234567890, now).
			AddRow(2, "Manzy", "Jl. Raya 2", "perempuan", 9876543210, now))
	mock.ExpectQuery("SELECT \\* FROM `outlets`").
		WillReturnRows(outletRows())
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama", "username", "password", "role", "id_outlet", "created_at"}).
			AddRow(1, "Admin", "admin", "x", "admin", 1, now).
			AddRow(2, "Cashier 1", "cashier1", "x", "cashier", 2, now))

	w := performRequest(GetTransaksi, http.MethodGet, "/api/transaksi", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INV001")
	assert.Contains(t, w.Body.String(), "INV002")
	assert.NoError(t, mock.ExpectationsWereMet())
}
