package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/utils"
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

func userRow(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{"id", "nama", "username", "password", "role", "id_outlet"}).
		AddRow(1, "Admin", "admin", string(hashed), "admin", 1)
}

func TestLoginSuccess(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs("admin", 1).
		WillReturnRows(userRow(t, "admin123"))

	maker := utils.NewTokenMaker("test-secret")
	service := NewAuthService(maker)

	resp, err := service.Login(dtos.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := maker.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs("admin", 1).
		WillReturnRows(userRow(t, "admin123"))

	service := NewAuthService(utils.NewTokenMaker("test-secret"))

	_, err := service.Login(dtos.LoginInput{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := NewAuthService(utils.NewTokenMaker("test-secret"))

	_, err := service.Login(dtos.LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
