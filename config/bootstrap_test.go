package config

import (
	"fmt"
	"sync/atomic"
	"testing"

	"itinerary-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var bootstrapTestSeq int64

func newBootstrapTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:bootstrap_test_%d?mode=memory&cache=shared", atomic.AddInt64(&bootstrapTestSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestBootstrapCredentialsFromEnvMissing(t *testing.T) {
	t.Setenv("BOOTSTRAP_USERNAME", "")
	t.Setenv("BOOTSTRAP_EMAIL", "")
	t.Setenv("BOOTSTRAP_PASSWORD", "")

	_, err := BootstrapCredentialsFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOOTSTRAP_USERNAME")
	assert.Contains(t, err.Error(), "BOOTSTRAP_EMAIL")
	assert.Contains(t, err.Error(), "BOOTSTRAP_PASSWORD")
}

func TestBootstrapCredentialsFromEnvComplete(t *testing.T) {
	t.Setenv("BOOTSTRAP_USERNAME", "root-admin")
	t.Setenv("BOOTSTRAP_EMAIL", "admin@example.com")
	t.Setenv("BOOTSTRAP_PASSWORD", "long-enough-secret")

	creds, err := BootstrapCredentialsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "root-admin", creds.Username)
}

func TestEnsureSuperuserCreatesOnce(t *testing.T) {
	db := newBootstrapTestDB(t)

	creds := BootstrapCredentials{
		Username: "root-admin",
		Email:    "admin@example.com",
		Password: "long-enough-secret",
	}
	require.NoError(t, EnsureSuperuser(db, creds))

	var user models.AdminUser
	require.NoError(t, db.Where("username = ?", "root-admin").First(&user).Error)
	assert.True(t, user.IsSuperuser)
	assert.NotEqual(t, creds.Password, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)))

	// Second run is a no-op, even with different credentials.
	require.NoError(t, EnsureSuperuser(db, BootstrapCredentials{
		Username: "someone-else",
		Email:    "other@example.com",
		Password: "another-secret",
	}))

	var count int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureSuperuserIgnoresRegularUsers(t *testing.T) {
	db := newBootstrapTestDB(t)

	require.NoError(t, db.Create(&models.AdminUser{
		Username: "editor", Email: "editor@example.com", Password: "x", IsSuperuser: false,
	}).Error)

	require.NoError(t, EnsureSuperuser(db, BootstrapCredentials{
		Username: "root-admin", Email: "admin@example.com", Password: "long-enough-secret",
	}))

	var count int64
	require.NoError(t, db.Model(&models.AdminUser{}).Where("is_superuser = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
