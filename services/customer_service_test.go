package services

import (
	"strings"
	"testing"

	"itinerary-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCustomerSlugFromName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer := models.Customer{Name: "Paris Trip", Destination: "Paris"}
	require.NoError(t, svc.Create(&customer))

	assert.Equal(t, "paris-trip", customer.Slug)
}

func TestCustomerSlugCollisionGetsSuffix(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	first := models.Customer{Name: "Paris Trip"}
	require.NoError(t, svc.Create(&first))

	second := models.Customer{Name: "Paris Trip"}
	require.NoError(t, svc.Create(&second))

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "paris-trip-"), "suffixed slug, got %q", second.Slug)
	assert.Len(t, second.Slug, len("paris-trip-")+4)
}

func TestCustomerSlugsStayUniqueUnderRepeatedCollisions(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		c := models.Customer{Name: "Goa Getaway"}
		require.NoError(t, svc.Create(&c))
		assert.False(t, seen[c.Slug], "duplicate slug %q on iteration %d", c.Slug, i)
		seen[c.Slug] = true
	}
}

func TestCustomerSlugImmutableOnUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer := models.Customer{Name: "Rome Holiday", Destination: "Rome"}
	require.NoError(t, svc.Create(&customer))
	originalSlug := customer.Slug

	customer.Name = "Rome Holiday Deluxe"
	customer.Destination = "Rome, Italy"
	require.NoError(t, svc.Update(customer))

	reloaded, err := svc.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, originalSlug, reloaded.Slug)
	assert.Equal(t, "Rome Holiday Deluxe", reloaded.Name)
}

func TestCustomerPresetSlugIsKept(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer := models.Customer{Name: "Bali Escape", Slug: "custom-link"}
	require.NoError(t, svc.Create(&customer))
	assert.Equal(t, "custom-link", customer.Slug)
}

func TestCustomerCreateRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	err := svc.Create(&models.Customer{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCustomerDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer := models.Customer{Name: "Tokyo Adventure", Destination: "Tokyo"}
	require.NoError(t, svc.Create(&customer))

	require.NoError(t, db.Create(&models.Hotel{CustomerID: customer.ID, Name: "Park Hotel", Stars: 4}).Error)
	require.NoError(t, db.Create(&models.Flight{CustomerID: customer.ID, Role: models.FlightRoleDeparture, Cabin: models.CabinEconomy}).Error)
	day := models.ItineraryDay{CustomerID: customer.ID, Day: 1, Title: "Arrival"}
	require.NoError(t, db.Create(&day).Error)
	require.NoError(t, db.Create(&models.ItineraryDetail{ItineraryDayID: day.ID, Time: "10:00", Activity: "Check-in"}).Error)
	require.NoError(t, db.Create(&models.Video{CustomerID: customer.ID, Title: "Teaser", LocalSrc: "/static/videos/tour.mp4"}).Error)
	require.NoError(t, db.Create(&models.PackageInclusion{CustomerID: customer.ID, Item: "Breakfast"}).Error)
	require.NoError(t, db.Create(&models.PackageExclusion{CustomerID: customer.ID, Item: "Visa fees"}).Error)
	require.NoError(t, db.Create(&models.WhatsAppConfig{CustomerID: customer.ID, Phone: "919876543210", Message: "Hi"}).Error)

	require.NoError(t, svc.Delete(customer.ID))

	for name, model := range map[string]any{
		"customers":         &models.Customer{},
		"hotels":            &models.Hotel{},
		"flights":           &models.Flight{},
		"itinerary_days":    &models.ItineraryDay{},
		"itinerary_details": &models.ItineraryDetail{},
		"videos":            &models.Video{},
		"inclusions":        &models.PackageInclusion{},
		"exclusions":        &models.PackageExclusion{},
		"whatsapp_configs":  &models.WhatsAppConfig{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "expected no %s rows after cascade delete", name)
	}
}

func TestCustomerDeleteUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	assert.ErrorIs(t, svc.Delete(9999), ErrNotFound)
}

// TestCustomerListQueryShape pins the listing SQL: all customers, newest
// first.
func TestCustomerListQueryShape(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
		AddRow(2, "Later Trip", "later-trip").
		AddRow(1, "Earlier Trip", "earlier-trip")
	mock.ExpectQuery("SELECT \\* FROM `customers` ORDER BY created_at DESC").
		WillReturnRows(rows)

	svc := NewCustomerService(db)
	customers, err := svc.List()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "later-trip", customers[0].Slug)

	assert.NoError(t, mock.ExpectationsWereMet())
}
