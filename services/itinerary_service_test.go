package services

import (
	"testing"

	"itinerary-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDayRejectsDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewItineraryService(db)

	customer := models.Customer{Name: "Duplicate Day Trip"}
	require.NoError(t, NewCustomerService(db).Create(&customer))

	require.NoError(t, svc.CreateDay(&models.ItineraryDay{CustomerID: customer.ID, Day: 1, Title: "Arrival"}))

	err := svc.CreateDay(&models.ItineraryDay{CustomerID: customer.ID, Day: 1, Title: "Again"})
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestCreateDaySameNumberDifferentCustomers(t *testing.T) {
	db := newTestDB(t)
	svc := NewItineraryService(db)
	customers := NewCustomerService(db)

	a := models.Customer{Name: "Trip A"}
	b := models.Customer{Name: "Trip B"}
	require.NoError(t, customers.Create(&a))
	require.NoError(t, customers.Create(&b))

	require.NoError(t, svc.CreateDay(&models.ItineraryDay{CustomerID: a.ID, Day: 1, Title: "A1"}))
	require.NoError(t, svc.CreateDay(&models.ItineraryDay{CustomerID: b.ID, Day: 1, Title: "B1"}))
}

func TestCreateDayDefaultsIcon(t *testing.T) {
	db := newTestDB(t)
	svc := NewItineraryService(db)

	customer := models.Customer{Name: "Icon Trip"}
	require.NoError(t, NewCustomerService(db).Create(&customer))

	day := models.ItineraryDay{CustomerID: customer.ID, Day: 1, Title: "Arrival"}
	require.NoError(t, svc.CreateDay(&day))
	assert.Equal(t, "📍", day.Icon)
}

func TestListByCustomerOrdersDaysAndDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewItineraryService(db)

	customer := models.Customer{Name: "Ordered Trip"}
	require.NoError(t, NewCustomerService(db).Create(&customer))

	day2 := models.ItineraryDay{CustomerID: customer.ID, Day: 2, Title: "Museums"}
	day1 := models.ItineraryDay{CustomerID: customer.ID, Day: 1, Title: "Arrival"}
	require.NoError(t, svc.CreateDay(&day2))
	require.NoError(t, svc.CreateDay(&day1))

	require.NoError(t, svc.AddDetail(customer.ID, day1.ID, &models.ItineraryDetail{Time: "14:00", Activity: "Lunch", SortOrder: 1}))
	require.NoError(t, svc.AddDetail(customer.ID, day1.ID, &models.ItineraryDetail{Time: "10:00", Activity: "Check-in", SortOrder: 0}))

	days, err := svc.ListByCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)

	require.Len(t, days[0].Details, 2)
	assert.Equal(t, "Check-in", days[0].Details[0].Activity)
	assert.Equal(t, "Lunch", days[0].Details[1].Activity)
}

func TestAddDetailUnknownDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewItineraryService(db)

	customer := models.Customer{Name: "No Day Trip"}
	require.NoError(t, NewCustomerService(db).Create(&customer))

	err := svc.AddDetail(customer.ID, 42, &models.ItineraryDetail{Time: "10:00", Activity: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDayRemovesDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewItineraryService(db)

	customer := models.Customer{Name: "Short Trip"}
	require.NoError(t, NewCustomerService(db).Create(&customer))

	day := models.ItineraryDay{CustomerID: customer.ID, Day: 1, Title: "Only Day"}
	require.NoError(t, svc.CreateDay(&day))
	require.NoError(t, svc.AddDetail(customer.ID, day.ID, &models.ItineraryDetail{Time: "09:00", Activity: "Walk"}))

	require.NoError(t, svc.DeleteDay(customer.ID, day.ID))

	var details int64
	require.NoError(t, db.Model(&models.ItineraryDetail{}).Count(&details).Error)
	assert.Zero(t, details)
}
