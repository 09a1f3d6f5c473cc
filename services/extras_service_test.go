package services

import (
	"testing"

	"itinerary-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVideoDefaultsTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)

	customer := seedCustomer(t, db, "Video Trip", "Oslo")

	video, err := svc.SetVideo(customer.ID, models.Video{LocalSrc: "/static/videos/tour.mp4"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultVideoTitle, video.Title)
}

func TestSetVideoReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)

	customer := seedCustomer(t, db, "Replace Video Trip", "Oslo")

	first, err := svc.SetVideo(customer.ID, models.Video{LocalSrc: "/static/videos/v1.mp4"})
	require.NoError(t, err)
	second, err := svc.SetVideo(customer.ID, models.Video{Title: "New cut", LocalSrc: "/static/videos/v2.mp4"})
	require.NoError(t, err)

	// one-to-one: the same row is updated, never a second one created
	assert.Equal(t, first.ID, second.ID)
	var count int64
	require.NoError(t, db.Model(&models.Video{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := svc.GetVideo(customer.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "/static/videos/v2.mp4", stored.LocalSrc)
	assert.Equal(t, "New cut", stored.Title)
}

func TestSetVideoRequiresSource(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	customer := seedCustomer(t, db, "No Source Trip", "Oslo")

	_, err := svc.SetVideo(customer.ID, models.Video{Title: "Empty"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetWhatsAppValidatesPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	customer := seedCustomer(t, db, "Contact Trip", "Mumbai")

	_, err := svc.SetWhatsApp(customer.ID, models.WhatsAppConfig{Phone: "+91 98765"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	cfg, err := svc.SetWhatsApp(customer.ID, models.WhatsAppConfig{Phone: "919876543210"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWhatsAppMessage, cfg.Message)
}

func TestSetWhatsAppReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	customer := seedCustomer(t, db, "Contact Replace Trip", "Mumbai")

	first, err := svc.SetWhatsApp(customer.ID, models.WhatsAppConfig{Phone: "919876543210"})
	require.NoError(t, err)
	second, err := svc.SetWhatsApp(customer.ID, models.WhatsAppConfig{Phone: "918888888888", Message: "Ping me"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	var count int64
	require.NoError(t, db.Model(&models.WhatsAppConfig{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteVideoUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)

	assert.ErrorIs(t, svc.DeleteVideo(777), ErrNotFound)
}

func TestInclusionsOrderedBySortKey(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	customer := seedCustomer(t, db, "Sorted Trip", "Cairo")

	require.NoError(t, svc.AddInclusion(&models.PackageInclusion{CustomerID: customer.ID, Item: "Guide", SortOrder: 1}))
	require.NoError(t, svc.AddInclusion(&models.PackageInclusion{CustomerID: customer.ID, Item: "Breakfast", SortOrder: 0}))

	items, err := svc.ListInclusions(customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Breakfast", items[0].Item)
	assert.Equal(t, "Guide", items[1].Item)
}
