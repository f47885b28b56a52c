package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitor-http-service/models"
)

func TestRegisterGuestCreatesGuestAndVisit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	guest := &models.Guest{
		Name:    "Jane Doe",
		Phone:   "081234567890",
		Company: "Acme Corp",
	}
	visit := &models.Visit{PurposeID: purpose.ID}

	guest, visit, err := svc.RegisterGuest(guest, visit)
	require.NoError(t, err)

	assert.NotEmpty(t, guest.ID)
	assert.NotEmpty(t, visit.ID)
	assert.Equal(t, guest.ID, visit.GuestID)
	assert.Equal(t, models.VisitStatusCheckedIn, visit.Status)
	assert.False(t, visit.CheckInTime.IsZero())
	assert.Nil(t, visit.CheckOutTime)
}

func TestRegisterGuestReusesExistingGuestByPhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	first, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Jane Doe", Phone: "081234567890", Company: "Acme Corp"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)

	// Same phone, new details: the guest row is reused and overwritten
	second, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Jane Smith", Phone: "081234567890", Company: "Globex"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Guest{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	reloaded, err := svc.GetGuestByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", reloaded.Name)
	assert.Equal(t, "Globex", reloaded.Company)

	require.NoError(t, db.Model(&models.Visit{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateGuestRejectsDuplicatePhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	jane, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Jane Doe", Phone: "081234567890"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)
	bob, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Bob Lee", Phone: "089876543210"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)

	// Taking over another guest's phone would break the repeat-visitor lookup
	_, err = svc.UpdateGuest(bob.ID, map[string]interface{}{"phone": jane.Phone})
	require.EqualError(t, err, "phone already in use")

	reloaded, err := svc.GetGuestByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "089876543210", reloaded.Phone)

	// Writing the guest's own phone back is not a conflict
	updated, err := svc.UpdateGuest(bob.ID, map[string]interface{}{"phone": bob.Phone, "company": "Initech"})
	require.NoError(t, err)
	assert.Equal(t, "Initech", updated.Company)
}

func TestRegisterGuestRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	_, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Jane", Phone: "0811"},
		&models.Visit{PurposeID: 999},
	)
	require.EqualError(t, err, "purpose not found")

	missingHost := uint(999)
	_, _, err = svc.RegisterGuest(
		&models.Guest{Name: "Jane", Phone: "0811"},
		&models.Visit{PurposeID: purpose.ID, HostID: &missingHost},
	)
	require.EqualError(t, err, "host not found")

	// Neither failure may leave a guest behind
	var count int64
	require.NoError(t, db.Model(&models.Guest{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSearchGuests(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	names := []string{"Alice Johnson", "Bob Smith", "Alicia Keys"}
	for i, name := range names {
		_, _, err := svc.RegisterGuest(
			&models.Guest{Name: name, Phone: "0812345678" + string(rune('0'+i))},
			&models.Visit{PurposeID: purpose.ID},
		)
		require.NoError(t, err)
	}

	results, err := svc.SearchGuests("ali", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.SearchGuests("smith", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bob Smith", results[0].Name)
}

func TestCheckOutGuest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	guest, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Jane", Phone: "0811"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)

	visit, err := svc.CheckOutGuest(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusCheckedOut, visit.Status)
	require.NotNil(t, visit.CheckOutTime)

	// No open visit remains
	_, err = svc.CheckOutGuest(guest.ID)
	require.EqualError(t, err, "no active visit to check out")

	_, err = svc.CheckOutGuest("no-such-guest")
	require.EqualError(t, err, "guest not found")
}

func TestDeleteGuestRemovesVisits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	guest, _, err := svc.RegisterGuest(
		&models.Guest{Name: "Jane", Phone: "0811"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGuest(guest.ID))

	var count int64
	require.NoError(t, db.Model(&models.Visit{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, err = svc.GetGuestByID(guest.ID)
	require.EqualError(t, err, "guest not found")
}

func TestGetAllGuestsPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(db, testConfig(t))
	purpose := seedPurpose(t, db, "Meeting")

	for i := 0; i < 5; i++ {
		_, _, err := svc.RegisterGuest(
			&models.Guest{Name: "Guest", Phone: "0812345678" + string(rune('0'+i))},
			&models.Visit{PurposeID: purpose.ID},
		)
		require.NoError(t, err)
	}

	guests, total, err := svc.GetAllGuests(models.PaginationQuery{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, guests, 2)

	guests, _, err = svc.GetAllGuests(models.PaginationQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, guests, 1)
}
