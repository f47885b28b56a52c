package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"visitor-http-service/models"
)

// seedVisit inserts a guest and a visit with an explicit check-in time
func seedVisit(t *testing.T, db *gorm.DB, purposeID uint, hostID *uint, checkIn time.Time) *models.Visit {
	t.Helper()

	guest := &models.Guest{Name: "Guest", Phone: checkIn.Format("150405.000000000")}
	require.NoError(t, db.Create(guest).Error)

	visit := &models.Visit{
		GuestID:     guest.ID,
		PurposeID:   purposeID,
		HostID:      hostID,
		Status:      models.VisitStatusCheckedIn,
		CheckInTime: checkIn,
		VisitDate:   checkIn,
	}
	require.NoError(t, db.Create(visit).Error)
	return visit
}

func TestCheckOutVisitHappensOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	visit := seedVisit(t, db, purpose.ID, nil, time.Now())

	checkedOut, err := svc.CheckOutVisit(visit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusCheckedOut, checkedOut.Status)
	require.NotNil(t, checkedOut.CheckOutTime)
	firstCheckOut := *checkedOut.CheckOutTime

	// Repeating the transition fails and leaves the record untouched
	_, err = svc.CheckOutVisit(visit.ID)
	require.EqualError(t, err, "visit already checked out")

	reloaded, err := svc.GetVisitByID(visit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusCheckedOut, reloaded.Status)
	require.NotNil(t, reloaded.CheckOutTime)
	assert.WithinDuration(t, firstCheckOut, *reloaded.CheckOutTime, time.Second)
}

func TestCheckOutVisitLosesRaceToConcurrentCheckout(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	visit := seedVisit(t, db, purpose.ID, nil, time.Now())

	// Another request checks the visit out between our read and write
	earlier := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.Visit{}).Where("id = ?", visit.ID).Updates(map[string]interface{}{
		"status":         models.VisitStatusCheckedOut,
		"check_out_time": earlier,
	}).Error)

	_, err := svc.CheckOutVisit(visit.ID)
	require.EqualError(t, err, "visit already checked out")

	reloaded, err := svc.GetVisitByID(visit.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CheckOutTime)
	assert.WithinDuration(t, earlier, *reloaded.CheckOutTime, time.Second)
}

func TestCheckOutVisitNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)

	_, err := svc.CheckOutVisit("no-such-visit")
	require.EqualError(t, err, "visit not found")
}

func TestGetAllVisitsStatusFilterAndPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	now := time.Now()
	for i := 0; i < 4; i++ {
		seedVisit(t, db, purpose.ID, nil, now.Add(time.Duration(i)*time.Minute))
	}
	checkedOut := seedVisit(t, db, purpose.ID, nil, now.Add(time.Hour))
	_, err := svc.CheckOutVisit(checkedOut.ID)
	require.NoError(t, err)

	visits, total, err := svc.GetAllVisits(VisitFilter{Page: 1, Limit: 10, Status: string(models.VisitStatusCheckedIn)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, visits, 4)

	visits, total, err = svc.GetAllVisits(VisitFilter{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, visits, 3)
	// Newest first
	assert.Equal(t, checkedOut.ID, visits[0].ID)

	visits, _, err = svc.GetAllVisits(VisitFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, visits, 2)
}

func TestGetVisitStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	now := time.Now()
	seedVisit(t, db, purpose.ID, nil, now)
	seedVisit(t, db, purpose.ID, nil, now)
	out := seedVisit(t, db, purpose.ID, nil, now)
	_, err := svc.CheckOutVisit(out.ID)
	require.NoError(t, err)

	stats, err := svc.GetVisitStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.TodayVisits)
	assert.Equal(t, int64(2), stats.ActiveVisits)
	assert.Equal(t, int64(1), stats.CheckedOutToday)
}

func TestGetVisitStatsTodayBoundaryIsLocalMidnight(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	// One visit just after local midnight, one just before; only the
	// first is today regardless of the server's zone offset
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	seedVisit(t, db, purpose.ID, nil, midnight.Add(time.Minute))
	seedVisit(t, db, purpose.ID, nil, midnight.Add(-time.Minute))

	stats, err := svc.GetVisitStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVisits)
	assert.Equal(t, int64(1), stats.TodayVisits)
}

func TestGetVisitReportGroupsAndSums(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)

	meeting := seedPurpose(t, db, "Meeting")
	delivery := seedPurpose(t, db, "Delivery")

	engineering := &models.Department{Name: "Engineering", IsActive: true}
	require.NoError(t, db.Create(engineering).Error)
	host := seedHost(t, db, "Budi", "budi@example.com", &engineering.ID)

	now := time.Now()
	seedVisit(t, db, meeting.ID, &host.ID, now)
	seedVisit(t, db, meeting.ID, &host.ID, now)
	seedVisit(t, db, delivery.ID, nil, now.Add(-24*time.Hour))

	report, err := svc.GetVisitReport("", "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.TotalVisits)

	// Every grouping sums back to the total
	var byDept, byPurpose, byDay int64
	for _, b := range report.VisitsByDepartment {
		byDept += b.Count
	}
	for _, b := range report.VisitsByPurpose {
		byPurpose += b.Count
	}
	for _, b := range report.VisitsByDay {
		byDay += b.Count
	}
	assert.Equal(t, report.TotalVisits, byDept)
	assert.Equal(t, report.TotalVisits, byPurpose)
	assert.Equal(t, report.TotalVisits, byDay)

	// Hostless visits land in the Unknown department bucket
	deptCounts := map[string]int64{}
	for _, b := range report.VisitsByDepartment {
		deptCounts[b.Name] = b.Count
	}
	assert.Equal(t, int64(2), deptCounts["Engineering"])
	assert.Equal(t, int64(1), deptCounts["Unknown"])

	assert.Len(t, report.VisitsByDay, 2)
}

func TestGetVisitReportDateRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	seedVisit(t, db, purpose.ID, nil, time.Date(2026, 8, 1, 10, 0, 0, 0, time.Local))
	seedVisit(t, db, purpose.ID, nil, time.Date(2026, 8, 15, 10, 0, 0, 0, time.Local))
	seedVisit(t, db, purpose.ID, nil, time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local))

	report, err := svc.GetVisitReport("2026-08-10", "2026-08-20")
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalVisits)
}

func TestUpdateVisitValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVisitService(db, testConfig(t), nil)
	purpose := seedPurpose(t, db, "Meeting")

	visit := seedVisit(t, db, purpose.ID, nil, time.Now())

	_, err := svc.UpdateVisit(visit.ID, map[string]interface{}{"host_id": uint(999)})
	require.EqualError(t, err, "host not found")

	host := seedHost(t, db, "Budi", "budi@example.com", nil)
	updated, err := svc.UpdateVisit(visit.ID, map[string]interface{}{
		"host_id": host.ID,
		"notes":   "rescheduled",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.HostID)
	assert.Equal(t, host.ID, *updated.HostID)
	assert.Equal(t, "rescheduled", updated.Notes)
}
