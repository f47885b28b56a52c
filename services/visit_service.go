package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// VisitFilter narrows down a visit listing
type VisitFilter struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	StartDate string `form:"startDate"` // YYYY-MM-DD, inclusive
	EndDate   string `form:"endDate"`   // YYYY-MM-DD, inclusive
	HostID    uint   `form:"host_id"`
	PurposeID uint   `form:"purpose_id"`
}

// VisitStats are the dashboard counters
type VisitStats struct {
	TotalVisits     int64 `json:"total_visits"`
	TodayVisits     int64 `json:"today_visits"`
	ActiveVisits    int64 `json:"active_visits"`
	CheckedOutToday int64 `json:"checked_out_today"`
}

// NameCount is one bucket of a grouped report
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DayCount is the visit count for one calendar day
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// VisitReport aggregates visits over an optional date range
type VisitReport struct {
	StartDate          string      `json:"start_date,omitempty"`
	EndDate            string      `json:"end_date,omitempty"`
	TotalVisits        int64       `json:"total_visits"`
	VisitsByDepartment []NameCount `json:"visits_by_department"`
	VisitsByPurpose    []NameCount `json:"visits_by_purpose"`
	VisitsByDay        []DayCount  `json:"visits_by_day"`
}

// InterfaceVisitService defines the visit service interface
type InterfaceVisitService interface {
	CreateVisit(visit *models.Visit) error
	GetAllVisits(filter VisitFilter) ([]models.Visit, int64, error)
	GetVisitByID(id string) (*models.Visit, error)
	UpdateVisit(id string, updates map[string]interface{}) (*models.Visit, error)
	DeleteVisit(id string) error
	CheckOutVisit(id string) (*models.Visit, error)
	GetVisitStats() (*VisitStats, error)
	GetVisitReport(startDate, endDate string) (*VisitReport, error)
}

// VisitService provides visit lifecycle and reporting
type VisitService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService // optional, nil disables caching
}

// NewVisitService creates a new visit service
func NewVisitService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceVisitService {
	return &VisitService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// 1 CreateVisit creates a visit in checked_in state
func (s *VisitService) CreateVisit(visit *models.Visit) error {
	var guest models.Guest
	if err := s.DB.First(&guest, "id = ?", visit.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("guest not found")
		}
		return err
	}

	var purpose models.Purpose
	if err := s.DB.First(&purpose, visit.PurposeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("purpose not found")
		}
		return err
	}

	if visit.HostID != nil {
		var host models.Host
		if err := s.DB.First(&host, *visit.HostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("host not found")
			}
			return err
		}
	}

	now := time.Now()
	visit.Status = models.VisitStatusCheckedIn
	if visit.CheckInTime.IsZero() {
		visit.CheckInTime = now
	}
	if visit.VisitDate.IsZero() {
		visit.VisitDate = visit.CheckInTime
	}
	visit.CheckOutTime = nil

	return s.DB.Create(visit).Error
}

// 2 GetAllVisits lists visits newest first with filters and pagination
func (s *VisitService) GetAllVisits(filter VisitFilter) ([]models.Visit, int64, error) {
	var visits []models.Visit
	var total int64

	db := s.DB.Model(&models.Visit{})
	db = s.applyFilter(db, filter)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Preload("Guest").Preload("Host").Preload("Host.Department").Preload("Purpose").
		Order("check_in_time DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&visits).Error; err != nil {
		return nil, 0, err
	}

	return visits, total, nil
}

// applyFilter translates a VisitFilter into query conditions
func (s *VisitService) applyFilter(db *gorm.DB, filter VisitFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("visits.status = ?", filter.Status)
	}
	if filter.HostID != 0 {
		db = db.Where("visits.host_id = ?", filter.HostID)
	}
	if filter.PurposeID != 0 {
		db = db.Where("visits.purpose_id = ?", filter.PurposeID)
	}
	if filter.StartDate != "" {
		db = db.Where("visits.check_in_time >= ?", filter.StartDate+" 00:00:00")
	}
	if filter.EndDate != "" {
		db = db.Where("visits.check_in_time <= ?", filter.EndDate+" 23:59:59")
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Joins("JOIN guests ON guests.id = visits.guest_id").
			Where("LOWER(guests.name) LIKE ? OR LOWER(guests.email) LIKE ? OR LOWER(guests.company) LIKE ?",
				pattern, pattern, pattern)
	}
	return db
}

// 3 GetVisitByID returns a visit with its relations
func (s *VisitService) GetVisitByID(id string) (*models.Visit, error) {
	var visit models.Visit
	if err := s.DB.Preload("Guest").Preload("Host").Preload("Purpose").
		First(&visit, "visits.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("visit not found")
		}
		return nil, err
	}
	return &visit, nil
}

// 4 UpdateVisit updates a visit's editable fields
func (s *VisitService) UpdateVisit(id string, updates map[string]interface{}) (*models.Visit, error) {
	visit, err := s.GetVisitByID(id)
	if err != nil {
		return nil, err
	}

	if hostID, ok := updates["host_id"].(uint); ok && hostID != 0 {
		var host models.Host
		if err := s.DB.First(&host, hostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("host not found")
			}
			return nil, err
		}
	}
	if purposeID, ok := updates["purpose_id"].(uint); ok && purposeID != 0 {
		var purpose models.Purpose
		if err := s.DB.First(&purpose, purposeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("purpose not found")
			}
			return nil, err
		}
	}

	if err := s.DB.Model(visit).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetVisitByID(id)
}

// 5 DeleteVisit removes a visit record
func (s *VisitService) DeleteVisit(id string) error {
	visit, err := s.GetVisitByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(visit).Error
}

// 6 CheckOutVisit transitions a visit from checked_in to checked_out.
// The transition happens at most once; repeating it is an error and
// leaves the record untouched.
func (s *VisitService) CheckOutVisit(id string) (*models.Visit, error) {
	if _, err := s.GetVisitByID(id); err != nil {
		return nil, err
	}

	// Conditional update so concurrent checkouts can't both succeed
	result := s.DB.Model(&models.Visit{}).
		Where("id = ? AND status = ?", id, models.VisitStatusCheckedIn).
		Updates(map[string]interface{}{
			"status":         models.VisitStatusCheckedOut,
			"check_out_time": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("visit already checked out")
	}

	return s.GetVisitByID(id)
}

// 7 GetVisitStats computes the dashboard counters
func (s *VisitService) GetVisitStats() (*VisitStats, error) {
	if s.Redis != nil {
		var cached VisitStats
		if err := s.Redis.GetVisitStats(&cached); err == nil {
			return &cached, nil
		}
	}

	var stats VisitStats
	// Midnight in the server's zone; Truncate would cut at UTC midnight
	// and shift the "today" window in any non-UTC deployment
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := s.DB.Model(&models.Visit{}).Count(&stats.TotalVisits).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Visit{}).
		Where("check_in_time >= ?", todayStart).
		Count(&stats.TodayVisits).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Visit{}).
		Where("status = ?", models.VisitStatusCheckedIn).
		Count(&stats.ActiveVisits).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Visit{}).
		Where("status = ? AND check_out_time >= ?", models.VisitStatusCheckedOut, todayStart).
		Count(&stats.CheckedOutToday).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.CacheVisitStats(&stats, 30*time.Second); err != nil {
			config.Warning("failed to cache visit stats: %v", err)
		}
	}
	return &stats, nil
}

// 8 GetVisitReport aggregates visits by department, purpose and day.
// The report is recomputed from the database on every call; Redis only
// shields repeated dashboard refreshes within a short window.
func (s *VisitService) GetVisitReport(startDate, endDate string) (*VisitReport, error) {
	if s.Redis != nil {
		var cached VisitReport
		if err := s.Redis.GetVisitReport(startDate, endDate, &cached); err == nil {
			return &cached, nil
		}
	}

	report := &VisitReport{
		StartDate:          startDate,
		EndDate:            endDate,
		VisitsByDepartment: []NameCount{},
		VisitsByPurpose:    []NameCount{},
		VisitsByDay:        []DayCount{},
	}

	rangeScope := func(db *gorm.DB) *gorm.DB {
		if startDate != "" {
			db = db.Where("visits.check_in_time >= ?", startDate+" 00:00:00")
		}
		if endDate != "" {
			db = db.Where("visits.check_in_time <= ?", endDate+" 23:59:59")
		}
		return db
	}

	if err := rangeScope(s.DB.Model(&models.Visit{})).Count(&report.TotalVisits).Error; err != nil {
		return nil, err
	}

	// Visits without a host, or whose host has no department, land in "Unknown"
	if err := rangeScope(s.DB.Model(&models.Visit{})).
		Select("COALESCE(departments.name, 'Unknown') AS name, COUNT(visits.id) AS count").
		Joins("LEFT JOIN hosts ON hosts.id = visits.host_id").
		Joins("LEFT JOIN departments ON departments.id = hosts.department_id").
		Group("COALESCE(departments.name, 'Unknown')").
		Order("count DESC").
		Scan(&report.VisitsByDepartment).Error; err != nil {
		return nil, err
	}

	if err := rangeScope(s.DB.Model(&models.Visit{})).
		Select("purposes.name AS name, COUNT(visits.id) AS count").
		Joins("JOIN purposes ON purposes.id = visits.purpose_id").
		Group("purposes.name").
		Order("count DESC").
		Scan(&report.VisitsByPurpose).Error; err != nil {
		return nil, err
	}

	// Day bucketing runs in Go: DATE() comes back with a different type from
	// every driver, so the raw timestamps are fetched and grouped here.
	var checkIns []time.Time
	if err := rangeScope(s.DB.Model(&models.Visit{})).
		Order("check_in_time").
		Pluck("check_in_time", &checkIns).Error; err != nil {
		return nil, err
	}
	byDay := make(map[string]int64)
	var dayOrder []string
	for _, t := range checkIns {
		day := t.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		byDay[day]++
	}
	for _, day := range dayOrder {
		report.VisitsByDay = append(report.VisitsByDay, DayCount{Day: day, Count: byDay[day]})
	}

	if s.Redis != nil {
		if err := s.Redis.CacheVisitReport(startDate, endDate, report, time.Minute); err != nil {
			config.Warning("failed to cache visit report: %v", err)
		}
	}
	return report, nil
}
