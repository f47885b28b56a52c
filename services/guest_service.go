package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// InterfaceGuestService defines the guest service interface
type InterfaceGuestService interface {
	RegisterGuest(guest *models.Guest, visit *models.Visit) (*models.Guest, *models.Visit, error)
	GetAllGuests(query models.PaginationQuery) ([]models.Guest, int64, error)
	SearchGuests(query string, limit int) ([]models.Guest, error)
	GetGuestByID(id string) (*models.Guest, error)
	UpdateGuest(id string, updates map[string]interface{}) (*models.Guest, error)
	DeleteGuest(id string) error
	CheckOutGuest(guestID string) (*models.Visit, error)
}

// GuestService provides guest registration and administration
type GuestService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewGuestService creates a new guest service
func NewGuestService(db *gorm.DB, cfg *config.Config) InterfaceGuestService {
	return &GuestService{
		DB:     db,
		Config: cfg,
	}
}

// 1 RegisterGuest finds or creates a guest by phone number and opens a new
// visit in checked_in state. An existing guest is overwritten with the newly
// submitted fields (last-write-wins). Both writes run in one transaction so a
// guest is never left behind without its visit.
func (s *GuestService) RegisterGuest(guest *models.Guest, visit *models.Visit) (*models.Guest, *models.Visit, error) {
	// The purpose is required for every visit
	var purpose models.Purpose
	if err := s.DB.First(&purpose, visit.PurposeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New("purpose not found")
		}
		return nil, nil, err
	}

	// The host is optional but must exist when given
	if visit.HostID != nil {
		var host models.Host
		if err := s.DB.First(&host, *visit.HostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, errors.New("host not found")
			}
			return nil, nil, err
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Guest
		err := tx.Where("phone = ?", guest.Phone).First(&existing).Error
		switch {
		case err == nil:
			// Repeat visitor: keep the row, overwrite its fields
			updates := map[string]interface{}{
				"name":      guest.Name,
				"email":     guest.Email,
				"company":   guest.Company,
				"role":      guest.Role,
				"id_number": guest.IDNumber,
			}
			if guest.IDPhotoPath != "" {
				updates["id_photo_path"] = guest.IDPhotoPath
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			*guest = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(guest).Error; err != nil {
				return err
			}
		default:
			return err
		}

		now := time.Now()
		visit.GuestID = guest.ID
		visit.Status = models.VisitStatusCheckedIn
		visit.CheckInTime = now
		visit.CheckOutTime = nil
		if visit.VisitDate.IsZero() {
			visit.VisitDate = now
		}
		return tx.Create(visit).Error
	})
	if err != nil {
		return nil, nil, err
	}

	// Reload the visit with its relations for the response
	s.DB.Preload("Guest").Preload("Host").Preload("Purpose").First(visit, "id = ?", visit.ID)
	return guest, visit, nil
}

// 2 GetAllGuests lists guests with pagination and free-text search
func (s *GuestService) GetAllGuests(query models.PaginationQuery) ([]models.Guest, int64, error) {
	var guests []models.Guest
	var total int64

	db := s.DB.Model(&models.Guest{})
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ? OR phone LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Newest first unless the client asked for a specific column
	order := "created_at DESC"
	if query.Sorter != "" {
		if column, ok := guestSortColumns[query.Sorter]; ok {
			order = column
			if query.SortDesc {
				order += " DESC"
			}
		}
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Order(order).Limit(query.Limit).Offset(offset).Find(&guests).Error; err != nil {
		return nil, 0, err
	}

	return guests, total, nil
}

// guestSortColumns maps client sorter flags to real columns so arbitrary
// input never reaches the ORDER BY clause
var guestSortColumns = map[string]string{
	"name":       "name",
	"company":    "company",
	"created_at": "created_at",
}

// 3 SearchGuests is the kiosk lookup: a short list matching a free-text query
func (s *GuestService) SearchGuests(query string, limit int) ([]models.Guest, error) {
	var guests []models.Guest
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.DB.
		Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(company) LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

// 4 GetGuestByID returns a guest by ID
func (s *GuestService) GetGuestByID(id string) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("guest not found")
		}
		return nil, err
	}
	return &guest, nil
}

// 5 UpdateGuest updates a guest's fields. The phone number stays unique
// across guests; registration relies on it to find repeat visitors.
func (s *GuestService) UpdateGuest(id string, updates map[string]interface{}) (*models.Guest, error) {
	guest, err := s.GetGuestByID(id)
	if err != nil {
		return nil, err
	}

	if phone, ok := updates["phone"].(string); ok && phone != guest.Phone {
		var count int64
		if err := s.DB.Model(&models.Guest{}).Where("phone = ? AND id != ?", phone, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("phone already in use")
		}
	}

	if err := s.DB.Model(guest).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetGuestByID(id)
}

// 6 DeleteGuest deletes a guest and its visits
func (s *GuestService) DeleteGuest(id string) error {
	guest, err := s.GetGuestByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id = ?", id).Delete(&models.Visit{}).Error; err != nil {
			return err
		}
		return tx.Delete(guest).Error
	})
}

// 7 CheckOutGuest checks out the guest's most recent active visit
func (s *GuestService) CheckOutGuest(guestID string) (*models.Visit, error) {
	if _, err := s.GetGuestByID(guestID); err != nil {
		return nil, err
	}

	var visit models.Visit
	err := s.DB.
		Where("guest_id = ? AND status = ?", guestID, models.VisitStatusCheckedIn).
		Order("check_in_time DESC").
		First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no active visit to check out")
		}
		return nil, err
	}

	now := time.Now()
	if err := s.DB.Model(&visit).Updates(map[string]interface{}{
		"status":         models.VisitStatusCheckedOut,
		"check_out_time": now,
	}).Error; err != nil {
		return nil, err
	}

	visit.Status = models.VisitStatusCheckedOut
	visit.CheckOutTime = &now
	return &visit, nil
}
