package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitor-http-service/models"
)

func TestDepartmentNameUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDepartmentService(db, testConfig(t))

	require.NoError(t, svc.CreateDepartment(&models.Department{Name: "Engineering", IsActive: true}))

	err := svc.CreateDepartment(&models.Department{Name: "Engineering"})
	require.EqualError(t, err, "name already in use")
}

func TestDeleteDepartmentInUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDepartmentService(db, testConfig(t))

	department := &models.Department{Name: "Engineering", IsActive: true}
	require.NoError(t, svc.CreateDepartment(department))
	seedHost(t, db, "Budi", "budi@example.com", &department.ID)

	err := svc.DeleteDepartment(department.ID)
	require.EqualError(t, err, "record is still in use")

	// After the host moves on, the delete goes through
	require.NoError(t, db.Model(&models.Host{}).Where("department_id = ?", department.ID).
		Update("department_id", nil).Error)
	require.NoError(t, svc.DeleteDepartment(department.ID))
}

func TestDeletePurposeInUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPurposeService(db, testConfig(t))
	guestSvc := NewGuestService(db, testConfig(t))

	purpose := seedPurpose(t, db, "Meeting")
	_, _, err := guestSvc.RegisterGuest(
		&models.Guest{Name: "Jane", Phone: "0811"},
		&models.Visit{PurposeID: purpose.ID},
	)
	require.NoError(t, err)

	err = svc.DeletePurpose(purpose.ID)
	require.EqualError(t, err, "record is still in use")
}

func TestGetActivePurposes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPurposeService(db, testConfig(t))

	require.NoError(t, svc.CreatePurpose(&models.Purpose{Name: "Meeting", IsActive: true}))
	require.NoError(t, svc.CreatePurpose(&models.Purpose{Name: "Delivery", IsActive: true}))
	require.NoError(t, svc.CreatePurpose(&models.Purpose{Name: "Retired", IsActive: false}))

	purposes, err := svc.GetActivePurposes()
	require.NoError(t, err)
	require.Len(t, purposes, 2)
	for _, p := range purposes {
		assert.True(t, p.IsActive)
	}
}

func TestHostEmailUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHostService(db, testConfig(t))

	require.NoError(t, svc.CreateHost(&models.Host{Name: "Budi", Email: "budi@example.com", IsActive: true}))

	err := svc.CreateHost(&models.Host{Name: "Other Budi", Email: "budi@example.com"})
	require.EqualError(t, err, "email already in use")
}

func TestCreateHostValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHostService(db, testConfig(t))

	missing := uint(999)
	err := svc.CreateHost(&models.Host{Name: "Budi", Email: "budi@example.com", DepartmentID: &missing})
	require.EqualError(t, err, "department not found")

	err = svc.CreateHost(&models.Host{Name: "Budi", Email: "budi@example.com", RoleID: &missing})
	require.EqualError(t, err, "role not found")
}

func TestDeleteRoleInUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoleService(db, testConfig(t))

	role := &models.Role{Name: "Manager", IsActive: true}
	require.NoError(t, svc.CreateRole(role))

	host := &models.Host{Name: "Budi", Email: "budi@example.com", RoleID: &role.ID, IsActive: true}
	require.NoError(t, db.Create(host).Error)

	err := svc.DeleteRole(role.ID)
	require.EqualError(t, err, "record is still in use")
}
