package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/models"
)

// BaseTime é um instante futuro fixo, alinhado em hora cheia UTC.
func BaseTime() time.Time {
	return time.Now().UTC().Add(72 * time.Hour).Truncate(time.Hour)
}

func CreateCategory(t *testing.T, db *gorm.DB, title string) *models.ServiceCategory {
	t.Helper()

	c := &models.ServiceCategory{Title: title, Description: title + " services"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func CreateService(t *testing.T, db *gorm.DB, categoryID uint, title, price string, duration int) *models.Service {
	t.Helper()

	s := &models.Service{
		Title:           title,
		Description:     title,
		Price:           decimal.RequireFromString(price),
		DurationMinutes: duration,
		CategoryID:      categoryID,
		IsActive:        true,
	}
	if err := db.Omit("Category").Create(s).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}

func CreateCustomer(t *testing.T, db *gorm.DB, first, last string, points int) *models.Customer {
	t.Helper()

	c := &models.Customer{
		FirstName:     first,
		LastName:      last,
		Email:         first + "@example.com",
		PhoneNumber:   "555-0100",
		LoyaltyPoints: points,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}

func CreateAppointment(t *testing.T, db *gorm.DB, customerID, serviceID uint, start, end time.Time) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		CustomerID: customerID,
		ServiceID:  serviceID,
		StartTime:  start,
		EndTime:    end,
		Status:     "Scheduled",
	}
	if err := db.Omit("Customer", "Service").Create(ap).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return ap
}
