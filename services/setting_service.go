package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostel-backend/models"
)

// Methods offered in payment forms until an admin configures their own.
var defaultPaymentMethods = []string{"Cash", "Challan", "Bank Transfer"}

type SettingService struct {
	DB *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{DB: db}
}

type SettingInput struct {
	Name           string
	Address        string
	Phone          string
	Email          string
	PaymentMethods []string
}

// Get returns the settings row, or a zero value when none has been saved.
func (s *SettingService) Get() (models.HostelSetting, error) {
	var setting models.HostelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HostelSetting{}, nil
	}
	if err != nil {
		return models.HostelSetting{}, err
	}
	return setting, nil
}

// Update upserts the single settings row.
func (s *SettingService) Update(input SettingInput) (models.HostelSetting, error) {
	methods := make([]string, 0, len(input.PaymentMethods))
	for _, m := range input.PaymentMethods {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, m)
		}
	}
	encoded, err := json.Marshal(methods)
	if err != nil {
		return models.HostelSetting{}, err
	}

	var setting models.HostelSetting
	err = s.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HostelSetting{}, err
	}

	setting.Name = strings.TrimSpace(input.Name)
	setting.Address = strings.TrimSpace(input.Address)
	setting.Phone = strings.TrimSpace(input.Phone)
	setting.Email = strings.TrimSpace(input.Email)
	setting.PaymentMethods = datatypes.JSON(encoded)

	if err := s.DB.Save(&setting).Error; err != nil {
		return models.HostelSetting{}, err
	}
	return setting, nil
}

// PaymentMethods decodes the configured method list, falling back to the
// defaults when unset.
func (s *SettingService) PaymentMethods() ([]string, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}
	if len(setting.PaymentMethods) == 0 {
		return defaultPaymentMethods, nil
	}
	var methods []string
	if err := json.Unmarshal(setting.PaymentMethods, &methods); err != nil || len(methods) == 0 {
		return defaultPaymentMethods, nil
	}
	return methods, nil
}
