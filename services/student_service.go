package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hostel-backend/models"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

type StudentInput struct {
	Name       string
	Email      string
	Phone      string
	Guardian   string
	Department string
	Batch      string
	Semester   string
}

// List returns students newest first. A non-empty query does a
// case-insensitive substring match across name, email, department, batch
// and semester.
func (s *StudentService) List(q string) ([]models.Student, error) {
	var students []models.Student
	query := s.DB.Order("id DESC")
	q = strings.TrimSpace(q)
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where(
			"name LIKE ? OR email LIKE ? OR department LIKE ? OR batch LIKE ? OR semester LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if err := query.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// Create is the admin path: no linked user account.
func (s *StudentService) Create(input StudentInput) (models.Student, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Student{}, ErrValidation
	}

	student := models.Student{
		Name:       name,
		Email:      optionalString(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Guardian:   strings.TrimSpace(input.Guardian),
		Department: strings.TrimSpace(input.Department),
		Batch:      strings.TrimSpace(input.Batch),
		Semester:   strings.TrimSpace(input.Semester),
	}
	if err := s.DB.Create(&student).Error; err != nil {
		if isDuplicate(err) {
			return models.Student{}, ErrConflict
		}
		return models.Student{}, err
	}
	return student, nil
}

// Delete removes the student with their allocations and payments, and
// detaches their issues. Slots held by still-active allocations are given
// back to their rooms so occupancy stays equal to the active count.
func (s *StudentService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var active []models.Allocation
		if err := tx.Where("student_id = ? AND status = ?", id, models.AllocationActive).
			Find(&active).Error; err != nil {
			return err
		}
		for _, alloc := range active {
			if err := tx.Model(&models.Room{}).Where("id = ?", alloc.RoomID).
				UpdateColumn("occupied", gorm.Expr("CASE WHEN occupied > 0 THEN occupied - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("student_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Issue{}).Where("student_id = ?", id).
			Update("student_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
}

// ByUserID resolves the student profile for a logged-in account. Returns
// nil without error when the account has no profile.
func (s *StudentService) ByUserID(userID uint) (*models.Student, error) {
	var student models.Student
	err := s.DB.Where("user_id = ?", userID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateProfile changes only the self-editable fields.
func (s *StudentService) UpdateProfile(id uint, input StudentInput) error {
	updates := map[string]any{
		"email":      optionalString(input.Email),
		"phone":      strings.TrimSpace(input.Phone),
		"guardian":   strings.TrimSpace(input.Guardian),
		"department": strings.TrimSpace(input.Department),
		"batch":      strings.TrimSpace(input.Batch),
		"semester":   strings.TrimSpace(input.Semester),
	}
	err := s.DB.Model(&models.Student{}).Where("id = ?", id).Updates(updates).Error
	if isDuplicate(err) {
		return ErrConflict
	}
	return err
}

// NameList is the id/name pairing used by select boxes.
type NameRow struct {
	ID   uint
	Name string
}

func (s *StudentService) NameList() ([]NameRow, error) {
	var rows []NameRow
	if err := s.DB.Model(&models.Student{}).Select("id, name").Order("name").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
