package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
)

type IssueService struct {
	DB *gorm.DB
}

func NewIssueService(db *gorm.DB) *IssueService {
	return &IssueService{DB: db}
}

// IssueRow is the admin listing; Student is empty for detached issues.
type IssueRow struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Student   string    `json:"student"`
}

// Log records a complaint. Callers resolve studentID themselves: student
// sessions from their own profile, admins from an optional form choice.
func (s *IssueService) Log(title, detail string, studentID *uint) (models.Issue, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Issue{}, ErrValidation
	}

	issue := models.Issue{
		StudentID: studentID,
		Title:     title,
		Detail:    strings.TrimSpace(detail),
		Status:    models.IssueOpen,
	}
	if err := s.DB.Create(&issue).Error; err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// Close transitions open -> closed. Closing an already-closed issue is a
// no-op; there is no reopen.
func (s *IssueService) Close(id uint) error {
	var issue models.Issue
	if err := s.DB.First(&issue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if issue.Status == models.IssueClosed {
		return nil
	}
	return s.DB.Model(&issue).Update("status", models.IssueClosed).Error
}

// ListAll outer-joins the student name so detached issues still display.
func (s *IssueService) ListAll() ([]IssueRow, error) {
	var rows []IssueRow
	err := s.DB.Table("issues").
		Select("issues.id, issues.title, issues.detail, issues.status, issues.created_at, students.name AS student").
		Joins("LEFT JOIN students ON students.id = issues.student_id").
		Order("issues.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *IssueService) ListByStudent(studentID uint) ([]models.Issue, error) {
	var issues []models.Issue
	if err := s.DB.Where("student_id = ?", studentID).Order("id DESC").Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}
