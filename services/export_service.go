package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
)

// ExportService streams flat-file exports. encoding/csv handles quoting of
// embedded delimiters and quotes.
type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

func (s *ExportService) StudentsCSV(w io.Writer) error {
	var students []models.Student
	if err := s.DB.Order("id").Find(&students).Error; err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Name", "Email", "Phone", "Guardian", "Department", "Batch", "Semester", "Created"}); err != nil {
		return err
	}
	for _, st := range students {
		email := ""
		if st.Email != nil {
			email = *st.Email
		}
		record := []string{
			strconv.FormatUint(uint64(st.ID), 10),
			st.Name,
			email,
			st.Phone,
			st.Guardian,
			st.Department,
			st.Batch,
			st.Semester,
			st.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type paymentExportRow struct {
	ID        uint
	Student   string
	Amount    float64
	Method    string
	PaidOn    string
	Note      string
	Status    string
	CreatedAt time.Time
}

func (s *ExportService) PaymentsCSV(w io.Writer) error {
	var rows []paymentExportRow
	err := s.DB.Table("payments").
		Select("payments.id, students.name AS student, payments.amount, payments.method, payments.paid_on AS paid_on, payments.note, payments.status, payments.created_at").
		Joins("JOIN students ON students.id = payments.student_id").
		Order("payments.id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Student", "Amount", "Method", "Paid On", "Note", "Status", "Created"}); err != nil {
		return err
	}
	for _, p := range rows {
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Student,
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			p.Method,
			p.PaidOn,
			p.Note,
			p.Status,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
