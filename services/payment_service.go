package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

// Proof uploads outside this list are dropped; the payment is still
// recorded without one.
var allowedProofExts = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "webp": {},
	"gif": {}, "bmp": {}, "heic": {}, "pdf": {},
}

func AllowedProofFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := allowedProofExts[ext]
	return ok
}

type PaymentService struct {
	DB        *gorm.DB
	UploadDir string
}

func NewPaymentService(db *gorm.DB, uploadDir string) *PaymentService {
	return &PaymentService{DB: db, UploadDir: uploadDir}
}

type PaymentInput struct {
	StudentID uint
	Amount    float64
	Method    string
	PaidOn    string
	Note      string
	Status    string
}

// PaymentRow is the admin listing joined to the student's name.
type PaymentRow struct {
	ID        uint    `json:"id"`
	Student   string  `json:"student"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	PaidOn    string  `json:"paid_on"`
	Note      string  `json:"note"`
	ProofPath *string `json:"proof_path"`
	Status    string  `json:"status"`
}

// Record inserts a payment. forcePending pins the status to Pending no
// matter what the caller supplied (the portal path). The returned bool
// reports whether a proof file was dropped for a disallowed extension.
func (s *PaymentService) Record(input PaymentInput, proof *multipart.FileHeader, forcePending bool) (models.Payment, bool, error) {
	if input.Amount < 0 {
		return models.Payment{}, false, ErrValidation
	}

	status := strings.TrimSpace(input.Status)
	if forcePending || status == "" {
		status = models.PaymentPending
	}
	switch status {
	case models.PaymentPending, models.PaymentApproved, models.PaymentRejected:
	default:
		return models.Payment{}, false, ErrValidation
	}

	var student models.Student
	if err := s.DB.First(&student, input.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, false, ErrNotFound
		}
		return models.Payment{}, false, err
	}

	paidOn := strings.TrimSpace(input.PaidOn)
	if paidOn == "" {
		paidOn = today()
	}

	var proofPath *string
	dropped := false
	if proof != nil && proof.Filename != "" {
		if AllowedProofFile(proof.Filename) {
			name, err := s.saveProof(input.StudentID, proof)
			if err != nil {
				return models.Payment{}, false, err
			}
			proofPath = &name
		} else {
			dropped = true
		}
	}

	payment := models.Payment{
		StudentID: input.StudentID,
		Amount:    input.Amount,
		Method:    strings.TrimSpace(input.Method),
		PaidOn:    paidOn,
		Note:      strings.TrimSpace(input.Note),
		ProofPath: proofPath,
		Status:    status,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return models.Payment{}, false, err
	}
	return payment, dropped, nil
}

// saveProof stores the upload under a name namespaced by student and
// timestamp so files never collide across students or submissions.
func (s *PaymentService) saveProof(studentID uint, fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	name := fmt.Sprintf("proof_%d_%d_%s", studentID, time.Now().UnixNano(), utils.SanitizeFilename(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.UploadDir, name))
	if err != nil {
		return "", fmt.Errorf("create proof file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write proof file: %w", err)
	}
	return name, nil
}

func (s *PaymentService) ListAll() ([]PaymentRow, error) {
	var rows []PaymentRow
	err := s.DB.Table("payments").
		Select("payments.id, students.name AS student, payments.amount, payments.method, payments.paid_on, payments.note, payments.proof_path, payments.status").
		Joins("JOIN students ON students.id = payments.student_id").
		Order("payments.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PaymentService) ListByStudent(studentID uint, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	query := s.DB.Where("student_id = ?", studentID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
