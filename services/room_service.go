package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-backend/models"
)

// RoomService owns room CRUD and the allocate/release workflow. The
// occupied counter is only ever touched here, inside the same transaction
// as the allocation row.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// AllocationRow is the joined listing shown on the allocations page.
type AllocationRow struct {
	ID        uint    `json:"id"`
	Student   string  `json:"student"`
	Room      string  `json:"room"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    string  `json:"status"`
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Create(number, roomType string, capacity int) (models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" || capacity < 1 {
		return models.Room{}, ErrValidation
	}
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		roomType = "Standard"
	}

	room := models.Room{Number: number, Type: roomType, Capacity: capacity}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicate(err) {
			return models.Room{}, ErrConflict
		}
		return models.Room{}, err
	}
	return room, nil
}

// Delete removes a room and its allocations. Payments and issues are not
// touched.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Room{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Allocate binds a student to a room. The room row is re-read under a lock
// inside the transaction so two concurrent allocations cannot both pass
// the capacity check.
func (s *RoomService) Allocate(studentID, roomID uint, startDate string) (models.Allocation, error) {
	startDate = strings.TrimSpace(startDate)
	if startDate == "" {
		startDate = today()
	}

	var alloc models.Allocation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var student models.Student
		if err := tx.First(&student, studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if room.Occupied >= room.Capacity {
			return ErrRoomFull
		}

		alloc = models.Allocation{
			StudentID: studentID,
			RoomID:    roomID,
			StartDate: startDate,
			Status:    models.AllocationActive,
		}
		if err := tx.Create(&alloc).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).Where("id = ?", roomID).
			UpdateColumn("occupied", gorm.Expr("occupied + 1")).Error
	})
	if err != nil {
		return models.Allocation{}, err
	}
	return alloc, nil
}

// Release ends an active allocation and gives the slot back, floored at
// zero so a drifted counter can never go negative.
func (s *RoomService) Release(allocationID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var alloc models.Allocation
		if err := lockForUpdate(tx).First(&alloc, allocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if alloc.Status != models.AllocationActive {
			return ErrNotActive
		}

		endDate := today()
		updates := map[string]any{
			"status":   models.AllocationReleased,
			"end_date": endDate,
		}
		if err := tx.Model(&alloc).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).Where("id = ?", alloc.RoomID).
			UpdateColumn("occupied", gorm.Expr("CASE WHEN occupied > 0 THEN occupied - 1 ELSE 0 END")).Error
	})
}

// ListAllocations returns all allocations joined to student and room,
// newest first.
func (s *RoomService) ListAllocations() ([]AllocationRow, error) {
	var rows []AllocationRow
	err := s.DB.Table("allocations").
		Select("allocations.id, students.name AS student, rooms.number AS room, allocations.start_date, allocations.end_date, allocations.status").
		Joins("JOIN students ON students.id = allocations.student_id").
		Joins("JOIN rooms ON rooms.id = allocations.room_id").
		Order("allocations.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LatestForStudent returns the student's most recent allocation joined to
// its room number, or nil when none exists.
func (s *RoomService) LatestForStudent(studentID uint) (*AllocationRow, error) {
	var rows []AllocationRow
	err := s.DB.Table("allocations").
		Select("allocations.id, rooms.number AS room, allocations.start_date, allocations.end_date, allocations.status").
		Joins("JOIN rooms ON rooms.id = allocations.room_id").
		Where("allocations.student_id = ?", studentID).
		Order("allocations.id DESC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// lockForUpdate adds FOR UPDATE on backends that support it. SQLite has a
// single writer and rejects the syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func today() string {
	return time.Now().Format("2006-01-02")
}
