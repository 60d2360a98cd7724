package services

import (
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
)

// ReportService holds the read-only aggregations. No mutation happens
// here.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type OccupancyRow struct {
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
	Occupied int    `json:"occupied"`
	Vacant   int    `json:"vacant"`
}

type IncomeRow struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type DashboardStats struct {
	Rooms             int64
	Students          int64
	ActiveAllocations int64
	OpenIssues        int64
	Income30d         float64
}

func (s *ReportService) Occupancy() ([]OccupancyRow, error) {
	var rows []OccupancyRow
	err := s.DB.Table("rooms").
		Select("number AS room, capacity, occupied, (capacity - occupied) AS vacant").
		Order("number").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyIncome sums payments by the YYYY-MM prefix of paid_on, ascending.
// paid_on is stored as a YYYY-MM-DD string, so substr works the same on
// MySQL and SQLite.
func (s *ReportService) MonthlyIncome() ([]IncomeRow, error) {
	var rows []IncomeRow
	err := s.DB.Table("payments").
		Select("substr(paid_on, 1, 7) AS month, SUM(amount) AS total").
		Group("substr(paid_on, 1, 7)").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) Dashboard() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.DB.Model(&models.Room{}).Count(&stats.Rooms).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.Student{}).Count(&stats.Students).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.Allocation{}).
		Where("status = ?", models.AllocationActive).
		Count(&stats.ActiveAllocations).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.Issue{}).
		Where("status = ?", models.IssueOpen).
		Count(&stats.OpenIssues).Error; err != nil {
		return stats, err
	}

	cutoff := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	if err := s.DB.Table("payments").
		Select("COALESCE(SUM(amount), 0)").
		Where("paid_on >= ?", cutoff).
		Scan(&stats.Income30d).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
