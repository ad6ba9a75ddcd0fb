package service

import (
	"context"
	"sync"

	"FindrHealth/internal/model/dto"
)

var (
	dashboardService *DashboardService
	dashboardOnce    sync.Once
)

func Dashboard() *DashboardService {
	dashboardOnce.Do(func() {
		dashboardService = &DashboardService{}
	})
	return dashboardService
}

// DashboardService serves the provider dashboard. The marketplace booking
// system is not built yet, so these are static demo numbers behind the real
// API shape.
type DashboardService struct{}

func (s *DashboardService) Stats(ctx context.Context) (*dto.StatsData, error) {
	return &dto.StatsData{
		Views:       dto.PeriodCounts{Today: 41, ThisWeek: 312, ThisMonth: 1204},
		Bookings:    dto.PeriodCounts{Today: 3, ThisWeek: 14, ThisMonth: 52},
		Rating:      4.8,
		ReviewCount: 27,
		Revenue:     dto.RevenueData{ThisMonth: 6240},
	}, nil
}

func (s *DashboardService) Bookings(ctx context.Context) ([]dto.BookingData, error) {
	return []dto.BookingData{
		{ID: "bk-1001", PatientName: "Sarah M.", Service: "Annual Physical Exam", Date: "2025-01-14", Time: "9:00 AM", Status: "confirmed", Duration: 45},
		{ID: "bk-1002", PatientName: "James R.", Service: "Wellness Checkup", Date: "2025-01-14", Time: "11:30 AM", Status: "confirmed", Duration: 30},
		{ID: "bk-1003", PatientName: "Maria G.", Service: "Flu Vaccination", Date: "2025-01-15", Time: "2:00 PM", Status: "completed", Duration: 15},
		{ID: "bk-1004", PatientName: "David K.", Service: "Telehealth Consultation", Date: "2025-01-16", Time: "10:15 AM", Status: "confirmed", Duration: 20},
	}, nil
}

func (s *DashboardService) Reviews(ctx context.Context) ([]dto.ReviewData, error) {
	return []dto.ReviewData{
		{ID: "rv-501", Rating: 5, Text: "Quick, professional, and the online booking made everything easy.", PatientName: "Sarah M.", Date: "2025-01-10", Verified: true},
		{ID: "rv-502", Rating: 5, Text: "Thorough visit, took real time to answer my questions.", PatientName: "James R.", Date: "2025-01-08", Verified: true},
		{ID: "rv-503", Rating: 4, Text: "Great visit, slight wait past my appointment time.", PatientName: "Anna P.", Date: "2025-01-05", Verified: false},
	}, nil
}
