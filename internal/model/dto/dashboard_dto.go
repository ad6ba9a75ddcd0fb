package dto

// Dashboard DTOs. The dashboard currently serves demo data; the shapes match
// what the back-office stats pipeline will eventually fill in.

type StatsData struct {
	Views       PeriodCounts `json:"views"`
	Bookings    PeriodCounts `json:"bookings"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	Revenue     RevenueData  `json:"revenue"`
}

type PeriodCounts struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
}

type RevenueData struct {
	ThisMonth int `json:"this_month"`
}

type BookingData struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Service     string `json:"service"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"` // confirmed, completed, cancelled
	Duration    int    `json:"duration"`
}

type ReviewData struct {
	ID          string `json:"id"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Verified    bool   `json:"verified"`
}
