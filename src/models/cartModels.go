package models

import "time"

type RentalDuration string

const (
	DurationDaily   RentalDuration = "daily"
	DurationWeekly  RentalDuration = "weekly"
	DurationMonthly RentalDuration = "monthly"
)

// Flat loan rates for academic research, per duration tier.
const (
	DailyRate   = 75
	WeeklyRate  = 450
	MonthlyRate = 1500
)

// RentalCost returns the estimated cost for a duration tier. Unknown tiers
// fall back to the weekly rate, matching the cart's default.
func RentalCost(duration RentalDuration) int {
	switch duration {
	case DurationDaily:
		return DailyRate
	case DurationWeekly:
		return WeeklyRate
	case DurationMonthly:
		return MonthlyRate
	default:
		return WeeklyRate
	}
}

type RentalPeriod struct {
	StartDate *time.Time     `json:"startDate"`
	EndDate   *time.Time     `json:"endDate"`
	Duration  RentalDuration `json:"duration"`
}

// CartItem is a research-loan request line. Carts live in memory only, so
// there are no gorm tags here.
type CartItem struct {
	ArtifactID          int          `json:"artifactId"`
	Title               string       `json:"title"`
	AccessionNumber     string       `json:"accessionNumber"`
	RentalPeriod        RentalPeriod `json:"rentalPeriod"`
	SpecialRequirements string       `json:"specialRequirements"`
	EstimatedCost       int          `json:"estimatedCost"`
}

// ResearcherInfo accompanies a cart submission.
type ResearcherInfo struct {
	FullName    string `json:"fullName"`
	Institution string `json:"institution"`
	Email       string `json:"email"`
}
