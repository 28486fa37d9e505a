package evaluation

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusIdeal      Status = "IDEAL"
	StatusNotIdeal   Status = "NOT_IDEAL"
	StatusIncomplete Status = "INCOMPLETE"
)

// Result is one persisted evaluation snapshot, unique per
// (userId, ratioId, startDate, endDate). Recomputation upserts in place.
// Value is always finite: non-finite outcomes are clamped to 0 before
// persistence and flagged via Status.
type Result struct {
	Id           ulid.ULID  `json:"id"`
	UserId       ulid.ULID  `json:"userId"`
	RatioId      ulid.ULID  `json:"ratioId"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	Value        float64    `json:"value"`
	Status       Status     `json:"status"`
	CalculatedAt time.Time  `json:"calculatedAt"`
	DeletedAt    *time.Time `json:"-"`

	// Denormalized from the ratio for listing.
	RatioCode  string `json:"ratioCode,omitempty"`
	RatioTitle string `json:"ratioTitle,omitempty"`
}

// SingleRatioResult is the per-ratio record a calculation run returns.
type SingleRatioResult struct {
	RatioId           ulid.ULID `json:"ratioId"`
	RatioCode         string    `json:"ratioCode"`
	RatioTitle        string    `json:"ratioTitle"`
	Value             float64   `json:"value"`
	Status            Status    `json:"status"`
	IdealRangeDisplay *string   `json:"idealRangeDisplay"`
}

// BreakdownComponent is one named conceptual sum shown on the detail view.
type BreakdownComponent struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Detail is a stored snapshot re-expanded for display: the reproduced side
// totals plus the conceptual sums over the same transaction window.
type Detail struct {
	Id                    ulid.ULID            `json:"id"`
	RatioId               ulid.ULID            `json:"ratioId"`
	RatioCode             string               `json:"ratioCode"`
	RatioTitle            string               `json:"ratioTitle"`
	StartDate             time.Time            `json:"startDate"`
	EndDate               time.Time            `json:"endDate"`
	Value                 float64              `json:"value"`
	Status                Status               `json:"status"`
	CalculatedAt          time.Time            `json:"calculatedAt"`
	IdealRangeDisplay     *string              `json:"idealRangeDisplay"`
	CalculatedNumerator   float64              `json:"calculatedNumerator"`
	CalculatedDenominator float64              `json:"calculatedDenominator"`
	BreakdownComponents   []BreakdownComponent `json:"breakdownComponents"`
}

// Window is an inclusive evaluation date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days counts calendar days covered by the window, inclusive of both ends.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether t falls inside the window, inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
