// Package types provides type definitions for structured data used throughout the vc-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SignalType classifies a catalog signal.
type SignalType string

// Signal type constants mirror the categories shown in the dashboard.
const (
	SignalHiring  SignalType = "hiring"
	SignalFunding SignalType = "funding"
	SignalProduct SignalType = "product"
	SignalPress   SignalType = "press"
	SignalFounder SignalType = "founder"
)

// Signal is a dated event attached to a catalog company (a funding round,
// a product launch, a hiring push).
type Signal struct {
	ID     string     `json:"id"`
	Type   SignalType `json:"type"`
	Title  string     `json:"title"`
	Date   string     `json:"date"`
	Source string     `json:"source,omitempty"`
}

// Company is one record in the static research catalog.
type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Website       string   `json:"website"`
	Stage         string   `json:"stage"`
	Sector        string   `json:"sector"`
	HQ            string   `json:"hq"`
	Founded       int      `json:"founded"`
	Employees     string   `json:"employees"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	Score         int      `json:"score"`
	Signals       []Signal `json:"signals"`
	FundingTotal  string   `json:"fundingTotal"`
	LastRound     string   `json:"lastRound"`
	LastRoundDate string   `json:"lastRoundDate"`
}
