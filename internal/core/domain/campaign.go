package domain

import "time"

// CampaignStatus is the review state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusPending   CampaignStatus = "pending_review"
	CampaignStatusApproved  CampaignStatus = "approved"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusRejected  CampaignStatus = "rejected"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign represents an advertising campaign as seen by pricing and
// billing. Budget is the net (pre-tax) contracted total.
type Campaign struct {
	ID             int64
	AdvertiserID   int64
	Name           string
	IndustryType   string
	AdvertType     string
	Coverage       CoverageType
	TargetPostcode *string
	TargetState    *string
	TargetCountry  string
	Budget         float64
	StartDate      time.Time
	EndDate        time.Time
	Status         CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DurationDays returns the whole number of days between start and end,
// floored. It is negative when the range is reversed.
func (c Campaign) DurationDays() int {
	d := c.EndDate.Sub(c.StartDate)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}
