package domain

import (
	"slices"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign. It only moves
// forward: draft, generated, completed.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignGenerated CampaignStatus = "generated"
	CampaignCompleted CampaignStatus = "completed"
)

// Predecessors returns the statuses a campaign may be in when moving to s.
// generated and completed are re-enterable so that regeneration and
// repeated selection stay idempotent.
func (s CampaignStatus) Predecessors() []CampaignStatus {
	switch s {
	case CampaignGenerated:
		return []CampaignStatus{CampaignDraft, CampaignGenerated}
	case CampaignCompleted:
		return []CampaignStatus{CampaignGenerated, CampaignCompleted}
	default:
		return nil
	}
}

// CanTransition reports whether a campaign in status s may move to next.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	return slices.Contains(next.Predecessors(), s)
}

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignGenerated, CampaignCompleted:
		return true
	}
	return false
}

// Campaign is a marketing campaign for one company. SelectedPostIndices
// are positions into the campaign's PostSet.
type Campaign struct {
	ID                  string
	OwnerID             Principal
	Name                string
	CompanyID           string
	ProductImageRef     string
	LayoutImageRef      string
	Instructions        string
	ProductDescription  string
	Status              CampaignStatus
	SelectedPostIndices []int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
