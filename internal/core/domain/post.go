package domain

import "time"

// Post is one generated candidate. Posts have no identity of their own;
// they are addressed by position within their PostSet.
type Post struct {
	Text       string `json:"text"`
	EditPrompt string `json:"editPrompt"`
}

// PostSet holds the generated posts of a campaign. There is at most one
// PostSet per campaign.
type PostSet struct {
	ID         string
	CampaignID string
	Posts      []Post
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasIndex reports whether i addresses a post in the set.
func (ps *PostSet) HasIndex(i int) bool {
	return ps != nil && i >= 0 && i < len(ps.Posts)
}
