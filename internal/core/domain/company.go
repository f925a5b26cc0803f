package domain

import "time"

// Company is a brand profile owned by a single principal. Asset file
// references are kept in upload order.
type Company struct {
	ID            string
	OwnerID       Principal
	Name          string
	WebsiteURL    string
	Description   string
	LogoFileRef   string
	AssetFileRefs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
