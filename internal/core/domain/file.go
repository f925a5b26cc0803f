package domain

import "time"

// UploadTicket authorises a single upload by its owner until ExpiresAt.
type UploadTicket struct {
	Token     string
	OwnerID   Principal
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the ticket can no longer be used at now.
func (t UploadTicket) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// StoredFile is an uploaded blob. Its ID is the storage reference attached
// to companies and campaigns.
type StoredFile struct {
	ID          string
	OwnerID     Principal
	ContentType string
	Size        int64
	Data        []byte
	CreatedAt   time.Time
}
