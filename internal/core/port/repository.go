package port

import (
	"context"

	"postcraft/internal/core/domain"
)

// CompanyRepository persists companies. Get methods return (nil, nil) when
// the record does not exist.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, c *domain.Company) error
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	// ListCompanies returns the companies of owner ordered by creation time.
	ListCompanies(ctx context.Context, owner domain.Principal) ([]domain.Company, error)
}

// CampaignRepository persists campaigns and guards their status machine.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, owner domain.Principal) ([]domain.Campaign, error)
	// UpdateStatus moves the campaign to status. It returns ErrNotFound for
	// an unknown id and ErrInvalidTransition when the current status is not
	// one of status.Predecessors().
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error
	// SaveSelection records the selected post indices and completes the
	// campaign under the same rules as UpdateStatus.
	SaveSelection(ctx context.Context, id string, indices []int) error
}

// PostSetRepository is the post review store.
type PostSetRepository interface {
	// SaveGenerated stores ps as the post set of its campaign and moves the
	// campaign to generated, as one atomic step. An existing set for the
	// same campaign has its posts replaced; ps.ID, CreatedAt and UpdatedAt
	// are set to the stored values. Nothing is written when the campaign is
	// absent (ErrNotFound) or its status does not allow generation
	// (ErrInvalidTransition), so a campaign completed in the meantime keeps
	// the posts its selection refers to.
	SaveGenerated(ctx context.Context, ps *domain.PostSet) error
	GetPostSet(ctx context.Context, campaignID string) (*domain.PostSet, error)
	// UpdateEditPrompt replaces the edit prompt of a single post. It returns
	// ErrNotFound when the campaign has no post set and ErrValidation when
	// index is out of range.
	UpdateEditPrompt(ctx context.Context, campaignID string, index int, prompt string) error
}

// FileRepository stores upload tickets and uploaded files.
type FileRepository interface {
	CreateUploadTicket(ctx context.Context, t domain.UploadTicket) error
	// ConsumeUploadTicket deletes and returns the ticket. It returns
	// (nil, nil) when the token is unknown or already used.
	ConsumeUploadTicket(ctx context.Context, token string) (*domain.UploadTicket, error)
	SaveFile(ctx context.Context, f *domain.StoredFile) error
	GetFile(ctx context.Context, id string) (*domain.StoredFile, error)
}
