package port

import (
	"context"
	"time"

	"postcraft/internal/core/domain"
)

// CompanyUseCase is the company registry. Every method takes the requesting
// principal explicitly; reads by an unauthenticated or foreign principal
// return an empty result rather than an error.
type CompanyUseCase interface {
	// CreateCompany stores a new company owned by requester and returns its
	// id. The name is required.
	CreateCompany(ctx context.Context, requester domain.Principal, in CompanyInput) (string, error)
	GetCompany(ctx context.Context, id string, requester domain.Principal) (*domain.Company, error)
	ListCompanies(ctx context.Context, requester domain.Principal) ([]domain.Company, error)
}

// CampaignUseCase is the campaign registry together with the post review
// operations.
type CampaignUseCase interface {
	// CreateCampaign stores a draft campaign for one of requester's
	// companies.
	CreateCampaign(ctx context.Context, requester domain.Principal, in CampaignInput) (string, error)
	// GetCampaign returns the campaign merged with its post set, or nil when
	// it is absent or owned by someone else.
	GetCampaign(ctx context.Context, id string, requester domain.Principal) (*CampaignView, error)
	ListCampaigns(ctx context.Context, requester domain.Principal) ([]domain.Campaign, error)
	// MarkGenerated is the trusted internal transition to generated. It
	// does not check ownership.
	MarkGenerated(ctx context.Context, id string) error
	// RecordSelection stores the chosen post indices and completes the
	// campaign. Repeating the call with the same indices is a no-op.
	RecordSelection(ctx context.Context, id string, requester domain.Principal, indices []int) error
	// UpdatePostEditPrompt replaces the edit prompt of the post at
	// postIndex, leaving every other post untouched.
	UpdatePostEditPrompt(ctx context.Context, campaignID string, requester domain.Principal, postIndex int, prompt string) error
	// ExportSelected renders the selected posts, in selection order, as
	// plain text separated by blank lines.
	ExportSelected(ctx context.Context, campaignID string, requester domain.Principal) (string, error)
}

// GenerationUseCase is the orchestrator that generates and attaches posts.
type GenerationUseCase interface {
	GenerateAndAttach(ctx context.Context, requester domain.Principal, campaignID string, in GenerateInput) (*domain.PostSet, error)
}

// UploadUseCase implements the two-step upload channel.
type UploadUseCase interface {
	CreateUploadURL(ctx context.Context, requester domain.Principal) (*UploadURL, error)
	Upload(ctx context.Context, token, contentType string, body []byte) (string, error)
	GetFile(ctx context.Context, id string, requester domain.Principal) (*domain.StoredFile, error)
}

// CompanyInput holds the user-editable fields of a new company.
type CompanyInput struct {
	Name          string
	WebsiteURL    string
	Description   string
	LogoFileRef   string
	AssetFileRefs []string
}

// CampaignInput holds the user-editable fields of a new campaign.
type CampaignInput struct {
	Name               string
	CompanyID          string
	ProductImageRef    string
	LayoutImageRef     string
	Instructions       string
	ProductDescription string
}

// GenerateInput holds the optional overrides of a generation run. Empty
// fields fall back to the layout "default" and to the campaign's stored
// instructions and product description.
type GenerateInput struct {
	Layout             string
	Instructions       string
	ProductDescription string
}

// CampaignView is a campaign merged with its post set. Posts is nil until
// the campaign has been generated.
type CampaignView struct {
	domain.Campaign
	Posts *domain.PostSet
}

// UploadURL is a single-use upload destination.
type UploadURL struct {
	URL       string
	Token     string
	ExpiresAt time.Time
}
