package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. It owns campaign
// records and the post review operations on their post sets.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	companies port.CompanyRepository
	postSets  port.PostSetRepository
	logger    *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates the campaign registry.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	companies port.CompanyRepository,
	postSets port.PostSetRepository,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns: campaigns,
		companies: companies,
		postSets:  postSets,
		logger:    resolveLogger(logger),
	}
}

// CreateCampaign stores a draft campaign. The referenced company must exist
// and belong to requester.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, requester domain.Principal, in port.CampaignInput) (string, error) {
	if !requester.Authenticated() {
		return "", port.ErrUnauthenticated
	}
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return "", fmt.Errorf("%w: company id is required", port.ErrValidation)
	}
	company, err := u.companies.GetCompany(ctx, companyID)
	if err != nil {
		return "", err
	}
	if company == nil || !requester.Owns(company.OwnerID) {
		return "", fmt.Errorf("company %s: %w", companyID, port.ErrNotFound)
	}

	c := &domain.Campaign{
		ID:                 uuid.NewString(),
		OwnerID:            requester,
		Name:               strings.TrimSpace(in.Name),
		CompanyID:          companyID,
		ProductImageRef:    strings.TrimSpace(in.ProductImageRef),
		LayoutImageRef:     strings.TrimSpace(in.LayoutImageRef),
		Instructions:       strings.TrimSpace(in.Instructions),
		ProductDescription: strings.TrimSpace(in.ProductDescription),
		Status:             domain.CampaignDraft,
	}
	if err = u.campaigns.CreateCampaign(ctx, c); err != nil {
		return "", err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID), slog.String("company_id", companyID), slog.String("owner_id", string(requester)))
	return c.ID, nil
}

// GetCampaign returns the campaign merged with its post set.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string, requester domain.Principal) (*port.CampaignView, error) {
	c, err := u.owned(ctx, id, requester)
	if err != nil || c == nil {
		return nil, err
	}
	ps, err := u.postSets.GetPostSet(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{Campaign: *c, Posts: ps}, nil
}

// ListCampaigns returns the campaigns owned by requester.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, requester domain.Principal) ([]domain.Campaign, error) {
	if !requester.Authenticated() {
		return []domain.Campaign{}, nil
	}
	return u.campaigns.ListCampaigns(ctx, requester)
}

// MarkGenerated moves the campaign to generated.
func (u *CampaignUseCase) MarkGenerated(ctx context.Context, id string) error {
	return u.campaigns.UpdateStatus(ctx, id, domain.CampaignGenerated)
}

// RecordSelection validates indices against the post set and completes the
// campaign. Duplicate indices are collapsed, keeping the first occurrence.
func (u *CampaignUseCase) RecordSelection(ctx context.Context, id string, requester domain.Principal, indices []int) error {
	c, err := u.ownedForWrite(ctx, id, requester)
	if err != nil {
		return err
	}
	ps, err := u.postSets.GetPostSet(ctx, c.ID)
	if err != nil {
		return err
	}

	selected := make([]int, 0, len(indices))
	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if !ps.HasIndex(i) {
			return fmt.Errorf("%w: post index %d out of range", port.ErrValidation, i)
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		selected = append(selected, i)
	}

	if err = u.campaigns.SaveSelection(ctx, c.ID, selected); err != nil {
		return err
	}
	u.logger.Info("campaign selection recorded",
		slog.String("campaign_id", c.ID), slog.Any("indices", selected))
	return nil
}

// UpdatePostEditPrompt replaces the edit prompt of one post.
func (u *CampaignUseCase) UpdatePostEditPrompt(ctx context.Context, campaignID string, requester domain.Principal, postIndex int, prompt string) error {
	c, err := u.ownedForWrite(ctx, campaignID, requester)
	if err != nil {
		return err
	}
	if err = u.postSets.UpdateEditPrompt(ctx, c.ID, postIndex, prompt); err != nil {
		return err
	}
	u.logger.Debug("edit prompt updated",
		slog.String("campaign_id", c.ID), slog.Int("post_index", postIndex))
	return nil
}

// ExportSelected returns the text of the selected posts separated by blank
// lines. Like the other operations of the finalize flow it is guarded:
// absent or foreign campaigns yield ErrNotFound.
func (u *CampaignUseCase) ExportSelected(ctx context.Context, campaignID string, requester domain.Principal) (string, error) {
	c, err := u.ownedForWrite(ctx, campaignID, requester)
	if err != nil {
		return "", err
	}
	ps, err := u.postSets.GetPostSet(ctx, c.ID)
	if err != nil || ps == nil {
		return "", err
	}
	texts := make([]string, 0, len(c.SelectedPostIndices))
	for _, i := range c.SelectedPostIndices {
		if ps.HasIndex(i) {
			texts = append(texts, ps.Posts[i].Text)
		}
	}
	return strings.Join(texts, "\n\n"), nil
}

// owned loads the campaign and hides it from anyone but its owner.
func (u *CampaignUseCase) owned(ctx context.Context, id string, requester domain.Principal) (*domain.Campaign, error) {
	if !requester.Authenticated() {
		return nil, nil
	}
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !requester.Owns(c.OwnerID) {
		return nil, nil
	}
	return c, nil
}

// ownedForWrite is owned with the write-path errors.
func (u *CampaignUseCase) ownedForWrite(ctx context.Context, id string, requester domain.Principal) (*domain.Campaign, error) {
	if !requester.Authenticated() {
		return nil, port.ErrUnauthenticated
	}
	c, err := u.owned(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %s: %w", id, port.ErrNotFound)
	}
	return c, nil
}
