package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

// CompanyUseCase implements port.CompanyUseCase.
type CompanyUseCase struct {
	companies port.CompanyRepository
	logger    *slog.Logger
}

var _ port.CompanyUseCase = (*CompanyUseCase)(nil)

// NewCompanyUseCase creates the company registry on top of repo.
func NewCompanyUseCase(repo port.CompanyRepository, logger *slog.Logger) *CompanyUseCase {
	return &CompanyUseCase{companies: repo, logger: resolveLogger(logger)}
}

// CreateCompany validates the input and stores a company owned by
// requester.
func (u *CompanyUseCase) CreateCompany(ctx context.Context, requester domain.Principal, in port.CompanyInput) (string, error) {
	if !requester.Authenticated() {
		return "", port.ErrUnauthenticated
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", fmt.Errorf("%w: company name is required", port.ErrValidation)
	}

	c := &domain.Company{
		ID:            uuid.NewString(),
		OwnerID:       requester,
		Name:          name,
		WebsiteURL:    strings.TrimSpace(in.WebsiteURL),
		Description:   strings.TrimSpace(in.Description),
		LogoFileRef:   strings.TrimSpace(in.LogoFileRef),
		AssetFileRefs: slices.Clone(in.AssetFileRefs),
	}
	if err := u.companies.CreateCompany(ctx, c); err != nil {
		return "", err
	}
	u.logger.Info("company created",
		slog.String("company_id", c.ID), slog.String("owner_id", string(requester)))
	return c.ID, nil
}

// GetCompany returns the company if requester owns it.
func (u *CompanyUseCase) GetCompany(ctx context.Context, id string, requester domain.Principal) (*domain.Company, error) {
	if !requester.Authenticated() {
		return nil, nil
	}
	c, err := u.companies.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !requester.Owns(c.OwnerID) {
		return nil, nil
	}
	return c, nil
}

// ListCompanies returns the companies owned by requester.
func (u *CompanyUseCase) ListCompanies(ctx context.Context, requester domain.Principal) ([]domain.Company, error) {
	if !requester.Authenticated() {
		return []domain.Company{}, nil
	}
	return u.companies.ListCompanies(ctx, requester)
}
