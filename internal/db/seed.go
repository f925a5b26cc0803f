package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

// DemoPrincipal owns every record created by Seed.
const DemoPrincipal domain.Principal = "demo-user"

var demoCompanies = []struct {
	name, website, description string
	campaigns                  []domain.Campaign
}{
	{
		name:        "Acme",
		website:     "https://acme.example",
		description: "Rockets, anvils and other desert gear.",
		campaigns: []domain.Campaign{{
			Name:               "Launch",
			Instructions:       "Playful tone, mention free shipping.",
			ProductDescription: "A portable rocket for roadrunner enthusiasts.",
		}},
	},
	{
		name:        "Globex",
		website:     "https://globex.example",
		description: "Enterprise solutions for ambitious founders.",
		campaigns: []domain.Campaign{
			{Name: "Spring Sale", Instructions: "Keep it under 200 characters."},
			{Name: "Hiring Push", ProductDescription: "Open roles in engineering and design."},
		},
	},
}

// Seed inserts demo companies and draft campaigns owned by DemoPrincipal.
// It does nothing when the demo principal already owns a company.
func Seed(ctx context.Context, companies port.CompanyRepository, campaigns port.CampaignRepository, logger *slog.Logger) error {
	existing, err := companies.ListCompanies(ctx, DemoPrincipal)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("demo data already present", slog.Int("companies", len(existing)))
		return nil
	}

	var created int
	for _, dc := range demoCompanies {
		co := &domain.Company{
			ID:          uuid.NewString(),
			OwnerID:     DemoPrincipal,
			Name:        dc.name,
			WebsiteURL:  dc.website,
			Description: dc.description,
		}
		if err = companies.CreateCompany(ctx, co); err != nil {
			return fmt.Errorf("seed company %s: %w", dc.name, err)
		}
		for _, c := range dc.campaigns {
			c.ID = uuid.NewString()
			c.OwnerID = DemoPrincipal
			c.CompanyID = co.ID
			c.Status = domain.CampaignDraft
			if err = campaigns.CreateCampaign(ctx, &c); err != nil {
				return fmt.Errorf("seed campaign %s: %w", c.Name, err)
			}
			created++
		}
	}
	logger.Info("demo data seeded",
		slog.String("owner_id", string(DemoPrincipal)),
		slog.Int("companies", len(demoCompanies)),
		slog.Int("campaigns", created))
	return nil
}
