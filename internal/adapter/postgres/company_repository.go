package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"postcraft/internal/core/domain"
)

const companyColumns = `id, owner_id, name, website_url, description, logo_file_ref, asset_file_refs, created_at, updated_at`

// CompanyRepository implements port.CompanyRepository on top of a pgx pool.
type CompanyRepository struct {
	db DB
}

// NewCompanyRepository returns a new repository instance.
func NewCompanyRepository(db DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// CreateCompany inserts c and sets its timestamps.
func (r *CompanyRepository) CreateCompany(ctx context.Context, c *domain.Company) error {
	now := time.Now().UTC()
	assets := c.AssetFileRefs
	if assets == nil {
		assets = []string{}
	}
	_, err := r.db.Exec(ctx, `INSERT INTO companies (`+companyColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)`,
		c.ID, string(c.OwnerID), c.Name, c.WebsiteURL, c.Description, c.LogoFileRef, assets, now)
	if err != nil {
		return err
	}
	c.CreatedAt, c.UpdatedAt = now, now
	return nil
}

// GetCompany returns a company by id.
func (r *CompanyRepository) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCompany)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCompanies returns the companies of owner, oldest first.
func (r *CompanyRepository) ListCompanies(ctx context.Context, owner domain.Principal) ([]domain.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 ORDER BY created_at, id`, string(owner))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCompany)
}

func scanCompany(row pgx.CollectableRow) (domain.Company, error) {
	var (
		c     domain.Company
		owner string
	)
	err := row.Scan(&c.ID, &owner, &c.Name, &c.WebsiteURL, &c.Description, &c.LogoFileRef, &c.AssetFileRefs, &c.CreatedAt, &c.UpdatedAt)
	c.OwnerID = domain.Principal(owner)
	return c, err
}
