package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

const campaignColumns = `id, owner_id, company_id, name, product_image_ref, layout_image_ref, instructions,
    product_description, status, selected_post_indices, created_at, updated_at`

const updateStatusSQL = `UPDATE campaigns SET status = $2, updated_at = now()
WHERE id = $1 AND status = ANY($3)`

// CampaignRepository implements port.CampaignRepository on top of a pgx pool.
// Status changes are conditional updates so the state machine holds under
// concurrent writers.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// CreateCampaign inserts c and sets its timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)`,
		c.ID, string(c.OwnerID), c.CompanyID, c.Name, c.ProductImageRef, c.LayoutImageRef, c.Instructions,
		c.ProductDescription, string(c.Status), c.SelectedPostIndices, now)
	if err != nil {
		return err
	}
	c.CreatedAt, c.UpdatedAt = now, now
	return nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns the campaigns of owner, oldest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, owner domain.Principal) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE owner_id = $1 ORDER BY created_at, id`, string(owner))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// UpdateStatus moves the campaign to status if its current status allows it.
// The check and the write are one conditional UPDATE, so two concurrent
// writers cannot both pass the check.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	tag, err := r.db.Exec(ctx, updateStatusSQL, id, string(status), statusStrings(status.Predecessors()))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transitionError(ctx, r.db, id, status)
	}
	return nil
}

// SaveSelection stores indices and completes the campaign.
func (r *CampaignRepository) SaveSelection(ctx context.Context, id string, indices []int) error {
	if indices == nil {
		indices = []int{}
	}
	tag, err := r.db.Exec(ctx, `UPDATE campaigns SET selected_post_indices = $2, status = $3, updated_at = now()
WHERE id = $1 AND status = ANY($4)`,
		id, indices, string(domain.CampaignCompleted), statusStrings(domain.CampaignCompleted.Predecessors()))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transitionError(ctx, r.db, id, domain.CampaignCompleted)
	}
	return nil
}

// transitionError explains why a conditional status update touched no row:
// the campaign is either missing or in a status that does not lead to to.
func transitionError(ctx context.Context, q querier, id string, to domain.CampaignStatus) error {
	var current string
	err := q.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, current, to)
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c             domain.Campaign
		owner, status string
	)
	err := row.Scan(&c.ID, &owner, &c.CompanyID, &c.Name, &c.ProductImageRef, &c.LayoutImageRef, &c.Instructions,
		&c.ProductDescription, &status, &c.SelectedPostIndices, &c.CreatedAt, &c.UpdatedAt)
	c.OwnerID = domain.Principal(owner)
	c.Status = domain.CampaignStatus(status)
	if err == nil && !c.Status.Valid() {
		err = fmt.Errorf("campaign %s: unknown status %q", c.ID, status)
	}
	return c, err
}

func statusStrings(statuses []domain.CampaignStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
