package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

// PostSetRepository implements port.PostSetRepository. Posts are stored as
// a JSONB array so that single entries can be patched in place.
type PostSetRepository struct {
	db DB
}

// NewPostSetRepository returns a new repository instance.
func NewPostSetRepository(db DB) *PostSetRepository {
	return &PostSetRepository{db: db}
}

// SaveGenerated moves the campaign to generated and upserts its post set
// in one transaction. The conditional UPDATE takes the campaign's row lock
// first, so a concurrent SaveSelection either commits before it (and this
// call fails with ErrInvalidTransition) or waits until the new posts are
// visible.
func (r *PostSetRepository) SaveGenerated(ctx context.Context, ps *domain.PostSet) error {
	posts := ps.Posts
	if posts == nil {
		posts = []domain.Post{}
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	if err = saveGenerated(ctx, tx, ps, raw); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func saveGenerated(ctx context.Context, tx pgx.Tx, ps *domain.PostSet, raw []byte) error {
	to := domain.CampaignGenerated
	tag, err := tx.Exec(ctx, updateStatusSQL, ps.CampaignID, string(to), statusStrings(to.Predecessors()))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transitionError(ctx, tx, ps.CampaignID, to)
	}

	now := time.Now().UTC()
	return tx.QueryRow(ctx, `INSERT INTO post_sets (id, campaign_id, posts, created_at, updated_at)
VALUES ($1,$2,$3,$4,$4)
ON CONFLICT (campaign_id) DO UPDATE SET posts = EXCLUDED.posts, updated_at = EXCLUDED.updated_at
RETURNING id, created_at, updated_at`, ps.ID, ps.CampaignID, raw, now).
		Scan(&ps.ID, &ps.CreatedAt, &ps.UpdatedAt)
}

// GetPostSet returns the post set of a campaign.
func (r *PostSetRepository) GetPostSet(ctx context.Context, campaignID string) (*domain.PostSet, error) {
	var (
		ps  domain.PostSet
		raw []byte
	)
	err := r.db.QueryRow(ctx, `SELECT id, campaign_id, posts, created_at, updated_at FROM post_sets WHERE campaign_id = $1`, campaignID).
		Scan(&ps.ID, &ps.CampaignID, &raw, &ps.CreatedAt, &ps.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(raw, &ps.Posts); err != nil {
		return nil, fmt.Errorf("decode posts of campaign %s: %w", campaignID, err)
	}
	return &ps, nil
}

// UpdateEditPrompt patches one array element in a single statement, so
// concurrent edits of different posts do not overwrite each other.
func (r *PostSetRepository) UpdateEditPrompt(ctx context.Context, campaignID string, index int, prompt string) error {
	if index < 0 {
		return fmt.Errorf("%w: post index %d out of range", port.ErrValidation, index)
	}
	path := []string{strconv.Itoa(index), "editPrompt"}
	tag, err := r.db.Exec(ctx, `UPDATE post_sets
SET posts = jsonb_set(posts, $2, to_jsonb($4::text)), updated_at = now()
WHERE campaign_id = $1 AND $3::int < jsonb_array_length(posts)`, campaignID, path, index, prompt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM post_sets WHERE campaign_id = $1)`, campaignID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return fmt.Errorf("%w: post index %d out of range", port.ErrValidation, index)
}
