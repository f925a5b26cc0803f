package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"postcraft/internal/core/domain"
)

// FileRepository implements port.FileRepository. File contents live in a
// BYTEA column next to their metadata.
type FileRepository struct {
	db DB
}

// NewFileRepository returns a new repository instance.
func NewFileRepository(db DB) *FileRepository {
	return &FileRepository{db: db}
}

// CreateUploadTicket stores a new single-use upload ticket.
func (r *FileRepository) CreateUploadTicket(ctx context.Context, t domain.UploadTicket) error {
	_, err := r.db.Exec(ctx, `INSERT INTO upload_tickets (token, owner_id, expires_at, created_at) VALUES ($1,$2,$3,$4)`,
		t.Token, string(t.OwnerID), t.ExpiresAt, t.CreatedAt)
	return err
}

// ConsumeUploadTicket deletes the ticket and returns it. Two concurrent
// consumers cannot both receive it.
func (r *FileRepository) ConsumeUploadTicket(ctx context.Context, token string) (*domain.UploadTicket, error) {
	var (
		t     domain.UploadTicket
		owner string
	)
	err := r.db.QueryRow(ctx, `DELETE FROM upload_tickets WHERE token = $1 RETURNING token, owner_id, expires_at, created_at`, token).
		Scan(&t.Token, &owner, &t.ExpiresAt, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.OwnerID = domain.Principal(owner)
	return &t, nil
}

// SaveFile inserts f and sets its creation time.
func (r *FileRepository) SaveFile(ctx context.Context, f *domain.StoredFile) error {
	f.CreatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx, `INSERT INTO files (id, owner_id, content_type, size, data, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		f.ID, string(f.OwnerID), f.ContentType, f.Size, f.Data, f.CreatedAt)
	return err
}

// GetFile returns a stored file by id.
func (r *FileRepository) GetFile(ctx context.Context, id string) (*domain.StoredFile, error) {
	var (
		f     domain.StoredFile
		owner string
	)
	err := r.db.QueryRow(ctx, `SELECT id, owner_id, content_type, size, data, created_at FROM files WHERE id = $1`, id).
		Scan(&f.ID, &owner, &f.ContentType, &f.Size, &f.Data, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f.OwnerID = domain.Principal(owner)
	return &f, nil
}
