package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/psycheverse/creator-admin-api/internal/models"
)

const creatorColumns = "id, display_name, description, avatar_url, status, viewers, is_featured, featured_priority, is_paid_member, platforms, created_at"

// CreatorRepository manages persistence for creator records.
type CreatorRepository struct {
	db *sqlx.DB
}

// NewCreatorRepository constructs a CreatorRepository.
func NewCreatorRepository(db *sqlx.DB) *CreatorRepository {
	return &CreatorRepository{db: db}
}

// Create inserts a new creator record. The store assigns the id; created_at
// is set once here and never changes afterwards.
func (r *CreatorRepository) Create(ctx context.Context, creator *models.Creator) error {
	if creator.CreatedAt.IsZero() {
		creator.CreatedAt = time.Now().UTC()
	}
	if creator.Platforms == nil {
		creator.Platforms = models.PlatformList{}
	}
	const query = `INSERT INTO creators (display_name, description, avatar_url, status, viewers, is_featured, featured_priority, is_paid_member, platforms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.GetContext(ctx, &creator.ID, query,
		creator.DisplayName,
		creator.Description,
		creator.AvatarURL,
		creator.Status,
		creator.Viewers,
		creator.IsFeatured,
		creator.FeaturedPriority,
		creator.IsPaidMember,
		creator.Platforms,
		creator.CreatedAt,
	); err != nil {
		return fmt.Errorf("create creator: %w", err)
	}
	return nil
}

// FindByID fetches a creator by id.
func (r *CreatorRepository) FindByID(ctx context.Context, id int64) (*models.Creator, error) {
	query := fmt.Sprintf("SELECT %s FROM creators WHERE id = $1", creatorColumns)
	var creator models.Creator
	if err := r.db.GetContext(ctx, &creator, query, id); err != nil {
		return nil, err
	}
	return &creator, nil
}

// List returns all creators, most recently created first. The ordering is a
// stable contract consumed by the listing endpoint.
func (r *CreatorRepository) List(ctx context.Context) ([]models.Creator, error) {
	query := fmt.Sprintf("SELECT %s FROM creators ORDER BY created_at DESC", creatorColumns)
	var creators []models.Creator
	if err := r.db.SelectContext(ctx, &creators, query); err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}
	return creators, nil
}

// ListFeaturedFirst returns all creators with featured entries first, then
// alphabetically by display name. Used by the export surface.
func (r *CreatorRepository) ListFeaturedFirst(ctx context.Context) ([]models.Creator, error) {
	query := fmt.Sprintf("SELECT %s FROM creators ORDER BY is_featured DESC, display_name ASC", creatorColumns)
	var creators []models.Creator
	if err := r.db.SelectContext(ctx, &creators, query); err != nil {
		return nil, fmt.Errorf("list creators featured first: %w", err)
	}
	return creators, nil
}

// UpdateFields applies a partial update touching exactly the supplied
// fields and reports the number of affected rows (0 or 1). Existence is
// judged from the affected-row count after execution, never via a
// pre-check.
func (r *CreatorRepository) UpdateFields(ctx context.Context, id int64, update CreatorUpdate) (int64, error) {
	clauses, args := update.compile()
	if len(clauses) == 0 {
		return 0, fmt.Errorf("update creator %d: no fields to set", id)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE creators SET %s WHERE id = $%d", strings.Join(clauses, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update creator %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update creator %d rows affected: %w", id, err)
	}
	return affected, nil
}

// Delete removes a creator and reports whether a row was actually removed.
func (r *CreatorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM creators WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete creator %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete creator %d rows affected: %w", id, err)
	}
	return affected > 0, nil
}
