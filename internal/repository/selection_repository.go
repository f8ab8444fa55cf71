package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/coursecart/coursecart-api/internal/models"
)

const selectionColumns = `id, email, class_id, class_name, image, price, instructor_name, created_at`

// SelectionRepository handles persistence of cart selections.
type SelectionRepository struct {
	db *sqlx.DB
}

// NewSelectionRepository constructs the repository.
func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// Create inserts a cart entry. Duplicate (email, class_id) pairs are not
// rejected.
func (r *SelectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	if selection.ID == "" {
		selection.ID = uuid.NewString()
	}
	if selection.CreatedAt.IsZero() {
		selection.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO selections (id, email, class_id, class_name, image, price, instructor_name, created_at)
VALUES (:id, :email, :class_id, :class_name, :image, :price, :instructor_name, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, selection); err != nil {
		return fmt.Errorf("create selection: %w", err)
	}
	return nil
}

// List returns every selection across all users.
func (r *SelectionRepository) List(ctx context.Context) ([]models.Selection, error) {
	query := fmt.Sprintf(`SELECT %s FROM selections ORDER BY created_at DESC`, selectionColumns)
	var selections []models.Selection
	if err := r.db.SelectContext(ctx, &selections, query); err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return selections, nil
}

// FindByID returns a selection by identifier.
func (r *SelectionRepository) FindByID(ctx context.Context, id string) (*models.Selection, error) {
	query := fmt.Sprintf(`SELECT %s FROM selections WHERE id = $1 LIMIT 1`, selectionColumns)
	var selection models.Selection
	if err := r.db.GetContext(ctx, &selection, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find selection by id: %w", err)
	}
	return &selection, nil
}

// ListByEmail returns the selections belonging to one student.
func (r *SelectionRepository) ListByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	query := fmt.Sprintf(`SELECT %s FROM selections WHERE email = $1 ORDER BY created_at DESC`, selectionColumns)
	var selections []models.Selection
	if err := r.db.SelectContext(ctx, &selections, query, email); err != nil {
		return nil, fmt.Errorf("list selections by email: %w", err)
	}
	return selections, nil
}

// Delete removes a selection by identifier.
func (r *SelectionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM selections WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	return nil
}
