package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"pizzaria-storefront/models"
)

// AdditionalRepository handles database operations for additionals
type AdditionalRepository struct {
	db *sql.DB
}

// NewAdditionalRepository creates a new AdditionalRepository
func NewAdditionalRepository(conn *sql.DB) *AdditionalRepository {
	return &AdditionalRepository{db: conn}
}

// Ensure AdditionalRepository implements AdditionalRepositoryInterface
var _ AdditionalRepositoryInterface = (*AdditionalRepository)(nil)

// List retrieves all additionals ordered by name
func (r *AdditionalRepository) List(ctx context.Context) ([]models.Additional, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price, created_at FROM additionals ORDER BY name ASC`)
	if err != nil {
		log.Printf("❌ Error querying additionals: %v", err)
		return nil, fmt.Errorf("failed to query additionals: %w", err)
	}
	defer rows.Close()
	return scanAdditionals(rows)
}

// GetByID retrieves a single additional
func (r *AdditionalRepository) GetByID(ctx context.Context, id string) (*models.Additional, error) {
	var additional models.Additional
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price, created_at FROM additionals WHERE id = $1`, id,
	).Scan(&additional.ID, &additional.Name, &additional.Price, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("additional %s: %w", id, ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching additional id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch additional: %w", err)
	}
	additional.CreatedAt = createdAt.Format(time.RFC3339)
	return &additional, nil
}

// GetByIDs retrieves the additionals with the given ids. Unknown ids are skipped.
func (r *AdditionalRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Additional, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, created_at FROM additionals WHERE id = ANY($1) ORDER BY name ASC`, ids,
	)
	if err != nil {
		log.Printf("❌ Error querying additionals by ids: %v", err)
		return nil, fmt.Errorf("failed to query additionals: %w", err)
	}
	defer rows.Close()
	return scanAdditionals(rows)
}

// Create inserts an additional
func (r *AdditionalRepository) Create(ctx context.Context, additional *models.Additional) error {
	log.Printf("📦 Create: Creating additional id=%s, name=%s", additional.ID, additional.Name)

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO additionals (id, name, price) VALUES ($1, $2, $3) RETURNING created_at`,
		additional.ID, additional.Name, additional.Price,
	).Scan(&createdAt)
	if err != nil {
		log.Printf("❌ Create: Error inserting additional: %v", err)
		return fmt.Errorf("failed to insert additional: %w", err)
	}
	additional.CreatedAt = createdAt.Format(time.RFC3339)
	log.Printf("✅ Create: Successfully created additional id=%s", additional.ID)
	return nil
}

// Update changes an additional's name and price
func (r *AdditionalRepository) Update(ctx context.Context, additional *models.Additional) error {
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx,
		`UPDATE additionals SET name = $2, price = $3 WHERE id = $1 RETURNING created_at`,
		additional.ID, additional.Name, additional.Price,
	).Scan(&createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("additional %s: %w", additional.ID, ErrNotFound)
		}
		log.Printf("❌ Update: Error updating additional: %v", err)
		return fmt.Errorf("failed to update additional: %w", err)
	}
	additional.CreatedAt = createdAt.Format(time.RFC3339)
	log.Printf("✅ Update: Successfully updated additional id=%s", additional.ID)
	return nil
}

// Delete removes an additional and its product links
func (r *AdditionalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM additionals WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting additional id=%s: %v", id, err)
		return fmt.Errorf("failed to delete additional: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("additional %s: %w", id, ErrNotFound)
	}
	log.Printf("🗑️  Delete: Removed additional id=%s", id)
	return nil
}

func scanAdditionals(rows *sql.Rows) ([]models.Additional, error) {
	var additionals []models.Additional
	for rows.Next() {
		var additional models.Additional
		var createdAt time.Time
		if err := rows.Scan(&additional.ID, &additional.Name, &additional.Price, &createdAt); err != nil {
			log.Printf("❌ Error scanning additional: %v", err)
			return nil, fmt.Errorf("failed to scan additional: %w", err)
		}
		additional.CreatedAt = createdAt.Format(time.RFC3339)
		additionals = append(additionals, additional)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate additionals: %w", err)
	}
	return additionals, nil
}
