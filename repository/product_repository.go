package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"pizzaria-storefront/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(conn *sql.DB) *ProductRepository {
	return &ProductRepository{db: conn}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// List retrieves every product with its variations and additional links, ordered by category then name
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	log.Printf("🔍 List: Fetching products")

	query := `
		SELECT id, name, description, category, image_url, price, created_at, updated_at
		FROM products
		ORDER BY category ASC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	index := make(map[string]int)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		index[product.ID] = len(products)
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating products: %v", err)
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	variations, err := r.loadVariations(ctx, "")
	if err != nil {
		return nil, err
	}
	for productID, vs := range variations {
		if i, ok := index[productID]; ok {
			products[i].Variations = vs
		}
	}

	links, err := r.loadAdditionalLinks(ctx, "")
	if err != nil {
		return nil, err
	}
	for productID, ids := range links {
		if i, ok := index[productID]; ok {
			products[i].AdditionalIDs = ids
		}
	}

	log.Printf("✓ Successfully fetched %d products", len(products))
	return products, nil
}

// GetByID retrieves a single product
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, description, category, image_url, price, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		log.Printf("❌ GetByID: Error fetching product id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	variations, err := r.loadVariations(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Variations = variations[id]

	links, err := r.loadAdditionalLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	product.AdditionalIDs = links[id]

	return product, nil
}

// Create inserts a product with its variations and additional links in one transaction
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	log.Printf("📦 Create: Creating product id=%s, name=%s", product.ID, product.Name)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Create: Error starting transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, description, category, image_url, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	var createdAt, updatedAt time.Time
	err = tx.QueryRowContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.ImageURL,
		nullDecimal(product.Price),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		log.Printf("❌ Create: Error inserting product: %v", err)
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := writeChildren(ctx, tx, product); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Create: Error committing transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	product.CreatedAt = createdAt.Format(time.RFC3339)
	product.UpdatedAt = updatedAt.Format(time.RFC3339)
	log.Printf("✅ Create: Successfully created product id=%s", product.ID)
	return nil
}

// Update replaces a product's fields, variations and additional links
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	log.Printf("📝 Update: Updating product id=%s", product.ID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Update: Error starting transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, image_url = $5, price = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var createdAt, updatedAt time.Time
	err = tx.QueryRowContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.ImageURL,
		nullDecimal(product.Price),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
		}
		log.Printf("❌ Update: Error updating product: %v", err)
		return fmt.Errorf("failed to update product: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_variations WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("failed to clear variations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_additionals WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("failed to clear additional links: %w", err)
	}
	if err := writeChildren(ctx, tx, product); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Update: Error committing transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	product.CreatedAt = createdAt.Format(time.RFC3339)
	product.UpdatedAt = updatedAt.Format(time.RFC3339)
	log.Printf("✅ Update: Successfully updated product id=%s", product.ID)
	return nil
}

// Delete removes a product. Variations and links go with it through ON DELETE CASCADE.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting product id=%s: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	log.Printf("🗑️  Delete: Removed product id=%s", id)
	return nil
}

// loadVariations returns variations grouped by product id, in position order.
// An empty productID loads every product's variations.
func (r *ProductRepository) loadVariations(ctx context.Context, productID string) (map[string][]models.Variation, error) {
	query := `
		SELECT product_id, name, price
		FROM product_variations
		WHERE $1 = '' OR product_id = $1
		ORDER BY product_id, position
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ Error querying variations: %v", err)
		return nil, fmt.Errorf("failed to query variations: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.Variation)
	for rows.Next() {
		var id string
		var v models.Variation
		if err := rows.Scan(&id, &v.Name, &v.Price); err != nil {
			return nil, fmt.Errorf("failed to scan variation: %w", err)
		}
		result[id] = append(result[id], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate variations: %w", err)
	}
	return result, nil
}

// loadAdditionalLinks returns additional ids grouped by product id, in position order
func (r *ProductRepository) loadAdditionalLinks(ctx context.Context, productID string) (map[string][]string, error) {
	query := `
		SELECT product_id, additional_id
		FROM product_additionals
		WHERE $1 = '' OR product_id = $1
		ORDER BY product_id, position
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		log.Printf("❌ Error querying additional links: %v", err)
		return nil, fmt.Errorf("failed to query additional links: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var id, additionalID string
		if err := rows.Scan(&id, &additionalID); err != nil {
			return nil, fmt.Errorf("failed to scan additional link: %w", err)
		}
		result[id] = append(result[id], additionalID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate additional links: %w", err)
	}
	return result, nil
}

func writeChildren(ctx context.Context, tx *sql.Tx, product *models.Product) error {
	for i, v := range product.Variations {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_variations (product_id, position, name, price) VALUES ($1, $2, $3, $4)`,
			product.ID, i, v.Name, v.Price,
		)
		if err != nil {
			log.Printf("❌ Error inserting variation %s: %v", v.Name, err)
			return fmt.Errorf("failed to insert variation: %w", err)
		}
	}
	for i, additionalID := range product.AdditionalIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO product_additionals (product_id, additional_id, position) VALUES ($1, $2, $3)`,
			product.ID, additionalID, i,
		)
		if err != nil {
			log.Printf("❌ Error linking additional %s: %v", additionalID, err)
			return fmt.Errorf("failed to link additional: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var price decimal.NullDecimal
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.ImageURL,
		&price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		p := price.Decimal
		product.Price = &p
	}
	product.CreatedAt = createdAt.Format(time.RFC3339)
	product.UpdatedAt = updatedAt.Format(time.RFC3339)
	return &product, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
