package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/freshnutrients/agrichat/internal/db"
)

// Store provides read access to the product catalog.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

const productColumns = `product_name, crop, application, application_type,
	growth_stage, problem, m_intervention, directions, label, msds, tech_doc, notes`

// SearchByText returns products whose crop column contains the pattern.
func (s *Store) SearchByText(ctx context.Context, pattern string, limit int) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE crop LIKE ? ORDER BY product_name`
	args := []any{"%" + pattern + "%"}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching products by text: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SearchByName returns products whose name contains the pattern.
func (s *Store) SearchByName(ctx context.Context, pattern string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products
		WHERE product_name LIKE ? ORDER BY product_name LIMIT ?`,
		"%"+pattern+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching products by name: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByExactName returns the first product row matching the exact name,
// or nil when no such product exists.
func (s *Store) GetByExactName(ctx context.Context, name string) (*Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products
		WHERE product_name = ? LIMIT 1`, name)

	var p Product
	err := row.Scan(&p.ProductName, &p.Crop, &p.Application, &p.ApplicationType,
		&p.GrowthStage, &p.Problem, &p.MIntervention, &p.Directions, &p.Label,
		&p.MSDS, &p.TechDoc, &p.Notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", name, err)
	}
	return &p, nil
}

// SearchByCriteria returns products matching all set criteria fields.
// An empty criteria yields an empty result, never a full table scan.
func (s *Store) SearchByCriteria(ctx context.Context, c Criteria) ([]Product, error) {
	if c.IsZero() {
		return nil, nil
	}

	var (
		clauses []string
		args    []any
	)
	if c.Crop != "" {
		clauses = append(clauses, "crop LIKE ?")
		args = append(args, "%"+c.Crop+"%")
	}
	if c.ApplicationType != "" {
		clauses = append(clauses, "application_type LIKE ?")
		args = append(args, "%"+c.ApplicationType+"%")
	}
	if c.Problem != "" {
		clauses = append(clauses, "problem LIKE ?")
		args = append(args, "%"+c.Problem+"%")
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` +
		strings.Join(clauses, " AND ") + " ORDER BY product_name"
	if c.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, c.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching products by criteria: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Insert adds a product row. Used by the catalog importer and tests.
func (s *Store) Insert(ctx context.Context, p Product) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO products (
		product_name, crop, application, application_type, growth_stage,
		problem, m_intervention, directions, label, msds, tech_doc, notes
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProductName, p.Crop, p.Application, p.ApplicationType, p.GrowthStage,
		p.Problem, p.MIntervention, p.Directions, p.Label, p.MSDS, p.TechDoc, p.Notes)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

// Crops returns all distinct crop labels in the catalog.
func (s *Store) Crops(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "crop")
}

// Problems returns all distinct problem labels in the catalog.
func (s *Store) Problems(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "problem")
}

// ApplicationTypes returns all distinct application types in the catalog.
func (s *Store) ApplicationTypes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "application_type")
}

// GrowthStages returns all distinct growth stages in the catalog.
func (s *Store) GrowthStages(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "growth_stage")
}

func (s *Store) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT `+column+` FROM products
		WHERE `+column+` != '' ORDER BY `+column)
	if err != nil {
		return nil, fmt.Errorf("listing distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ProductName, &p.Crop, &p.Application, &p.ApplicationType,
			&p.GrowthStage, &p.Problem, &p.MIntervention, &p.Directions, &p.Label,
			&p.MSDS, &p.TechDoc, &p.Notes); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
