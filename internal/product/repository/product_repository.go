package repository

import (
	"context"
	"database/sql"
	"fmt"

	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"
	"franquicia/internal/infrastructure/mysql"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

func (r *MySQLProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	query := `INSERT INTO products (name, stock, branch_id) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Stock, product.BranchID)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return domain.Product{}, apperrors.ErrProductNameDuplicate
		}
		return domain.Product{}, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Product{}, fmt.Errorf("getting product insert id: %w", err)
	}

	product.ID = id
	return product, nil
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, stock, branch_id, created_at, updated_at
		FROM products
		WHERE id = ?
	`

	var product domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Stock, &product.BranchID,
		&product.CreatedAt, &product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &product, nil
}

func (r *MySQLProductRepository) FindByNameAndBranchID(ctx context.Context, name string, branchID int64) (*domain.Product, error) {
	query := `
		SELECT id, name, stock, branch_id, created_at, updated_at
		FROM products
		WHERE name = ? AND branch_id = ?
	`

	var product domain.Product
	err := r.db.QueryRowContext(ctx, query, name, branchID).Scan(
		&product.ID, &product.Name, &product.Stock, &product.BranchID,
		&product.CreatedAt, &product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by name and branch: %w", err)
	}

	return &product, nil
}

func (r *MySQLProductRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

func (r *MySQLProductRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	query := `UPDATE products SET stock = ?, updated_at = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, stock, id)
	if err != nil {
		return fmt.Errorf("updating product stock: %w", err)
	}

	return nil
}

func (r *MySQLProductRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query := `UPDATE products SET name = ?, updated_at = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return apperrors.ErrProductNameDuplicate
		}
		return fmt.Errorf("updating product name: %w", err)
	}

	return nil
}

// FindMaxStockByFranchise devuelve los productos de mayor stock de cada
// sucursal de la franquicia. Una sucursal sin productos no aparece; empates
// de stock máximo producen una fila por producto empatado, ordenadas por
// nombre de sucursal y de producto.
func (r *MySQLProductRepository) FindMaxStockByFranchise(ctx context.Context, franchiseID int64) ([]domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.stock, p.branch_id, p.created_at, p.updated_at
		FROM products p
		INNER JOIN branches b ON p.branch_id = b.id
		INNER JOIN (
			SELECT branch_id, MAX(stock) AS max_stock
			FROM products
			WHERE branch_id IN (SELECT id FROM branches WHERE franchise_id = ?)
			GROUP BY branch_id
		) max_products ON p.branch_id = max_products.branch_id AND p.stock = max_products.max_stock
		WHERE b.franchise_id = ?
		ORDER BY b.name, p.name
	`

	rows, err := r.db.QueryContext(ctx, query, franchiseID, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("querying max stock products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.BranchID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning max stock product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating max stock product rows: %w", err)
	}

	return products, nil
}
