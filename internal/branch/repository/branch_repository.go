package repository

import (
	"context"
	"database/sql"
	"fmt"

	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"
	"franquicia/internal/infrastructure/mysql"
)

type MySQLBranchRepository struct {
	db *sql.DB
}

func NewMySQLBranchRepository(db *sql.DB) *MySQLBranchRepository {
	return &MySQLBranchRepository{db: db}
}

func (r *MySQLBranchRepository) Save(ctx context.Context, branch domain.Branch) (domain.Branch, error) {
	query := `INSERT INTO branches (name, franchise_id) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, branch.Name, branch.FranchiseID)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return domain.Branch{}, apperrors.ErrBranchNameExists
		}
		return domain.Branch{}, fmt.Errorf("inserting branch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Branch{}, fmt.Errorf("getting branch insert id: %w", err)
	}

	branch.ID = id
	return branch, nil
}

func (r *MySQLBranchRepository) FindByID(ctx context.Context, id int64) (*domain.Branch, error) {
	query := `
		SELECT id, name, franchise_id, created_at, updated_at
		FROM branches
		WHERE id = ?
	`

	var branch domain.Branch
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&branch.ID, &branch.Name, &branch.FranchiseID, &branch.CreatedAt, &branch.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying branch by id: %w", err)
	}

	return &branch, nil
}

func (r *MySQLBranchRepository) FindByNameAndFranchiseID(ctx context.Context, name string, franchiseID int64) (*domain.Branch, error) {
	query := `
		SELECT id, name, franchise_id, created_at, updated_at
		FROM branches
		WHERE name = ? AND franchise_id = ?
	`

	var branch domain.Branch
	err := r.db.QueryRowContext(ctx, query, name, franchiseID).Scan(
		&branch.ID, &branch.Name, &branch.FranchiseID, &branch.CreatedAt, &branch.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying branch by name and franchise: %w", err)
	}

	return &branch, nil
}

func (r *MySQLBranchRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query := `UPDATE branches SET name = ?, updated_at = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return apperrors.ErrBranchNameDuplicate
		}
		return fmt.Errorf("updating branch name: %w", err)
	}

	return nil
}

// FindWithTopProductByFranchiseID devuelve una fila por cada sucursal de la
// franquicia junto con su producto de mayor stock. Las sucursales sin
// productos aparecen con TopProduct en nil. Empates de stock se resuelven por
// nombre de producto ascendente; las filas vienen ordenadas por nombre de
// sucursal.
func (r *MySQLBranchRepository) FindWithTopProductByFranchiseID(ctx context.Context, franchiseID int64) ([]domain.BranchWithTopProduct, error) {
	query := `
		SELECT b.id, b.name, b.franchise_id,
		       p.id, p.name, p.stock, p.branch_id
		FROM branches b
		LEFT JOIN (
			SELECT id, name, stock, branch_id,
			       ROW_NUMBER() OVER (PARTITION BY branch_id ORDER BY stock DESC, name ASC) AS rn
			FROM products
		) p ON p.branch_id = b.id AND p.rn = 1
		WHERE b.franchise_id = ?
		ORDER BY b.name
	`

	rows, err := r.db.QueryContext(ctx, query, franchiseID)
	if err != nil {
		return nil, fmt.Errorf("querying branches with top product: %w", err)
	}
	defer rows.Close()

	results := make([]domain.BranchWithTopProduct, 0)
	for rows.Next() {
		var (
			branch       domain.Branch
			productID    sql.NullInt64
			productName  sql.NullString
			productStock sql.NullInt64
			productBID   sql.NullInt64
		)

		err := rows.Scan(
			&branch.ID, &branch.Name, &branch.FranchiseID,
			&productID, &productName, &productStock, &productBID,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning branch with top product row: %w", err)
		}

		entry := domain.BranchWithTopProduct{Branch: branch}
		if productID.Valid {
			entry.TopProduct = &domain.Product{
				ID:       productID.Int64,
				Name:     productName.String,
				Stock:    int(productStock.Int64),
				BranchID: productBID.Int64,
			}
		}
		results = append(results, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating branch with top product rows: %w", err)
	}

	return results, nil
}
