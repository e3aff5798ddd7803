package repository

import (
	"context"
	"database/sql"
	"fmt"

	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"
	"franquicia/internal/infrastructure/mysql"
)

type MySQLFranchiseRepository struct {
	db *sql.DB
}

func NewMySQLFranchiseRepository(db *sql.DB) *MySQLFranchiseRepository {
	return &MySQLFranchiseRepository{db: db}
}

func (r *MySQLFranchiseRepository) Save(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error) {
	query := `INSERT INTO franchises (name) VALUES (?)`

	result, err := r.db.ExecContext(ctx, query, franchise.Name)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return domain.Franchise{}, apperrors.ErrFranchiseNameExists
		}
		return domain.Franchise{}, fmt.Errorf("inserting franchise: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Franchise{}, fmt.Errorf("getting franchise insert id: %w", err)
	}

	franchise.ID = id
	return franchise, nil
}

func (r *MySQLFranchiseRepository) FindByID(ctx context.Context, id int64) (*domain.Franchise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM franchises
		WHERE id = ?
	`

	var franchise domain.Franchise
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&franchise.ID, &franchise.Name, &franchise.CreatedAt, &franchise.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrFranchiseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying franchise by id: %w", err)
	}

	return &franchise, nil
}

func (r *MySQLFranchiseRepository) FindByName(ctx context.Context, name string) (*domain.Franchise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM franchises
		WHERE name = ?
	`

	var franchise domain.Franchise
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&franchise.ID, &franchise.Name, &franchise.CreatedAt, &franchise.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrFranchiseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying franchise by name: %w", err)
	}

	return &franchise, nil
}

func (r *MySQLFranchiseRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query := `UPDATE franchises SET name = ?, updated_at = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		if mysql.IsDuplicateEntry(err) {
			return apperrors.ErrFranchiseNameDuplicate
		}
		return fmt.Errorf("updating franchise name: %w", err)
	}

	// No se valida RowsAffected: renombrar al nombre actual deja la fila
	// idéntica y MySQL reporta cero filas afectadas.
	return nil
}
