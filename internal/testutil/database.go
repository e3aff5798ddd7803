package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB abre la base de datos de integración. Espera una BD MySQL en
// localhost:3306 llamada 'franquicia_test'; si no está disponible el test se
// salta.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/franquicia_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables crea las tablas necesarias para los tests de integración.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createFranchisesTable := `
	CREATE TABLE IF NOT EXISTS franchises (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_franchises_name (name)
	)`

	createBranchesTable := `
	CREATE TABLE IF NOT EXISTS branches (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		franchise_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_branches_name_franchise (name, franchise_id),
		CONSTRAINT fk_branches_franchise FOREIGN KEY (franchise_id) REFERENCES franchises (id)
	)`

	createProductsTable := `
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		stock INT NOT NULL DEFAULT 0,
		branch_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_products_name_branch (name, branch_id),
		CONSTRAINT fk_products_branch FOREIGN KEY (branch_id) REFERENCES branches (id)
	)`

	for _, stmt := range []string{createFranchisesTable, createBranchesTable, createProductsTable} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to create test table: %v", err)
		}
	}
}

// CleanupTestDB limpia la BD de prueba y cierra la conexión.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"products", "branches", "franchises"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}
