package mysql

import (
	"errors"

	gomysql "github.com/go-sql-driver/mysql"
)

// IsDuplicateEntry reporta si err es una violación de índice único de MySQL
// (error 1062). Los repositorios lo usan para traducir la restricción de
// unicidad de la base de datos al error de negocio correspondiente.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
