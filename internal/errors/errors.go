package errors

import (
	"errors"
	"fmt"
)

// Category clasifica un BusinessError para que la capa de transporte pueda
// elegir el código HTTP sin conocer cada código de negocio.
type Category int

const (
	CategoryInvalid Category = iota
	CategoryNotFound
	CategoryConflict
)

// BusinessError es un error de regla de negocio con código estable y mensaje
// orientado al usuario. Las instancias son singletons y se comparan por
// identidad con errors.Is / errors.As.
type BusinessError struct {
	Code     string
	Message  string
	Category Category
}

func (e *BusinessError) Error() string {
	return e.Message
}

var (
	// Franchise
	ErrFranchiseNotFound      = &BusinessError{Code: "FRA001", Message: "La franquicia no fue encontrada", Category: CategoryNotFound}
	ErrFranchiseNameEmpty     = &BusinessError{Code: "FRA002", Message: "El nombre de la franquicia no puede estar vacío", Category: CategoryInvalid}
	ErrFranchiseNameExists    = &BusinessError{Code: "FRA003", Message: "Ya existe una franquicia con ese nombre", Category: CategoryConflict}
	ErrFranchiseNameDuplicate = &BusinessError{Code: "FRA004", Message: "Ya existe otra franquicia con ese nombre", Category: CategoryConflict}

	// Branch
	ErrBranchNotFound      = &BusinessError{Code: "BRA001", Message: "La sucursal no fue encontrada", Category: CategoryNotFound}
	ErrBranchNameEmpty     = &BusinessError{Code: "BRA002", Message: "El nombre de la sucursal no puede estar vacío", Category: CategoryInvalid}
	ErrBranchNameExists    = &BusinessError{Code: "BRA003", Message: "Ya existe una sucursal con ese nombre en la franquicia", Category: CategoryConflict}
	ErrBranchNameDuplicate = &BusinessError{Code: "BRA004", Message: "Ya existe otra sucursal con ese nombre en la franquicia", Category: CategoryConflict}

	// Product
	ErrProductNotFound      = &BusinessError{Code: "PRO001", Message: "El producto no fue encontrado", Category: CategoryNotFound}
	ErrProductNameEmpty     = &BusinessError{Code: "PRO002", Message: "El nombre del producto no puede estar vacío", Category: CategoryInvalid}
	ErrProductNameDuplicate = &BusinessError{Code: "PRO003", Message: "Ya existe un producto con ese nombre en la sucursal", Category: CategoryConflict}
	ErrProductStockInvalid  = &BusinessError{Code: "PRO004", Message: "El stock del producto debe ser mayor o igual a cero", Category: CategoryInvalid}
	ErrProductRemoval       = &BusinessError{Code: "PRO005", Message: "El producto no pertenece a la sucursal indicada", Category: CategoryInvalid}

	// Validación de transporte
	ErrInvalidID            = &BusinessError{Code: "VAL001", Message: "El identificador proporcionado no es válido", Category: CategoryInvalid}
	ErrRequiredFieldMissing = &BusinessError{Code: "VAL002", Message: "Faltan campos requeridos en la solicitud", Category: CategoryInvalid}

	// ErrInternal es el cuerpo genérico de respuesta para fallas no
	// clasificadas; nunca lo produce la capa de casos de uso.
	ErrInternal = &BusinessError{Code: "TEC001", Message: "Ha ocurrido un error interno, por favor intente más tarde", Category: CategoryInvalid}
)

func IsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	be, ok := IsBusinessError(err)
	return ok && be.Category == CategoryNotFound
}

func IsConflict(err error) bool {
	be, ok := IsBusinessError(err)
	return ok && be.Category == CategoryConflict
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
