package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Constraint names declared by the schema migrations.
const (
	ConstraintCategoryName     = "categorias_nombre_key"
	ConstraintCategoryCode     = "categorias_codigo_key"
	ConstraintMaterialName     = "materiales_nombre_key"
	ConstraintMaterialCode     = "materiales_codigo_key"
	ConstraintMaterialCategory = "materiales_categoria_id_fkey"
	ConstraintPointLink        = "punto_materiales_punto_fkey"
	ConstraintMaterialLink     = "punto_materiales_material_fkey"
)

var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check violation")
)

// ConstraintError reports which schema constraint rejected a write.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v on %s", e.Err, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// IsConstraint reports whether err was raised by the named constraint.
func IsConstraint(err error, constraint string) bool {
	var cErr *ConstraintError
	return errors.As(err, &cErr) && cErr.Constraint == constraint
}

// translateError turns integrity violations into *ConstraintError and wraps
// everything else with the failing operation.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return &ConstraintError{Constraint: pqErr.Constraint, Err: ErrDuplicateKey}
		case "foreign_key_violation":
			return &ConstraintError{Constraint: pqErr.Constraint, Err: ErrForeignKeyViolation}
		case "check_violation":
			return &ConstraintError{Constraint: pqErr.Constraint, Err: ErrCheckViolation}
		}
	}
	return fmt.Errorf("repositories: %s: %w", op, err)
}
