package employee

import "context"

// EmployeeRepository reads the roster owned by the external HR module.
// The engine never mutates employees.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
}
