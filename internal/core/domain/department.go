package domain

import "errors"

var ErrDepartmentNotFound = errors.New("department not found")

// Department groups employees. Referenced by Employee via DepartmentID;
// deletes do not cascade, so a dangling reference resolves to not found.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
