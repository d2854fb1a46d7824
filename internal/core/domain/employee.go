package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee links an Account (by email) to a Department (by id).
type Employee struct {
	ID           string    `json:"id"`
	AccountEmail string    `json:"account_email"`
	DepartmentID string    `json:"department_id"`
	Position     string    `json:"position"`
	HiredAt      time.Time `json:"hired_at"`
}
