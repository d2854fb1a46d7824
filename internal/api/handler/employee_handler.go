package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/workforce-api/internal/core/ports"
)

type createEmployeeRequest struct {
	AccountEmail string    `json:"account_email" validate:"required,email"`
	DepartmentID string    `json:"department_id" validate:"required"`
	Position     string    `json:"position"      validate:"required"`
	HiredAt      time.Time `json:"hired_at"`
}

type updateEmployeeRequest struct {
	AccountEmail string    `json:"account_email" validate:"omitempty,email"`
	DepartmentID string    `json:"department_id"`
	Position     string    `json:"position"`
	HiredAt      time.Time `json:"hired_at"`
}

type transferRequest struct {
	DepartmentID string `json:"department_id" validate:"required"`
}

type employeeRowResponse struct {
	ID             string    `json:"id"`
	AccountEmail   string    `json:"account_email"`
	Position       string    `json:"position"`
	DepartmentID   string    `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	HiredAt        time.Time `json:"hired_at"`
}

type listEmployeesResponse struct {
	Data []employeeRowResponse `json:"data"`
}

type employeeResponse struct {
	ID           string    `json:"id"`
	AccountEmail string    `json:"account_email"`
	DepartmentID string    `json:"department_id"`
	Position     string    `json:"position"`
	HiredAt      time.Time `json:"hired_at"`
}

// EmployeeHandler handles admin employee management.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns all employees with resolved department names.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listEmployeesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	rows, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listEmployeesResponse{Data: make([]employeeRowResponse, 0, len(rows))}
	for _, r := range rows {
		resp.Data = append(resp.Data, employeeRowResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create links an account to a department.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	emp, err := h.service.Create(c.Request().Context(), email, ports.CreateEmployeeInput{
		AccountEmail: req.AccountEmail,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		HiredAt:      req.HiredAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employeeResponse(*emp))
}

// Update edits an employee's account link, position, department or hire
// date. Omitted fields stay unchanged.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	emp, err := h.service.Update(c.Request().Context(), email, c.Param("id"), ports.UpdateEmployeeInput{
		AccountEmail: req.AccountEmail,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		HiredAt:      req.HiredAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse(*emp))
}

// TransferTargets lists the departments an employee can move to.
//
// @Summary      List transfer targets
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      200  {object}  listDepartmentsResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/employees/{id}/transfer-targets [get]
func (h *EmployeeHandler) TransferTargets(c echo.Context) error {
	targets, err := h.service.TransferTargets(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := listDepartmentsResponse{Data: make([]departmentResponse, 0, len(targets))}
	for _, d := range targets {
		resp.Data = append(resp.Data, departmentResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Transfer reassigns an employee to another department.
//
// @Summary      Transfer an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      transferRequest  true  "Target department"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/employees/{id}/transfer [post]
func (h *EmployeeHandler) Transfer(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	emp, err := h.service.Transfer(c.Request().Context(), email, c.Param("id"), req.DepartmentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse(*emp))
}

// Delete removes an employee record.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "employee deleted"})
}
