package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/workforce-api/internal/core/ports"
)

type departmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type departmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type listDepartmentsResponse struct {
	Data []departmentResponse `json:"data"`
}

// DepartmentHandler handles admin department management.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List returns all departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listDepartmentsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listDepartmentsResponse{Data: make([]departmentResponse, 0, len(departments))}
	for _, d := range departments {
		resp.Data = append(resp.Data, departmentResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a department.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.Create(c.Request().Context(), email, ports.DepartmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, departmentResponse(*dept))
}

// Update merges changes into a department, preserving its id.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Department id"
// @Param        body  body      departmentRequest  true  "Fields to change"
// @Success      200   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.Update(c.Request().Context(), email, c.Param("id"), ports.DepartmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departmentResponse(*dept))
}

// Delete removes a department. Employee references are not cascaded.
//
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Department id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "department deleted"})
}
