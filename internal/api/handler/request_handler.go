package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

type requestItemPayload struct {
	Name     string `json:"name"     validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type submitRequestRequest struct {
	Type  string               `json:"type"  validate:"required"`
	Items []requestItemPayload `json:"items" validate:"required,min=1,dive"`
}

type resolveRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

type requestRowResponse struct {
	ID             string               `json:"id"`
	RequesterEmail string               `json:"requester_email"`
	SubmittedAt    time.Time            `json:"submitted_at"`
	Type           string               `json:"type"`
	Items          []requestItemPayload `json:"items"`
	ItemsSummary   string               `json:"items_summary"`
	Status         string               `json:"status"`
	Actions        []string             `json:"actions,omitempty"`
}

type listRequestsResponse struct {
	Data []requestRowResponse `json:"data"`
}

// RequestHandler handles item request submission and resolution.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func toRequestRowResponse(r ports.RequestRow) requestRowResponse {
	items := make([]requestItemPayload, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, requestItemPayload(it))
	}
	return requestRowResponse{
		ID:             r.ID,
		RequesterEmail: r.RequesterEmail,
		SubmittedAt:    r.SubmittedAt,
		Type:           r.Type,
		Items:          items,
		ItemsSummary:   r.ItemsSummary,
		Status:         string(r.Status),
		Actions:        r.Actions,
	}
}

// ListMine returns the principal's own requests.
//
// @Summary      List own requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRequestsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/requests [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rows, err := h.service.ListByRequester(c.Request().Context(), email)
	if err != nil {
		return err
	}

	resp := listRequestsResponse{Data: make([]requestRowResponse, 0, len(rows))}
	for _, r := range rows {
		resp.Data = append(resp.Data, toRequestRowResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Submit files a new item request for the principal.
//
// @Summary      Submit an item request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  requestRowResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.RequestItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.RequestItemInput(it))
	}
	created, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		RequesterEmail: email,
		Type:           req.Type,
		Items:          items,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRequestRowResponse(ports.RequestRow{
		ID:             created.ID,
		RequesterEmail: created.RequesterEmail,
		SubmittedAt:    created.SubmittedAt,
		Type:           created.Type,
		Items:          created.Items,
		Status:         created.Status,
	}))
}

// ListAll returns every request with admin actions on pending rows.
//
// @Summary      List all requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRequestsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	_, role, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rows, err := h.service.ListAll(c.Request().Context(), role)
	if err != nil {
		return err
	}

	resp := listRequestsResponse{Data: make([]requestRowResponse, 0, len(rows))}
	for _, r := range rows {
		resp.Data = append(resp.Data, toRequestRowResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Resolve approves or rejects a pending request.
//
// @Summary      Resolve a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Request id"
// @Param        body  body      resolveRequestRequest  true  "Resolution"
// @Success      200   {object}  requestRowResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/requests/{id}/resolve [post]
func (h *RequestHandler) Resolve(c echo.Context) error {
	email, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req resolveRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resolved, err := h.service.Resolve(c.Request().Context(), email, c.Param("id"), domain.RequestStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRequestRowResponse(ports.RequestRow{
		ID:             resolved.ID,
		RequesterEmail: resolved.RequesterEmail,
		SubmittedAt:    resolved.SubmittedAt,
		Type:           resolved.Type,
		Items:          resolved.Items,
		Status:         resolved.Status,
	}))
}
