package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/ports"
)

// MedicationHandler handles HTTP requests for the medication store.
// Mutators run on a context detached from request cancellation so a client
// that disconnects mid-call still sees the mutation applied exactly once.
type MedicationHandler struct {
	service ports.MedicationService
}

func NewMedicationHandler(service ports.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

// List handles GET /v1/medications.
//
// @Summary      List medications
// @Description  Returns the whole collection, or only the records stamped with ?date=YYYY-MM-DD.
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Calendar date (YYYY-MM-DD)"
// @Success      200   {object}  listMedicationsResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/medications [get]
func (h *MedicationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		meds []domain.Medication
		err  error
	)
	if date := c.QueryParam("date"); date != "" {
		meds, err = h.service.ListByDate(ctx, date)
	} else {
		meds, err = h.service.List(ctx)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(meds, h.service.State()))
}

// Create handles POST /v1/medications.
//
// @Summary      Add a medication
// @Tags         medications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                   false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createMedicationRequest  true   "Medication details"
// @Success      201              {object}  medicationResponse
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/medications [post]
func (h *MedicationHandler) Create(c echo.Context) error {
	var req createMedicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	med, err := h.service.Add(detached(c), toDraft(req, idempotencyKey))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMedicationResponse(med))
}

// Get handles GET /v1/medications/:id.
//
// @Summary      Get a medication by id
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Medication id"
// @Success      200  {object}  medicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/medications/{id} [get]
func (h *MedicationHandler) Get(c echo.Context) error {
	med, ok, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "medication not found"})
	}
	return c.JSON(http.StatusOK, toMedicationResponse(med))
}

// UpdateStatus handles PATCH /v1/medications/:id/status.
//
// @Summary      Mark a dose taken, missed or pending
// @Tags         medications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Medication id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  medicationResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/medications/{id}/status [patch]
func (h *MedicationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	med, err := h.service.UpdateStatus(detached(c), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMedicationResponse(med))
}

// Delete handles DELETE /v1/medications/:id.
//
// @Summary      Delete a medication
// @Tags         medications
// @Security     BearerAuth
// @Param        id   path  string  true  "Medication id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/medications/{id} [delete]
func (h *MedicationHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(detached(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Refresh handles POST /v1/medications/refresh.
//
// @Summary      Reload the collection from its source
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listMedicationsResponse
// @Failure      409  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/medications/refresh [post]
func (h *MedicationHandler) Refresh(c echo.Context) error {
	if err := h.service.Refresh(detached(c)); err != nil {
		return err
	}
	meds, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(meds, h.service.State()))
}

// Next handles GET /v1/medications/next.
//
// @Summary      First pending medication
// @Description  Selected by insertion order, not by scheduled time.
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  nextMedicationResponse
// @Router       /v1/medications/next [get]
func (h *MedicationHandler) Next(c echo.Context) error {
	med, ok, err := h.service.NextPending(c.Request().Context())
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusOK, nextMedicationResponse{})
	}
	resp := toMedicationResponse(med)
	return c.JSON(http.StatusOK, nextMedicationResponse{Next: &resp})
}

// Markers handles GET /v1/medications/markers.
//
// @Summary      Calendar markers per date
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  markersResponse
// @Router       /v1/medications/markers [get]
func (h *MedicationHandler) Markers(c echo.Context) error {
	markers, err := h.service.MarkerDates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, markersResponse{Markers: markers})
}

// Summary handles GET /v1/medications/summary.
//
// @Summary      Status counts and progress
// @Tags         medications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Summary
// @Router       /v1/medications/summary [get]
func (h *MedicationHandler) Summary(c echo.Context) error {
	s, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func detached(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}
