package settlement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/http/auth"
	"github.com/openfreight/linehaul/internal/load"
	"github.com/openfreight/linehaul/internal/settlement"
)

type Handler struct {
	svc        *settlement.Service
	loads      *load.Service
	maxDrivers int
}

func NewHandler(svc *settlement.Service, loads *load.Service, maxDrivers int) *Handler {
	return &Handler{svc: svc, loads: loads, maxDrivers: maxDrivers}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/eligible", h.eligibleLoads)
	r.Get("/validation", h.validationSummary)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/reject", h.reject)
	r.Post("/{id}/pay", h.markPaid)
	r.Post("/{id}/dispute", h.dispute)
	r.Post("/{id}/lines", h.addLine)
	r.Delete("/{id}/lines/{lineID}", h.removeLine)
	r.Post("/{id}/loads", h.addLoad)
	r.Delete("/{id}/loads/{loadID}", h.removeLoad)
}

// BatchRoutes serves the fleet-wide generation trigger and batch review.
func (h *Handler) BatchRoutes(r chi.Router) {
	r.Post("/", h.runBatch)
	r.Get("/{id}", h.getBatch)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.CompanyID(r.Context())
	if !ok {
		http.Error(w, "missing company context", http.StatusUnauthorized)
		return
	}

	filter := settlement.ListFilter{CompanyID: companyID}

	if s := r.URL.Query().Get("driver_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid driver_id", http.StatusBadRequest)
			return
		}

		filter.DriverID = &id
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := settlement.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("approval"); s != "" {
		approval := settlement.ApprovalStatus(s)
		filter.Approval = &approval
	}

	if s := r.URL.Query().Get("batch_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid batch_id", http.StatusBadRequest)
			return
		}

		filter.BatchID = &id
	}

	settlements, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(settlements))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	st, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	lines, err := h.svc.Lines(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailResponse(st, lines))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Approve(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Reject(r.Context(), id, req.Reason); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkPaid(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) dispute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Dispute(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addLineRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
}

func (h *Handler) addLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.AddLine(r.Context(), id, req.Description, req.Amount, settlement.LineCategory(req.Category))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(st))
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	lineID, err := uuid.Parse(chi.URLParam(r, "lineID"))
	if err != nil {
		http.Error(w, "invalid line id", http.StatusBadRequest)
		return
	}

	st, err := h.svc.RemoveLine(r.Context(), id, lineID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(st))
}

type addLoadRequest struct {
	LoadID uuid.UUID `json:"load_id"`
}

func (h *Handler) addLoad(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.AddLoad(r.Context(), id, req.LoadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(st))
}

func (h *Handler) removeLoad(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	loadID, err := uuid.Parse(chi.URLParam(r, "loadID"))
	if err != nil {
		http.Error(w, "invalid load id", http.StatusBadRequest)
		return
	}

	st, err := h.svc.RemoveLoad(r.Context(), id, loadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(st))
}

// eligibleLoads is the draft preview: what the next batch run would pick up.
func (h *Handler) eligibleLoads(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.CompanyID(r.Context())
	if !ok {
		http.Error(w, "missing company context", http.StatusUnauthorized)
		return
	}

	params := load.EligibleParams{CompanyID: companyID}

	if s := r.URL.Query().Get("driver_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid driver_id", http.StatusBadRequest)
			return
		}

		params.DriverID = &id
	}

	period, err := parsePeriod(r.URL.Query().Get("period_start"), r.URL.Query().Get("period_end"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params.Period = period

	grouped, err := h.loads.Eligible(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEligibleResponse(grouped))
}

// validationSummary dry-runs the per-load checks a batch would apply, so
// operators can clear blockers before triggering a run.
func (h *Handler) validationSummary(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.CompanyID(r.Context())
	if !ok {
		http.Error(w, "missing company context", http.StatusUnauthorized)
		return
	}

	var driverID *uuid.UUID

	if s := r.URL.Query().Get("driver_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid driver_id", http.StatusBadRequest)
			return
		}

		driverID = &id
	}

	period, err := parsePeriod(r.URL.Query().Get("period_start"), r.URL.Query().Get("period_end"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summaries, err := h.svc.PreviewValidation(r.Context(), companyID, driverID, period)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summaries))
}

type runBatchRequest struct {
	PeriodStart string      `json:"period_start"`
	PeriodEnd   string      `json:"period_end"`
	DriverIDs   []uuid.UUID `json:"driver_ids,omitempty"`
	MaxDrivers  int         `json:"max_drivers,omitempty"`
	CreatedByID uuid.UUID   `json:"created_by_id"`
}

func (h *Handler) runBatch(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.CompanyID(r.Context())
	if !ok {
		http.Error(w, "missing company context", http.StatusUnauthorized)
		return
	}

	var req runBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil || period.IsZero() {
		http.Error(w, "period_start and period_end are required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.RunBatch(r.Context(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		DriverIDs:   req.DriverIDs,
		MaxDrivers:  effectiveMaxDrivers(h.maxDrivers, req.MaxDrivers),
		CreatedByID: req.CreatedByID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBatchResultResponse(result))
}

// effectiveMaxDrivers picks the tighter of the configured and requested caps.
// A request cap applies even when no cap is configured; a request can never
// raise the configured limit.
func effectiveMaxDrivers(configCap, requestCap int) int {
	if requestCap > 0 && (configCap == 0 || requestCap < configCap) {
		return requestCap
	}

	return configCap
}

func (h *Handler) getBatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	batch, err := h.svc.Batch(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponse(batch))
}

func parsePeriod(start, end string) (load.Period, error) {
	if start == "" && end == "" {
		return load.Period{}, nil
	}

	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return load.Period{}, errors.New("invalid period_start")
	}

	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return load.Period{}, errors.New("invalid period_end")
	}

	return load.Period{Start: s, End: e.Add(24*time.Hour - time.Nanosecond)}, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settlement.ErrNotFound),
		errors.Is(err, settlement.ErrBatchNotFound),
		errors.Is(err, settlement.ErrLineNotFound),
		errors.Is(err, load.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, settlement.ErrLoadClaimed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, settlement.ErrNotDraft),
		errors.Is(err, settlement.ErrInvalidTransition),
		errors.Is(err, settlement.ErrReasonRequired),
		errors.Is(err, settlement.ErrNoLoads),
		errors.Is(err, settlement.ErrLoadNotEligible):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, settlement.ErrMissingCompany):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
