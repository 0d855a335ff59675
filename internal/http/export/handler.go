package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/export"
	"github.com/openfreight/linehaul/internal/http/auth"
	"github.com/openfreight/linehaul/internal/settlement"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/statement", h.statement)
}

// statement streams an XLSX workbook of the company's settlements, optionally
// narrowed to one driver or batch.
func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
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

	if s := r.URL.Query().Get("batch_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid batch_id", http.StatusBadRequest)
			return
		}

		filter.BatchID = &id
	}

	buf, err := h.svc.Statement(r.Context(), filter)
	if err != nil {
		http.Error(w, "failed to build statement", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("settlements-%s.xlsx", time.Now().UTC().Format("20060102"))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}
