package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/load"
	"github.com/openfreight/linehaul/internal/settlement"
)

type settlementResponse struct {
	ID              uuid.UUID   `json:"id"`
	CompanyID       uuid.UUID   `json:"company_id"`
	DriverID        uuid.UUID   `json:"driver_id"`
	PeriodStart     string      `json:"period_start"`
	PeriodEnd       string      `json:"period_end"`
	LoadIDs         []uuid.UUID `json:"load_ids"`
	GrossPay        int64       `json:"gross_pay"`
	Deductions      int64       `json:"deductions"`
	Additions       int64       `json:"additions"`
	Advances        int64       `json:"advances"`
	NetPay          int64       `json:"net_pay"`
	Status          string      `json:"status"`
	ApprovalStatus  string      `json:"approval_status"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	SalaryBatchID   *uuid.UUID  `json:"salary_batch_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

func toResponse(st *settlement.Settlement) settlementResponse {
	return settlementResponse{
		ID:              st.ID,
		CompanyID:       st.CompanyID,
		DriverID:        st.DriverID,
		PeriodStart:     st.PeriodStart.Format(time.DateOnly),
		PeriodEnd:       st.PeriodEnd.Format(time.DateOnly),
		LoadIDs:         st.LoadIDs,
		GrossPay:        st.GrossPay,
		Deductions:      st.Deductions,
		Additions:       st.Additions,
		Advances:        st.Advances,
		NetPay:          st.NetPay,
		Status:          string(st.Status),
		ApprovalStatus:  string(st.ApprovalStatus),
		RejectionReason: st.RejectionReason,
		SalaryBatchID:   st.SalaryBatchID,
		CreatedAt:       st.CreatedAt,
	}
}

func toResponseList(settlements []*settlement.Settlement) []settlementResponse {
	out := make([]settlementResponse, 0, len(settlements))
	for _, st := range settlements {
		out = append(out, toResponse(st))
	}

	return out
}

type lineResponse struct {
	ID          uuid.UUID  `json:"id"`
	RuleID      *uuid.UUID `json:"rule_id,omitempty"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"`
	Category    string     `json:"category"`
}

type detailResponse struct {
	settlementResponse
	Lines []lineResponse `json:"lines"`
}

func toDetailResponse(st *settlement.Settlement, lines []*settlement.DeductionLine) detailResponse {
	out := detailResponse{settlementResponse: toResponse(st), Lines: make([]lineResponse, 0, len(lines))}

	for _, l := range lines {
		out.Lines = append(out.Lines, lineResponse{
			ID:          l.ID,
			RuleID:      l.RuleID,
			Description: l.Description,
			Amount:      l.Amount,
			Category:    string(l.Category),
		})
	}

	return out
}

type eligibleLoadResponse struct {
	ID          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	Revenue     int64      `json:"revenue"`
	LoadedMiles int64      `json:"loaded_miles"`
	EmptyMiles  int64      `json:"empty_miles"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type driverLoadsResponse struct {
	DriverID uuid.UUID              `json:"driver_id"`
	Loads    []eligibleLoadResponse `json:"loads"`
}

func toEligibleResponse(grouped []load.DriverLoads) []driverLoadsResponse {
	out := make([]driverLoadsResponse, 0, len(grouped))

	for _, g := range grouped {
		loads := make([]eligibleLoadResponse, 0, len(g.Loads))

		for _, l := range g.Loads {
			loads = append(loads, eligibleLoadResponse{
				ID:          l.ID,
				Status:      string(l.Status),
				Revenue:     l.Revenue,
				LoadedMiles: l.LoadedMiles,
				EmptyMiles:  l.EmptyMiles,
				DeliveredAt: l.DeliveredAt,
			})
		}

		out = append(out, driverLoadsResponse{DriverID: g.DriverID, Loads: loads})
	}

	return out
}

type validationResponse struct {
	LoadID   uuid.UUID `json:"load_id"`
	Valid    bool      `json:"valid"`
	Errors   []string  `json:"errors,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
}

type driverSummaryResponse struct {
	DriverID uuid.UUID            `json:"driver_id"`
	Valid    int                  `json:"valid"`
	Invalid  int                  `json:"invalid"`
	Warned   int                  `json:"warned"`
	Results  []validationResponse `json:"results"`
}

func toSummaryResponse(summaries []settlement.DriverSummary) []driverSummaryResponse {
	out := make([]driverSummaryResponse, 0, len(summaries))

	for _, s := range summaries {
		results := make([]validationResponse, 0, len(s.Summary.Results))

		for _, r := range s.Summary.Results {
			results = append(results, validationResponse{
				LoadID:   r.LoadID,
				Valid:    r.Valid,
				Errors:   r.Errors,
				Warnings: r.Warnings,
			})
		}

		out = append(out, driverSummaryResponse{
			DriverID: s.DriverID,
			Valid:    s.Summary.Valid,
			Invalid:  s.Summary.Invalid,
			Warned:   s.Summary.Warned,
			Results:  results,
		})
	}

	return out
}

type driverErrorResponse struct {
	DriverID uuid.UUID `json:"driver_id"`
	Message  string    `json:"message"`
}

type batchResultResponse struct {
	BatchID            uuid.UUID             `json:"batch_id"`
	BatchNumber        string                `json:"batch_number"`
	DriversProcessed   int                   `json:"drivers_processed"`
	SettlementsCreated int                   `json:"settlements_created"`
	TotalAmount        int64                 `json:"total_amount"`
	SettlementIDs      []uuid.UUID           `json:"settlement_ids"`
	Errors             []driverErrorResponse `json:"errors,omitempty"`
	Warnings           []string              `json:"warnings,omitempty"`
}

func toBatchResultResponse(r *settlement.BatchResult) batchResultResponse {
	errs := make([]driverErrorResponse, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, driverErrorResponse{DriverID: e.DriverID, Message: e.Message})
	}

	return batchResultResponse{
		BatchID:            r.BatchID,
		BatchNumber:        r.BatchNumber,
		DriversProcessed:   r.DriversProcessed,
		SettlementsCreated: r.SettlementsCreated,
		TotalAmount:        r.TotalAmount,
		SettlementIDs:      r.SettlementIDs,
		Errors:             errs,
		Warnings:           r.Warnings,
	}
}

type batchResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	BatchNumber     string    `json:"batch_number"`
	PeriodStart     string    `json:"period_start"`
	PeriodEnd       string    `json:"period_end"`
	SettlementCount int       `json:"settlement_count"`
	TotalAmount     int64     `json:"total_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func toBatchResponse(b *settlement.SalaryBatch) batchResponse {
	return batchResponse{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		BatchNumber:     b.BatchNumber,
		PeriodStart:     b.PeriodStart.Format(time.DateOnly),
		PeriodEnd:       b.PeriodEnd.Format(time.DateOnly),
		SettlementCount: b.SettlementCount,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}
