package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/settlement"
)

// Service produces driver statement workbooks for payroll export.
type Service struct {
	settlements *settlement.Service
	drivers     *driver.Service
}

func NewService(settlements *settlement.Service, drivers *driver.Service) *Service {
	return &Service{settlements: settlements, drivers: drivers}
}

const sheetName = "Settlements"

var statementHeaders = []string{
	"Settlement ID", "Driver", "Period Start", "Period End", "Loads",
	"Gross Pay", "Deductions", "Additions", "Advances", "Net Pay",
	"Status", "Approval",
}

// Statement renders the settlements matching the filter as an XLSX workbook.
func (s *Service) Statement(ctx context.Context, filter settlement.ListFilter) (*bytes.Buffer, error) {
	settlements, err := s.settlements.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing settlements: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, header := range statementHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Driver names are looked up once per driver, not per row.
	names := make(map[uuid.UUID]string)

	for row, st := range settlements {
		name, ok := names[st.DriverID]
		if !ok {
			d, err := s.drivers.Get(ctx, st.DriverID)
			if err != nil {
				return nil, fmt.Errorf("getting driver %s: %w", st.DriverID, err)
			}

			name = d.Name
			names[st.DriverID] = name
		}

		values := []any{
			st.ID.String(),
			name,
			st.PeriodStart.Format(time.DateOnly),
			st.PeriodEnd.Format(time.DateOnly),
			len(st.LoadIDs),
			dollars(st.GrossPay),
			dollars(st.Deductions),
			dollars(st.Additions),
			dollars(st.Advances),
			dollars(st.NetPay),
			string(st.Status),
			string(st.ApprovalStatus),
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf, nil
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}
