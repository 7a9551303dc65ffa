package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"banyan-data/internal/domain"
	"banyan-data/internal/repository"
)

// Workbook sheet names, in tab order.
const (
	sheetAwareness      = "AwarenessMeetings"
	sheetOutreach       = "Outreach"
	sheetReintegration  = "Reintegration"
	sheetTransactions   = "Transactions"
	sheetHospitalVisits = "HospitalVisits"
	sheetMastersheet    = "Mastersheet"
)

// ExportService builds Excel workbooks from stored forms and mirrors the
// full data set into a shared Google spreadsheet.
type ExportService struct {
	stores repository.Stores
	sheets *SheetsClient
	logger *zap.Logger
}

// NewExportService creates the export service. A nil sheets client disables
// the spreadsheet mirror; workbook downloads still work.
func NewExportService(stores repository.Stores, sheets *SheetsClient, logger *zap.Logger) *ExportService {
	return &ExportService{stores: stores, sheets: sheets, logger: logger}
}

var _ SheetPusher = (*ExportService)(nil)

type allForms struct {
	outreach       []domain.Outreach
	reintegration  []domain.Reintegration
	transactions   []domain.Transaction
	awareness      []domain.AwarenessMeeting
	hospitalVisits []domain.HospitalVisit
	mastersheet    []domain.Mastersheet
}

func (s *ExportService) fetchAll(ctx context.Context, filter repository.FormFilter) (*allForms, error) {
	var (
		data allForms
		err  error
	)
	if data.outreach, err = s.stores.Outreach.List(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to fetch outreach records: %w", err)
	}
	if data.reintegration, err = s.stores.Reintegration.List(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to fetch reintegration records: %w", err)
	}
	if data.transactions, err = s.stores.Transactions.List(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction records: %w", err)
	}
	if data.awareness, err = s.stores.Awareness.List(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to fetch awareness meeting records: %w", err)
	}
	if data.hospitalVisits, err = s.stores.HospitalVisits.List(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to fetch hospital visit records: %w", err)
	}
	if data.mastersheet, err = s.stores.Mastersheet.List(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to fetch mastersheet records: %w", err)
	}
	return &data, nil
}

// BuildWorkbook assembles the six-sheet Excel workbook for the records
// matching filter. Every sheet is always present; a sheet whose form type has
// no matching records stays empty.
func (s *ExportService) BuildWorkbook(ctx context.Context, filter repository.FormFilter) ([]byte, error) {
	data, err := s.fetchAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only happens on the error paths.

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{sheetAwareness, awarenessHeader, buildRows(data.awareness, awarenessRow)},
		{sheetOutreach, outreachHeader, buildRows(data.outreach, outreachRow)},
		{sheetReintegration, reintegrationHeader, buildRows(data.reintegration, reintegrationRow)},
		{sheetTransactions, transactionHeader, buildRows(data.transactions, transactionRow)},
		{sheetHospitalVisits, hospitalVisitHeader, buildRows(data.hospitalVisits, hospitalVisitRow)},
		{sheetMastersheet, mastersheetHeader, buildRows(data.mastersheet, mastersheetRow)},
	}

	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.name)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if i == 0 {
			f.DeleteSheet("Sheet1")
			f.SetActiveSheet(index)
		}
		if len(sheet.rows) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheet.name, "A1", &sheet.header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header for %s: %w", sheet.name, err)
		}
		lastCol, err := excelize.ColumnNumberToName(len(sheet.header))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to resolve header range for %s: %w", sheet.name, err)
		}
		if err := f.SetCellStyle(sheet.name, "A1", lastCol+"1", headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style header for %s: %w", sheet.name, err)
		}
		for rowIdx, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write row in %s: %w", sheet.name, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func buildRows[T any](records []T, build func(T) []interface{}) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, build(rec))
	}
	return rows
}

// PushAll overwrites the shared spreadsheet tabs with the complete current
// data set, one tab per form type. Form types with no records are skipped so
// the existing tab contents stay untouched.
func (s *ExportService) PushAll(ctx context.Context) error {
	if s.sheets == nil {
		return nil
	}

	data, err := s.fetchAll(ctx, repository.FormFilter{})
	if err != nil {
		return err
	}

	pushes := []struct {
		tab    string
		header []string
		rows   [][]interface{}
	}{
		{"AwarenessMeeting", awarenessHeader, buildRows(data.awareness, awarenessRow)},
		{"Outreach", outreachHeader, buildRows(data.outreach, outreachRow)},
		{"Reintegration", reintegrationHeader, buildRows(data.reintegration, reintegrationRow)},
		{"Transaction", transactionHeader, buildRows(data.transactions, transactionRow)},
		{"HospitalVisit", hospitalVisitHeader, buildRows(data.hospitalVisits, hospitalVisitRow)},
		{"Mastersheet", mastersheetHeader, buildRows(data.mastersheet, mastersheetRow)},
	}

	for _, p := range pushes {
		if len(p.rows) == 0 {
			continue
		}
		values := make([][]interface{}, 0, len(p.rows)+1)
		headerRow := make([]interface{}, len(p.header))
		for i, h := range p.header {
			headerRow[i] = h
		}
		values = append(values, headerRow)
		values = append(values, p.rows...)
		if err := s.sheets.UpdateValues(ctx, p.tab, values); err != nil {
			return fmt.Errorf("failed to push %s tab: %w", p.tab, err)
		}
	}

	s.logger.Info("Spreadsheet mirror updated")
	return nil
}
