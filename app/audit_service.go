package app

import (
	"log"
	"strings"

	"contaudit/adapters/excel"
	"contaudit/domain/audit"
	"contaudit/internal/errors"
)

// AuditService runs the processing pipeline over one uploaded sheet:
// column validation, status filtering, destination filtering, duplicate
// annotation, summarization and workbook assembly. It is stateless; every
// request gets its own dataset and the service holds nothing between calls.
type AuditService struct{}

// NewAuditService creates the pipeline service
func NewAuditService() *AuditService {
	return &AuditService{}
}

// AnnotatedRow is one filtered row plus its computed duplicate flag
type AnnotatedRow struct {
	Cells      excel.RawRowData
	Duplicated bool
}

// Result carries the processed partition and its summary
type Result struct {
	Headers []string
	Rows    []AnnotatedRow
	Summary audit.Summary
}

// ProcessWorkbook parses the uploaded bytes, runs the pipeline for the given
// mode and assembles the two-sheet output workbook. Parsing and serialization
// failures are wrapped under the generic processing error; validation
// failures keep their own taxonomy code.
func (s *AuditService) ProcessWorkbook(data []byte, mode audit.Mode) ([]byte, *Result, error) {
	sheet, err := excel.Parse(data)
	if err != nil {
		return nil, nil, errors.Processing(err)
	}

	result, err := s.Process(sheet, mode)
	if err != nil {
		return nil, nil, err
	}

	out, err := s.assemble(result)
	if err != nil {
		return nil, nil, errors.Processing(err)
	}
	return out, result, nil
}

// Process runs the pipeline stages over an already-parsed sheet.
func (s *AuditService) Process(sheet *excel.SheetData, mode audit.Mode) (*Result, error) {
	if err := validateColumns(sheet.Headers); err != nil {
		return nil, err
	}

	rows := filterByStatus(sheet.Rows, mode.StatusCode())
	rows = filterDestinations(sheet.Headers, rows)
	annotated := annotateDuplicates(rows)
	summary := summarize(annotated)

	log.Printf("[AuditService] mode=%s total=%d unique=%d duplicated=%d",
		mode, summary.Total, summary.Unique, summary.Duplicated)

	return &Result{
		Headers: sheet.Headers,
		Rows:    annotated,
		Summary: summary,
	}, nil
}

// validateColumns checks the required columns in a fixed order so the first
// reported column is deterministic: AUDITADO before CONTRATO.
func validateColumns(headers []string) error {
	for _, required := range []string{audit.StatusColumn, audit.KeyColumn} {
		if !containsHeader(headers, required) {
			return errors.MissingColumn(required)
		}
	}
	return nil
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}

// filterByStatus keeps rows whose normalized AUDITADO value equals the mode's
// status code. The normalized value is written back into the row, so the
// output sheet shows the uppercased, trimmed form. Rows with any other status
// are dropped silently; source order is preserved.
func filterByStatus(rows []excel.RawRowData, code string) []excel.RawRowData {
	var kept []excel.RawRowData
	for _, row := range rows {
		status := strings.ToUpper(strings.TrimSpace(row[audit.StatusColumn]))
		if status != code {
			continue
		}
		row[audit.StatusColumn] = status
		kept = append(kept, row)
	}
	return kept
}

// filterDestinations drops rows whose destination columns carry an excluded
// code. The stage is a no-op when the sheet has no destination columns.
func filterDestinations(headers []string, rows []excel.RawRowData) []excel.RawRowData {
	var active []string
	for _, col := range audit.DestinationColumns {
		if containsHeader(headers, col) {
			active = append(active, col)
		}
	}
	if len(active) == 0 {
		return rows
	}

	var kept []excel.RawRowData
	for _, row := range rows {
		excluded := false
		for _, col := range active {
			value := strings.ToUpper(strings.TrimSpace(row[col]))
			row[col] = value
			if audit.ExcludedDestinations[value] {
				excluded = true
			}
		}
		if !excluded {
			kept = append(kept, row)
		}
	}
	return kept
}

// annotateDuplicates flags every row whose raw CONTRATO value occurs in two
// or more filtered rows. Keys are compared exactly; a missing cell coerces to
// the empty string, so blank keys group together.
func annotateDuplicates(rows []excel.RawRowData) []AnnotatedRow {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row[audit.KeyColumn]]++
	}

	annotated := make([]AnnotatedRow, len(rows))
	for i, row := range rows {
		annotated[i] = AnnotatedRow{
			Cells:      row,
			Duplicated: counts[row[audit.KeyColumn]] >= 2,
		}
	}
	return annotated
}

// summarize computes the three counters. An empty partition yields zeros.
func summarize(rows []AnnotatedRow) audit.Summary {
	summary := audit.Summary{Total: len(rows)}
	for _, row := range rows {
		if row.Duplicated {
			summary.Duplicated++
		}
	}
	summary.Unique = summary.Total - summary.Duplicated
	return summary
}

// assemble builds the two-sheet output: processed rows (original column order
// plus the DUPLICADO trailing column) followed by the summary sheet.
func (s *AuditService) assemble(result *Result) ([]byte, error) {
	header := make([]string, 0, len(result.Headers)+1)
	header = append(header, result.Headers...)
	header = append(header, audit.FlagColumn)

	dataRows := make([][]interface{}, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]interface{}, 0, len(header))
		for _, col := range result.Headers {
			cells = append(cells, row.Cells[col])
		}
		cells = append(cells, row.Duplicated)
		dataRows[i] = cells
	}

	entries := result.Summary.Entries()
	summaryRows := make([][]interface{}, len(entries))
	for i, entry := range entries {
		summaryRows[i] = []interface{}{entry.Metric, entry.Value}
	}

	return excel.WriteSheets([]excel.Sheet{
		{Name: audit.SheetProcessed, Header: header, Rows: dataRows},
		{Name: audit.SheetSummary, Header: []string{audit.SummaryMetricHeader, audit.SummaryValueHeader}, Rows: summaryRows},
	})
}
