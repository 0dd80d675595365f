// Package excel renders analytics reports as xlsx workbooks.
package excel

import (
	"fmt"
	"io"
	"time"

	"github.com/kantocollect/salesops/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	CoverageSheet        = "Coverage"
	RulePerformanceSheet = "Rule Performance"
	CatalogSheet         = "Catalog"
)

// Report is everything the export workbook contains.
type Report struct {
	GeneratedAt     time.Time
	Coverage        domain.COGSCoverage
	RulePerformance []domain.RulePerformance
	Catalog         domain.CatalogRollupReport
}

// WriteReport writes r as a three-sheet workbook to w.
func WriteReport(w io.Writer, r Report) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", CoverageSheet); err != nil {
		return fmt.Errorf("rename coverage sheet: %w", err)
	}
	if _, err := file.NewSheet(RulePerformanceSheet); err != nil {
		return fmt.Errorf("create rule sheet: %w", err)
	}
	if _, err := file.NewSheet(CatalogSheet); err != nil {
		return fmt.Errorf("create catalog sheet: %w", err)
	}

	header, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	coverage := [][]any{
		{"Generated at", r.GeneratedAt.UTC().Format(time.RFC3339)},
		{"Total sales", r.Coverage.TotalSales},
		{"With COGS", r.Coverage.WithCOGS},
		{"Without COGS", r.Coverage.WithoutCOGS},
		{"Coverage %", r.Coverage.CoveragePercent.InexactFloat64()},
	}
	if err := writeRows(file, CoverageSheet, coverage); err != nil {
		return err
	}
	if err := file.SetCellStyle(CoverageSheet, "A1", fmt.Sprintf("A%d", len(coverage)), header); err != nil {
		return fmt.Errorf("style coverage sheet: %w", err)
	}

	rules := [][]any{{"Rule ID", "Rule", "Active", "Matches", "Total COGS"}}
	for _, p := range r.RulePerformance {
		rules = append(rules, []any{p.RuleID, p.RuleName, p.IsActive, p.Matches, p.TotalCOGSAssigned.InexactFloat64()})
	}
	if err := writeRows(file, RulePerformanceSheet, rules); err != nil {
		return err
	}

	catalog := [][]any{{"Entry ID", "Product", "Category", "Rule kind", "Sales", "Manual", "Revenue"}}
	for _, row := range r.Catalog.Entries {
		catalog = append(catalog, []any{
			row.Entry.EntryID, row.Entry.Name, row.Entry.Category, string(row.Entry.RuleKind),
			row.SalesCount, row.ManualCount, row.TotalRevenue.InexactFloat64(),
		})
	}
	catalog = append(catalog, []any{"", "Unresolved", "", "", r.Catalog.UnresolvedCount, 0, r.Catalog.UnresolvedRevenue.InexactFloat64()})
	if err := writeRows(file, CatalogSheet, catalog); err != nil {
		return err
	}

	for _, sheet := range []string{RulePerformanceSheet, CatalogSheet} {
		if err := file.SetRowStyle(sheet, 1, 1, header); err != nil {
			return fmt.Errorf("style %s header: %w", sheet, err)
		}
		if err := file.SetColWidth(sheet, "B", "B", 48); err != nil {
			return fmt.Errorf("size %s columns: %w", sheet, err)
		}
	}
	file.SetActiveSheet(0)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(file *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
