// Package report renders analytics as downloadable spreadsheets.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/xuri/excelize/v2"
)

const (
	HeatmapSheet    = "Heatmap"
	StatisticsSheet = "Statistics"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// HeatmapRow is one bin of the exported heatmap.
type HeatmapRow struct {
	BinID     kernel.UUID
	Code      string
	Movements int
	SharePct  float64
}

// HeatmapRows orders bins by movement count, busiest first, then by code.
// Bins without a known code are exported under their id.
func HeatmapRows(counts map[kernel.UUID]int, codes map[kernel.UUID]string, total int) []HeatmapRow {
	rows := make([]HeatmapRow, 0, len(counts))
	for binID, n := range counts {
		code, ok := codes[binID]
		if !ok {
			code = binID.String()
		}
		share := 0.0
		if total > 0 {
			share = float64(n) * 100 / float64(total)
		}
		rows = append(rows, HeatmapRow{BinID: binID, Code: code, Movements: n, SharePct: share})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Movements != rows[j].Movements {
			return rows[i].Movements > rows[j].Movements
		}
		return rows[i].Code < rows[j].Code
	})
	return rows
}

// HeatmapWorkbook writes a two-sheet workbook: per-bin counts and the summary statistics.
func HeatmapWorkbook(
	layoutName string,
	days int,
	rows []HeatmapRow,
	stats analytics.HeatmapStatistics,
) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), HeatmapSheet); err != nil {
		return nil, err
	}

	header := []any{"bin_code", "bin_id", "movements", "share_pct"}
	if err := f.SetSheetRow(HeatmapSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write heatmap header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{r.Code, r.BinID.String(), r.Movements, r.SharePct}
		if err := f.SetSheetRow(HeatmapSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write heatmap row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(StatisticsSheet); err != nil {
		return nil, err
	}
	summary := [][]any{
		{"layout", layoutName},
		{"window_days", days},
		{"as_of", stats.Date.Format(time.DateOnly)},
		{"total_movements", stats.TotalPicks},
		{"max_movements", stats.MaxPicks},
		{"avg_movements", stats.AvgPicks},
	}
	for i, line := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(StatisticsSheet, cell, &line); err != nil {
			return nil, fmt.Errorf("write statistics row %d: %w", i+1, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
