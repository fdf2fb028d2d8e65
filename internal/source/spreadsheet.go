package source

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/extrato-dev/extrato/internal/columns"
	"github.com/extrato-dev/extrato/internal/statement"
)

// XLSXDecoder reads the first sheet of an Office Open XML workbook.
type XLSXDecoder struct{}

// Format returns the decoder name.
func (d *XLSXDecoder) Format() Format { return FormatXLSX }

// Extensions returns the file extensions handled.
func (d *XLSXDecoder) Extensions() []string { return []string{"xlsx", "xlsm"} }

// Decode reads raw cell values so date cells arrive as Excel serial numbers
// rather than in the workbook's display format.
func (d *XLSXDecoder) Decode(u Upload) (*Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(u.Data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return gridDocument(FormatXLSX, rows, serialDate)
}

// Serials outside this range are not statement dates. It also keeps
// values like "2024.03" from being read as day 2024.
const (
	minSerial = 10000   // 1927-05-18
	maxSerial = 2958465 // 9999-12-31
)

func serialDate(raw string) any {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial < minSerial || serial > maxSerial {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t
}

// XLSDecoder reads the first sheet of a legacy BIFF workbook.
type XLSDecoder struct{}

// Format returns the decoder name.
func (d *XLSDecoder) Format() Format { return FormatXLS }

// Extensions returns the file extensions handled.
func (d *XLSDecoder) Extensions() []string { return []string{"xls"} }

// Decode reads every row of the first sheet as text. Numeric cells of the
// date column are Excel serials, as in XLSX.
func (d *XLSDecoder) Decode(u Upload) (*Document, error) {
	wb, err := xls.OpenReader(bytes.NewReader(u.Data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	if wb == nil {
		return nil, fmt.Errorf("opening workbook: no Workbook stream")
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("could not read first sheet")
	}
	if sheet.MaxRow == 0 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet.Name)
	}

	// Row(i) panics on rows the file does not store, so read the grid
	// in one pass. The limit stops ReadAllCells at the first sheet.
	rows := wb.ReadAllCells(int(sheet.MaxRow) + 1)
	return gridDocument(FormatXLS, rows, serialDate)
}

// gridDocument treats the first non-empty row as headers. When dateCell is
// set it converts numeric cells of the date column.
func gridDocument(format Format, rows [][]string, dateCell func(string) any) (*Document, error) {
	for len(rows) > 0 && blankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet has no header row")
	}

	headers := make([]any, len(rows[0]))
	dateCol := -1
	for i, h := range rows[0] {
		headers[i] = h
		if dateCol < 0 && columns.Key(h) == columns.Date {
			dateCol = i
		}
	}

	cells := make([][]any, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if blankRow(r) {
			continue
		}
		rec := make([]any, len(r))
		for i, v := range r {
			if i == dateCol && dateCell != nil {
				rec[i] = dateCell(v)
				continue
			}
			rec[i] = v
		}
		cells = append(cells, rec)
	}

	tbl := statement.FromGrid(headers, cells)
	return &Document{Format: format, Table: &tbl}, nil
}

func blankRow(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
