package tabular

import (
	"github.com/xuri/excelize/v2"

	"github.com/agentstation/redlist/pkg/errors"
)

// sheetName is the sheet excelize creates in a new workbook.
const sheetName = "Sheet1"

// readXLSX reads the first sheet of a workbook.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// writeXLSX writes the table to a single-sheet workbook.
func writeXLSX(path string, t *Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	rows := append([][]string{t.Header}, t.Rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WrapIO("write", path, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
