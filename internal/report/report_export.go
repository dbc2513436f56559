package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"hr-ledger/internal/salary"

	"github.com/xuri/excelize/v2"
)

// Column order of both export formats. Fixed by the download contract:
// consumers diff the CSV against the workbook sheet.
var exportHeader = []string{"employeeId", "employeeName", "amount", "month", "date"}

const exportSheet = "Sheet1"

// BuildCSV renders transactions as a UTF-8 comma-separated table with a
// header row. Pure transform: same input, same bytes.
func BuildCSV(txns []salary.SalaryTransactionResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, txn := range txns {
		record := []string{
			txn.EmployeeID,
			txn.EmployeeName,
			strconv.FormatFloat(txn.Amount, 'f', 2, 64),
			txn.Month,
			txn.CreditedDate,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildWorkbook renders the same table as a single-sheet xlsx byte stream.
func BuildWorkbook(txns []salary.SalaryTransactionResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}

	// Add headers
	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}

	// Add data
	for i, txn := range txns {
		row := i + 2
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(row), txn.EmployeeID)
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(row), txn.EmployeeName)
		f.SetCellValue(exportSheet, "C"+fmt.Sprint(row), txn.Amount)
		f.SetCellValue(exportSheet, "D"+fmt.Sprint(row), txn.Month)
		f.SetCellValue(exportSheet, "E"+fmt.Sprint(row), txn.CreditedDate)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
