package gstr1

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// csvHeader is the per-item row layout of the CSV export.
var csvHeader = []string{
	"Invoice Number", "Invoice Date", "Customer Name", "Place of Supply",
	"Description", "HSN Code", "Quantity", "GST Rate (%)",
	"Taxable Value", "CGST", "SGST", "IGST", "Total Value",
}

// CSV renders invoices as one row per item, followed by a summary
// block. Amount formatting is presentation-only; the underlying floats
// keep full precision until this point.
func CSV(invoices []Invoice, summary Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		for _, it := range inv.Items {
			row := []string{
				inv.InvoiceNumber,
				inv.InvoiceDate,
				inv.CustomerName,
				inv.PlaceOfSupply,
				it.Description,
				it.HSNCode,
				strconv.Itoa(int(it.Quantity)),
				money(it.GSTRate),
				money(it.TaxableValue),
				moneyPtr(it.CGST),
				moneyPtr(it.SGST),
				moneyPtr(it.IGST),
				money(it.TotalValue),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	summaryRows := [][]string{
		{},
		{"Summary"},
		{"Invoice Count", strconv.Itoa(summary.InvoiceCount)},
		{"Total Taxable Value", money(summary.TotalTaxableValue)},
		{"Total CGST", money(summary.TotalCGST)},
		{"Total SGST", money(summary.TotalSGST)},
		{"Total IGST", money(summary.TotalIGST)},
		{"Total Tax Amount", money(summary.TotalTaxAmount)},
		{"Total Invoice Value", money(summary.TotalInvoiceValue)},
	}
	for _, row := range summaryRows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// XLSX renders a two-sheet workbook: a period summary and the per-item
// detail rows.
func XLSX(invoices []Invoice, summary Summary) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	itemsSheet := "invoices"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "GSTR-1 Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Invoice Count")
	_ = f.SetCellValue(summarySheet, "B3", summary.InvoiceCount)
	_ = f.SetCellValue(summarySheet, "A4", "Total Taxable Value")
	_ = f.SetCellValue(summarySheet, "B4", summary.TotalTaxableValue)
	_ = f.SetCellValue(summarySheet, "A5", "Total CGST")
	_ = f.SetCellValue(summarySheet, "B5", summary.TotalCGST)
	_ = f.SetCellValue(summarySheet, "A6", "Total SGST")
	_ = f.SetCellValue(summarySheet, "B6", summary.TotalSGST)
	_ = f.SetCellValue(summarySheet, "A7", "Total IGST")
	_ = f.SetCellValue(summarySheet, "B7", summary.TotalIGST)
	_ = f.SetCellValue(summarySheet, "A8", "Total Tax Amount")
	_ = f.SetCellValue(summarySheet, "B8", summary.TotalTaxAmount)
	_ = f.SetCellValue(summarySheet, "A9", "Total Invoice Value")
	_ = f.SetCellValue(summarySheet, "B9", summary.TotalInvoiceValue)

	for col, name := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(itemsSheet, cell, name)
	}

	row := 2
	for _, inv := range invoices {
		for _, it := range inv.Items {
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), inv.InvoiceNumber)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), inv.InvoiceDate)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("C%d", row), inv.CustomerName)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("D%d", row), inv.PlaceOfSupply)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("E%d", row), it.Description)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("F%d", row), it.HSNCode)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("G%d", row), it.Quantity)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("H%d", row), it.GSTRate)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("I%d", row), it.TaxableValue)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("J%d", row), ptrValue(it.CGST))
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("K%d", row), ptrValue(it.SGST))
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("L%d", row), ptrValue(it.IGST))
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("M%d", row), it.TotalValue)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func moneyPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return money(*v)
}

func ptrValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
