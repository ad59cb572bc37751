// Package report renders admin exports: the orders workbook and the daily chart.
package report

import (
	"bytes"
	"fmt"

	"bizbot/internal/model"

	"github.com/xuri/excelize/v2"
)

const ordersSheet = "Orders"

var orderHeaders = []string{
	"ID", "Тип", "Товар", "Описание", "Категория", "Сумма",
	"Клиент", "Chat ID", "Статус", "Создан",
}

// OrdersWorkbook builds an xlsx file with a header row and one row per order.
func OrdersWorkbook(orders []model.Order) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ordersSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	for col, header := range orderHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(ordersSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, order := range orders {
		var amount interface{}
		if order.Amount != nil {
			amount = *order.Amount
		}

		data := []interface{}{
			order.ID,
			string(order.Kind),
			order.ProductName,
			order.Description,
			order.Category,
			amount,
			order.CustomerName,
			order.CustomerID,
			order.Status.Title(),
			order.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(ordersSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write order %s: %w", order.ID, err)
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(orderHeaders), 1)
		_ = f.SetCellStyle(ordersSheet, "A1", lastHeader, style)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
