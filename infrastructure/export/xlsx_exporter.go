package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
)

const (
	ordersSheet = "Orders"
	itemsSheet  = "Items"
	timeLayout  = "2006-01-02 15:04:05"
)

var orderHeaders = []string{
	"ID", "Created", "Status", "First name", "Last name", "Email", "Phone",
	"Address", "City", "Postal code", "Payment", "Items", "Total",
}

var itemHeaders = []string{"Order ID", "Product ID", "Product", "Part number", "Quantity", "Unit price", "Line total"}

// XLSXOrderExporter writes an orders workbook with one sheet for orders and one for their lines.
type XLSXOrderExporter struct{}

func NewXLSXOrderExporter() ports.OrderExporterPort {
	return &XLSXOrderExporter{}
}

func (e *XLSXOrderExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXOrderExporter) FileExtension() string {
	return "xlsx"
}

func (e *XLSXOrderExporter) ExportOrders(orders []*models.Order, w io.Writer) error {
	file := xlsx.NewFile()

	orderSheet, err := file.AddSheet(ordersSheet)
	if err != nil {
		return fmt.Errorf("add orders sheet: %w", err)
	}
	lineSheet, err := file.AddSheet(itemsSheet)
	if err != nil {
		return fmt.Errorf("add items sheet: %w", err)
	}

	addHeader(orderSheet, orderHeaders)
	addHeader(lineSheet, itemHeaders)

	for _, o := range orders {
		row := orderSheet.AddRow()
		row.AddCell().SetInt(int(o.ID))
		row.AddCell().SetString(o.CreatedAt.UTC().Format(timeLayout))
		row.AddCell().SetString(string(o.Status))
		row.AddCell().SetString(o.FirstName)
		row.AddCell().SetString(o.LastName)
		row.AddCell().SetString(o.Email)
		row.AddCell().SetString(o.Phone)
		row.AddCell().SetString(o.Address)
		row.AddCell().SetString(o.City)
		row.AddCell().SetString(o.PostalCode)
		row.AddCell().SetString(o.PaymentMethod.Label())
		row.AddCell().SetInt(itemCount(o))
		row.AddCell().SetString(o.Total.StringFixed(2))

		for _, item := range o.Items {
			line := lineSheet.AddRow()
			line.AddCell().SetInt(int(o.ID))
			line.AddCell().SetInt(int(item.ProductID))
			name, part := "", ""
			if item.Product != nil {
				name, part = item.Product.Name, item.Product.PartNumber
			}
			line.AddCell().SetString(name)
			line.AddCell().SetString(part)
			line.AddCell().SetInt(item.Quantity)
			line.AddCell().SetString(item.Price.StringFixed(2))
			line.AddCell().SetString(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2))
		}
	}

	return file.Write(w)
}

// FileName builds the download name, e.g. orders-20261019-1530.xlsx.
func FileName(exporter ports.OrderExporterPort, now time.Time) string {
	return fmt.Sprintf("orders-%s.%s", now.UTC().Format("20060102-1504"), strings.TrimPrefix(exporter.FileExtension(), "."))
}

func addHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		style.Font.Bold = true
		style.ApplyFont = true
		cell.SetStyle(style)
	}
}

func itemCount(o *models.Order) int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
