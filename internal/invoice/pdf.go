package invoice

import (
	"bytes"
	"fmt"

	"storefront/internal/domain/model"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PDFRenderer は注文の請求書PDFを組み立てる。
type PDFRenderer struct {
	shopName string
}

// DI
func NewPDFRenderer(shopName string) *PDFRenderer {
	if shopName == "" {
		shopName = "Storefront"
	}
	return &PDFRenderer{shopName: shopName}
}

func (r *PDFRenderer) Render(order model.Order, items []model.OrderItem, user model.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", order.Number), false)
	pdf.AddPage()

	//ヘッダ
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, r.shopName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "INVOICE")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Order Number: %s", order.Number))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Order Date: %s", order.CreatedAt.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(10)

	//請求先
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	name := fmt.Sprintf("%s %s", user.FirstName, user.LastName)
	if user.FirstName == "" && user.LastName == "" {
		name = user.Username
	}
	pdf.Cell(0, 6, name)
	pdf.Ln(6)
	pdf.Cell(0, 6, user.Email)
	pdf.Ln(6)
	pdf.MultiCell(0, 6, order.ShippingAddress, "", "L", false)
	pdf.Ln(6)

	//明細テーブル
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 0, "R", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		pdf.CellFormat(90, 8, it.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, it.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, subtotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	//合計
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, order.TotalPrice.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Thank you for your order.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
