package notifications

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer builds the order-confirmation document attached to the
// confirmation email.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderOrderConfirmation(event OrderPlacedEvent) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Order Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Order ID: %s", event.OrderRef), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Amount: %v", event.TotalAmount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Expected Delivery Date: %s",
		event.ExpectedDeliveryDate.Format("Mon Jan 02 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 8, "Order Items:", "", 1, "L", false, 0, "")
	for i, item := range event.Items {
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Item %d: Product ID: %d, Quantity: %d, Price: %v",
				i+1, item.ProductID, item.Quantity, item.Price),
			"", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
