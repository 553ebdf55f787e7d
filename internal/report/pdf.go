// Package report renders the buyers list into downloadable documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Layout constants in points on an A4 portrait page. The offsets match the
// printed sheets organizers already hand out.
const (
	mm     = 72.0 / 25.4
	margin = 20 * mm

	colNumber  = margin
	colName    = margin + 40*mm
	colContact = margin + 100*mm
	colUpdated = margin + 140*mm
	colStatus  = margin + 170*mm

	rowStep    = 14.0
	breakGuard = 20.0

	timeLayout = "02/01/2006 15:04"
)

const (
	maxNameRunes    = 40
	maxContactRunes = 25
)

// BuyersReport carries everything the renderers need, already ordered the
// way the rows should print (most recent sale first).
type BuyersReport struct {
	Title       string
	GeneratedAt time.Time
	Tickets     []*entity.Ticket
	TicketPrice decimal.Decimal
}

func (r *BuyersReport) PaidCount() int {
	count := 0
	for _, ticket := range r.Tickets {
		if ticket.Paid {
			count++
		}
	}
	return count
}

func (r *BuyersReport) PaidRevenue() decimal.Decimal {
	return r.TicketPrice.Mul(decimal.NewFromInt(int64(r.PaidCount())))
}

// BuildPDF renders the buyers list as a PDF. Every page repeats the report
// header and the column titles; a new page starts whenever the cursor runs
// into the bottom margin guard.
func BuildPDF(r *BuyersReport) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(r.Title+" - Buyers", true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(190, 18, 60)
		pdf.Text(margin, margin, tr(r.Title))

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(margin, margin+12, tr(fmt.Sprintf("Buyers report - updated at %s", r.GeneratedAt.Format(timeLayout))))
		pdf.Line(margin, margin+16, pageW-margin, margin+16)
	}

	drawColumnTitles := func(y float64) float64 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(colNumber, y, "Number")
		pdf.Text(colName, y, "Name")
		pdf.Text(colContact, y, "Contact")
		pdf.Text(colUpdated, y, "Updated")
		pdf.Text(colStatus, y, "Status")
		pdf.SetFont("Helvetica", "", 10)
		return y + 12
	}

	pdf.AddPage()
	drawHeader()
	y := drawColumnTitles(margin + 30)

	for _, ticket := range r.Tickets {
		if y > pageH-margin-breakGuard {
			pdf.AddPage()
			drawHeader()
			y = drawColumnTitles(margin + 24)
		}

		pdf.Text(colNumber, y, fmt.Sprintf("#%03d", ticket.Number))
		pdf.Text(colName, y, tr(truncate(orDash(ticket.BuyerName), maxNameRunes)))
		pdf.Text(colContact, y, tr(truncate(orDash(ticket.BuyerContact), maxContactRunes)))
		pdf.Text(colUpdated, y, ticket.UpdatedAt.Format(timeLayout))
		pdf.Text(colStatus, y, ticket.PaymentLabel())
		y += rowStep
	}

	if y > pageH-margin-breakGuard {
		pdf.AddPage()
		drawHeader()
		y = drawColumnTitles(margin + 24)
	}
	y += rowStep / 2
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colNumber, y, tr(fmt.Sprintf(
		"Sold: %d   Paid: %d   Collected: %s",
		len(r.Tickets), r.PaidCount(), r.PaidRevenue().StringFixed(2),
	)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render buyers pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
