package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// BuildCSV renders the buyers list as CSV with a header row, in the same
// order and with the same labels as the PDF.
func BuildCSV(r *BuyersReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"number", "buyer_name", "buyer_contact", "updated_at", "payment"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, ticket := range r.Tickets {
		record := []string{
			strconv.Itoa(ticket.Number),
			ticket.BuyerName,
			ticket.BuyerContact,
			ticket.UpdatedAt.Format(timeLayout),
			ticket.PaymentLabel(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
