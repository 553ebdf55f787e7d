package entity

type WindowLabel string

const (
	WindowOnline    WindowLabel = "online"
	WindowPrintable WindowLabel = "printable"
)

// Window is a contiguous slice of the ticket pool. The partition is fixed
// deployment configuration: numbers up to the online limit are sold through
// the site, the rest circulate as printed stubs.
type Window struct {
	Label WindowLabel `json:"label"`
	From  int         `json:"from"`
	To    int         `json:"to"`
}

func (w Window) Contains(number int) bool {
	return number >= w.From && number <= w.To
}

func (w Window) Size() int {
	if w.To < w.From {
		return 0
	}
	return w.To - w.From + 1
}
