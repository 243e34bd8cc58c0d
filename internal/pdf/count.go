package pdf

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Counter reports page counts of rendered PDFs. Stateless; the zero value is
// ready to use.
type Counter struct{}

// NewCounter creates a Counter
func NewCounter() *Counter { return &Counter{} }

// CountPages returns the number of pages in a PDF document.
func (c *Counter) CountPages(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	return reader.NumPage(), nil
}
