package resp

import (
	"github.com/ncobase/catalog/ecode"
)

// Envelope represents the uniform response structure.
type Envelope struct {
	Success    bool   `json:"success"`              // Outcome flag
	Message    string `json:"message"`              // Human-readable message
	Data       any    `json:"data"`                 // Payload, null when absent
	Total      int    `json:"total"`                // Item count or explicit total
	Page       *int   `json:"page,omitempty"`       // Offset-paged envelopes only
	PageSize   *int   `json:"pageSize,omitempty"`   // Offset-paged envelopes only
	TotalPages *int   `json:"totalPages,omitempty"` // Offset-paged envelopes only
}

// OK builds a success envelope with no payload.
func OK() *Envelope {
	return &Envelope{
		Success: true,
		Message: ecode.Success(),
	}
}

// OKData builds a success envelope around a scalar payload. Scalars count
// as one item regardless of their shape; a nil payload collapses to OK.
func OKData(data any) *Envelope {
	if data == nil {
		return OK()
	}
	return &Envelope{
		Success: true,
		Message: ecode.Success(),
		Data:    data,
		Total:   1,
	}
}

// OKList builds a success envelope around a sequence payload, inferring
// the total from its length. An empty sequence behaves like OK: null
// payload, zero total.
func OKList[T any](items []T) *Envelope {
	if len(items) == 0 {
		return OK()
	}
	return &Envelope{
		Success: true,
		Message: ecode.Success(),
		Data:    items,
		Total:   len(items),
	}
}

// OKListTotal builds a success envelope around one page of a larger
// sequence; the explicit total overrides length inference.
func OKListTotal[T any](items []T, total int) *Envelope {
	env := OKList(items)
	env.Total = total
	return env
}

// OKPage builds the full offset-paged envelope. This is the only
// constructor that sets the page fields.
func OKPage[T any](items []T, total, page, pageSize, totalPages int) *Envelope {
	env := OKListTotal(items, total)
	env.Page = &page
	env.PageSize = &pageSize
	env.TotalPages = &totalPages
	return env
}

// Fail builds a failure envelope. The payload is always null and the
// message is never empty.
func Fail(message string) *Envelope {
	if message == "" {
		message = ecode.Failed()
	}
	return &Envelope{
		Success: false,
		Message: message,
	}
}
