package utils

// One response envelope for every endpoint: success responses are
// {"data": ...} with optional paging meta, errors are shaped by the central
// error handler. No endpoint returns a bare array or an ad hoc wrapper.

// PageMeta describes a paginated listing.
type PageMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// Envelope is the uniform success body.
type Envelope struct {
	Data any       `json:"data"`
	Meta *PageMeta `json:"meta,omitempty"`
}

// Data wraps a single payload.
func Data(v any) Envelope {
	return Envelope{Data: v}
}

// Page wraps a listing with its paging meta.
func Page(v any, total int64, page, limit int) Envelope {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Envelope{Data: v, Meta: &PageMeta{Total: total, Page: page, Pages: pages, Limit: limit}}
}
