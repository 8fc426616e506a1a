package queries

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page selects a window of a listing. Numbering starts at 1.
type Page struct {
	number int
	limit  int
}

// NewPage normalizes the requested window: values below 1 fall back to the
// defaults and the limit is capped at MaxLimit.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{number: number, limit: limit}
}

func (p Page) Number() int {
	if p.number < 1 {
		return DefaultPage
	}
	return p.number
}

func (p Page) Limit() int {
	if p.limit < 1 {
		return DefaultLimit
	}
	return p.limit
}

func (p Page) Offset() int {
	return (p.Number() - 1) * p.Limit()
}

// Paged is one page of a listing together with the size of the whole listing.
type Paged[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func newPaged[T any](page Page, total int64) Paged[T] {
	return Paged[T]{Items: make([]T, 0, page.Limit()), Total: total, Page: page.Number(), Limit: page.Limit()}
}

// Pages is the number of pages the listing spans.
func (p Paged[T]) Pages() int {
	if p.Limit < 1 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
