package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

// ListCustomersQuery pages through customers. A non-empty search matches name,
// email or phone number as a case-insensitive substring.
type ListCustomersQuery struct {
	search string
	page   Page

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(search string, page Page) ListCustomersQuery {
	return ListCustomersQuery{
		search: strings.TrimSpace(search),
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Search() string {
	return q.search
}

func (q ListCustomersQuery) Page() Page {
	return q.page
}

type CustomerRow struct {
	ID          kernel.UUID
	Name        string
	Email       string
	PhoneNumber string
}
