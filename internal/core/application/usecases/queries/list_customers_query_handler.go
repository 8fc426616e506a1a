package queries

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle returns one page of customers ordered by name.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) (Paged[CustomerRow], error) {
	if err := query.Validate(); err != nil {
		return Paged[CustomerRow]{}, err
	}

	const filter = `
		FROM customers
		WHERE ? = ''
		   OR name ILIKE ?
		   OR email ILIKE ?
		   OR phone_number ILIKE ?`
	pattern := "%" + likeEscaper.Replace(query.Search()) + "%"
	args := []any{query.Search(), pattern, pattern, pattern}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+filter, args...).Row().Scan(&total); err != nil {
		return Paged[CustomerRow]{}, err
	}

	page := query.Page()
	result := newPaged[CustomerRow](page, total)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, COALESCE(email, ''), COALESCE(phone_number, '')`+filter+`
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, append(args, page.Limit(), page.Offset())...).Rows()
	if err != nil {
		return Paged[CustomerRow]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row CustomerRow
		var id uuid.UUID
		if err = rows.Scan(&id, &row.Name, &row.Email, &row.PhoneNumber); err != nil {
			return Paged[CustomerRow]{}, err
		}
		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return Paged[CustomerRow]{}, err
		}
		result.Items = append(result.Items, row)
	}

	if err = rows.Err(); err != nil {
		return Paged[CustomerRow]{}, err
	}

	return result, nil
}
