package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle returns one page of vehicles ordered by registration number.
func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) (Paged[VehicleRow], error) {
	if err := query.Validate(); err != nil {
		return Paged[VehicleRow]{}, err
	}

	const filter = `
		FROM vehicles
		WHERE (? = '' OR type = ?)
		  AND (? = '' OR status = ?)`
	args := []any{query.VehicleType(), query.VehicleType(), query.Status(), query.Status()}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+filter, args...).Row().Scan(&total); err != nil {
		return Paged[VehicleRow]{}, err
	}

	page := query.Page()
	result := newPaged[VehicleRow](page, total)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, registration_number, type, capacity, status`+filter+`
		ORDER BY registration_number
		LIMIT ? OFFSET ?
	`, append(args, page.Limit(), page.Offset())...).Rows()
	if err != nil {
		return Paged[VehicleRow]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row VehicleRow
		var id uuid.UUID
		if err = rows.Scan(&id, &row.RegistrationNumber, &row.Type, &row.Capacity, &row.Status); err != nil {
			return Paged[VehicleRow]{}, err
		}
		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return Paged[VehicleRow]{}, err
		}
		result.Items = append(result.Items, row)
	}

	if err = rows.Err(); err != nil {
		return Paged[VehicleRow]{}, err
	}

	return result, nil
}
