package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListPartnersQueryHandler reads the partner overview with a single join.
type ListPartnersQueryHandler struct {
	db *gorm.DB
}

func NewListPartnersQueryHandler(db *gorm.DB) ListPartnersQueryHandler {
	return ListPartnersQueryHandler{db: db}
}

// Handle returns partners ordered by priority (highest first), then name.
func (h ListPartnersQueryHandler) Handle(
	ctx context.Context,
	query ListPartnersQuery,
) ([]ListPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]ListPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.priority,
			p.rating,
			p.service_types,
			COALESCE(s.status, ?),
			COALESCE(s.availability, ?)
		FROM partners p
		LEFT JOIN partner_service_states s ON s.partner_id = p.id
		WHERE p.status = ?
		  AND (? = '' OR ? = ANY(p.service_types))
		ORDER BY p.priority DESC, p.name
	`, StateUnknown, StateUnknown, partner.StatusActive.String(),
		query.ServiceType(), query.ServiceType()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListPartnersQueryResponse
		var id uuid.UUID
		var serviceTypes pq.StringArray

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Priority,
			&row.Rating,
			&serviceTypes,
			&row.Status,
			&row.Availability,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = partnerID
		row.ServiceTypes = []string(serviceTypes)
		partners = append(partners, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
