package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerStateQueryHandler reads partner state straight from the database.
type GetPartnerStateQueryHandler struct {
	db *gorm.DB
}

func NewGetPartnerStateQueryHandler(db *gorm.DB) GetPartnerStateQueryHandler {
	return GetPartnerStateQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the partner does not exist.
func (h GetPartnerStateQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerStateQuery,
) (*GetPartnerStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.name,
			s.status,
			s.availability,
			s.capacity,
			s.current_load,
			s.updated_at
		FROM partners p
		LEFT JOIN partner_service_states s ON s.partner_id = p.id
		WHERE p.id = ?
	`, query.PartnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("partner", query.PartnerID().String())
	}

	var (
		status, availability  sql.NullString
		capacity, currentLoad sql.NullInt64
		updatedAt             sql.NullTime
	)
	response := GetPartnerStateQueryResponse{PartnerID: query.PartnerID()}
	if err = rows.Scan(&response.Name, &status, &availability, &capacity, &currentLoad, &updatedAt); err != nil {
		return nil, err
	}

	if !status.Valid {
		response.Status = StateUnknown
		response.Availability = StateUnknown
		response.Capacity = partner.DefaultCapacity
		response.CurrentLoad = partner.DefaultCurrentLoad
		return &response, nil
	}

	response.Status = status.String
	response.Availability = availability.String
	response.Capacity = int(capacity.Int64)
	response.CurrentLoad = int(currentLoad.Int64)
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		response.LastUpdated = &t
	}

	return &response, nil
}
