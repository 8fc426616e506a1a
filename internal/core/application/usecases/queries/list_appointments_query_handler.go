package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const appointmentColumns = `
	SELECT
		id,
		customer_id,
		date,
		location_latitude,
		location_longitude,
		COALESCE(location_address, ''),
		COALESCE(location_region, ''),
		type,
		status,
		priority,
		COALESCE(notes, '')`

// AppointmentQueriesHandler reads appointments straight from the database.
type AppointmentQueriesHandler struct {
	db *gorm.DB
}

func NewAppointmentQueriesHandler(db *gorm.DB) AppointmentQueriesHandler {
	return AppointmentQueriesHandler{db: db}
}

// List returns one page of appointments ordered by date.
func (h AppointmentQueriesHandler) List(
	ctx context.Context,
	query ListAppointmentsQuery,
) (Paged[AppointmentRow], error) {
	if err := query.Validate(); err != nil {
		return Paged[AppointmentRow]{}, err
	}

	var from sql.NullTime
	if !query.From().IsZero() {
		from = sql.NullTime{Time: query.From(), Valid: true}
	}

	const filter = `
		FROM appointments
		WHERE (? = '' OR status = ?)
		  AND (CAST(? AS timestamptz) IS NULL OR date >= ?)`
	args := []any{query.Status(), query.Status(), from, from}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+filter, args...).Row().Scan(&total); err != nil {
		return Paged[AppointmentRow]{}, err
	}

	page := query.Page()
	result := newPaged[AppointmentRow](page, total)

	rows, err := h.db.WithContext(ctx).Raw(appointmentColumns+filter+`
		ORDER BY date, id
		LIMIT ? OFFSET ?
	`, append(args, page.Limit(), page.Offset())...).Rows()
	if err != nil {
		return Paged[AppointmentRow]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		row, scanErr := scanAppointment(rows)
		if scanErr != nil {
			return Paged[AppointmentRow]{}, scanErr
		}
		result.Items = append(result.Items, row)
	}

	if err = rows.Err(); err != nil {
		return Paged[AppointmentRow]{}, err
	}

	return result, nil
}

// Get returns errs.ErrObjectNotFound when the appointment does not exist.
func (h AppointmentQueriesHandler) Get(ctx context.Context, query GetAppointmentQuery) (*AppointmentRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(appointmentColumns+`
		FROM appointments
		WHERE id = ?
	`, query.AppointmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("appointment", query.AppointmentID().String())
	}

	row, err := scanAppointment(rows)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func scanAppointment(rows *sql.Rows) (AppointmentRow, error) {
	var (
		row                 AppointmentRow
		id, customerID      uuid.UUID
		latitude, longitude sql.NullFloat64
		address, region     string
	)
	err := rows.Scan(&id, &customerID, &row.Date, &latitude, &longitude, &address, &region,
		&row.Type, &row.Status, &row.Priority, &row.Notes)
	if err != nil {
		return AppointmentRow{}, err
	}

	if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AppointmentRow{}, err
	}
	if row.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return AppointmentRow{}, err
	}

	row.Location = kernel.Location{}.WithAddress(address, region)
	if latitude.Valid && longitude.Valid {
		loc, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return AppointmentRow{}, locErr
		}
		row.Location = loc.WithAddress(address, region)
	}
	row.Date = row.Date.UTC()
	return row, nil
}
