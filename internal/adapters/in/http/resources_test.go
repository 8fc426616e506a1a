package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreatePartner struct{ mock.Mock }

func (m *MockCreatePartner) Handle(ctx context.Context, cmd commands.CreatePartnerCommand) (*partner.Partner, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(*partner.Partner)
	return p, args.Error(1)
}

type MockUpdateRegionDemand struct{ mock.Mock }

func (m *MockUpdateRegionDemand) Handle(
	ctx context.Context,
	cmd commands.UpdateRegionDemandCommand,
) (pricing.RegionDemand, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(pricing.RegionDemand), args.Error(1)
}

type MockCreateVehicle struct{ mock.Mock }

func (m *MockCreateVehicle) Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*fleet.Vehicle, error) {
	args := m.Called(ctx, cmd)
	v, _ := args.Get(0).(*fleet.Vehicle)
	return v, args.Error(1)
}

type MockListVehicles struct{ mock.Mock }

func (m *MockListVehicles) Handle(
	ctx context.Context,
	query queries.ListVehiclesQuery,
) (queries.Paged[queries.VehicleRow], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Paged[queries.VehicleRow]), args.Error(1)
}

type MockCreateCustomer struct{ mock.Mock }

func (m *MockCreateCustomer) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*appointment.Customer, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*appointment.Customer)
	return c, args.Error(1)
}

type MockListCustomers struct{ mock.Mock }

func (m *MockListCustomers) Handle(
	ctx context.Context,
	query queries.ListCustomersQuery,
) (queries.Paged[queries.CustomerRow], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Paged[queries.CustomerRow]), args.Error(1)
}

type MockCreateAppointment struct{ mock.Mock }

func (m *MockCreateAppointment) Handle(
	ctx context.Context,
	cmd commands.CreateAppointmentCommand,
) (*appointment.Appointment, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*appointment.Appointment)
	return a, args.Error(1)
}

type MockUpdateAppointment struct{ mock.Mock }

func (m *MockUpdateAppointment) Handle(
	ctx context.Context,
	cmd commands.UpdateAppointmentCommand,
) (*appointment.Appointment, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*appointment.Appointment)
	return a, args.Error(1)
}

func (m *MockUpdateAppointment) ChangeStatus(
	ctx context.Context,
	cmd commands.ChangeAppointmentStatusCommand,
) (*appointment.Appointment, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*appointment.Appointment)
	return a, args.Error(1)
}

func (m *MockUpdateAppointment) Delete(ctx context.Context, cmd commands.DeleteAppointmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAppointmentQueries struct{ mock.Mock }

func (m *MockAppointmentQueries) List(
	ctx context.Context,
	query queries.ListAppointmentsQuery,
) (queries.Paged[queries.AppointmentRow], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Paged[queries.AppointmentRow]), args.Error(1)
}

func (m *MockAppointmentQueries) Get(ctx context.Context, query queries.GetAppointmentQuery) (*queries.AppointmentRow, error) {
	args := m.Called(ctx, query)
	row, _ := args.Get(0).(*queries.AppointmentRow)
	return row, args.Error(1)
}

func TestServer_CreatePartner(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		handler := new(MockCreatePartner)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreatePartnerCommand) bool {
			return cmd.Priority() == commands.DefaultPartnerPriority &&
				cmd.Status() == partner.StatusActive && len(cmd.ServiceAreas()) == 1
		})).Return(func() *partner.Partner {
			area, err := kernel.NewServiceArea("center", kernel.MustNewLocation(52.5, 13.4), 10)
			require.NoError(t, err)
			p, err := partner.NewPartner(kernel.NewUUID(), "QuickShip", 1, 0,
				[]kernel.ServiceArea{area}, []string{"same_day"}, partner.StatusActive)
			require.NoError(t, err)
			return p
		}(), nil).Once()

		rec := doJSON(setupEcho(Handlers{CreatePartner: handler}, nil), http.MethodPost, "/api/v1/partners", map[string]any{
			"name":         "QuickShip",
			"serviceTypes": []string{"same_day"},
			"serviceAreas": []map[string]any{{"name": "center", "center": location(52.5, 13.4), "radius": 10}},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp PartnerProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, 1, resp.Priority)
		require.Len(t, resp.ServiceAreas, 1)
		assert.InDelta(t, 10, resp.ServiceAreas[0].RadiusKm, 1e-9)
		handler.AssertExpectations(t)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		handler := new(MockCreatePartner)
		rec := doJSON(setupEcho(Handlers{CreatePartner: handler}, nil), http.MethodPost, "/api/v1/partners",
			map[string]any{"name": "TooGood", "rating": 9})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_UpdateRegionDemand(t *testing.T) {
	handler := new(MockUpdateRegionDemand)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateRegionDemandCommand) bool {
		return cmd.Region() == "berlin" && cmd.DemandFactor() == 1.5
	})).Return(pricing.RegionDemand{Region: "berlin", DemandFactor: 1.5}, nil).Once()
	e := setupEcho(Handlers{UpdateRegionDemand: handler}, nil)

	rec := doJSON(e, http.MethodPut, "/api/v1/pricing/demand/berlin", map[string]any{"demandFactor": 1.5})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp RegionDemandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "berlin", resp.Region)

	rec = doJSON(e, http.MethodPut, "/api/v1/pricing/demand/berlin", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestServer_CreateVehicle(t *testing.T) {
	body := map[string]any{"registrationNumber": "B-DX 1024", "type": "van", "capacity": 40}

	t.Run("Created", func(t *testing.T) {
		v, err := fleet.NewVehicle(kernel.NewUUID(), "B-DX 1024", fleet.VehicleVan, 40, fleet.VehicleAvailable)
		require.NoError(t, err)
		handler := new(MockCreateVehicle)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateVehicleCommand) bool {
			return cmd.Status() == fleet.VehicleAvailable
		})).Return(v, nil).Once()

		rec := doJSON(setupEcho(Handlers{CreateVehicle: handler}, nil), http.MethodPost, "/api/v1/vehicles", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp VehicleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, v.ID().String(), resp.ID)
		assert.Equal(t, "available", resp.Status)
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		handler := new(MockCreateVehicle)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectAlreadyExistsError("registrationNumber", "B-DX 1024")).Once()

		rec := doJSON(setupEcho(Handlers{CreateVehicle: handler}, nil), http.MethodPost, "/api/v1/vehicles", body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "already exists")
	})

	t.Run("UnknownType", func(t *testing.T) {
		handler := new(MockCreateVehicle)
		rec := doJSON(setupEcho(Handlers{CreateVehicle: handler}, nil), http.MethodPost, "/api/v1/vehicles",
			map[string]any{"registrationNumber": "X", "type": "boat", "capacity": 1})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_ListVehicles_Paginates(t *testing.T) {
	handler := new(MockListVehicles)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListVehiclesQuery) bool {
		return q.VehicleType() == "truck" && q.Page().Number() == 2 && q.Page().Limit() == 5
	})).Return(queries.Paged[queries.VehicleRow]{
		Items: []queries.VehicleRow{{ID: kernel.NewUUID(), RegistrationNumber: "T-1", Type: "truck", Capacity: 90, Status: "available"}},
		Total: 6,
		Page:  2,
		Limit: 5,
	}, nil).Once()
	e := setupEcho(Handlers{ListVehicles: handler}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/vehicles?type=truck&page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp VehicleListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, PaginationResponse{Total: 6, Page: 2, Limit: 5, Pages: 2}, resp.Pagination)

	rec = doJSON(e, http.MethodGet, "/api/v1/vehicles?page=two", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestServer_Customers(t *testing.T) {
	t.Run("DuplicateEmail", func(t *testing.T) {
		handler := new(MockCreateCustomer)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectAlreadyExistsError("email", "ada@example.com")).Once()

		rec := doJSON(setupEcho(Handlers{CreateCustomer: handler}, nil), http.MethodPost, "/api/v1/customers",
			map[string]any{"name": "Ada", "email": "ada@example.com"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		handler := new(MockCreateCustomer)
		rec := doJSON(setupEcho(Handlers{CreateCustomer: handler}, nil), http.MethodPost, "/api/v1/customers",
			map[string]any{"name": "Ada", "email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("SearchDefaultsPage", func(t *testing.T) {
		handler := new(MockListCustomers)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListCustomersQuery) bool {
			return q.Search() == "ada" && q.Page().Number() == 1 && q.Page().Limit() == queries.DefaultLimit
		})).Return(queries.Paged[queries.CustomerRow]{Page: 1, Limit: 10}, nil).Once()

		rec := doJSON(setupEcho(Handlers{ListCustomers: handler}, nil), http.MethodGet, "/api/v1/customers?search=ada", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CustomerListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Data)
		assert.Equal(t, 0, resp.Pagination.Pages)
	})
}

func TestServer_CreateAppointment(t *testing.T) {
	customerID := kernel.NewUUID()
	date := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	t.Run("UnresolvedAddressIsAccepted", func(t *testing.T) {
		a, err := appointment.NewAppointment(kernel.NewUUID(), customerID, date,
			kernel.Location{}.WithAddress("Main St 1", ""), appointment.TypeDelivery, 2, "")
		require.NoError(t, err)
		handler := new(MockCreateAppointment)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateAppointmentCommand) bool {
			return !cmd.Details().Location.IsResolved() && cmd.Details().Location.Address() == "Main St 1"
		})).Return(a, nil).Once()

		rec := doJSON(setupEcho(Handlers{CreateAppointment: handler}, nil), http.MethodPost, "/api/v1/appointments",
			map[string]any{
				"customerId": customerID.String(),
				"date":       date,
				"type":       "delivery",
				"priority":   2,
				"location":   map[string]any{"address": "Main St 1"},
			})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "scheduled", resp.Status)
		assert.Nil(t, resp.Location.Latitude)
		handler.AssertExpectations(t)
	})

	t.Run("HalfACoordinate", func(t *testing.T) {
		handler := new(MockCreateAppointment)
		rec := doJSON(setupEcho(Handlers{CreateAppointment: handler}, nil), http.MethodPost, "/api/v1/appointments",
			map[string]any{
				"customerId": customerID.String(),
				"date":       date,
				"type":       "delivery",
				"location":   map[string]any{"latitude": 52.5},
			})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		handler := new(MockCreateAppointment)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once()

		rec := doJSON(setupEcho(Handlers{CreateAppointment: handler}, nil), http.MethodPost, "/api/v1/appointments",
			map[string]any{"customerId": customerID.String(), "date": date, "type": "pickup"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_AppointmentByID(t *testing.T) {
	id := kernel.NewUUID()
	stored, err := appointment.RestoreAppointment(id, kernel.NewUUID(), fixedNow, kernel.MustNewLocation(1, 2),
		appointment.TypePickup, appointment.StatusInProgress, 1, "")
	require.NoError(t, err)

	t.Run("Get", func(t *testing.T) {
		reads := new(MockAppointmentQueries)
		reads.On("Get", mock.Anything, mock.MatchedBy(func(q queries.GetAppointmentQuery) bool {
			return q.AppointmentID().IsEqual(id)
		})).Return(&queries.AppointmentRow{ID: id, CustomerID: kernel.NewUUID(), Date: fixedNow,
			Location: kernel.MustNewLocation(1, 2), Type: "pickup", Status: "scheduled"}, nil).Once()

		rec := doJSON(setupEcho(Handlers{Appointments: reads}, nil), http.MethodGet, "/api/v1/appointments/"+id.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Location.Longitude)
		assert.InDelta(t, 2, *resp.Location.Longitude, 1e-9)
	})

	t.Run("GetUnknown", func(t *testing.T) {
		reads := new(MockAppointmentQueries)
		reads.On("Get", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("appointment", id.String())).Once()

		rec := doJSON(setupEcho(Handlers{Appointments: reads}, nil), http.MethodGet, "/api/v1/appointments/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Reschedule", func(t *testing.T) {
		writes := new(MockUpdateAppointment)
		writes.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateAppointmentCommand) bool {
			return cmd.AppointmentID().IsEqual(id) && cmd.Status() == "" && cmd.Details().Type == appointment.TypePickup
		})).Return(stored, nil).Once()

		rec := doJSON(setupEcho(Handlers{UpdateAppointment: writes}, nil), http.MethodPut, "/api/v1/appointments/"+id.String(),
			map[string]any{"date": fixedNow, "type": "pickup", "location": location(1, 2)})

		assert.Equal(t, http.StatusOK, rec.Code)
		writes.AssertExpectations(t)
	})

	t.Run("PatchStatus", func(t *testing.T) {
		writes := new(MockUpdateAppointment)
		writes.On("ChangeStatus", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeAppointmentStatusCommand) bool {
			return cmd.Status() == appointment.StatusInProgress
		})).Return(stored, nil).Once()

		rec := doJSON(setupEcho(Handlers{UpdateAppointment: writes}, nil), http.MethodPatch, "/api/v1/appointments/"+id.String(),
			map[string]any{"status": "in-progress"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "in-progress", resp.Status)
	})

	t.Run("PatchUnknownStatus", func(t *testing.T) {
		writes := new(MockUpdateAppointment)
		rec := doJSON(setupEcho(Handlers{UpdateAppointment: writes}, nil), http.MethodPatch, "/api/v1/appointments/"+id.String(),
			map[string]any{"status": "lost"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		writes.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything)
	})

	t.Run("Delete", func(t *testing.T) {
		writes := new(MockUpdateAppointment)
		writes.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		rec := doJSON(setupEcho(Handlers{UpdateAppointment: writes}, nil), http.MethodDelete, "/api/v1/appointments/"+id.String(), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("DeleteUnknown", func(t *testing.T) {
		writes := new(MockUpdateAppointment)
		writes.On("Delete", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("appointment", id.String())).Once()

		rec := doJSON(setupEcho(Handlers{UpdateAppointment: writes}, nil), http.MethodDelete, "/api/v1/appointments/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ListAppointments(t *testing.T) {
	reads := new(MockAppointmentQueries)
	reads.On("List", mock.Anything, mock.MatchedBy(func(q queries.ListAppointmentsQuery) bool {
		return q.Status() == "scheduled" && q.From().Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(queries.Paged[queries.AppointmentRow]{Page: 1, Limit: 10}, nil).Once()
	e := setupEcho(Handlers{Appointments: reads}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/appointments?status=scheduled&date=2026-03-01", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/appointments?date=March", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reads.AssertNumberOfCalls(t, "List", 1)
}
