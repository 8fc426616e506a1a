package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/appointmentrepo"
	"dispatch/internal/adapters/out/postgres/fleetrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ResourceQueriesHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	vehicles     *fleetrepo.GormVehicleRepository
	customers    *appointmentrepo.GormCustomerRepository
	appointments *appointmentrepo.GormAppointmentRepository
}

func (suite *ResourceQueriesHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&fleetrepo.VehicleDTO{}, &appointmentrepo.CustomerDTO{}, &appointmentrepo.AppointmentDTO{})
	suite.Require().NoError(err)

	suite.vehicles = fleetrepo.NewGormVehicleRepository(db, noopTracker{})
	suite.customers = appointmentrepo.NewGormCustomerRepository(db, noopTracker{})
	suite.appointments = appointmentrepo.NewGormAppointmentRepository(db, noopTracker{})
}

func (suite *ResourceQueriesHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ResourceQueriesHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles, appointments, customers").Error)
}

func (suite *ResourceQueriesHandlerTestSuite) TestListVehicles_FiltersAndPages() {
	ctx := context.Background()
	for i := range 5 {
		v, err := fleet.NewVehicle(kernel.NewUUID(), fmt.Sprintf("B-VN %d", i), fleet.VehicleVan, 40, fleet.VehicleAvailable)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.vehicles.Add(ctx, v))
	}
	truck, err := fleet.NewVehicle(kernel.NewUUID(), "B-TR 1", fleet.VehicleTruck, 90, fleet.VehicleMaintenance)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.vehicles.Add(ctx, truck))

	h := queries.NewListVehiclesQueryHandler(suite.db)

	vans, err := h.Handle(ctx, queries.NewListVehiclesQuery("van", "", queries.NewPage(2, 2)))
	suite.Require().NoError(err)
	suite.EqualValues(5, vans.Total)
	suite.Equal(3, vans.Pages())
	suite.Require().Len(vans.Items, 2)
	suite.Equal("B-VN 2", vans.Items[0].RegistrationNumber)

	inMaintenance, err := h.Handle(ctx, queries.NewListVehiclesQuery("", "maintenance", queries.NewPage(0, 0)))
	suite.Require().NoError(err)
	suite.Require().Len(inMaintenance.Items, 1)
	suite.True(truck.ID().IsEqual(inMaintenance.Items[0].ID))
	suite.Equal(90, inMaintenance.Items[0].Capacity)
}

func (suite *ResourceQueriesHandlerTestSuite) TestListCustomers_Search() {
	ctx := context.Background()
	for _, c := range []struct{ name, email, phone string }{
		{"Ada Lovelace", "ada@example.com", ""},
		{"Grace Hopper", "grace@navy.mil", "+1555"},
		{"Alan Turing", "", "+44 100_200"},
	} {
		customer, err := appointment.NewCustomer(kernel.NewUUID(), c.name, c.email, c.phone)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.customers.Add(ctx, customer))
	}

	h := queries.NewListCustomersQueryHandler(suite.db)

	all, err := h.Handle(ctx, queries.NewListCustomersQuery("", queries.NewPage(1, 10)))
	suite.Require().NoError(err)
	suite.EqualValues(3, all.Total)
	suite.Equal("Ada Lovelace", all.Items[0].Name)

	byEmail, err := h.Handle(ctx, queries.NewListCustomersQuery("NAVY", queries.NewPage(1, 10)))
	suite.Require().NoError(err)
	suite.Require().Len(byEmail.Items, 1)
	suite.Equal("Grace Hopper", byEmail.Items[0].Name)

	underscore, err := h.Handle(ctx, queries.NewListCustomersQuery("0_2", queries.NewPage(1, 10)))
	suite.Require().NoError(err)
	suite.Require().Len(underscore.Items, 1)
	suite.Equal("Alan Turing", underscore.Items[0].Name)

	wildcard, err := h.Handle(ctx, queries.NewListCustomersQuery("%", queries.NewPage(1, 10)))
	suite.Require().NoError(err)
	suite.Empty(wildcard.Items)
}

func (suite *ResourceQueriesHandlerTestSuite) TestAppointments_ListAndGet() {
	ctx := context.Background()
	day := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	early := suite.addAppointment(day, kernel.MustNewLocation(52.5, 13.4).WithAddress("Main St 1", "berlin"))
	late := suite.addAppointment(day.Add(48*time.Hour), kernel.Location{}.WithAddress("Nowhere 5", ""))
	cancelled := suite.addAppointment(day.Add(24*time.Hour), kernel.MustNewLocation(1, 1))
	suite.Require().NoError(cancelled.ChangeStatus(appointment.StatusCancelled))
	suite.Require().NoError(suite.appointments.Update(ctx, cancelled))

	h := queries.NewAppointmentQueriesHandler(suite.db)

	all, err := h.List(ctx, queries.NewListAppointmentsQuery("", time.Time{}, queries.NewPage(1, 10)))
	suite.Require().NoError(err)
	suite.Require().Len(all.Items, 3)
	suite.True(early.ID().IsEqual(all.Items[0].ID))
	suite.True(late.ID().IsEqual(all.Items[2].ID))

	scheduledFromNextDay, err := h.List(ctx,
		queries.NewListAppointmentsQuery("scheduled", day.Add(time.Hour), queries.NewPage(1, 10)))
	suite.Require().NoError(err)
	suite.EqualValues(1, scheduledFromNextDay.Total)
	suite.True(late.ID().IsEqual(scheduledFromNextDay.Items[0].ID))
	suite.False(scheduledFromNextDay.Items[0].Location.IsResolved())
	suite.Equal("Nowhere 5", scheduledFromNextDay.Items[0].Location.Address())

	query, err := queries.NewGetAppointmentQuery(early.ID())
	suite.Require().NoError(err)
	got, err := h.Get(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("berlin", got.Location.Region())
	suite.True(got.Location.IsResolved())
	suite.True(day.Equal(got.Date))
	suite.Equal("scheduled", got.Status)

	query, err = queries.NewGetAppointmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = h.Get(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ResourceQueriesHandlerTestSuite) addAppointment(date time.Time, loc kernel.Location) *appointment.Appointment {
	a, err := appointment.NewAppointment(kernel.NewUUID(), kernel.NewUUID(), date, loc, appointment.TypeDelivery, 1, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.appointments.Add(context.Background(), a))
	return a
}

func TestResourceQueriesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceQueriesHandlerTestSuite))
}
