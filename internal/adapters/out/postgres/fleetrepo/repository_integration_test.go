package fleetrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/fleetrepo"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type FleetRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	vehicles  *fleetrepo.GormVehicleRepository
	routes    *fleetrepo.GormRouteRepository
	tracker   *MockAggregateTracker
}

func (suite *FleetRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&fleetrepo.VehicleDTO{}, &fleetrepo.RouteDTO{}, &fleetrepo.RouteStopDTO{}))
}

func (suite *FleetRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles, routes, route_stops").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.vehicles = fleetrepo.NewGormVehicleRepository(suite.db, suite.tracker)
	suite.routes = fleetrepo.NewGormRouteRepository(suite.db, suite.tracker)
}

func (suite *FleetRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FleetRepositoryIntegrationTestSuite) TestVehicle_AddAndGet() {
	ctx := context.Background()
	v, err := fleet.NewVehicle(kernel.NewUUID(), "B-DX 1024", fleet.VehicleVan, 40, fleet.VehicleAvailable)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", v.ID(), v).Once()

	suite.Require().NoError(suite.vehicles.Add(ctx, v))

	got, err := suite.vehicles.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal("B-DX 1024", got.RegistrationNumber())
	suite.Equal(fleet.VehicleVan, got.Type())
	suite.Equal(40, got.Capacity())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FleetRepositoryIntegrationTestSuite) TestVehicle_ExistsByRegistrationNumber() {
	ctx := context.Background()
	v, err := fleet.NewVehicle(kernel.NewUUID(), "M-KL 77", fleet.VehicleTruck, 80, fleet.VehicleAvailable)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", v.ID(), v).Once()
	suite.Require().NoError(suite.vehicles.Add(ctx, v))

	exists, err := suite.vehicles.ExistsByRegistrationNumber(ctx, "M-KL 77")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.vehicles.ExistsByRegistrationNumber(ctx, "M-KL 78")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *FleetRepositoryIntegrationTestSuite) TestVehicle_Get_Unknown_ReturnsNotFound() {
	_, err := suite.vehicles.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FleetRepositoryIntegrationTestSuite) TestRoute_Add_PersistsStopsInOrder() {
	ctx := context.Background()
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	first, second, skipped := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	plan := fleet.NewPlan(fleet.PlanParams{
		ID:            kernel.NewUUID(),
		VehicleID:     kernel.NewUUID(),
		StartLocation: kernel.MustNewLocation(52.52, 13.405),
		EndLocation:   kernel.MustNewLocation(52.52, 13.405),
		Stops: []fleet.PlannedStop{
			{StopID: first, Location: kernel.MustNewLocation(52.53, 13.41), Type: fleet.StopDelivery, Priority: 2, LegDistanceKm: 1.2, LegDurationMin: 2.4, EstimatedArrival: start.Add(2 * time.Minute)},
			{StopID: second, Location: kernel.MustNewLocation(52.54, 13.42), Type: fleet.StopPickup, Priority: 1, LegDistanceKm: 1.3, LegDurationMin: 2.6, EstimatedArrival: start.Add(5 * time.Minute)},
		},
		Dropped:          []fleet.DroppedStop{{StopID: skipped, Reason: fleet.DropUnresolved}},
		ClosingLeg:       fleet.Leg{DistanceKm: 2.5, DurationMin: 5},
		TotalDistanceKm:  5,
		TotalDurationMin: 10,
		StartTime:        start,
		EndTime:          start.Add(10 * time.Minute),
	})
	suite.tracker.On("TrackAggregate", plan.ID(), plan).Once()

	suite.Require().NoError(suite.routes.Add(ctx, plan))

	var dto fleetrepo.RouteDTO
	suite.Require().NoError(suite.db.Preload("Stops", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence")
	}).First(&dto, "id = ?", plan.ID().Bytes()).Error)
	suite.Require().Len(dto.Stops, 2)
	suite.Equal(first.Bytes(), dto.Stops[0].StopID)
	suite.Equal(second.Bytes(), dto.Stops[1].StopID)
	suite.Require().Len(dto.Dropped, 1)
	suite.Equal("unresolved", dto.Dropped[0].Reason)
	suite.InDelta(5.0, dto.TotalDistanceKm, 1e-9)
}

func TestFleetRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FleetRepositoryIntegrationTestSuite))
}
