package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// partners

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*partner.Partner)
	return p, args.Error(1)
}
func (m *MockPartnerRepository) FindActiveByServiceType(ctx context.Context, serviceType string) ([]*partner.Partner, error) {
	args := m.Called(ctx, serviceType)
	ps, _ := args.Get(0).([]*partner.Partner)
	return ps, args.Error(1)
}

type MockServiceStateRepository struct{ mock.Mock }

func (m *MockServiceStateRepository) Get(ctx context.Context, partnerID kernel.UUID) (*partner.ServiceState, error) {
	args := m.Called(ctx, partnerID)
	s, _ := args.Get(0).(*partner.ServiceState)
	return s, args.Error(1)
}
func (m *MockServiceStateRepository) GetMany(
	ctx context.Context,
	partnerIDs []kernel.UUID,
) (map[kernel.UUID]*partner.ServiceState, error) {
	args := m.Called(ctx, partnerIDs)
	s, _ := args.Get(0).(map[kernel.UUID]*partner.ServiceState)
	return s, args.Error(1)
}
func (m *MockServiceStateRepository) Upsert(ctx context.Context, state *partner.ServiceState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

type MockSelectionRepository struct{ mock.Mock }

func (m *MockSelectionRepository) Add(ctx context.Context, s *partner.Selection) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockPartnerUoW struct{ MockTx }

func (m *MockPartnerUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}
func (m *MockPartnerUoW) ServiceStateRepository() ports.ServiceStateRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceStateRepository)
}
func (m *MockPartnerUoW) SelectionRepository() ports.SelectionRepository {
	args := m.Called()
	return args.Get(0).(ports.SelectionRepository)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

// pricing

type MockPricingRulesRepository struct{ mock.Mock }

func (m *MockPricingRulesRepository) Add(ctx context.Context, rules *pricing.Rules) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}
func (m *MockPricingRulesRepository) GetActive(ctx context.Context) (*pricing.Rules, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(*pricing.Rules)
	return r, args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, q *pricing.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

type MockRegionDemandProvider struct{ mock.Mock }

func (m *MockRegionDemandProvider) GetDemand(ctx context.Context, region string) (*pricing.RegionDemand, error) {
	args := m.Called(ctx, region)
	d, _ := args.Get(0).(*pricing.RegionDemand)
	return d, args.Error(1)
}

type MockRegionDemandRepository struct{ MockRegionDemandProvider }

func (m *MockRegionDemandRepository) Upsert(ctx context.Context, demand pricing.RegionDemand) error {
	args := m.Called(ctx, demand)
	return args.Error(0)
}

type MockPricingUoW struct{ MockTx }

func (m *MockPricingUoW) PricingRulesRepository() ports.PricingRulesRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRulesRepository)
}
func (m *MockPricingUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	args := m.Called()
	return args.Get(0).(commands.PricingUoW)
}

// fleet and appointments

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*fleet.Vehicle)
	return v, args.Error(1)
}
func (m *MockVehicleRepository) ExistsByRegistrationNumber(ctx context.Context, reg string) (bool, error) {
	args := m.Called(ctx, reg)
	return args.Bool(0), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, plan *fleet.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

type MockAppointmentRepository struct{ mock.Mock }

func (m *MockAppointmentRepository) Add(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*appointment.Appointment)
	return a, args.Error(1)
}
func (m *MockAppointmentRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, ids)
	a, _ := args.Get(0).([]*appointment.Appointment)
	return a, args.Error(1)
}
func (m *MockAppointmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *appointment.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*appointment.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockRouteUoW struct{ MockTx }

func (m *MockRouteUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}
func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}
func (m *MockRouteUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockFleetUoW struct{ MockTx }

func (m *MockFleetUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}
func (m *MockFleetUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type MockCustomerUoW struct{ MockTx }

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockAppointmentUoW struct{ MockTx }

func (m *MockAppointmentUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}
func (m *MockAppointmentUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockAppointmentUoWFactory struct{ mock.Mock }

func (m *MockAppointmentUoWFactory) Create() commands.AppointmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AppointmentUoW)
}

// exceptions and notifications

type MockExceptionRepository struct{ mock.Mock }

func (m *MockExceptionRepository) Add(ctx context.Context, e *exception.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockExceptionRepository) Update(ctx context.Context, e *exception.Exception) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*exception.Exception)
	return e, args.Error(1)
}

type MockEscalationRepository struct{ mock.Mock }

func (m *MockEscalationRepository) Add(ctx context.Context, e *exception.Escalation) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}
func (m *MockNotificationRepository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	n, _ := args.Get(0).([]*notification.Notification)
	return n, args.Error(1)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(
	ctx context.Context,
	recipient notification.Recipient,
	message notification.Message,
) (notification.DeliveryReport, error) {
	args := m.Called(ctx, recipient, message)
	return args.Get(0).(notification.DeliveryReport), args.Error(1)
}

type MockExceptionUoW struct{ MockTx }

func (m *MockExceptionUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}
func (m *MockExceptionUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}
func (m *MockExceptionUoW) EscalationRepository() ports.EscalationRepository {
	args := m.Called()
	return args.Get(0).(ports.EscalationRepository)
}
func (m *MockExceptionUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockExceptionUoWFactory struct{ mock.Mock }

func (m *MockExceptionUoWFactory) Create() commands.ExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.ExceptionUoW)
}

type MockNotificationUoW struct{ MockTx }

func (m *MockNotificationUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}
