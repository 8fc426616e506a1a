package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// PlanRouteCommandHandler sequences a vehicle's appointments into a route and
// records it.
//
// Every appointment becomes a stop of the same type and priority. Appointments
// whose location was never geocoded are reported as dropped by the planner.
// An unknown vehicle or appointment fails the command with errs.ErrObjectNotFound.
type PlanRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    services.RoutePlanner
}

// NewPlanRouteCommandHandler creates a handler whose routes start at now().
func NewPlanRouteCommandHandler(uowFactory RouteUoWFactory, now func() time.Time) PlanRouteCommandHandler {
	return PlanRouteCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(now),
	}
}

// Handle plans and stores the route in one transaction.
func (h *PlanRouteCommandHandler) Handle(ctx context.Context, cmd PlanRouteCommand) (*fleet.Plan, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicle, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	appointments, err := uow.AppointmentRepository().GetMany(ctx, cmd.AppointmentIDs())
	if err != nil {
		return nil, err
	}

	stops := make([]fleet.Stop, 0, len(appointments))
	for _, a := range appointments {
		stops = append(stops, fleet.NewStop(a.ID(), a.Location(), fleet.StopType(a.Type()), a.Priority()))
	}

	plan, err := h.planner.Plan(services.PlanInput{
		ID:          kernel.NewUUID(),
		Vehicle:     vehicle,
		Stops:       stops,
		Start:       cmd.Start(),
		End:         cmd.End(),
		Constraints: cmd.Constraints(),
	})
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, plan); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return plan, nil
}
