package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SelectPartner handles POST /api/v1/partners/selection.
//
// @Summary  Rank partners for a pickup and record the selection
// @Tags     partners
// @Accept   json
// @Produce  json
// @Param    request body SelectPartnerRequest true "Selection request"
// @Success  200 {object} SelectPartnerResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/partners/selection [post]
func (s *Server) SelectPartner(c echo.Context) error {
	var req SelectPartnerRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	appointmentID, err := kernel.UUIDFromString(req.AppointmentID)
	if err != nil {
		return badRequest(c, err)
	}
	pickup, err := req.PickupLocation.toDomain()
	if err != nil {
		return badRequest(c, err)
	}
	urgency, err := kernel.ParseUrgency(req.Urgency)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewSelectPartnerCommand(appointmentID, req.ServiceType, pickup, urgency)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := s.handlers.SelectPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to select partner")
	}

	selection := result.Selection
	response := SelectPartnerResponse{
		SelectionID:      selection.ID().String(),
		AppointmentID:    selection.AppointmentID().String(),
		Status:           selection.Status(),
		Urgency:          string(selection.Urgency()),
		Degraded:         selection.Degraded(),
		FallbackPartners: make([]CandidateResponse, 0, partner.MaxFallbacks),
	}
	if primary, ok := selection.Primary(); ok {
		p := candidateResponse(primary)
		response.PrimaryPartner = &p
	}
	for _, fb := range selection.Fallbacks() {
		response.FallbackPartners = append(response.FallbackPartners, candidateResponse(fb))
	}

	s.log.Info("partner selected",
		zap.String("appointment_id", response.AppointmentID),
		zap.String("selection_id", response.SelectionID),
		zap.Bool("degraded", response.Degraded))

	return c.JSON(http.StatusOK, response)
}

func candidateResponse(c partner.Candidate) CandidateResponse {
	return CandidateResponse{
		PartnerID:     c.PartnerID.String(),
		Name:          c.Name,
		Score:         c.Score,
		Rank:          c.Rank,
		InServiceArea: c.InServiceArea,
	}
}

// ListPartners handles GET /api/v1/partners?serviceType=.
//
// @Summary  List active partners
// @Tags     partners
// @Produce  json
// @Param    serviceType query string false "Only partners offering this service type"
// @Success  200 {array} PartnerResponse
// @Router   /api/v1/partners [get]
func (s *Server) ListPartners(c echo.Context) error {
	query := queries.NewListPartnersQuery(c.QueryParam("serviceType"))

	partners, err := s.handlers.ListPartners.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve partners")
	}

	response := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		response[i] = PartnerResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			Priority:     p.Priority,
			Rating:       p.Rating,
			ServiceTypes: p.ServiceTypes,
			Status:       p.Status,
			Availability: p.Availability,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners.
//
// @Summary  Register a fulfilment partner
// @Tags     partners
// @Accept   json
// @Produce  json
// @Param    request body CreatePartnerRequest true "Partner profile"
// @Success  201 {object} PartnerProfileResponse
// @Failure  400 {object} ErrorResponse
// @Router   /api/v1/partners [post]
func (s *Server) CreatePartner(c echo.Context) error {
	var req CreatePartnerRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	areas := make([]kernel.ServiceArea, 0, len(req.ServiceAreas))
	for _, a := range req.ServiceAreas {
		center, err := a.Center.toDomain()
		if err != nil {
			return badRequest(c, err)
		}
		area, err := kernel.NewServiceArea(a.Name, center, a.RadiusKm)
		if err != nil {
			return badRequest(c, err)
		}
		areas = append(areas, area)
	}

	cmd, err := commands.NewCreatePartnerCommand(
		req.Name,
		req.Priority,
		req.Rating,
		areas,
		req.ServiceTypes,
		partner.Status(req.Status),
	)
	if err != nil {
		return badRequest(c, err)
	}

	p, err := s.handlers.CreatePartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to create partner")
	}

	response := PartnerProfileResponse{
		ID:           p.ID().String(),
		Name:         p.Name(),
		Priority:     p.Priority(),
		Rating:       p.Rating(),
		ServiceAreas: make([]ServiceAreaDTO, 0, len(p.ServiceAreas())),
		ServiceTypes: p.ServiceTypes(),
		Status:       p.Status().String(),
	}
	for _, a := range p.ServiceAreas() {
		response.ServiceAreas = append(response.ServiceAreas, ServiceAreaDTO{
			Name:     a.Name(),
			Center:   locationFromDomain(a.Center()),
			RadiusKm: a.RadiusKm(),
		})
	}
	if response.ServiceTypes == nil {
		response.ServiceTypes = []string{}
	}

	s.log.Info("partner registered", zap.String("partner_id", response.ID))

	return c.JSON(http.StatusCreated, response)
}

// GetPartnerState handles GET /api/v1/partners/:id/state.
//
// @Summary  Read the live service state of a partner
// @Tags     partners
// @Produce  json
// @Param    id path string true "Partner ID"
// @Success  200 {object} PartnerStateResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/partners/{id}/state [get]
func (s *Server) GetPartnerState(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetPartnerStateQuery(partnerID)
	if err != nil {
		return badRequest(c, err)
	}

	state, err := s.handlers.GetPartnerState.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to fetch partner service state")
	}

	return c.JSON(http.StatusOK, PartnerStateResponse{
		PartnerID:    state.PartnerID.String(),
		Name:         state.Name,
		Status:       state.Status,
		Availability: state.Availability,
		Capacity:     state.Capacity,
		CurrentLoad:  state.CurrentLoad,
		LastUpdated:  state.LastUpdated,
	})
}

// UpdatePartnerState handles PUT /api/v1/partners/:id/state.
//
// @Summary  Replace the live service state of a partner
// @Tags     partners
// @Accept   json
// @Produce  json
// @Param    id      path string                    true "Partner ID"
// @Param    request body UpdatePartnerStateRequest true "New state"
// @Success  200 {object} PartnerStateResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/partners/{id}/state [put]
func (s *Server) UpdatePartnerState(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req UpdatePartnerStateRequest
	if err = s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdatePartnerStateCommand(
		partnerID,
		partner.Status(req.Status),
		partner.Availability(req.Availability),
		req.Capacity,
		req.CurrentLoad,
	)
	if err != nil {
		return badRequest(c, err)
	}

	state, err := s.handlers.UpdatePartnerState.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to update partner service state")
	}

	updatedAt := state.UpdatedAt()
	return c.JSON(http.StatusOK, PartnerStateResponse{
		PartnerID:    state.PartnerID().String(),
		Status:       state.Status().String(),
		Availability: state.Availability().String(),
		Capacity:     state.Capacity(),
		CurrentLoad:  state.CurrentLoad(),
		LastUpdated:  &updatedAt,
	})
}
