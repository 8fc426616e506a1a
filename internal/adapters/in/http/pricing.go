package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

// QuotePrice handles POST /api/v1/pricing.
//
// @Summary  Compute and record a dynamic price quote
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    request body QuotePriceRequest true "Shipment"
// @Success  200 {object} QuotePriceResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Failure  500 {object} ErrorResponse
// @Router   /api/v1/pricing [post]
func (s *Server) QuotePrice(c echo.Context) error {
	var req QuotePriceRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	origin, err := req.Origin.toDomain()
	if err != nil {
		return badRequest(c, err)
	}
	destination, err := req.Destination.toDomain()
	if err != nil {
		return badRequest(c, err)
	}
	urgency, err := kernel.ParseUrgency(req.Urgency)
	if err != nil {
		return badRequest(c, err)
	}

	var requestedAt time.Time
	if req.Time != nil {
		requestedAt = *req.Time
	}

	cmd, err := commands.NewQuotePriceCommand(
		origin,
		destination,
		pricing.PackageSize(req.PackageSize),
		req.PackageWeight,
		urgency,
		requestedAt,
	)
	if err != nil {
		return badRequest(c, err)
	}

	quote, err := s.handlers.QuotePrice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to calculate price")
	}

	b := quote.Breakdown()
	return c.JSON(http.StatusOK, QuotePriceResponse{
		QuoteID:    quote.ID().String(),
		Total:      quote.Total().StringFixed(2),
		Currency:   quote.Currency(),
		DistanceKm: quote.DistanceKm(),
		Breakdown: BreakdownResponse{
			BasePrice:      b.BasePrice,
			DistancePrice:  b.DistancePrice,
			SizePrice:      b.SizePrice,
			WeightPrice:    b.WeightPrice,
			UrgencyPrice:   b.UrgencyPrice,
			TimeOfDayPrice: b.TimeOfDayPrice,
			WeekendPrice:   b.WeekendPrice,
			HolidayPrice:   b.HolidayPrice,
			DemandPrice:    b.DemandPrice,
		},
		QuotedAt: quote.QuotedAt(),
	})
}

// UpdateRegionDemand handles PUT /api/v1/pricing/demand/:region.
//
// @Summary  Set the demand factor applied to quotes in a region
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    region  path string                    true "Region"
// @Param    request body UpdateRegionDemandRequest true "Demand factor"
// @Success  200 {object} RegionDemandResponse
// @Failure  400 {object} ErrorResponse
// @Failure  500 {object} ErrorResponse
// @Router   /api/v1/pricing/demand/{region} [put]
func (s *Server) UpdateRegionDemand(c echo.Context) error {
	var req UpdateRegionDemandRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdateRegionDemandCommand(c.Param("region"), *req.DemandFactor)
	if err != nil {
		return badRequest(c, err)
	}

	demand, err := s.handlers.UpdateRegionDemand.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to update region demand")
	}

	return c.JSON(http.StatusOK, RegionDemandResponse{Region: demand.Region, DemandFactor: demand.DemandFactor})
}
