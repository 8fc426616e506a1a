package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SendNotification handles POST /api/v1/notifications.
// A delivery failure is reported in the body with status 200.
//
// @Summary  Send a notification to a customer
// @Tags     notifications
// @Accept   json
// @Produce  json
// @Param    request body SendNotificationRequest true "Notification"
// @Success  200 {object} NotificationResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/notifications [post]
func (s *Server) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(c, err)
	}

	var appointmentID *kernel.UUID
	if req.AppointmentID != "" {
		id, idErr := kernel.UUIDFromString(req.AppointmentID)
		if idErr != nil {
			return badRequest(c, idErr)
		}
		appointmentID = &id
	}

	cmd, err := commands.NewSendNotificationCommand(customerID, req.Type, req.Title, req.Message, appointmentID)
	if err != nil {
		return badRequest(c, err)
	}

	n, err := s.handlers.SendNotification.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to send notification")
	}

	channels := make(map[string]bool, len(n.Channels()))
	for ch, ok := range n.Channels() {
		channels[string(ch)] = ok
	}

	return c.JSON(http.StatusOK, NotificationResponse{
		NotificationID: n.ID().String(),
		Status:         string(n.Status()),
		Channels:       channels,
		Error:          n.LastError(),
		SentAt:         n.SentAt(),
	})
}
