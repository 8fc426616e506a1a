package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /api/v1/customers.
//
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Param    search query string false "Substring of name, email or phone number"
// @Param    page   query int    false "Page, from 1"
// @Param    limit  query int    false "Page size, at most 100"
// @Success  200 {object} CustomerListResponse
// @Failure  400 {object} ErrorResponse
// @Router   /api/v1/customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := s.handlers.ListCustomers.Handle(c.Request().Context(),
		queries.NewListCustomersQuery(c.QueryParam("search"), page))
	if err != nil {
		return s.fail(c, err, "Failed to retrieve customers")
	}

	response := CustomerListResponse{
		Data:       make([]CustomerResponse, len(result.Items)),
		Pagination: paginationResponse(result),
	}
	for i, row := range result.Items {
		response.Data[i] = CustomerResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Email:       row.Email,
			PhoneNumber: row.PhoneNumber,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers.
//
// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    request body CreateCustomerRequest true "Customer"
// @Success  201 {object} CustomerResponse
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /api/v1/customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.PhoneNumber)
	if err != nil {
		return badRequest(c, err)
	}

	customer, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to create customer")
	}

	return c.JSON(http.StatusCreated, CustomerResponse{
		ID:          customer.ID().String(),
		Name:        customer.Name(),
		Email:       customer.Email(),
		PhoneNumber: customer.PhoneNumber(),
	})
}
