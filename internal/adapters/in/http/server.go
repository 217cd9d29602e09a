package http

import (
	"errors"
	"fmt"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler
	updateStatusHandler   commands.UpdateDeliveryStatusCommandHandler

	// Query handlers
	calculateFeeHandler queries.CalculateDeliveryFeeQueryHandler
	activeHandler       queries.GetActiveDeliveriesQueryHandler
	byPartnerHandler    queries.GetDeliveriesByPartnerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	calculateFeeHandler queries.CalculateDeliveryFeeQueryHandler,
	activeHandler queries.GetActiveDeliveriesQueryHandler,
	byPartnerHandler queries.GetDeliveriesByPartnerQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler: createDeliveryHandler,
		acceptDeliveryHandler: acceptDeliveryHandler,
		updateStatusHandler:   updateStatusHandler,
		calculateFeeHandler:   calculateFeeHandler,
		activeHandler:         activeHandler,
		byPartnerHandler:      byPartnerHandler,
	}
}

// RegisterRoutes mounts the delivery API under /api/v1.
func RegisterRoutes(e *echo.Echo, s *Server) {
	v1 := e.Group("/api/v1")
	v1.POST("/delivery-fee", s.CalculateDeliveryFee)
	v1.POST("/deliveries", s.CreateDelivery)
	v1.POST("/deliveries/:id/accept", s.AcceptDelivery)
	v1.PUT("/deliveries/:id/status", s.UpdateDeliveryStatus)
	v1.GET("/deliveries/active", s.GetActiveDeliveries)
	v1.GET("/partners/:partnerId/deliveries", s.GetDeliveriesByPartner)
}

// CalculateDeliveryFee handles POST /api/v1/delivery-fee.
//
//	@Summary	Quote a delivery fee
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CalculateFeeRequest	true	"distance in km, or pickup and dropoff coordinates"
//	@Success	200		{object}	FeeQuoteResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/delivery-fee [post]
func (s *Server) CalculateDeliveryFee(ctx echo.Context) error {
	var request CalculateFeeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := feeQueryFromRequest(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	quote, err := s.calculateFeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, FeeQuoteResponse{
		DistanceKm:       quote.DistanceKm,
		BaseFee:          quote.BaseFee.StringFixed(2),
		DistanceFee:      quote.DistanceFee.StringFixed(2),
		TotalFee:         quote.TotalFee.StringFixed(2),
		Zone:             quote.ZoneName,
		Fallback:         quote.IsFallback,
		EstimatedMinutes: quote.EstimatedMinutes,
	})
}

// CreateDelivery handles POST /api/v1/deliveries.
//
//	@Summary	Open a delivery for a placed order
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateDeliveryRequest	true	"order, customer, addresses and coordinates"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/deliveries [post]
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID: "+err.Error())
	}
	pickup, err := kernel.NewCoordinate(request.Pickup.Latitude, request.Pickup.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid pickup coordinate: "+err.Error())
	}
	dropoff, err := kernel.NewCoordinate(request.Dropoff.Latitude, request.Dropoff.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid dropoff coordinate: "+err.Error())
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, orderID, customerID,
		request.PickupAddress, request.DeliveryAddress,
		pickup, dropoff,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept.
//
//	@Summary	Claim a pending delivery for a partner
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"delivery ID"
//	@Param		request	body		AcceptDeliveryRequest	true	"accepting partner"
//	@Success	204		"accepted"
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/deliveries/{id}/accept [post]
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var request AcceptDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(request.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner ID: "+err.Error())
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:id/status.
//
//	@Summary	Move a delivery to a new lifecycle state
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"delivery ID"
//	@Param		request	body		UpdateStatusRequest	true	"target status"
//	@Success	204		"updated"
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/deliveries/{id}/status [put]
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	var partnerID *kernel.UUID
	if request.PartnerID != nil {
		id, parseErr := kernel.UUIDFromString(*request.PartnerID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid partner ID: "+parseErr.Error())
		}
		partnerID = &id
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, status, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
//
//	@Summary	List deliveries that still need work
//	@Tags		deliveries
//	@Produce	json
//	@Success	200	{array}		DeliveryResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/deliveries/active [get]
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.activeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponses(deliveries))
}

// GetDeliveriesByPartner handles GET /api/v1/partners/:partnerId/deliveries.
//
//	@Summary	List a partner's deliveries, newest first
//	@Tags		partners
//	@Produce	json
//	@Param		partnerId	path		string	true	"partner ID"
//	@Success	200			{array}		DeliveryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/partners/{partnerId}/deliveries [get]
func (s *Server) GetDeliveriesByPartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "Invalid partner ID: "+err.Error())
	}

	query, err := queries.NewGetDeliveriesByPartnerQuery(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	deliveries, err := s.byPartnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponses(deliveries))
}

// feeQueryFromRequest picks the quote form: an explicit distance when the
// caller sent one, the coordinate pair otherwise.
func feeQueryFromRequest(request CalculateFeeRequest) (queries.CalculateDeliveryFeeQuery, error) {
	if request.Distance != nil {
		return queries.NewCalculateDeliveryFeeQueryFromDistance(*request.Distance)
	}

	pickup, err := kernel.NewCoordinate(request.Pickup.Latitude, request.Pickup.Longitude)
	if err != nil {
		return queries.CalculateDeliveryFeeQuery{}, fmt.Errorf("invalid pickup coordinate: %w", err)
	}
	dropoff, err := kernel.NewCoordinate(request.Dropoff.Latitude, request.Dropoff.Longitude)
	if err != nil {
		return queries.CalculateDeliveryFeeQuery{}, fmt.Errorf("invalid dropoff coordinate: %w", err)
	}

	return queries.NewCalculateDeliveryFeeQuery(pickup, dropoff)
}

func toDeliveryResponses(deliveries []queries.DeliveryQueryResponse) []DeliveryResponse {
	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:               d.ID.String(),
			OrderID:          d.OrderID.String(),
			Status:           d.Status,
			PickupAddress:    d.PickupAddress,
			DeliveryAddress:  d.DeliveryAddress,
			DistanceKm:       d.DistanceKm,
			DeliveryFee:      d.DeliveryFee.StringFixed(2),
			EstimatedMinutes: d.EstimatedMinutes,
			AssignedAt:       d.AssignedAt,
			PickedUpAt:       d.PickedUpAt,
			DeliveredAt:      d.DeliveredAt,
		}
		if d.PartnerID != nil {
			partnerID := d.PartnerID.String()
			response[i].PartnerID = &partnerID
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain and application errors onto HTTP statuses.
// Assignment races and stale versions surface as 409 so the partner app can
// refresh and retry instead of showing a generic failure.
func errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, delivery.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, delivery.ErrIllegalTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
