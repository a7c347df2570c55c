package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Identity headers resolved by the upstream authentication collaborator.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	createReviewHandler    commands.CreateReviewCommandHandler
	updateReviewHandler    commands.UpdateReviewCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getBusinessStatsHandler queries.GetBusinessStatsQueryHandler
	getPlatformStatsHandler queries.GetPlatformStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	createReviewHandler commands.CreateReviewCommandHandler,
	updateReviewHandler commands.UpdateReviewCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getBusinessStatsHandler queries.GetBusinessStatsQueryHandler,
	getPlatformStatsHandler queries.GetPlatformStatsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		createReviewHandler:     createReviewHandler,
		updateReviewHandler:     updateReviewHandler,
		getOrdersHandler:        getOrdersHandler,
		getBusinessStatsHandler: getBusinessStatsHandler,
		getPlatformStatsHandler: getPlatformStatsHandler,
	}
}

// actorFromRequest resolves the acting user from the identity headers.
// Identity resolution happens upstream; the headers carry the result.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrPackageSourceUnavailable),
		errors.Is(err, order.ErrSelfPurchase),
		errors.Is(err, review.ErrNotEligible):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrRoleViolation):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, review.ErrDuplicateReview),
		errors.Is(err, errs.ErrConcurrentModification):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

// unauthorizedResponse reports missing or malformed identity headers.
func unauthorizedResponse(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid identity headers",
	})
}

// GetBaseInfo handles GET /api/v1/base-info - platform-wide statistics.
func (s *Server) GetBaseInfo(ctx echo.Context) error {
	query := queries.NewGetPlatformStatsQuery()

	stats, err := s.getPlatformStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BaseInfo{
		ReviewCount:   stats.ReviewCount,
		AverageRating: stats.AverageRating,
		BusinessCount: stats.BusinessCount,
		OfferCount:    stats.OfferCount,
	})
}

// GetBusinessStats handles GET /api/v1/businesses/{businessId}/stats.
func (s *Server) GetBusinessStats(ctx echo.Context, businessId openapi_types.UUID) error {
	businessID, err := kernel.UUIDFromBytes(businessId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetBusinessStatsQuery(businessID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := s.getBusinessStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BusinessStats{
		BusinessId:      stats.BusinessID.Bytes(),
		PendingCount:    stats.PendingCount,
		InProgressCount: stats.InProgressCount,
		CompletedCount:  stats.CompletedCount,
		ReviewCount:     stats.ReviewCount,
		AverageRating:   stats.AverageRating,
	})
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	statusFilter := order.StatusUnknown
	if params.Status != nil {
		statusFilter, err = order.StatusFromString(string(*params.Status))
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	query, err := queries.NewGetOrdersQuery(actor, statusFilter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:           o.ID.Bytes(),
			CustomerId:   o.CustomerID.Bytes(),
			BusinessId:   o.BusinessID.Bytes(),
			OfferId:      o.OfferID.Bytes(),
			Title:        o.Title,
			Description:  o.Description,
			Tier:         o.Tier,
			Price:        o.Price.String(),
			Revisions:    o.Revisions,
			DeliveryDays: o.DeliveryDays,
			Features:     o.Features,
			Status:       servers.OrderStatus(o.Status),
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order for a package.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	var newOrder servers.NewOrder
	if err = ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	packageID, err := kernel.UUIDFromBytes(newOrder.PackageId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, packageID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CancelOrder handles DELETE /api/v1/orders/{orderId} - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var update servers.OrderStatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(string(update.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actor, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReview handles POST /api/v1/reviews - reviews a business.
func (s *Server) CreateReview(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	var newReview servers.NewReview
	if err = ctx.Bind(&newReview); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	businessID, err := kernel.UUIDFromBytes(newReview.BusinessId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	comment := ""
	if newReview.Comment != nil {
		comment = *newReview.Comment
	}

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, businessID, newReview.Rating, comment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateReview handles PATCH /api/v1/reviews/{reviewId}.
func (s *Server) UpdateReview(ctx echo.Context, reviewId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	reviewID, err := kernel.UUIDFromBytes(reviewId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var update servers.ReviewUpdate
	if err = ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	comment := ""
	if update.Comment != nil {
		comment = *update.Comment
	}

	cmd, err := commands.NewUpdateReviewCommand(reviewID, actor, update.Rating, comment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
