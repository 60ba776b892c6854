// Package http exposes the fulfillment engine over a REST API. Every
// mutating route reads the acting user from the X-Actor-Id and X-Actor-Role
// headers; identity issuance happens upstream, the engine only enforces
// role capabilities.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerOrderHandler     commands.RegisterOrderCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler
	buildChecklistHandler    commands.BuildChecklistCommandHandler
	recordScanHandler        commands.RecordScanCommandHandler
	assignDeliveryHandler    commands.AssignDeliveryCommandHandler
	reassignDeliveryHandler  commands.ReassignDeliveryCommandHandler
	recordCollectionHandler  commands.RecordCollectionCommandHandler
	confirmCollectionHandler commands.ConfirmCollectionCommandHandler
	closeCollectionHandler   commands.CloseCollectionCommandHandler

	// Query handlers
	orderProgressHandler       queries.GetOrderProgressQueryHandler
	messengerCandidatesHandler queries.GetMessengerCandidatesQueryHandler
	messengerBalanceHandler    queries.GetMessengerBalanceQueryHandler
	pendingCollectionsHandler  queries.GetPendingCollectionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	buildChecklistHandler commands.BuildChecklistCommandHandler,
	recordScanHandler commands.RecordScanCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	reassignDeliveryHandler commands.ReassignDeliveryCommandHandler,
	recordCollectionHandler commands.RecordCollectionCommandHandler,
	confirmCollectionHandler commands.ConfirmCollectionCommandHandler,
	closeCollectionHandler commands.CloseCollectionCommandHandler,
	orderProgressHandler queries.GetOrderProgressQueryHandler,
	messengerCandidatesHandler queries.GetMessengerCandidatesQueryHandler,
	messengerBalanceHandler queries.GetMessengerBalanceQueryHandler,
	pendingCollectionsHandler queries.GetPendingCollectionsQueryHandler,
) *Server {
	return &Server{
		registerOrderHandler:       registerOrderHandler,
		requestTransitionHandler:   requestTransitionHandler,
		buildChecklistHandler:      buildChecklistHandler,
		recordScanHandler:          recordScanHandler,
		assignDeliveryHandler:      assignDeliveryHandler,
		reassignDeliveryHandler:    reassignDeliveryHandler,
		recordCollectionHandler:    recordCollectionHandler,
		confirmCollectionHandler:   confirmCollectionHandler,
		closeCollectionHandler:     closeCollectionHandler,
		orderProgressHandler:       orderProgressHandler,
		messengerCandidatesHandler: messengerCandidatesHandler,
		messengerBalanceHandler:    messengerBalanceHandler,
		pendingCollectionsHandler:  pendingCollectionsHandler,
	}
}

// RegisterRoutes binds all fulfillment routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.RegisterOrder)
	v1.GET("/orders/:orderId/progress", s.GetOrderProgress)
	v1.POST("/orders/:orderId/transition", s.RequestTransition)
	v1.POST("/orders/:orderId/checklist", s.BuildChecklist)
	v1.POST("/orders/:orderId/scans", s.RecordScan)
	v1.POST("/orders/:orderId/assignment", s.AssignDelivery)
	v1.PUT("/orders/:orderId/assignment", s.ReassignDelivery)
	v1.POST("/orders/:orderId/collection", s.RecordCollection)
	v1.POST("/orders/:orderId/collection/confirm", s.ConfirmCollection)
	v1.POST("/orders/:orderId/collection/close", s.CloseCollection)

	v1.GET("/messengers", s.GetMessengerCandidates)
	v1.GET("/messengers/:messengerId/balance", s.GetMessengerBalance)
	v1.GET("/collections/pending", s.GetPendingCollections)
}

// RegisterOrder handles POST /api/v1/orders.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body RegisterOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	totalAmount, err := kernel.NewMoney(body.TotalAmount)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.OrderItemInput{
			ProductCode: item.ProductCode,
			Barcode:     item.Barcode,
			Quantity:    item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterOrderCommand(orderID, body.Number,
		body.DeliveryMethod, body.PaymentMethod, totalAmount, items, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.OrdersRegisteredTotal.Inc()
	return ctx.JSON(http.StatusCreated, RegisterOrderResponse{OrderID: orderID.String()})
}

// RequestTransition handles POST /api/v1/orders/:orderId/transition.
func (s *Server) RequestTransition(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, body.Target, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.StateTransitionsTotal.WithLabelValues(body.Target).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// BuildChecklist handles POST /api/v1/orders/:orderId/checklist.
func (s *Server) BuildChecklist(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewBuildChecklistCommand(orderID, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.buildChecklistHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordScan handles POST /api/v1/orders/:orderId/scans.
func (s *Server) RecordScan(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body ScanRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRecordScanCommand(orderID, body.Code, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, handleErr := s.recordScanHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		metrics.ScansRejectedTotal.Inc()
		return writeError(ctx, handleErr)
	}

	metrics.ScansAcceptedTotal.Inc()
	return ctx.JSON(http.StatusOK, ScanResponse{
		LineCompleted: result.LineCompleted,
		AllVerified:   result.AllVerified,
	})
}

// AssignDelivery handles POST /api/v1/orders/:orderId/assignment.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	by, orderID, kind, assigneeID, err := bindAssignmentRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, kind, assigneeID, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.AssignmentsTotal.WithLabelValues(kind.String()).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// ReassignDelivery handles PUT /api/v1/orders/:orderId/assignment.
func (s *Server) ReassignDelivery(ctx echo.Context) error {
	by, orderID, kind, assigneeID, err := bindAssignmentRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReassignDeliveryCommand(orderID, kind, assigneeID, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.reassignDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.AssignmentsTotal.WithLabelValues(kind.String()).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RecordCollection handles POST /api/v1/orders/:orderId/collection.
func (s *Server) RecordCollection(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CollectionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRecordCollectionCommand(orderID, body.Method, amount, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.recordCollectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmCollection handles POST /api/v1/orders/:orderId/collection/confirm.
func (s *Server) ConfirmCollection(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmCollectionCommand(orderID, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.confirmCollectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseCollection handles POST /api/v1/orders/:orderId/collection/close.
func (s *Server) CloseCollection(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCloseCollectionCommand(orderID, by)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.closeCollectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.CollectionsClosedTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderProgress handles GET /api/v1/orders/:orderId/progress.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderProgressQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	progress, err := s.orderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]OrderProgressLine, 0, len(progress.Lines))
	for _, line := range progress.Lines {
		lines = append(lines, OrderProgressLine{
			ItemID:           line.ItemID.String(),
			ProductCode:      line.ProductCode,
			Barcode:          line.Barcode,
			RequiredQuantity: line.RequiredQuantity,
			VerifiedCount:    line.VerifiedCount,
			IsVerified:       line.IsVerified,
		})
	}

	return ctx.JSON(http.StatusOK, OrderProgressResponse{
		OrderID:       progress.OrderID.String(),
		Number:        progress.Number,
		Status:        progress.Status,
		RequiredTotal: progress.RequiredTotal,
		VerifiedTotal: progress.VerifiedTotal,
		Lines:         lines,
	})
}

// GetMessengerCandidates handles GET /api/v1/messengers.
func (s *Server) GetMessengerCandidates(ctx echo.Context) error {
	query := queries.NewGetMessengerCandidatesQuery(ctx.QueryParam("zone"))

	candidates, err := s.messengerCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MessengerCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		response = append(response, MessengerCandidate{
			ID:        candidate.ID.String(),
			Name:      candidate.Name,
			Zone:      candidate.Zone,
			ZoneMatch: candidate.ZoneMatch,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMessengerBalance handles GET /api/v1/messengers/:messengerId/balance.
func (s *Server) GetMessengerBalance(ctx echo.Context) error {
	messengerID, err := kernel.UUIDFromString(ctx.Param("messengerId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetMessengerBalanceQuery(messengerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	balance, err := s.messengerBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessengerBalanceResponse{
		MessengerID:    balance.MessengerID.String(),
		ReceivedTotal:  balance.ReceivedTotal,
		DeliveredTotal: balance.DeliveredTotal,
		Balance:        balance.Balance,
	})
}

// GetPendingCollections handles GET /api/v1/collections/pending.
func (s *Server) GetPendingCollections(ctx echo.Context) error {
	query := queries.NewGetPendingCollectionsQuery()

	collections, err := s.pendingCollectionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PendingCollection, 0, len(collections))
	for _, collection := range collections {
		response = append(response, PendingCollection{
			OrderID:        collection.OrderID.String(),
			OrderNumber:    collection.OrderNumber,
			Status:         collection.Status,
			Method:         collection.Method,
			ExpectedAmount: collection.ExpectedAmount,
			AmountReceived: collection.AmountReceived,
			HasDiscrepancy: collection.HasDiscrepancy,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindAssignmentRequest reads the shared request shape of assign and
// reassign calls.
func bindAssignmentRequest(ctx echo.Context) (
	actor.Actor, kernel.UUID, assignment.AssigneeKind, kernel.UUID, error,
) {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, assignment.AssigneeUnknown, kernel.UUID{}, err
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, assignment.AssigneeUnknown, kernel.UUID{}, err
	}

	var body AssignmentRequest
	if err = ctx.Bind(&body); err != nil {
		return actor.Actor{}, kernel.UUID{}, assignment.AssigneeUnknown, kernel.UUID{},
			errors.New("invalid request body")
	}

	kind, err := assigneeKindFromString(body.Kind)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, assignment.AssigneeUnknown, kernel.UUID{}, err
	}

	assigneeID, err := kernel.UUIDFromString(body.AssigneeID)
	if err != nil {
		return actor.Actor{}, kernel.UUID{}, assignment.AssigneeUnknown, kernel.UUID{}, err
	}

	return by, orderID, kind, assigneeID, nil
}

// actorFromHeaders builds the acting user from the identity headers.
func actorFromHeaders(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return actor.Actor{}, errors.New("missing or invalid X-Actor-Id header")
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get("X-Actor-Role"))
	if err != nil {
		return actor.Actor{}, errors.New("missing or invalid X-Actor-Role header")
	}

	return actor.NewActor(id, role)
}

func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

func assigneeKindFromString(s string) (assignment.AssigneeKind, error) {
	switch s {
	case "carrier":
		return assignment.AssigneeCarrier, nil
	case "messenger":
		return assignment.AssigneeMessenger, nil
	default:
		return assignment.AssigneeUnknown, errs.NewValueIsInvalidError("kind")
	}
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// writeError maps a use case failure to its HTTP status. Every workflow
// error unwraps to one of the errs sentinels.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrOperationNotAllowed),
		errors.Is(err, errs.ErrNotAssignedToMessenger):
		return http.StatusForbidden

	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrUnknownBarcode):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrAlreadyVerified),
		errors.Is(err, errs.ErrOrderNotReady),
		errors.Is(err, errs.ErrConcurrentConflict):
		return http.StatusConflict

	case errors.Is(err, errs.ErrPaymentNotReconciled),
		errors.Is(err, errs.ErrPreconditionNotMet),
		errors.Is(err, errs.ErrInactiveAssignee),
		errors.Is(err, errs.ErrMethodMismatch):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
