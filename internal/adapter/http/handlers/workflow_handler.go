package handlers

import (
	"errors"
	"net/http"
	request "workshop_flow/internal/adapter/http/dto/request"
	response "workshop_flow/internal/adapter/http/dto/response"
	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase"
	"workshop_flow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkflowPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid workflow payload", http.StatusBadRequest)

// WorkflowHandler exposes the workflow engine's command surface over HTTP.
//
// Every mutation carries the verified actor pair and the caller's
// expected_version; the handler only shapes payloads and maps the engine's
// typed errors onto HTTP statuses.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func (h *WorkflowHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceJob(job))
}

func (h *WorkflowHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPartsOrder(order))
}

func (h *WorkflowHandler) AdvanceJob(c *gin.Context) {
	var payload request.AdvanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeJob(c, payload.ToCommand(usecase.CommandAdvanceJob, c.Param("id")))
}

func (h *WorkflowHandler) AdvanceOrder(c *gin.Context) {
	var payload request.AdvanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeOrder(c, payload.ToCommand(usecase.CommandAdvanceOrder, c.Param("id")))
}

func (h *WorkflowHandler) ProposeJobQuote(c *gin.Context) {
	var payload request.ProposeQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeJob(c, payload.ToCommand(usecase.EntityServiceJob, c.Param("id")))
}

func (h *WorkflowHandler) ProposeOrderQuote(c *gin.Context) {
	var payload request.ProposeQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeOrder(c, payload.ToCommand(usecase.EntityPartsOrder, c.Param("id")))
}

func (h *WorkflowHandler) ResolveJobQuote(c *gin.Context) {
	var payload request.ResolveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeJob(c, payload.ToCommand(usecase.EntityServiceJob, c.Param("id")))
}

func (h *WorkflowHandler) ResolveOrderQuote(c *gin.Context) {
	var payload request.ResolveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeOrder(c, payload.ToCommand(usecase.EntityPartsOrder, c.Param("id")))
}

func (h *WorkflowHandler) AttachDispatch(c *gin.Context) {
	var payload request.AttachDispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeOrder(c, payload.ToCommand(c.Param("id")))
}

func (h *WorkflowHandler) AmendDispatch(c *gin.Context) {
	var payload request.AmendDispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	h.executeOrder(c, payload.ToCommand(c.Param("id")))
}

func (h *WorkflowHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func (h *WorkflowHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPartsOrder(order))
}

// JobTransitions renders the legal out-edges from the job's current status,
// straight from the same table the engine enforces.
func (h *WorkflowHandler) JobTransitions(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	next := entities.NextJobStatuses(job.Status)
	names := make([]string, 0, len(next))
	for _, s := range next {
		names = append(names, string(s))
	}
	c.JSON(http.StatusOK, response.TransitionsResponse{ID: job.ID, Status: string(job.Status), Next: names})
}

func (h *WorkflowHandler) OrderTransitions(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	next := entities.NextOrderStatuses(order.Status)
	names := make([]string, 0, len(next))
	for _, s := range next {
		names = append(names, string(s))
	}
	c.JSON(http.StatusOK, response.TransitionsResponse{ID: order.ID, Status: string(order.Status), Next: names})
}

func (h *WorkflowHandler) executeJob(c *gin.Context, cmd usecase.Command) {
	res, err := h.usecase.Execute(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceJob(*res.Job))
}

func (h *WorkflowHandler) executeOrder(c *gin.Context, cmd usecase.Command) {
	res, err := h.usecase.Execute(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPartsOrder(*res.Order))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEntityID), errors.Is(err, usecase.ErrInvalidActor), errors.Is(err, usecase.ErrInvalidCommand):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Entity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbiddenRole):
		return pkg.NewDomainErrorSimple("FORBIDDEN_ROLE", "Actor role is not permitted for this transition", http.StatusForbidden)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Requested transition does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTerminalState):
		return pkg.NewDomainErrorSimple("TERMINAL_STATE", "Entity is in a terminal state", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleVersion):
		return pkg.NewDomainErrorSimple("STALE_VERSION", "Entity was updated elsewhere, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyResolved):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_RESOLVED", "Quote was already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDispatchAttached):
		return pkg.NewDomainErrorSimple("DISPATCH_ALREADY_ATTACHED", "Dispatch details already recorded", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyQuote):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTE", "A quote needs at least one line item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteDispatch):
		return pkg.NewDomainErrorSimple("INCOMPLETE_DISPATCH", "Dispatch details are incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPayload):
		return pkg.NewDomainErrorSimple("MISSING_PAYLOAD", "Required payload is missing for this transition", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
