package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lease-market/internal/domain/lease"
	reqdto "lease-market/internal/handler/dto/request"
	resdto "lease-market/internal/handler/dto/response"
	"lease-market/internal/handler/httperr"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase/leasing"

	"github.com/gin-gonic/gin"
)

type LeaseHandler struct {
	commands leasing.Commands
	queries  leasing.Queries
}

func NewLeaseHandler(commands leasing.Commands, queries leasing.Queries) *LeaseHandler {
	return &LeaseHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Lease a resource
// @Description Lease a resource for every hour between time_from and time_to (inclusive, truncated to the hour)
// @Tags leases
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLeaseRequest true "Lease request"
// @Success 201 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/leases [post]
func (h *LeaseHandler) Create(c *gin.Context) {
	var req reqdto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Request body too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			fmt.Sprintf("Lease span exceeds %d hours", reqdto.MaxLeaseHours), nil)
		return
	}

	result, err := h.commands.Lease(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrContractConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lease contract conflicts with a stored contract", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp := result.Response
	if !resp.OK() {
		rej := resp.Rejection()
		detail := resdto.FromRejection(resp)
		httperr.AbortWithError(c, rejectionStatus(rej), rejectionError(rej), detail.Errors[0], detail)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromContract(result.Contract))
}

// @Summary List resource contracts
// @Description List contracts of a resource touching any day in [from, to]
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id}/contracts [get]
func (h *LeaseHandler) ContractsForResource(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid resource ID format")
	if !ok {
		return
	}

	var q reqdto.ContractsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameters from and to are required", nil)
		return
	}

	views, err := h.queries.ContractsForResource(c.Request.Context(), id, q.From, q.To)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidDayRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid day range", nil)
		case errs.Is(err, errs.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.ContractResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromContractView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get master
// @Tags masters
// @Produce json
// @Param id path int true "Master ID"
// @Success 200 {object} resdto.MasterResponse
// @Failure 404 {object} httperr.Response
// @Router /api/masters/{id} [get]
func (h *LeaseHandler) GetMaster(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid master ID format")
	if !ok {
		return
	}

	view, err := h.queries.GetMaster(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrMasterNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Master not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMasterView(view))
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id} [get]
func (h *LeaseHandler) GetResource(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid resource ID format")
	if !ok {
		return
	}

	view, err := h.queries.GetResource(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

func parseIDParam(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return 0, false
	}
	return id, true
}

func rejectionStatus(rej *lease.Rejection) int {
	switch rej.Kind {
	case lease.KindMasterNotFound, lease.KindResourceNotFound:
		return http.StatusNotFound
	case lease.KindHourConflict:
		return http.StatusConflict
	case lease.KindDailyOvertimeLimit:
		return http.StatusUnprocessableEntity
	}
	if rej.Cause != nil && (errs.Is(rej.Cause, leasing.ErrMalformedTimestamp) || errs.Is(rej.Cause, leasing.ErrInvertedRange)) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func rejectionError(rej *lease.Rejection) error {
	if rej.Cause != nil {
		return errs.Mark(rej.Cause, errs.ErrLeaseRejected)
	}
	return errs.Wrap(errs.ErrLeaseRejected, rej.Kind.String())
}
