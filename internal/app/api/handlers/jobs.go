package handlers

import (
	"errors"
	"net/http"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProcessJobsResponse struct {
	Processed int `json:"processed"`
}

// @Summary      Process due jobs
// @Description  Runs one processing pass over due queued jobs, priority merchants first. Idempotent; per-job failures are recorded on the job, not returned here.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespProcessJobs
// @Router       /api/v1/admin/jobs/process [post]
func ApiProcessJobs(auto *automation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		processed, err := auto.ProcessDueJobs(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(ProcessJobsResponse{Processed: processed}))
	}
}

// @Summary      List jobs
// @Description  Paginated job inspection with common filters. This is the only place failed jobs and their recorded errors are visible.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body automation.ScanJobsRequest true "Filters and pagination"
// @Success      200  {object}  handlers.RespScanJobs
// @Router       /api/v1/admin/jobs/list [post]
func ApiListJobs(auto *automation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req automation.ScanJobsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := auto.ScanJobs(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

type CancelJobRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

// @Summary      Cancel job
// @Description  Cancels a queued job. Jobs already running or finished are left untouched and the call still succeeds.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.CancelJobRequest true "Job to cancel"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/jobs/cancel [post]
func ApiCancelJob(auto *automation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CancelJobRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if err := auto.CancelJob(c.Request.Context(), req.JobID); err != nil {
			if errors.Is(err, automation.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}
