package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/usecase"
	"cambiazo/pkg/response"
)

type JobHandler struct {
	jobUseCase *usecase.JobUseCase
}

func NewJobHandler(jobUseCase *usecase.JobUseCase) *JobHandler {
	return &JobHandler{
		jobUseCase: jobUseCase,
	}
}

type createJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	City        string `json:"city" validate:"required"`
}

func (h *JobHandler) CreateJob(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	job, err := h.jobUseCase.Create(c.Request().Context(), userID, usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, job)
}

func (h *JobHandler) ListJobs(c echo.Context) error {
	criteria := criteriaFromQuery(c)

	jobs, err := h.jobUseCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, jobs)
}
