package usecase

import (
	"context"
	"strings"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/domain/search"
	"cambiazo/internal/infrastructure/feed"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type JobUseCase struct {
	jobRepo repository.JobRepository

	board *feed.Projection[*entity.Job]
	sub   repository.Subscription
}

func NewJobUseCase(jobRepo repository.JobRepository) *JobUseCase {
	return &JobUseCase{
		jobRepo: jobRepo,
		board:   feed.NewProjection[*entity.Job](),
	}
}

// StartBoardFeed mirrors the public job board into memory, like the product
// catalog feed.
func (uc *JobUseCase) StartBoardFeed(ctx context.Context) {
	uc.sub = uc.jobRepo.Watch(ctx,
		func(jobs []*entity.Job) {
			uc.board.Replace(jobs)
		},
		func(err error) {
			logger.Error("Job board feed failed: %v", err)
		},
	)
}

func (uc *JobUseCase) StopBoardFeed() {
	if uc.sub != nil {
		uc.sub.Stop()
	}
}

type CreateJobInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	City        string `json:"city" validate:"required"`
}

func (uc *JobUseCase) Create(ctx context.Context, userID string, input CreateJobInput) (*entity.Job, error) {
	if !search.ValidCity(input.City) {
		return nil, errors.BadRequest("Unknown city", nil)
	}

	job := &entity.Job{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		City:        input.City,
	}

	if job.Title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}
	if job.Description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Info("Job %s published by %s", job.ID, userID)
	return job, nil
}

// Search filters the current board snapshot. Jobs carry no price, category
// or condition, so those predicates only match when unset.
func (uc *JobUseCase) Search(ctx context.Context, criteria search.Criteria) ([]*entity.Job, error) {
	jobs, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if criteria.IsZero() {
		return jobs, nil
	}
	return search.Filter(jobs, criteria), nil
}

// Watch opens a dedicated live feed over the job board for one consumer.
func (uc *JobUseCase) Watch(ctx context.Context, onSnapshot func([]*entity.Job), onError func(error)) repository.Subscription {
	return uc.jobRepo.Watch(ctx, onSnapshot, onError)
}

func (uc *JobUseCase) snapshot(ctx context.Context) ([]*entity.Job, error) {
	if uc.board.Ready() {
		return uc.board.Items(), nil
	}
	return uc.jobRepo.List(ctx)
}
