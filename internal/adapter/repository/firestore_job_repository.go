package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/infrastructure/feed"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type firestoreJobRepository struct {
	client *firestore.Client
}

func NewFirestoreJobRepository(client *firestore.Client) repository.JobRepository {
	return &firestoreJobRepository{
		client: client,
	}
}

func (r *firestoreJobRepository) jobs() *firestore.CollectionRef {
	return r.client.Collection("jobs")
}

func (r *firestoreJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if job.ID == "" {
		doc := r.jobs().NewDoc()
		job.ID = doc.ID
	}

	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	_, err := r.jobs().Doc(job.ID).Set(ctx, job)
	if err != nil {
		return errors.Internal("Failed to create job", err)
	}

	return nil
}

func (r *firestoreJobRepository) List(ctx context.Context) ([]*entity.Job, error) {
	iter := r.jobQuery().Documents(ctx)
	var jobs []*entity.Job

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate jobs", err)
		}
		if job, ok := decodeJob(doc); ok {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (r *firestoreJobRepository) Watch(ctx context.Context, onSnapshot func([]*entity.Job), onError func(error)) repository.Subscription {
	return feed.Watch(ctx, r.jobQuery(), decodeJob, onSnapshot, onError)
}

func (r *firestoreJobRepository) jobQuery() firestore.Query {
	return r.jobs().OrderBy("createdAt", firestore.Desc)
}

func decodeJob(doc *firestore.DocumentSnapshot) (*entity.Job, bool) {
	var job entity.Job
	if err := doc.DataTo(&job); err != nil {
		logger.Warn("Skipping malformed job %s: %v", doc.Ref.ID, err)
		return nil, false
	}
	job.ID = doc.Ref.ID
	return &job, true
}
