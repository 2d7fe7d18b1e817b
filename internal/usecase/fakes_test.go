package usecase

import (
	"context"
	"fmt"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/domain/search"
	"cambiazo/pkg/errors"
)

type fakeSubscription struct {
	stopped bool
}

func (s *fakeSubscription) Stop() { s.stopped = true }

type fakeProductRepository struct {
	products map[string]*entity.Product
	order    []string
	watchers []func([]*entity.Product)
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.order)+1)
	}
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	r.notify()
	return nil
}

func (r *fakeProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return r.snapshot(), nil
}

func (r *fakeProductRepository) Watch(ctx context.Context, onSnapshot func([]*entity.Product), onError func(error)) repository.Subscription {
	r.watchers = append(r.watchers, onSnapshot)
	onSnapshot(r.snapshot())
	return &fakeSubscription{}
}

func (r *fakeProductRepository) snapshot() []*entity.Product {
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out
}

func (r *fakeProductRepository) notify() {
	for _, w := range r.watchers {
		w(r.snapshot())
	}
}

type fakeJobRepository struct {
	jobs []*entity.Job
}

func (r *fakeJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	}
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *fakeJobRepository) List(ctx context.Context) ([]*entity.Job, error) {
	return r.jobs, nil
}

func (r *fakeJobRepository) Watch(ctx context.Context, onSnapshot func([]*entity.Job), onError func(error)) repository.Subscription {
	onSnapshot(r.jobs)
	return &fakeSubscription{}
}

type fakeFavoriteRepository struct {
	favorites map[string]map[string]*entity.Favorite
}

func newFakeFavoriteRepository() *fakeFavoriteRepository {
	return &fakeFavoriteRepository{favorites: make(map[string]map[string]*entity.Favorite)}
}

func (r *fakeFavoriteRepository) Set(ctx context.Context, userID string, favorite *entity.Favorite) error {
	if r.favorites[userID] == nil {
		r.favorites[userID] = make(map[string]*entity.Favorite)
	}
	r.favorites[userID][favorite.ProductID] = favorite
	return nil
}

func (r *fakeFavoriteRepository) Delete(ctx context.Context, userID, productID string) error {
	delete(r.favorites[userID], productID)
	return nil
}

func (r *fakeFavoriteRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	_, ok := r.favorites[userID][productID]
	return ok, nil
}

func (r *fakeFavoriteRepository) List(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	out := make([]*entity.Favorite, 0, len(r.favorites[userID]))
	for _, f := range r.favorites[userID] {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFavoriteRepository) Watch(ctx context.Context, userID string, onSnapshot func([]*entity.Favorite), onError func(error)) repository.Subscription {
	items, _ := r.List(ctx, userID)
	onSnapshot(items)
	return &fakeSubscription{}
}

type fakeReviewRepository struct {
	reviews map[string][]*entity.Review
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{reviews: make(map[string][]*entity.Review)}
}

func (r *fakeReviewRepository) Add(ctx context.Context, targetUserID string, review *entity.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(r.reviews[targetUserID])+1)
	}
	r.reviews[targetUserID] = append(r.reviews[targetUserID], review)
	return nil
}

func (r *fakeReviewRepository) ListByTarget(ctx context.Context, targetUserID string) ([]*entity.Review, error) {
	return r.reviews[targetUserID], nil
}

func (r *fakeReviewRepository) Watch(ctx context.Context, targetUserID string, onSnapshot func([]*entity.Review), onError func(error)) repository.Subscription {
	onSnapshot(r.reviews[targetUserID])
	return &fakeSubscription{}
}

type fakeChatRepository struct {
	conversations map[string][]*entity.Message
}

func newFakeChatRepository() *fakeChatRepository {
	return &fakeChatRepository{conversations: make(map[string][]*entity.Message)}
}

func (r *fakeChatRepository) AddMessage(ctx context.Context, conversationID string, message *entity.Message) error {
	if message.ID == "" {
		message.ID = fmt.Sprintf("message-%d", len(r.conversations[conversationID])+1)
	}
	r.conversations[conversationID] = append(r.conversations[conversationID], message)
	return nil
}

func (r *fakeChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	return r.conversations[conversationID], nil
}

func (r *fakeChatRepository) Watch(ctx context.Context, conversationID string, onSnapshot func([]*entity.Message), onError func(error)) repository.Subscription {
	onSnapshot(r.conversations[conversationID])
	return &fakeSubscription{}
}

type fakeUserRepository struct {
	users map[string]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeNotifier struct {
	sent map[string][]interface{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(map[string][]interface{})}
}

func (n *fakeNotifier) SendJSONToUser(userID string, v interface{}) {
	n.sent[userID] = append(n.sent[userID], v)
}

type fakeTextService struct {
	filters     search.ExtractedFilters
	description string
	err         error
	block       chan struct{}
	calls       int
}

func (s *fakeTextService) ExtractSearchFilters(ctx context.Context, query string) (search.ExtractedFilters, error) {
	s.calls++
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return search.ExtractedFilters{}, s.err
	}
	return s.filters, nil
}

func (s *fakeTextService) GenerateListingDescription(ctx context.Context, name, category, condition string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.description, nil
}
