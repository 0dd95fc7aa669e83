package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByPhone map[string]*model.User
	ByID    map[int64]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository holding the given users.
func NewUserRepositoryStub(users ...*model.User) *UserRepositoryStub {
	s := &UserRepositoryStub{
		ByPhone: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
	}
	for _, u := range users {
		s.ByPhone[u.PhoneNumber] = u
		s.ByID[u.ID] = u
	}
	return s
}

// GetByPhone fetches user by phone number or returns not found.
func (s *UserRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByPhone[phone]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CountByRole tallies stored users by role.
func (s *UserRepositoryStub) CountByRole(ctx context.Context) (map[model.Role]int, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	counts := make(map[model.Role]int)
	for _, u := range s.ByID {
		counts[u.Role]++
	}
	return counts, nil
}

// StatusUpdateCall stores information about OrderRepository.UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID  int64
	Expected model.OrderStatus
	Next     model.OrderStatus
	Event    *model.Event
}

// OrderRepositoryStub keeps orders in memory and applies filters like the real store.
// Function fields override the default behaviour.
type OrderRepositoryStub struct {
	Orders []model.Order

	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListFn         func(context.Context, repository.OrderFilter) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus, *model.Event) error

	Filters []repository.OrderFilter
	Updates []StatusUpdateCall
	mu      sync.Mutex
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List records the filter and returns matching orders newest first.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	s.mu.Lock()
	s.Filters = append(s.Filters, filter)
	s.mu.Unlock()
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	allowed := make(map[int64]bool, len(filter.ProductIDs))
	for _, id := range filter.ProductIDs {
		allowed[id] = true
	}

	var out []model.Order
	for _, o := range s.Orders {
		if filter.Since != nil && o.OrderDate.Before(*filter.Since) {
			continue
		}
		if filter.Restricted && !containsAny(o, allowed) {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

// UpdateStatus records the call and applies a compare-and-set on the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, expected, next model.OrderStatus, event *model.Event) error {
	s.mu.Lock()
	s.Updates = append(s.Updates, StatusUpdateCall{OrderID: id, Expected: expected, Next: next, Event: event})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, expected, next, event)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID != id {
			continue
		}
		if s.Orders[i].Status != expected {
			return domainErrors.ErrConflict
		}
		s.Orders[i].Status = next
		return nil
	}
	return domainErrors.ErrNotFound
}

func containsAny(o model.Order, ids map[int64]bool) bool {
	for _, item := range o.CartItems {
		if ids[item.ProductID] {
			return true
		}
	}
	return false
}

// ProductRepositoryStub serves a fixed catalog.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// ListByAdmin returns products owned by adminID.
func (s *ProductRepositoryStub) ListByAdmin(ctx context.Context, adminID int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Product
	for _, p := range s.Products {
		if p.AdminID == adminID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListAll returns the whole catalog.
func (s *ProductRepositoryStub) ListAll(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Product(nil), s.Products...), nil
}

// StoreUpdateCall stores information about StoreRepository.UpdateStatus invocations.
type StoreUpdateCall struct {
	StoreID int64
	Status  model.StoreStatus
	Event   *model.Event
}

// StoreRepositoryStub keeps stores in memory.
type StoreRepositoryStub struct {
	Stores   []model.Store
	Err      error
	UpdateFn func(context.Context, int64, model.StoreStatus, *model.Event) error
	Updates  []StoreUpdateCall
	Filters  []*model.StoreStatus
}

// GetByOwner returns the store of ownerID.
func (s *StoreRepositoryStub) GetByOwner(ctx context.Context, ownerID int64) (*model.Store, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, st := range s.Stores {
		if st.OwnerID == ownerID {
			store := st
			return &store, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns the store with id.
func (s *StoreRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, st := range s.Stores {
		if st.ID == id {
			store := st
			return &store, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stores matching status, or all when status is nil.
func (s *StoreRepositoryStub) List(ctx context.Context, status *model.StoreStatus) ([]model.Store, error) {
	s.Filters = append(s.Filters, status)
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Store
	for _, st := range s.Stores {
		if status == nil || st.Status == *status {
			out = append(out, st)
		}
	}
	return out, nil
}

// UpdateStatus records the call and updates the stored status.
func (s *StoreRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.StoreStatus, event *model.Event) error {
	s.Updates = append(s.Updates, StoreUpdateCall{StoreID: id, Status: status, Event: event})
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status, event)
	}
	for i := range s.Stores {
		if s.Stores[i].ID == id {
			s.Stores[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// EventRepositoryStub is a concurrency-safe outbox for dispatcher tests.
type EventRepositoryStub struct {
	ClaimFn   func(context.Context, int) ([]model.Event, error)
	MarkFn    func(context.Context, int64) error
	ReleaseFn func(context.Context, int64) error

	Batches  [][]model.Event
	Sent     []int64
	Released []int64
	claims   int
	mu       sync.Mutex
}

// ClaimBatch pops the next configured batch, then returns empty batches.
func (s *EventRepositoryStub) ClaimBatch(ctx context.Context, limit int) ([]model.Event, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims < len(s.Batches) {
		batch := s.Batches[s.claims]
		s.claims++
		return batch, nil
	}
	return nil, nil
}

// MarkSent records a delivered event.
func (s *EventRepositoryStub) MarkSent(ctx context.Context, id int64) error {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, id)
	return nil
}

// Release records an event handed back for retry.
func (s *EventRepositoryStub) Release(ctx context.Context, id int64) error {
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Released = append(s.Released, id)
	return nil
}

// Snapshot returns copies of the sent and released ids.
func (s *EventRepositoryStub) Snapshot() (sent, released []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.Sent...), append([]int64(nil), s.Released...)
}

// RepositoryFactoryStub bundles stubs behind repository.Factory.
type RepositoryFactoryStub struct {
	UsersRepo    repository.UserRepository
	OrdersRepo   repository.OrderRepository
	ProductsRepo repository.ProductRepository
	StoresRepo   repository.StoreRepository
	EventsRepo   repository.EventRepository
}

func (f RepositoryFactoryStub) Users() repository.UserRepository       { return f.UsersRepo }
func (f RepositoryFactoryStub) Orders() repository.OrderRepository     { return f.OrdersRepo }
func (f RepositoryFactoryStub) Products() repository.ProductRepository { return f.ProductsRepo }
func (f RepositoryFactoryStub) Stores() repository.StoreRepository     { return f.StoresRepo }
func (f RepositoryFactoryStub) Events() repository.EventRepository     { return f.EventsRepo }

var (
	_ repository.UserRepository    = (*UserRepositoryStub)(nil)
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ repository.ProductRepository = (*ProductRepositoryStub)(nil)
	_ repository.StoreRepository   = (*StoreRepositoryStub)(nil)
	_ repository.EventRepository   = (*EventRepositoryStub)(nil)
	_ repository.Factory           = RepositoryFactoryStub{}
)
