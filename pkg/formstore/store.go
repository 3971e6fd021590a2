package formstore

import (
	"container/list"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signupform/pkg/registration"
)

type entry struct {
	id   uuid.UUID
	form *registration.Form
}

// Store is a thread-safe LRU of form sessions.
type Store struct {
	capacity int
	items    map[uuid.UUID]*list.Element
	order    *list.List
	mu       sync.Mutex

	formOpts []registration.Option
	onEvict  func(id uuid.UUID, form *registration.Form)
}

// Option configures a Store.
type Option func(*Store)

// WithFormOptions sets the options passed to every registration.NewForm call.
func WithFormOptions(opts ...registration.Option) Option {
	return func(s *Store) {
		s.formOpts = append(s.formOpts, opts...)
	}
}

// WithEvictCallback registers fn to run when a session is pushed out by
// capacity or removed with Delete. It runs with the store lock held and must
// not call back into the store.
func WithEvictCallback(fn func(id uuid.UUID, form *registration.Form)) Option {
	return func(s *Store) {
		s.onEvict = fn
	}
}

// New creates a store holding at most capacity sessions.
// It panics if capacity is not positive.
func New(capacity int, opts ...Option) *Store {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	s := &Store{
		capacity: capacity,
		items:    make(map[uuid.UUID]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new form session and returns its id.
func (s *Store) Create() (uuid.UUID, *registration.Form) {
	id := uuid.New()
	form := registration.NewForm(s.formOpts...)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[id] = s.order.PushFront(&entry{id: id, form: form})
	if s.order.Len() > s.capacity {
		s.removeElement(s.order.Back())
	}
	return id, form
}

// Get returns the session and marks it as recently used.
func (s *Store) Get(id uuid.UUID) (*registration.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.order.MoveToFront(elem)
	return elem.Value.(*entry).form, nil
}

// Delete drops the session. It reports whether the session existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[id]
	if !ok {
		return false
	}
	s.removeElement(elem)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Must be called with lock held.
func (s *Store) removeElement(elem *list.Element) {
	s.order.Remove(elem)
	e := elem.Value.(*entry)
	delete(s.items, e.id)

	if s.onEvict != nil {
		s.onEvict(e.id, e.form)
	}
}
