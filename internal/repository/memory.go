package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/model"
)

// MemoryStore is a map-backed Store. It enforces the same uniqueness and
// cascade rules as the PostgreSQL schema, so service and handler tests
// exercise the full unit-of-work contract without a database.
type MemoryStore struct {
	mu            sync.Mutex
	users         map[string]model.User
	events        map[string]model.Event
	registrations map[string]model.Registration
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]model.User),
		events:        make(map[string]model.Event),
		registrations: make(map[string]model.Registration),
	}
}

// Begin opens a unit of work that stages mutations until Commit.
func (s *MemoryStore) Begin(ctx context.Context) (UnitOfWork, error) {
	return &memoryUnitOfWork{store: s}, nil
}

type opKind int

const (
	opAddUser opKind = iota
	opAddEvent
	opUpdateEvent
	opDeleteEvent
	opAddRegistration
	opDeleteRegistration
)

type memoryOp struct {
	kind  opKind
	user  *model.User
	event *model.Event
	reg   *model.Registration
	id    string
}

type memoryUnitOfWork struct {
	store *MemoryStore
	ops   []memoryOp
	done  bool
}

func (u *memoryUnitOfWork) Users() UserRepository                 { return &memoryUserRepository{u} }
func (u *memoryUnitOfWork) Events() EventRepository               { return &memoryEventRepository{u} }
func (u *memoryUnitOfWork) Registrations() RegistrationRepository { return &memoryRegistrationRepository{u} }

// Commit validates every staged op against the committed state, then
// applies them all. The validate-then-apply split keeps a rejected batch
// from leaving partial state behind.
func (u *memoryUnitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := u.validateLocked(); err != nil {
		u.ops = nil
		return err
	}
	for _, op := range u.ops {
		switch op.kind {
		case opAddUser:
			s.users[op.user.ID] = *op.user
		case opAddEvent:
			s.events[op.event.ID] = *op.event
		case opUpdateEvent:
			s.events[op.event.ID] = *op.event
		case opDeleteEvent:
			delete(s.events, op.id)
			for id, reg := range s.registrations {
				if reg.EventID == op.id {
					delete(s.registrations, id)
				}
			}
		case opAddRegistration:
			s.registrations[op.reg.ID] = *op.reg
		case opDeleteRegistration:
			delete(s.registrations, op.id)
		}
	}
	u.ops = nil
	return nil
}

func (u *memoryUnitOfWork) validateLocked() error {
	s := u.store
	// Track emails the batch itself introduces so two staged adds in one
	// batch collide the same way two rows would.
	userEmails := make(map[string]bool)
	regEmails := make(map[string]bool)
	for _, op := range u.ops {
		switch op.kind {
		case opAddUser:
			for _, existing := range s.users {
				if existing.Email == op.user.Email {
					return apperror.Conflict("user", "email already exists")
				}
			}
			if userEmails[op.user.Email] {
				return apperror.Conflict("user", "email already exists")
			}
			userEmails[op.user.Email] = true
		case opAddRegistration:
			key := op.reg.EventID + "\x00" + op.reg.Email
			for _, existing := range s.registrations {
				if existing.EventID == op.reg.EventID && existing.Email == op.reg.Email {
					return apperror.Conflict("registration", "email is already registered for this event")
				}
			}
			if regEmails[key] {
				return apperror.Conflict("registration", "email is already registered for this event")
			}
			regEmails[key] = true
		}
	}
	return nil
}

func (u *memoryUnitOfWork) Rollback(ctx context.Context) error {
	u.ops = nil
	u.done = true
	return nil
}

// ─── Users ────────────────────────────────────────────────────────────────────

type memoryUserRepository struct {
	uow *memoryUnitOfWork
}

func (r *memoryUserRepository) Add(ctx context.Context, user *model.User) error {
	copied := *user
	r.uow.ops = append(r.uow.ops, memoryOp{kind: opAddUser, user: &copied})
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, apperror.NotFound("user", id)
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (r *memoryUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ─── Events ───────────────────────────────────────────────────────────────────

type memoryEventRepository struct {
	uow *memoryUnitOfWork
}

func (r *memoryEventRepository) Add(ctx context.Context, event *model.Event) error {
	copied := *event
	r.uow.ops = append(r.uow.ops, memoryOp{kind: opAddEvent, event: &copied})
	return nil
}

func (r *memoryEventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.events[id]; ok {
		return &e, nil
	}
	return nil, apperror.NotFound("event", id)
}

// GetByIDForUpdate has no row lock to take here; the store mutex already
// serializes access.
func (r *memoryEventRepository) GetByIDForUpdate(ctx context.Context, id string) (*model.Event, error) {
	return r.GetByID(ctx, id)
}

func (r *memoryEventRepository) Update(ctx context.Context, event *model.Event) error {
	copied := *event
	r.uow.ops = append(r.uow.ops, memoryOp{kind: opUpdateEvent, event: &copied})
	return nil
}

func (r *memoryEventRepository) Delete(ctx context.Context, id string) error {
	s := r.uow.store
	s.mu.Lock()
	_, ok := s.events[id]
	s.mu.Unlock()
	if !ok {
		return apperror.NotFound("event", id)
	}
	r.uow.ops = append(r.uow.ops, memoryOp{kind: opDeleteEvent, id: id})
	return nil
}

func (r *memoryEventRepository) ListUpcoming(ctx context.Context) ([]model.Event, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []model.Event
	for _, e := range s.events {
		if e.IsRegistrationOpen() {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

// ─── Registrations ────────────────────────────────────────────────────────────

type memoryRegistrationRepository struct {
	uow *memoryUnitOfWork
}

func (r *memoryRegistrationRepository) Add(ctx context.Context, reg *model.Registration) error {
	copied := *reg
	r.uow.ops = append(r.uow.ops, memoryOp{kind: opAddRegistration, reg: &copied})
	return nil
}

func (r *memoryRegistrationRepository) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if reg, ok := s.registrations[id]; ok {
		return &reg, nil
	}
	return nil, apperror.NotFound("registration", id)
}

func (r *memoryRegistrationRepository) Delete(ctx context.Context, id string) error {
	s := r.uow.store
	s.mu.Lock()
	_, ok := s.registrations[id]
	s.mu.Unlock()
	if !ok {
		return apperror.NotFound("registration", id)
	}
	r.uow.ops = append(r.uow.ops, memoryOp{kind: opDeleteRegistration, id: id})
	return nil
}

func (r *memoryRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var regs []model.Registration
	for _, reg := range s.registrations {
		if reg.EventID == eventID {
			regs = append(regs, reg)
		}
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].CreatedAt.Before(regs[j].CreatedAt)
	})
	return regs, nil
}

func (r *memoryRegistrationRepository) EmailRegistered(ctx context.Context, eventID, email string) (bool, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, reg := range s.registrations {
		if reg.EventID == eventID && reg.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, reg := range s.registrations {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

var _ Store = (*MemoryStore)(nil)
var _ UnitOfWork = (*memoryUnitOfWork)(nil)
