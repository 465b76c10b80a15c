package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/model"
)

// PostgresStore opens pgx-transaction-backed units of work.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Begin opens a transaction and binds all three repositories to it.
func (s *PostgresStore) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &pgxUnitOfWork{
		tx:            tx,
		users:         &pgxUserRepository{tx: tx},
		events:        &pgxEventRepository{tx: tx},
		registrations: &pgxRegistrationRepository{tx: tx},
	}, nil
}

type pgxUnitOfWork struct {
	tx            pgx.Tx
	users         *pgxUserRepository
	events        *pgxEventRepository
	registrations *pgxRegistrationRepository
}

func (u *pgxUnitOfWork) Users() UserRepository                 { return u.users }
func (u *pgxUnitOfWork) Events() EventRepository               { return u.events }
func (u *pgxUnitOfWork) Registrations() RegistrationRepository { return u.registrations }

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		if conflict := conflictFromUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// conflictFromUniqueViolation reinterprets a 23505 unique violation as the
// matching ConflictError. Any other error yields nil.
func conflictFromUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "registrations_event_email_unique":
		return apperror.Conflict("registration", "email is already registered for this event")
	case "users_email_key":
		return apperror.Conflict("user", "email already exists")
	}
	return apperror.Conflict("", "unique constraint violated")
}

// ─── Users ────────────────────────────────────────────────────────────────────

type pgxUserRepository struct {
	tx pgx.Tx
}

func (r *pgxUserRepository) Add(ctx context.Context, user *model.User) error {
	_, err := r.tx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if conflict := conflictFromUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *pgxUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.scanUser(r.tx.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active, created_at, updated_at
		 FROM users WHERE id = $1`, id), id)
}

func (r *pgxUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanUser(r.tx.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active, created_at, updated_at
		 FROM users WHERE email = $1`, email), email)
}

func (r *pgxUserRepository) scanUser(row pgx.Row, ref string) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("user", ref)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *pgxUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

// ─── Events ───────────────────────────────────────────────────────────────────

type pgxEventRepository struct {
	tx pgx.Tx
}

const eventColumns = `id, name, description, location, start_time, end_time, creator_id, created_at, updated_at`

func (r *pgxEventRepository) Add(ctx context.Context, event *model.Event) error {
	_, err := r.tx.Exec(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.Name, event.Description, event.Location,
		event.StartTime, event.EndTime, event.CreatorID, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *pgxEventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return r.scanEvent(r.tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id), id)
}

// GetByIDForUpdate takes a row-level lock on the event so concurrent
// registrations for it serialize until this unit of work resolves.
func (r *pgxEventRepository) GetByIDForUpdate(ctx context.Context, id string) (*model.Event, error) {
	return r.scanEvent(r.tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id), id)
}

func (r *pgxEventRepository) scanEvent(row pgx.Row, id string) (*model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Location,
		&e.StartTime, &e.EndTime, &e.CreatorID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("event", id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *pgxEventRepository) Update(ctx context.Context, event *model.Event) error {
	tag, err := r.tx.Exec(ctx,
		`UPDATE events
		 SET name = $2, description = $3, location = $4, start_time = $5, end_time = $6, updated_at = $7
		 WHERE id = $1`,
		event.ID, event.Name, event.Description, event.Location,
		event.StartTime, event.EndTime, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("event", event.ID)
	}
	return nil
}

// Delete removes the event; its registrations go with it via the
// ON DELETE CASCADE constraint.
func (r *pgxEventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("event", id)
	}
	return nil
}

func (r *pgxEventRepository) ListUpcoming(ctx context.Context) ([]model.Event, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE start_time > NOW()
		 ORDER BY start_time ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location,
			&e.StartTime, &e.EndTime, &e.CreatorID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ─── Registrations ────────────────────────────────────────────────────────────

type pgxRegistrationRepository struct {
	tx pgx.Tx
}

func (r *pgxRegistrationRepository) Add(ctx context.Context, reg *model.Registration) error {
	_, err := r.tx.Exec(ctx,
		`INSERT INTO registrations (id, name, phone_number, email, event_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reg.ID, reg.Name, reg.PhoneNumber, reg.Email, reg.EventID, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		if conflict := conflictFromUniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *pgxRegistrationRepository) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	var reg model.Registration
	err := r.tx.QueryRow(ctx,
		`SELECT id, name, phone_number, email, event_id, created_at, updated_at
		 FROM registrations WHERE id = $1`, id,
	).Scan(&reg.ID, &reg.Name, &reg.PhoneNumber, &reg.Email, &reg.EventID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("registration", id)
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &reg, nil
}

func (r *pgxRegistrationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.tx.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("registration", id)
	}
	return nil
}

func (r *pgxRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT id, name, phone_number, email, event_id, created_at, updated_at
		 FROM registrations
		 WHERE event_id = $1
		 ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.PhoneNumber, &reg.Email,
			&reg.EventID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *pgxRegistrationRepository) EmailRegistered(ctx context.Context, eventID, email string) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE event_id = $1 AND email = $2)`,
		eventID, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check registration email: %w", err)
	}
	return exists, nil
}

func (r *pgxRegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

var _ Store = (*PostgresStore)(nil)
var _ UnitOfWork = (*pgxUnitOfWork)(nil)
