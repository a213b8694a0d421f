package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and admin updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Emails never
// reach the logs; only ids and lookup indexes do.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID. A zero CreatedAt is set to the current time.
//
// Error handling:
//   - unique violation on email_index → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = createdNow()
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email index already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan generated id; sqlite reports constraint errors only here
	if err = row.Scan(&user.ID); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email index already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetUserByID looks a user up by primary key.
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByID", sq.Eq{"id": id})
}

// GetUserByEmailIndex looks a user up by the keyed email digest.
func (r *userRepository) GetUserByEmailIndex(ctx context.Context, index string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByEmailIndex", sq.Eq{"email_index": index})
}

func (r *userRepository) getUser(ctx context.Context, fn string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, fn, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", fn).Msg("no user was found")
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error getting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns at most limit users starting at offset, ordered by id.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter, offset, limit int) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder, filter, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withRetry(ctx, "*userRepository.ListUsers", func() error {
		var queryErr error
		users, queryErr = queryAll(ctx, r.db, query, args, scanUser)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Int("offset", offset).Int("limit", limit).Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// CountUsers returns the number of users passing filter.
func (r *userRepository) CountUsers(ctx context.Context, filter models.UserFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery(r.db.builder, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = r.db.withRetry(ctx, "*userRepository.CountUsers", func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateUserActive sets is_active.
func (r *userRepository) UpdateUserActive(ctx context.Context, id int64, active bool) error {
	return r.updateUser(ctx, "*userRepository.UpdateUserActive", id, "is_active", active)
}

// UpdateUserRole sets role. The value is stored as given; callers validate it.
func (r *userRepository) UpdateUserRole(ctx context.Context, id int64, role string) error {
	return r.updateUser(ctx, "*userRepository.UpdateUserRole", id, "role", role)
}

func (r *userRepository) updateUser(ctx context.Context, fn string, id int64, column string, value any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, id, column, value)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", id).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", fn).Int64("user_id", id).Msg("no user was updated")
		return ErrNoUserWasFound
	}

	log.Info().Str("func", fn).Int64("user_id", id).Str("column", column).Msg("user updated")
	return nil
}

// queryAll runs a multi-row query and scans every row with scan.
func queryAll[T any](ctx context.Context, db *DB, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 50)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
