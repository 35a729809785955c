package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"saharaweb/internal/config"
	"saharaweb/internal/models"
	"saharaweb/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) FindRigByName(ctx context.Context, name string) (*models.Rig, error) {
	const op = "storage.postgres.FindRigByName"

	query := `
		SELECT r.id, r.name, rt.id, rt.name
		FROM rig r
		JOIN rig_type rt ON rt.id = r.type_id
		WHERE r.name = $1`

	var rig models.Rig
	err := s.DB.QueryRowContext(ctx, query, name).Scan(
		&rig.ID,
		&rig.Name,
		&rig.Type.ID,
		&rig.Type.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRigNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rig, nil
}

const bookingColumns = `
		b.id, b.start_time, b.end_time, b.resource_type, b.rig_id, b.rig_type_id,
		b.resource_permission_id, b.active,
		u.id, u.name, COALESCE(u.first_name, ''), COALESCE(u.last_name, ''),
		u.persona, COALESCE(u.email, '')`

// QueryBookings returns the active bookings of the rig or its type that intersect
// [from, to), ordered by start time.
func (s *Storage) QueryBookings(ctx context.Context, rig *models.Rig, from, to time.Time) ([]models.Booking, error) {
	const op = "storage.postgres.QueryBookings"

	query := `
		SELECT` + bookingColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.active = true
		AND (b.rig_id = $1 OR b.rig_type_id = $2)
		AND b.end_time > $3
		AND b.start_time < $4
		ORDER BY b.start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, rig.ID, rig.Type.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// UserBookings returns the active bookings of a user ordered by start time.
func (s *Storage) UserBookings(ctx context.Context, identity models.Identity) ([]models.Booking, error) {
	const op = "storage.postgres.UserBookings"

	query := `
		SELECT` + bookingColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.active = true
		AND u.namespace = $1
		AND u.name = $2
		ORDER BY b.start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, identity.Namespace, identity.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)

	for rows.Next() {
		var (
			booking   models.Booking
			rigID     sql.NullInt64
			rigTypeID sql.NullInt64
			resType   string
		)

		err := rows.Scan(
			&booking.ID,
			&booking.StartTime,
			&booking.EndTime,
			&resType,
			&rigID,
			&rigTypeID,
			&booking.PermissionID,
			&booking.Active,
			&booking.User.ID,
			&booking.User.Name,
			&booking.User.FirstName,
			&booking.User.LastName,
			&booking.User.Persona,
			&booking.User.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		booking.ResourceType = models.ResourceType(resType)
		if rigID.Valid {
			booking.RigID = &rigID.Int64
		}
		if rigTypeID.Valid {
			booking.RigTypeID = &rigTypeID.Int64
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// GetPermission returns the permission granted to the user through any of their
// active user classes.
func (s *Storage) GetPermission(ctx context.Context, identity models.Identity, permissionID int64) (*models.Permission, error) {
	const op = "storage.postgres.GetPermission"

	query := `
		SELECT rp.id, uc.name, rp.type,
			COALESCE(r.name, rt.name, rc.capabilities, ''),
			rp.start_time, rp.expiry_time, rp.allow_bookings, rp.max_bookings,
			rp.time_horizon, COALESCE(ul.is_locked, false)
		FROM resource_permission rp
		JOIN user_class uc ON uc.id = rp.user_class_id
		JOIN user_association ua ON ua.user_class_id = uc.id
		JOIN users u ON u.id = ua.users_id
		LEFT JOIN rig r ON r.id = rp.rig_id
		LEFT JOIN rig_type rt ON rt.id = rp.rig_type_id
		LEFT JOIN request_capabilities rc ON rc.id = rp.request_capabilities_id
		LEFT JOIN user_lock ul ON ul.resource_permission_id = rp.id AND ul.users_id = u.id
		WHERE u.namespace = $1
		AND u.name = $2
		AND rp.id = $3
		AND uc.active = true`

	var (
		perm    models.Permission
		resType string
	)

	err := s.DB.QueryRowContext(ctx, query, identity.Namespace, identity.Name, permissionID).Scan(
		&perm.ID,
		&perm.UserClass,
		&resType,
		&perm.ResourceName,
		&perm.Start,
		&perm.Expiry,
		&perm.CanBook,
		&perm.MaxBookings,
		&perm.TimeHorizon,
		&perm.IsLocked,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPermissionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	perm.ResourceClass = models.ResourceType(resType)

	return &perm, nil
}

// CountUserBookings counts the user's bookings under a permission that are neither
// cancelled nor finished.
func (s *Storage) CountUserBookings(ctx context.Context, identity models.Identity, permissionID int64) (int, error) {
	const op = "storage.postgres.CountUserBookings"

	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.active = true
		AND b.resource_permission_id = $1
		AND u.namespace = $2
		AND u.name = $3`

	var count int
	if err := s.DB.QueryRowContext(ctx, query, permissionID, identity.Namespace, identity.Name).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
