package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

const reservationTable = "seat_reservations"

// ReservationRepo is the MySQL ReservationStore.
type ReservationRepo struct {
	DB *sql.DB
}

// EnsureSchema creates the reservation table when it does not exist yet.
// Safe to call on every startup.
func (r ReservationRepo) EnsureSchema(ctx context.Context) error {
	if intdb.HasTable(r.DB, reservationTable) {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS seat_reservations (
			id          VARCHAR(64)  NOT NULL PRIMARY KEY,
			destination_id VARCHAR(64) NOT NULL,
			bus_id      VARCHAR(64)  NOT NULL DEFAULT '',
			seat_number VARCHAR(16)  NOT NULL,
			client_id   VARCHAR(64)  NOT NULL,
			child_id    VARCHAR(64)  NULL,
			client_name VARCHAR(191) NOT NULL DEFAULT '',
			status      VARCHAR(16)  NOT NULL DEFAULT 'reserved',
			is_child    TINYINT(1)   NOT NULL DEFAULT 0,
			reserved_at DATETIME     NOT NULL,
			KEY idx_destination (destination_id),
			KEY idx_client (client_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
	`)
	return err
}

func (r ReservationRepo) Insert(ctx context.Context, res models.SeatReservation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO seat_reservations
			(id, destination_id, bus_id, seat_number, client_id, child_id, client_name, status, is_child, reserved_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`,
		res.ID,
		res.DestinationID,
		res.BusID,
		strings.TrimSpace(res.SeatNumber),
		res.TravelerID,
		intdb.NullIfEmpty(res.CompanionID),
		res.HolderName,
		string(res.Status),
		res.IsCompanion,
		res.ReservedAt,
	)
	return err
}

func (r ReservationRepo) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, `DELETE FROM seat_reservations WHERE id = ?`, id)
	return err
}

func (r ReservationRepo) Get(ctx context.Context, id string) (models.SeatReservation, bool, error) {
	row := r.DB.QueryRowContext(ctx, selectReservation+` WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return models.SeatReservation{}, false, nil
	}
	if err != nil {
		return models.SeatReservation{}, false, err
	}
	return res, true, nil
}

func (r ReservationRepo) ListByDestination(ctx context.Context, destinationID string) ([]models.SeatReservation, error) {
	return r.list(ctx, selectReservation+` WHERE destination_id = ? ORDER BY reserved_at, id`, destinationID)
}

func (r ReservationRepo) ListByTraveler(ctx context.Context, travelerID string) ([]models.SeatReservation, error) {
	return r.list(ctx, selectReservation+` WHERE client_id = ? ORDER BY reserved_at, id`, travelerID)
}

const selectReservation = `
	SELECT id, destination_id, bus_id, seat_number, client_id, child_id, client_name, status, is_child, reserved_at
	FROM seat_reservations`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (models.SeatReservation, error) {
	var (
		res     models.SeatReservation
		childID sql.NullString
		status  string
	)
	err := row.Scan(
		&res.ID,
		&res.DestinationID,
		&res.BusID,
		&res.SeatNumber,
		&res.TravelerID,
		&childID,
		&res.HolderName,
		&status,
		&res.IsCompanion,
		&res.ReservedAt,
	)
	if err != nil {
		return models.SeatReservation{}, err
	}
	res.CompanionID = strings.TrimSpace(childID.String)
	res.Status = models.ReservationStatus(status)
	return res, nil
}

func (r ReservationRepo) list(ctx context.Context, query string, args ...any) ([]models.SeatReservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SeatReservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
