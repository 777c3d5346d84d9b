package repositories

import (
	"context"
	"database/sql"
	"strings"

	"backoffice/internal/domain/models"
)

// TravelerRepo reads the externally-owned clients table. Tolerant scanning:
// the table predates this service and carries NULLs in most optional columns.
type TravelerRepo struct {
	DB *sql.DB
}

const selectTraveler = `
	SELECT id, name, document, destination, seat_number, is_deleted, is_cancelled
	FROM clients`

func (r TravelerRepo) Get(ctx context.Context, id string) (models.Traveler, bool, error) {
	row := r.DB.QueryRowContext(ctx, selectTraveler+` WHERE id = ?`, id)
	t, err := scanTraveler(row)
	if err == sql.ErrNoRows {
		return models.Traveler{}, false, nil
	}
	if err != nil {
		return models.Traveler{}, false, err
	}
	return t, true, nil
}

func (r TravelerRepo) ListByDestination(ctx context.Context, destinationName string) ([]models.Traveler, error) {
	rows, err := r.DB.QueryContext(ctx, selectTraveler+` WHERE destination = ? ORDER BY name, id`, destinationName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Traveler{}
	for rows.Next() {
		t, err := scanTraveler(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TravelerRepo) UpdateSeat(ctx context.Context, id, seatNumber string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE clients SET seat_number = ? WHERE id = ?`,
		strings.TrimSpace(seatNumber), id)
	return err
}

func scanTraveler(row rowScanner) (models.Traveler, error) {
	var (
		t                  models.Traveler
		document, seat     sql.NullString
		deleted, cancelled sql.NullBool
	)
	err := row.Scan(&t.ID, &t.Name, &document, &t.Destination, &seat, &deleted, &cancelled)
	if err != nil {
		return models.Traveler{}, err
	}
	t.Document = document.String
	t.SeatNumber = strings.TrimSpace(seat.String)
	t.Deleted = deleted.Bool
	t.Cancelled = cancelled.Bool
	return t, nil
}

// CompanionRepo reads the externally-owned companions table.
type CompanionRepo struct {
	DB *sql.DB
}

const selectCompanion = `
	SELECT id, client_id, name, seat_number
	FROM companions`

func (r CompanionRepo) Get(ctx context.Context, id string) (models.Companion, bool, error) {
	row := r.DB.QueryRowContext(ctx, selectCompanion+` WHERE id = ?`, id)
	c, err := scanCompanion(row)
	if err == sql.ErrNoRows {
		return models.Companion{}, false, nil
	}
	if err != nil {
		return models.Companion{}, false, err
	}
	return c, true, nil
}

func (r CompanionRepo) ListByTraveler(ctx context.Context, travelerID string) ([]models.Companion, error) {
	return r.listCompanions(ctx, selectCompanion+` WHERE client_id = ? ORDER BY id`, travelerID)
}

// All is ordered by id so normalized-name ties resolve the same way on every
// call.
func (r CompanionRepo) All(ctx context.Context) ([]models.Companion, error) {
	return r.listCompanions(ctx, selectCompanion+` ORDER BY id`)
}

func (r CompanionRepo) UpdateSeat(ctx context.Context, id, seatNumber string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE companions SET seat_number = ? WHERE id = ?`,
		strings.TrimSpace(seatNumber), id)
	return err
}

func (r CompanionRepo) listCompanions(ctx context.Context, query string, args ...any) ([]models.Companion, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Companion{}
	for rows.Next() {
		c, err := scanCompanion(rows)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCompanion(row rowScanner) (models.Companion, error) {
	var (
		c    models.Companion
		seat sql.NullString
	)
	err := row.Scan(&c.ID, &c.TravelerID, &c.Name, &seat)
	if err != nil {
		return models.Companion{}, err
	}
	c.SeatNumber = strings.TrimSpace(seat.String)
	return c, nil
}

// DestinationRepo resolves a destination to its bus and seat capacity.
type DestinationRepo struct {
	DB *sql.DB
}

func (r DestinationRepo) Get(ctx context.Context, id string) (models.Destination, bool, error) {
	var (
		d          models.Destination
		busID      sql.NullString
		start, end sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT d.id, d.name, d.bus_id, COALESCE(b.seat_count, 0), d.active, d.start_date, d.end_date
		FROM destinations d
		LEFT JOIN buses b ON b.id = d.bus_id
		WHERE d.id = ?
	`, id).Scan(&d.ID, &d.Name, &busID, &d.SeatCount, &d.Active, &start, &end)
	if err == sql.ErrNoRows {
		return models.Destination{}, false, nil
	}
	if err != nil {
		return models.Destination{}, false, err
	}
	d.BusID = strings.TrimSpace(busID.String)
	d.StartDate = start.String
	d.EndDate = end.String
	return d, true, nil
}
