package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/domain/models"
)

func reservationColumns() []string {
	return []string{"id", "destination_id", "bus_id", "seat_number", "client_id", "child_id", "client_name", "status", "is_child", "reserved_at"}
}

func TestReservationRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	reservedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO seat_reservations").
		WithArgs("r1", "d1", "b1", "12", "a", nil, "Carlos Lima", "reserved", false, reservedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ReservationRepo{DB: db}
	err = repo.Insert(context.Background(), models.SeatReservation{
		ID:            "r1",
		DestinationID: "d1",
		BusID:         "b1",
		SeatNumber:    "12",
		TravelerID:    "a",
		HolderName:    "Carlos Lima",
		Status:        models.StatusReserved,
		ReservedAt:    reservedAt,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM seat_reservations").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(reservationColumns()))

	repo := ReservationRepo{DB: db}
	_, ok, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected not found")
	}
}

func TestReservationRepoListByDestination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	reservedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(reservationColumns()).
		AddRow("r1", "d1", "b1", "1", "a", nil, "Carlos Lima", "reserved", false, reservedAt).
		AddRow("r2", "d1", "b1", "2", "a", "c1", "Maria Lima", "reserved", true, reservedAt)
	mock.ExpectQuery("SELECT (.+) FROM seat_reservations").
		WithArgs("d1").
		WillReturnRows(rows)

	repo := ReservationRepo{DB: db}
	out, err := repo.ListByDestination(context.Background(), "d1")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[1].CompanionID != "c1" || !out[1].IsCompanion {
		t.Fatalf("companion row scanned incorrectly: %+v", out[1])
	}
	if out[0].Status != models.StatusReserved {
		t.Fatalf("status scanned incorrectly: %q", out[0].Status)
	}
}

func TestReservationRepoDeleteBlankIDIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ReservationRepo{DB: db}
	if err := repo.Delete(context.Background(), "  "); err != nil {
		t.Fatalf("blank id delete should be a no-op, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statements expected: %v", err)
	}
}
