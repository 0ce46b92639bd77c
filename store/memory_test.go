package store

import (
	"context"
	"testing"

	"github.com/soyedarif/ralph-s-crafts-server/models"
)

func TestMemoryBookingUniqueness(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first := models.Booking{StudentEmail: "s@x.com", ClassID: "c1", ClassName: "Pottery", Seats: 2}
	if err := m.InsertBooking(ctx, &first); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated booking id")
	}

	dup := models.Booking{StudentEmail: "s@x.com", ClassID: "c1", ClassName: "Pottery", Seats: 1}
	if err := m.InsertBooking(ctx, &dup); err != ErrDuplicateBooking {
		t.Fatalf("expected ErrDuplicateBooking, got %v", err)
	}

	bookings, err := m.ListBookingsByStudent(ctx, "s@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(bookings))
	}

	other := models.Booking{StudentEmail: "s@x.com", ClassID: "c2", ClassName: "Weaving", Seats: 1}
	if err := m.InsertBooking(ctx, &other); err != nil {
		t.Fatalf("different class should book: %v", err)
	}
}

func TestMemoryUpdatesReportZeroRowsForUnknownIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if n, err := m.UpdateUserRole(ctx, "missing", models.RoleAdmin); err != nil || n != 0 {
		t.Fatalf("expected 0 rows, got %d err %v", n, err)
	}
	if n, err := m.UpdateClassStatus(ctx, "missing", models.ClassApproved); err != nil || n != 0 {
		t.Fatalf("expected 0 rows, got %d err %v", n, err)
	}
	if n, err := m.UpdateClassFeedback(ctx, "missing", "nope"); err != nil || n != 0 {
		t.Fatalf("expected 0 rows, got %d err %v", n, err)
	}
	if n, err := m.DeleteBooking(ctx, "missing"); err != nil || n != 0 {
		t.Fatalf("expected 0 rows, got %d err %v", n, err)
	}
}

func TestMemoryLookupsReportNotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.FindUserByEmail(ctx, "ghost@x.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.GetClass(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.FindBooking(ctx, "ghost@x.com", "c1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRoleUpdateTouchesOnlyRole(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	u := models.User{Name: "Pat", Email: "p@x.com", Role: models.RoleStudent}
	if err := m.InsertUser(ctx, &u); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if n, err := m.UpdateUserRole(ctx, u.ID, models.RoleInstructor); err != nil || n != 1 {
		t.Fatalf("expected 1 row, got %d err %v", n, err)
	}

	got, err := m.FindUserByEmail(ctx, "p@x.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.Role != models.RoleInstructor {
		t.Fatalf("expected role instructor, got %q", got.Role)
	}
	if got.Name != "Pat" || got.Email != "p@x.com" || got.ID != u.ID {
		t.Fatalf("promotion changed fields other than role: %+v", got)
	}
}
