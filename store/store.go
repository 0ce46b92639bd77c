package store

import (
	"context"
	"errors"

	"github.com/soyedarif/ralph-s-crafts-server/models"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateBooking is returned when an insert would violate the
	// (student_email, class_id) uniqueness constraint. The constraint is
	// the source of truth for duplicate bookings; application-level
	// pre-checks are only a fast path.
	ErrDuplicateBooking = errors.New("store: duplicate booking")
)

// Store is the document-store boundary. Handlers receive it injected so
// tests can run against the in-memory implementation.
type Store interface {
	// users
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, u *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
	// UpdateUserRole overwrites the role field only. An unknown id is not
	// an error; it reports zero rows affected.
	UpdateUserRole(ctx context.Context, id, role string) (int64, error)

	// classes
	InsertClass(ctx context.Context, cl *models.Class) error
	GetClass(ctx context.Context, id string) (*models.Class, error)
	ListClassesByStatus(ctx context.Context, status string) ([]models.Class, error)
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListClassesByInstructor(ctx context.Context, email string) ([]models.Class, error)
	UpdateClassStatus(ctx context.Context, id, status string) (int64, error)
	UpdateClassFeedback(ctx context.Context, id, feedback string) (int64, error)

	// bookings
	FindBooking(ctx context.Context, studentEmail, classID string) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	InsertBooking(ctx context.Context, b *models.Booking) error
	ListBookingsByStudent(ctx context.Context, studentEmail string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id string) (int64, error)
}
