package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soyedarif/ralph-s-crafts-server/models"
)

// Memory is an in-process Store used by tests. It mirrors the Postgres
// implementation's semantics: zero-rows-affected updates for unknown ids
// and a uniqueness constraint on (student_email, class_id).
type Memory struct {
	mu       sync.Mutex
	users    map[string]models.User
	classes  map[string]models.Class
	bookings map[string]models.Booking
}

func NewMemory() *Memory {
	return &Memory{
		users:    map[string]models.User{},
		classes:  map[string]models.Class{},
		bookings: map[string]models.Booking{},
	}
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) InsertUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsers(func(models.User) bool { return true })
}

func (m *Memory) ListUsersByRole(_ context.Context, role string) ([]models.User, error) {
	return m.listUsers(func(u models.User) bool { return u.Role == role })
}

func (m *Memory) listUsers(keep func(models.User) bool) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []models.User{}
	for _, u := range m.users {
		if keep(u) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (m *Memory) UpdateUserRole(_ context.Context, id, role string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	u.Role = role
	m.users[id] = u
	return 1, nil
}

func (m *Memory) InsertClass(_ context.Context, cl *models.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl.ID = uuid.NewString()
	cl.CreatedAt = time.Now()
	m.classes[cl.ID] = *cl
	return nil
}

func (m *Memory) GetClass(_ context.Context, id string) (*models.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl, ok := m.classes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cl, nil
}

func (m *Memory) ListClassesByStatus(_ context.Context, status string) ([]models.Class, error) {
	return m.listClasses(func(cl models.Class) bool { return cl.Status == status })
}

func (m *Memory) ListClasses(_ context.Context) ([]models.Class, error) {
	return m.listClasses(func(models.Class) bool { return true })
}

func (m *Memory) ListClassesByInstructor(_ context.Context, email string) ([]models.Class, error) {
	return m.listClasses(func(cl models.Class) bool { return cl.InstructorEmail == email })
}

func (m *Memory) listClasses(keep func(models.Class) bool) ([]models.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	classes := []models.Class{}
	for _, cl := range m.classes {
		if keep(cl) {
			classes = append(classes, cl)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	return classes, nil
}

func (m *Memory) UpdateClassStatus(_ context.Context, id, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl, ok := m.classes[id]
	if !ok {
		return 0, nil
	}
	cl.Status = status
	m.classes[id] = cl
	return 1, nil
}

func (m *Memory) UpdateClassFeedback(_ context.Context, id, feedback string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl, ok := m.classes[id]
	if !ok {
		return 0, nil
	}
	cl.Feedback = feedback
	m.classes[id] = cl
	return 1, nil
}

func (m *Memory) FindBooking(_ context.Context, studentEmail, classID string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findBookingLocked(studentEmail, classID)
}

func (m *Memory) findBookingLocked(studentEmail, classID string) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.StudentEmail == studentEmail && b.ClassID == classID {
			b := b
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *Memory) InsertBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.findBookingLocked(b.StudentEmail, b.ClassID); err == nil {
		return ErrDuplicateBooking
	}
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	m.bookings[b.ID] = *b
	return nil
}

func (m *Memory) ListBookingsByStudent(_ context.Context, studentEmail string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bookings := []models.Booking{}
	for _, b := range m.bookings {
		if b.StudentEmail == studentEmail {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ClassName < bookings[j].ClassName })
	return bookings, nil
}

func (m *Memory) DeleteBooking(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return 0, nil
	}
	delete(m.bookings, id)
	return 1, nil
}
