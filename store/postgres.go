package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/soyedarif/ralph-s-crafts-server/models"
)

// Postgres implements Store on top of database/sql with the lib/pq driver.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, COALESCE(photo_url, ''), role, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Postgres) InsertUser(ctx context.Context, u *models.User) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, photo_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, u.Name, u.Email, u.PhotoURL, u.Role).Scan(&u.ID, &u.CreatedAt)
}

func (s *Postgres) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.queryUsers(ctx, `
		SELECT id, name, email, COALESCE(photo_url, ''), role, created_at
		FROM users ORDER BY created_at DESC
	`)
}

func (s *Postgres) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.queryUsers(ctx, `
		SELECT id, name, email, COALESCE(photo_url, ''), role, created_at
		FROM users WHERE role = $1 ORDER BY created_at DESC
	`, role)
}

func (s *Postgres) queryUsers(ctx context.Context, query string, args ...interface{}) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Postgres) UpdateUserRole(ctx context.Context, id, role string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Postgres) InsertClass(ctx context.Context, cl *models.Class) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO classes (name, image, instructor_name, instructor_email, capacity, price, enrolled, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, cl.Name, cl.Image, cl.InstructorName, cl.InstructorEmail, cl.Capacity, cl.Price, cl.Enrolled, cl.Status).
		Scan(&cl.ID, &cl.CreatedAt)
}

const classColumns = `
	SELECT id, name, COALESCE(image, ''), instructor_name, instructor_email,
	       capacity, price, enrolled, status, COALESCE(feedback, ''), created_at
	FROM classes`

func (s *Postgres) GetClass(ctx context.Context, id string) (*models.Class, error) {
	var cl models.Class
	err := s.db.QueryRowContext(ctx, classColumns+` WHERE id = $1`, id).Scan(
		&cl.ID, &cl.Name, &cl.Image, &cl.InstructorName, &cl.InstructorEmail,
		&cl.Capacity, &cl.Price, &cl.Enrolled, &cl.Status, &cl.Feedback, &cl.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (s *Postgres) ListClassesByStatus(ctx context.Context, status string) ([]models.Class, error) {
	return s.queryClasses(ctx, classColumns+` WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (s *Postgres) ListClasses(ctx context.Context) ([]models.Class, error) {
	return s.queryClasses(ctx, classColumns+` ORDER BY created_at DESC`)
}

func (s *Postgres) ListClassesByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.queryClasses(ctx, classColumns+` WHERE instructor_email = $1 ORDER BY created_at DESC`, email)
}

func (s *Postgres) queryClasses(ctx context.Context, query string, args ...interface{}) ([]models.Class, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var cl models.Class
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Image, &cl.InstructorName, &cl.InstructorEmail,
			&cl.Capacity, &cl.Price, &cl.Enrolled, &cl.Status, &cl.Feedback, &cl.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, rows.Err()
}

func (s *Postgres) UpdateClassStatus(ctx context.Context, id, status string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE classes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Postgres) UpdateClassFeedback(ctx context.Context, id, feedback string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE classes SET feedback = $1 WHERE id = $2`, feedback, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const bookingColumns = `
	SELECT id, student_email, class_id, class_name, instructor_name,
	       COALESCE(image, ''), seats, price, created_at
	FROM bookings`

func (s *Postgres) FindBooking(ctx context.Context, studentEmail, classID string) (*models.Booking, error) {
	return s.scanBooking(s.db.QueryRowContext(ctx,
		bookingColumns+` WHERE student_email = $1 AND class_id = $2`, studentEmail, classID))
}

func (s *Postgres) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.scanBooking(s.db.QueryRowContext(ctx, bookingColumns+` WHERE id = $1`, id))
}

func (s *Postgres) scanBooking(row *sql.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.StudentEmail, &b.ClassID, &b.ClassName, &b.InstructorName,
		&b.Image, &b.Seats, &b.Price, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Postgres) InsertBooking(ctx context.Context, b *models.Booking) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO bookings (student_email, class_id, class_name, instructor_name, image, seats, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, b.StudentEmail, b.ClassID, b.ClassName, b.InstructorName, b.Image, b.Seats, b.Price).
		Scan(&b.ID, &b.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateBooking
	}
	return err
}

func (s *Postgres) ListBookingsByStudent(ctx context.Context, studentEmail string) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx,
		bookingColumns+` WHERE student_email = $1 ORDER BY created_at DESC`, studentEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.StudentEmail, &b.ClassID, &b.ClassName, &b.InstructorName,
			&b.Image, &b.Seats, &b.Price, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *Postgres) DeleteBooking(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
