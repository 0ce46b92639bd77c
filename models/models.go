package models

import (
	"time"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Class struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	InstructorName  string    `json:"instructor_name"`
	InstructorEmail string    `json:"instructor_email"`
	Capacity        int       `json:"capacity"`
	Price           float64   `json:"price"`
	Enrolled        int       `json:"enrolled"`
	Status          string    `json:"status"`
	Feedback        string    `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Booking snapshots the class display fields at reservation time so a
// student's list keeps rendering even if the class document changes later.
type Booking struct {
	ID             string    `json:"id"`
	StudentEmail   string    `json:"student_email"`
	ClassID        string    `json:"class_id"`
	ClassName      string    `json:"class_name"`
	InstructorName string    `json:"instructor_name"`
	Image          string    `json:"image,omitempty"`
	Seats          int       `json:"seats"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"created_at"`
}
