package ports

import (
	"context"
	"time"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

// StudentInput is the payload for creating or updating a student record.
type StudentInput struct {
	Surname    string
	GivenName  string
	Email      string
	Matricule  string
	EnrolledAt time.Time
}

// TeacherInput is the payload for creating or updating a teacher record.
type TeacherInput struct {
	Surname   string
	GivenName string
	Email     string
	Subject   string
	HiredAt   time.Time
}

// RosterService manages the student and teacher rosters on behalf of
// administrators.
type RosterService interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	CreateStudent(ctx context.Context, input StudentInput) (*domain.Student, error)
	UpdateStudent(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	DeleteStudent(ctx context.Context, id string) error

	ListTeachers(ctx context.Context) ([]domain.Teacher, error)
	CreateTeacher(ctx context.Context, input TeacherInput) (*domain.Teacher, error)
	UpdateTeacher(ctx context.Context, id string, input TeacherInput) (*domain.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}
