package ports

import (
	"context"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

// StudentRepository persists student roster records.
type StudentRepository interface {
	List(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, student *domain.Student) (string, error)
	// Update replaces the record. Returns domain.ErrStudentNotFound when id
	// does not exist.
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id string) error
}

// TeacherRepository persists teacher roster records.
type TeacherRepository interface {
	List(ctx context.Context) ([]domain.Teacher, error)
	Create(ctx context.Context, teacher *domain.Teacher) (string, error)
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, id string) error
}
