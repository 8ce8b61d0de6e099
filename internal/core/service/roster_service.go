package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

// RosterService manages student and teacher roster records. Authorization is
// decided by the API layer before any call lands here; the service only
// validates and persists.
type RosterService struct {
	students ports.StudentRepository
	teachers ports.TeacherRepository
	log      zerolog.Logger
}

func NewRosterService(students ports.StudentRepository, teachers ports.TeacherRepository, log zerolog.Logger) *RosterService {
	return &RosterService{students: students, teachers: teachers, log: log}
}

func (s *RosterService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

func (s *RosterService) CreateStudent(ctx context.Context, input ports.StudentInput) (*domain.Student, error) {
	student, err := studentFromInput("", input)
	if err != nil {
		return nil, err
	}

	id, err := s.students.Create(ctx, student)
	if err != nil {
		return nil, err
	}
	student.ID = id

	s.log.Info().Str("student_id", id).Str("matricule", student.Matricule).Msg("student enrolled")
	return student, nil
}

func (s *RosterService) UpdateStudent(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	student, err := studentFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *RosterService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("student_id", id).Msg("student removed")
	return nil
}

func (s *RosterService) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	return s.teachers.List(ctx)
}

func (s *RosterService) CreateTeacher(ctx context.Context, input ports.TeacherInput) (*domain.Teacher, error) {
	teacher, err := teacherFromInput("", input)
	if err != nil {
		return nil, err
	}

	id, err := s.teachers.Create(ctx, teacher)
	if err != nil {
		return nil, err
	}
	teacher.ID = id

	s.log.Info().Str("teacher_id", id).Str("subject", teacher.Subject).Msg("teacher hired")
	return teacher, nil
}

func (s *RosterService) UpdateTeacher(ctx context.Context, id string, input ports.TeacherInput) (*domain.Teacher, error) {
	teacher, err := teacherFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *RosterService) DeleteTeacher(ctx context.Context, id string) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("teacher_id", id).Msg("teacher removed")
	return nil
}

func studentFromInput(id string, input ports.StudentInput) (*domain.Student, error) {
	surname := strings.TrimSpace(input.Surname)
	givenName := strings.TrimSpace(input.GivenName)
	matricule := strings.TrimSpace(input.Matricule)
	if surname == "" || givenName == "" || matricule == "" {
		return nil, domain.ErrMissingField
	}

	enrolledAt := input.EnrolledAt
	if enrolledAt.IsZero() {
		enrolledAt = time.Now().UTC()
	}

	return &domain.Student{
		ID:         id,
		Surname:    surname,
		GivenName:  givenName,
		Email:      domain.NormalizeIdentifier(input.Email),
		Matricule:  matricule,
		EnrolledAt: enrolledAt,
	}, nil
}

func teacherFromInput(id string, input ports.TeacherInput) (*domain.Teacher, error) {
	surname := strings.TrimSpace(input.Surname)
	givenName := strings.TrimSpace(input.GivenName)
	subject := strings.TrimSpace(input.Subject)
	if surname == "" || givenName == "" || subject == "" {
		return nil, domain.ErrMissingField
	}

	hiredAt := input.HiredAt
	if hiredAt.IsZero() {
		hiredAt = time.Now().UTC()
	}

	return &domain.Teacher{
		ID:        id,
		Surname:   surname,
		GivenName: givenName,
		Email:     domain.NormalizeIdentifier(input.Email),
		Subject:   subject,
		HiredAt:   hiredAt,
	}, nil
}
