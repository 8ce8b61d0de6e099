package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

type stubStudentRepo struct {
	mu       sync.Mutex
	students map[string]domain.Student
	seq      int
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: make(map[string]domain.Student)}
}

func (r *stubStudentRepo) List(_ context.Context) ([]domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	return out, nil
}

func (r *stubStudentRepo) Create(_ context.Context, student *domain.Student) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("stu_%d", r.seq)
	copied := *student
	copied.ID = id
	r.students[id] = copied
	return id, nil
}

func (r *stubStudentRepo) Update(_ context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[student.ID]; !ok {
		return domain.ErrStudentNotFound
	}
	r.students[student.ID] = *student
	return nil
}

func (r *stubStudentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return domain.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

type stubTeacherRepo struct {
	mu       sync.Mutex
	teachers map[string]domain.Teacher
	seq      int
}

func newStubTeacherRepo() *stubTeacherRepo {
	return &stubTeacherRepo{teachers: make(map[string]domain.Teacher)}
}

func (r *stubTeacherRepo) List(_ context.Context) ([]domain.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (r *stubTeacherRepo) Create(_ context.Context, teacher *domain.Teacher) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("tea_%d", r.seq)
	copied := *teacher
	copied.ID = id
	r.teachers[id] = copied
	return id, nil
}

func (r *stubTeacherRepo) Update(_ context.Context, teacher *domain.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teachers[teacher.ID]; !ok {
		return domain.ErrTeacherNotFound
	}
	r.teachers[teacher.ID] = *teacher
	return nil
}

func (r *stubTeacherRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teachers[id]; !ok {
		return domain.ErrTeacherNotFound
	}
	delete(r.teachers, id)
	return nil
}

func newRosterServiceForTest() (*RosterService, *stubStudentRepo, *stubTeacherRepo) {
	students := newStubStudentRepo()
	teachers := newStubTeacherRepo()
	return NewRosterService(students, teachers, zerolog.Nop()), students, teachers
}

func TestRosterService_CreateStudent(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	student, err := svc.CreateStudent(context.Background(), ports.StudentInput{
		Surname:   "  Diallo ",
		GivenName: "Oumar",
		Email:     "Oumar@Example.com",
		Matricule: "MAT-2026-001",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if student.ID == "" {
		t.Fatalf("expected generated id")
	}
	if student.Surname != "Diallo" {
		t.Fatalf("surname not trimmed: %q", student.Surname)
	}
	if student.Email != "oumar@example.com" {
		t.Fatalf("email not normalized: %q", student.Email)
	}
	if student.EnrolledAt.IsZero() {
		t.Fatalf("enrollment date should default to now")
	}

	listed, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one student, got %d", len(listed))
	}
}

func TestRosterService_CreateStudent_MissingFields(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	cases := []ports.StudentInput{
		{GivenName: "Oumar", Matricule: "MAT-1"},
		{Surname: "Diallo", Matricule: "MAT-1"},
		{Surname: "Diallo", GivenName: "Oumar"},
		{Surname: "   ", GivenName: "Oumar", Matricule: "MAT-1"},
	}
	for i, input := range cases {
		if _, err := svc.CreateStudent(context.Background(), input); err != domain.ErrMissingField {
			t.Fatalf("case %d: expected ErrMissingField, got %v", i, err)
		}
	}
}

func TestRosterService_CreateStudent_KeepsExplicitDate(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	enrolled := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	student, err := svc.CreateStudent(context.Background(), ports.StudentInput{
		Surname:    "Diallo",
		GivenName:  "Oumar",
		Matricule:  "MAT-1",
		EnrolledAt: enrolled,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !student.EnrolledAt.Equal(enrolled) {
		t.Fatalf("explicit date overwritten: %v", student.EnrolledAt)
	}
}

func TestRosterService_UpdateStudent_NotFound(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	_, err := svc.UpdateStudent(context.Background(), "missing", ports.StudentInput{
		Surname:   "Diallo",
		GivenName: "Oumar",
		Matricule: "MAT-1",
	})
	if err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestRosterService_UpdateAndDeleteStudent(t *testing.T) {
	svc, students, _ := newRosterServiceForTest()

	created, err := svc.CreateStudent(context.Background(), ports.StudentInput{
		Surname:   "Diallo",
		GivenName: "Oumar",
		Matricule: "MAT-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStudent(context.Background(), created.ID, ports.StudentInput{
		Surname:   "Diallo",
		GivenName: "Oumar",
		Matricule: "MAT-2",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Matricule != "MAT-2" {
		t.Fatalf("matricule not updated: %q", updated.Matricule)
	}
	if stored := students.students[created.ID]; stored.Matricule != "MAT-2" {
		t.Fatalf("update not persisted: %q", stored.Matricule)
	}

	if err := svc.DeleteStudent(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteStudent(context.Background(), created.ID); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound on second delete, got %v", err)
	}
}

func TestRosterService_CreateTeacher(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	teacher, err := svc.CreateTeacher(context.Background(), ports.TeacherInput{
		Surname:   "Kane",
		GivenName: "Aminata",
		Email:     "Aminata@Example.com",
		Subject:   "Mathematics",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if teacher.ID == "" || teacher.Subject != "Mathematics" {
		t.Fatalf("unexpected teacher: %+v", teacher)
	}
	if teacher.Email != "aminata@example.com" {
		t.Fatalf("email not normalized: %q", teacher.Email)
	}
	if teacher.HiredAt.IsZero() {
		t.Fatalf("hire date should default to now")
	}
}

func TestRosterService_CreateTeacher_MissingSubject(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	_, err := svc.CreateTeacher(context.Background(), ports.TeacherInput{
		Surname:   "Kane",
		GivenName: "Aminata",
	})
	if err != domain.ErrMissingField {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestRosterService_TeacherNotFoundPassthrough(t *testing.T) {
	svc, _, _ := newRosterServiceForTest()

	_, err := svc.UpdateTeacher(context.Background(), "missing", ports.TeacherInput{
		Surname:   "Kane",
		GivenName: "Aminata",
		Subject:   "History",
	})
	if err != domain.ErrTeacherNotFound {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
	if err := svc.DeleteTeacher(context.Background(), "missing"); err != domain.ErrTeacherNotFound {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}
