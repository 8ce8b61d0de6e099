package domain

import (
	"errors"
	"time"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
)

// Student is a roster record managed by administrators. It is distinct from
// the student's Account: roster records carry school business data, accounts
// carry credentials.
type Student struct {
	ID         string    `json:"id"`
	Surname    string    `json:"surname"`
	GivenName  string    `json:"given_name"`
	Email      string    `json:"email"`
	Matricule  string    `json:"matricule"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Teacher is a roster record for teaching staff.
type Teacher struct {
	ID        string    `json:"id"`
	Surname   string    `json:"surname"`
	GivenName string    `json:"given_name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	HiredAt   time.Time `json:"hired_at"`
}
