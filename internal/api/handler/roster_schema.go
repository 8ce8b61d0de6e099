package handler

import "time"

const rosterDateFormat = "2006-01-02"

type studentRequest struct {
	Surname    string `json:"surname"     validate:"required"`
	GivenName  string `json:"given_name"  validate:"required"`
	Email      string `json:"email"       validate:"omitempty,email"`
	Matricule  string `json:"matricule"   validate:"required"`
	EnrolledAt string `json:"enrolled_at" validate:"omitempty,datetime=2006-01-02"`
}

type teacherRequest struct {
	Surname   string `json:"surname"    validate:"required"`
	GivenName string `json:"given_name" validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Subject   string `json:"subject"    validate:"required"`
	HiredAt   string `json:"hired_at"   validate:"omitempty,datetime=2006-01-02"`
}

// parseRosterDate parses an optional yyyy-mm-dd date field. Empty input
// yields the zero time; the service substitutes "today".
func parseRosterDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(rosterDateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
