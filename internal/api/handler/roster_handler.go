package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

// RosterHandler exposes the student and teacher rosters. Route-level
// middleware guarantees that only authorized roles reach these methods.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// ListStudents handles GET /students.
//
// @Summary      List students
// @Tags         roster
// @Produce      json
// @Success      200  {array}  domain.Student
// @Router       /students [get]
func (h *RosterHandler) ListStudents(c echo.Context) error {
	students, err := h.service.ListStudents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// CreateStudent handles POST /students.
//
// @Summary      Enroll a student
// @Tags         roster
// @Accept       json
// @Produce      json
// @Param        body  body      studentRequest  true  "Student record"
// @Success      201   {object}  domain.Student
// @Failure      400   {object}  errorResponse
// @Router       /students [post]
func (h *RosterHandler) CreateStudent(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	student, err := h.service.CreateStudent(c.Request().Context(), ports.StudentInput{
		Surname:    req.Surname,
		GivenName:  req.GivenName,
		Email:      req.Email,
		Matricule:  req.Matricule,
		EnrolledAt: parseRosterDate(req.EnrolledAt),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, student)
}

// UpdateStudent handles PUT /students/:id.
func (h *RosterHandler) UpdateStudent(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	student, err := h.service.UpdateStudent(c.Request().Context(), c.Param("id"), ports.StudentInput{
		Surname:    req.Surname,
		GivenName:  req.GivenName,
		Email:      req.Email,
		Matricule:  req.Matricule,
		EnrolledAt: parseRosterDate(req.EnrolledAt),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /students/:id.
func (h *RosterHandler) DeleteStudent(c echo.Context) error {
	if err := h.service.DeleteStudent(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTeachers handles GET /teachers.
func (h *RosterHandler) ListTeachers(c echo.Context) error {
	teachers, err := h.service.ListTeachers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teachers)
}

// CreateTeacher handles POST /teachers.
func (h *RosterHandler) CreateTeacher(c echo.Context) error {
	var req teacherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	teacher, err := h.service.CreateTeacher(c.Request().Context(), ports.TeacherInput{
		Surname:   req.Surname,
		GivenName: req.GivenName,
		Email:     req.Email,
		Subject:   req.Subject,
		HiredAt:   parseRosterDate(req.HiredAt),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, teacher)
}

// UpdateTeacher handles PUT /teachers/:id.
func (h *RosterHandler) UpdateTeacher(c echo.Context) error {
	var req teacherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	teacher, err := h.service.UpdateTeacher(c.Request().Context(), c.Param("id"), ports.TeacherInput{
		Surname:   req.Surname,
		GivenName: req.GivenName,
		Email:     req.Email,
		Subject:   req.Subject,
		HiredAt:   parseRosterDate(req.HiredAt),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}

// DeleteTeacher handles DELETE /teachers/:id.
func (h *RosterHandler) DeleteTeacher(c echo.Context) error {
	if err := h.service.DeleteTeacher(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
