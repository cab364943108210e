package curriculum

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// SubjectField names a subject field editable from the curriculum table
type SubjectField string

const (
	FieldCode         SubjectField = "code"
	FieldName         SubjectField = "name"
	FieldCredits      SubjectField = "credits"
	FieldType         SubjectField = "type"
	FieldLabRequired  SubjectField = "lab_required"
	FieldHoursPerWeek SubjectField = "hoursPerWeek"
)

// EditResult reports the outcome of an editor operation. Warnings hold the
// violations of the whole curriculum after the edit; they never block it.
type EditResult struct {
	Applied       bool       `json:"applied"`
	SemesterTotal int        `json:"semesterTotal"`
	Warnings      Violations `json:"warnings,omitempty"`
}

// Editor mutates a curriculum in place. Every operation re-derives the
// affected semester's total_credits; the 160 total is only reported.
type Editor struct {
	c *models.Curriculum
}

// NewEditor returns an editor over c, which may be nil
func NewEditor(c *models.Curriculum) *Editor {
	return &Editor{c: c}
}

// Curriculum returns the edited curriculum
func (e *Editor) Curriculum() *models.Curriculum {
	return e.c
}

// NewSubject returns the placeholder subject appended by AddSubject
func NewSubject() models.Subject {
	return models.Subject{
		Code:             "NEW101",
		Name:             "New Subject",
		Credits:          3,
		Type:             models.SubjectCore,
		LabRequired:      false,
		HoursPerWeek:     3,
		LearningOutcomes: []string{"Understand basic concepts"},
		CourseOutcomes:   []string{"Apply knowledge to solve problems"},
		Units: []models.Unit{
			{UnitNumber: 1, Title: "Introduction", Topics: []string{"Overview"}},
			{UnitNumber: 2, Title: "Basics", Topics: []string{"Fundamentals"}},
			{UnitNumber: 3, Title: "Intermediate", Topics: []string{"Concepts"}},
			{UnitNumber: 4, Title: "Advanced", Topics: []string{"Applications"}},
			{UnitNumber: 5, Title: "Conclusion", Topics: []string{"Summary"}},
		},
	}
}

// EditSubjectField replaces one field of a subject
func (e *Editor) EditSubjectField(semIdx, subIdx int, field SubjectField, value interface{}) (EditResult, error) {
	if e.c == nil {
		return EditResult{}, nil
	}
	sem, err := e.semester(semIdx)
	if err != nil {
		return EditResult{}, err
	}
	if subIdx < 0 || subIdx >= len(sem.Subjects) {
		return EditResult{}, fmt.Errorf("%w: subject %d of semester %d", apperrors.ErrIndexOutOfRange, subIdx, semIdx)
	}
	sub := &sem.Subjects[subIdx]

	switch field {
	case FieldCode:
		s, err := asString(field, value)
		if err != nil {
			return EditResult{}, err
		}
		sub.Code = s
	case FieldName:
		s, err := asString(field, value)
		if err != nil {
			return EditResult{}, err
		}
		sub.Name = s
	case FieldCredits:
		n, err := asNonNegativeInt(field, value)
		if err != nil {
			return EditResult{}, err
		}
		sub.Credits = n
	case FieldHoursPerWeek:
		n, err := asNonNegativeInt(field, value)
		if err != nil {
			return EditResult{}, err
		}
		sub.HoursPerWeek = n
	case FieldType:
		s, err := asString(field, value)
		if err != nil {
			return EditResult{}, err
		}
		t := models.SubjectType(s)
		if !t.Valid() {
			return EditResult{}, apperrors.NewValidationError(string(field), fmt.Sprintf("unknown subject type %q", s))
		}
		sub.Type = t
	case FieldLabRequired:
		b, err := asBool(field, value)
		if err != nil {
			return EditResult{}, err
		}
		sub.LabRequired = b
	default:
		return EditResult{}, apperrors.NewValidationError(string(field), fmt.Sprintf("field %q is not editable", field))
	}

	return e.result(sem), nil
}

// AddSubject appends the placeholder subject to a semester
func (e *Editor) AddSubject(semIdx int) (EditResult, error) {
	if e.c == nil {
		return EditResult{}, nil
	}
	sem, err := e.semester(semIdx)
	if err != nil {
		return EditResult{}, err
	}
	sem.Subjects = append(sem.Subjects, NewSubject())
	return e.result(sem), nil
}

// RemoveSubject removes a subject by position; later subjects shift down
func (e *Editor) RemoveSubject(semIdx, subIdx int) (EditResult, error) {
	if e.c == nil {
		return EditResult{}, nil
	}
	sem, err := e.semester(semIdx)
	if err != nil {
		return EditResult{}, err
	}
	if subIdx < 0 || subIdx >= len(sem.Subjects) {
		return EditResult{}, fmt.Errorf("%w: subject %d of semester %d", apperrors.ErrIndexOutOfRange, subIdx, semIdx)
	}
	sem.Subjects = append(sem.Subjects[:subIdx], sem.Subjects[subIdx+1:]...)
	return e.result(sem), nil
}

func (e *Editor) semester(idx int) (*models.Semester, error) {
	if idx < 0 || idx >= len(e.c.Semesters) {
		return nil, fmt.Errorf("%w: semester %d", apperrors.ErrIndexOutOfRange, idx)
	}
	return &e.c.Semesters[idx], nil
}

func (e *Editor) result(sem *models.Semester) EditResult {
	return EditResult{
		Applied:       true,
		SemesterTotal: sem.RecomputeCredits(),
		Warnings:      Validate(e.c),
	}
}

func asString(field SubjectField, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be a string", field))
	}
	return s, nil
}

// maxSubjectNumber bounds credits and hours so semester sums cannot overflow
const maxSubjectNumber = 1000

func asNonNegativeInt(field SubjectField, v interface{}) (int, error) {
	var f float64
	switch x := v.(type) {
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case float64:
		f = x
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be a number", field))
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be a number", field))
		}
		f = n
	default:
		return 0, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be a number", field))
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be a whole number", field))
	}
	if f < 0 {
		return 0, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be non-negative", field))
	}
	if f > maxSubjectNumber {
		return 0, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be at most %d", field, maxSubjectNumber))
	}
	return int(f), nil
}

func asBool(field SubjectField, v interface{}) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(x)
		if err == nil {
			return b, nil
		}
	}
	return false, apperrors.NewValidationError(string(field), fmt.Sprintf("%s must be a boolean", field))
}
