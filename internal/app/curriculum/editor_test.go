package curriculum

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/yigit/curricuforge/internal/app/curriculum/curriculumtest"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestEditCreditsRecomputesWithoutClamping(t *testing.T) {
	c := curriculumtest.Sample(models.ModeExternal)
	// subjects after the first sum to 6+4+5 plus the 0-credit Non-Credit subject
	e := NewEditor(c)

	res, err := e.EditSubjectField(0, 0, FieldCredits, 10)
	if err != nil {
		t.Fatalf("EditSubjectField() error = %v", err)
	}
	if !res.Applied {
		t.Fatal("edit not applied")
	}
	if res.SemesterTotal != 25 || c.Semesters[0].TotalCredits != 25 {
		t.Errorf("semester total = %d/%d, want 25", res.SemesterTotal, c.Semesters[0].TotalCredits)
	}
	if !res.Warnings.Has(RuleCurriculumCredits) {
		t.Errorf("expected a curriculum_credits warning, got %v", res.Warnings)
	}
	if res.Warnings.Has(RuleSemesterCredits) {
		t.Errorf("semester invariant broken after edit: %v", res.Warnings)
	}
}

func TestEditSubjectFieldValues(t *testing.T) {
	tests := []struct {
		name  string
		field SubjectField
		value interface{}
		check func(s models.Subject) bool
	}{
		{"code", FieldCode, "CS101", func(s models.Subject) bool { return s.Code == "CS101" }},
		{"name", FieldName, "Data Structures", func(s models.Subject) bool { return s.Name == "Data Structures" }},
		{"credits from json number", FieldCredits, float64(4), func(s models.Subject) bool { return s.Credits == 4 }},
		{"credits from string", FieldCredits, "2", func(s models.Subject) bool { return s.Credits == 2 }},
		{"credits from json.Number", FieldCredits, json.Number("7"), func(s models.Subject) bool { return s.Credits == 7 }},
		{"type", FieldType, "Elective", func(s models.Subject) bool { return s.Type == models.SubjectElective }},
		{"lab", FieldLabRequired, true, func(s models.Subject) bool { return s.LabRequired }},
		{"hours", FieldHoursPerWeek, 6, func(s models.Subject) bool { return s.HoursPerWeek == 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := curriculumtest.Sample(models.ModeExternal)
			if _, err := NewEditor(c).EditSubjectField(2, 1, tt.field, tt.value); err != nil {
				t.Fatalf("EditSubjectField() error = %v", err)
			}
			if !tt.check(c.Semesters[2].Subjects[1]) {
				t.Errorf("field %s not applied: %+v", tt.field, c.Semesters[2].Subjects[1])
			}
			if c.Semesters[2].TotalCredits != c.Semesters[2].SubjectCredits() {
				t.Error("semester total not recomputed")
			}
		})
	}
}

func TestEditSubjectFieldRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		field SubjectField
		value interface{}
	}{
		{"negative credits", FieldCredits, -2},
		{"fractional credits", FieldCredits, 2.5},
		{"credits beyond int range", FieldCredits, 1e19},
		{"credits above bound", FieldCredits, 1001},
		{"hours beyond int range", FieldHoursPerWeek, "1e19"},
		{"infinite credits", FieldCredits, math.Inf(1)},
		{"text credits", FieldCredits, "three"},
		{"unknown type", FieldType, "Mandatory"},
		{"type not string", FieldType, 3},
		{"lab not bool", FieldLabRequired, "maybe"},
		{"unknown field", SubjectField("units"), nil},
		{"code not string", FieldCode, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := curriculumtest.Sample(models.ModeExternal)
			before := c.Clone()

			res, err := NewEditor(c).EditSubjectField(0, 0, tt.field, tt.value)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("error = %v, want ErrValidationFailed", err)
			}
			if res.Applied {
				t.Error("rejected edit reported as applied")
			}
			if !reflect.DeepEqual(before, c) {
				t.Error("rejected edit changed the curriculum")
			}
		})
	}
}

func TestEditIdempotentPreservesIdentity(t *testing.T) {
	c := curriculumtest.Sample(models.ModeExternal)
	before := c.Clone()
	otherSemester := &c.Semesters[3]
	sibling := &c.Semesters[1].Subjects[2]
	units := &c.Semesters[1].Subjects[0].Units[0]

	current := c.Semesters[1].Subjects[0]
	e := NewEditor(c)
	for field, value := range map[SubjectField]interface{}{
		FieldCode:         current.Code,
		FieldName:         current.Name,
		FieldCredits:      current.Credits,
		FieldType:         string(current.Type),
		FieldLabRequired:  current.LabRequired,
		FieldHoursPerWeek: current.HoursPerWeek,
	} {
		if _, err := e.EditSubjectField(1, 0, field, value); err != nil {
			t.Fatalf("%s: %v", field, err)
		}
	}

	if !reflect.DeepEqual(before, c) {
		t.Error("editing fields to their current values changed the curriculum")
	}
	if otherSemester != &c.Semesters[3] || sibling != &c.Semesters[1].Subjects[2] || units != &c.Semesters[1].Subjects[0].Units[0] {
		t.Error("edit replaced unrelated semesters or subjects")
	}
}

func TestAddThenRemoveRestoresSemester(t *testing.T) {
	c := curriculumtest.Sample(models.ModeInstitutional)
	before := c.Clone()
	e := NewEditor(c)

	res, err := e.AddSubject(5)
	if err != nil {
		t.Fatal(err)
	}
	if res.SemesterTotal != 23 {
		t.Errorf("total after add = %d, want 23", res.SemesterTotal)
	}
	added := c.Semesters[5].Subjects[len(c.Semesters[5].Subjects)-1]
	if !reflect.DeepEqual(added, NewSubject()) {
		t.Errorf("appended subject = %+v, want placeholder", added)
	}
	if len(added.Units) != models.UnitsPerSubject || added.Type != models.SubjectCore || added.Credits != 3 {
		t.Errorf("placeholder shape wrong: %+v", added)
	}

	if _, err := e.RemoveSubject(5, len(c.Semesters[5].Subjects)-1); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before.Semesters[5], c.Semesters[5]) {
		t.Errorf("semester after add+remove = %+v, want %+v", c.Semesters[5], before.Semesters[5])
	}
}

func TestRemoveSubjectShiftsPositions(t *testing.T) {
	c := curriculumtest.Sample(models.ModeExternal)
	third := c.Semesters[0].Subjects[2].Code

	res, err := NewEditor(c).RemoveSubject(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c.Semesters[0].Subjects[1].Code != third {
		t.Errorf("subject 1 = %s, want %s", c.Semesters[0].Subjects[1].Code, third)
	}
	if res.SemesterTotal != 14 {
		t.Errorf("total = %d, want 14", res.SemesterTotal)
	}
}

func TestEditorWithoutCurriculumIsNoop(t *testing.T) {
	e := NewEditor(nil)

	ops := map[string]func() (EditResult, error){
		"edit":   func() (EditResult, error) { return e.EditSubjectField(0, 0, FieldCredits, 3) },
		"add":    func() (EditResult, error) { return e.AddSubject(0) },
		"remove": func() (EditResult, error) { return e.RemoveSubject(0, 0) },
	}
	for name, op := range ops {
		res, err := op()
		if err != nil || res.Applied {
			t.Errorf("%s: got (%+v, %v), want silent no-op", name, res, err)
		}
	}
}

func TestEditorIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		op   func(e *Editor) error
	}{
		{"edit semester", func(e *Editor) error { _, err := e.EditSubjectField(8, 0, FieldName, "x"); return err }},
		{"edit subject", func(e *Editor) error { _, err := e.EditSubjectField(0, 99, FieldName, "x"); return err }},
		{"add negative", func(e *Editor) error { _, err := e.AddSubject(-1); return err }},
		{"remove subject", func(e *Editor) error { _, err := e.RemoveSubject(2, 4); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op(NewEditor(curriculumtest.Sample(models.ModeExternal)))
			if !errors.Is(err, apperrors.ErrIndexOutOfRange) {
				t.Errorf("error = %v, want ErrIndexOutOfRange", err)
			}
		})
	}
}
