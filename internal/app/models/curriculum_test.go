package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestCurriculumJSONVariant(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMode GenerationMode
		wantOBE  bool
	}{
		{
			name:     "explicit external drops accreditation",
			input:    `{"degree":"B.Tech","mode":"external","obe_mapping":{"CO":"c","PO":"p","mapping":"m"}}`,
			wantMode: ModeExternal,
		},
		{
			name:     "accreditation implies institutional",
			input:    `{"degree":"B.Tech","co_po_mapping":[{"CO":"CO1","PO1":3}]}`,
			wantMode: ModeInstitutional,
			wantOBE:  true,
		},
		{
			name:     "plain document is external",
			input:    `{"degree":"B.Tech"}`,
			wantMode: ModeExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Curriculum
			if err := json.Unmarshal([]byte(tt.input), &c); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if c.Mode() != tt.wantMode {
				t.Errorf("Mode() = %q, want %q", c.Mode(), tt.wantMode)
			}
			if _, ok := c.Institutional(); ok != tt.wantOBE {
				t.Errorf("Institutional() ok = %v, want %v", ok, tt.wantOBE)
			}
		})
	}
}

func TestExternalCurriculumOmitsAccreditationFields(t *testing.T) {
	c := Curriculum{Degree: "B.Sc", Variant: ExternalVariant{}}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, "obe_mapping") || strings.Contains(s, "co_po_mapping") {
		t.Errorf("external curriculum serialised accreditation fields: %s", s)
	}
	if !strings.Contains(s, `"mode":"external"`) {
		t.Errorf("mode missing: %s", s)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Curriculum{
		Semesters: []Semester{{Number: 1, Subjects: []Subject{{Code: "A", Credits: 4, Units: []Unit{{UnitNumber: 1, Topics: []string{"x"}}}}}}},
		SkillMapping: map[string][]string{"Go": {"A"}},
		Variant:      InstitutionalVariant{COPO: []COPORow{{CO: "CO1", PO1: 2}}},
	}
	cp := orig.Clone()
	if !reflect.DeepEqual(orig, cp) {
		t.Fatal("clone differs from original")
	}

	cp.Semesters[0].Subjects[0].Units[0].Topics[0] = "y"
	cp.SkillMapping["Go"][0] = "B"
	inst, _ := cp.Institutional()
	inst.COPO[0].PO1 = 0

	if orig.Semesters[0].Subjects[0].Units[0].Topics[0] != "x" {
		t.Error("topics shared with clone")
	}
	if orig.SkillMapping["Go"][0] != "A" {
		t.Error("skill mapping shared with clone")
	}
	if o, _ := orig.Institutional(); o.COPO[0].PO1 != 2 {
		t.Error("CO-PO rows shared with clone")
	}
}

func TestSemesterRecomputeCredits(t *testing.T) {
	sem := Semester{Number: 4, TotalCredits: 0, Subjects: []Subject{{Credits: 6}, {Credits: 14}}}
	if got := sem.RecomputeCredits(); got != 20 || sem.TotalCredits != 20 {
		t.Errorf("RecomputeCredits() = %d, TotalCredits = %d, want 20", got, sem.TotalCredits)
	}
}

func TestCOPORowScoresOrder(t *testing.T) {
	r := COPORow{PO1: 3, PO2: 2, PO12: 1}
	s := r.Scores()
	if s[0] != 3 || s[1] != 2 || s[11] != 1 || s[5] != 0 {
		t.Errorf("Scores() = %v", s)
	}
}
