package curriculum

import (
	"strings"
	"testing"

	"github.com/yigit/curricuforge/internal/app/curriculum/curriculumtest"
	"github.com/yigit/curricuforge/internal/app/models"
)

func TestValidateAcceptsSample(t *testing.T) {
	for _, mode := range []models.GenerationMode{models.ModeExternal, models.ModeInstitutional} {
		t.Run(string(mode), func(t *testing.T) {
			c := curriculumtest.Sample(mode)
			if vs := Validate(c); len(vs) != 0 {
				t.Fatalf("Validate() = %v, want none", vs)
			}

			sum := 0
			for _, sem := range c.Semesters {
				if sem.TotalCredits != sem.SubjectCredits() {
					t.Errorf("semester %d total %d ≠ subject sum %d", sem.Number, sem.TotalCredits, sem.SubjectCredits())
				}
				sum += sem.TotalCredits
			}
			if sum != models.TotalCredits {
				t.Errorf("semester totals sum to %d, want %d", sum, models.TotalCredits)
			}
		})
	}
}

func TestValidateReportsViolations(t *testing.T) {
	tests := []struct {
		name   string
		mode   models.GenerationMode
		mutate func(c *models.Curriculum)
		rule   Rule
		path   string
	}{
		{"missing semester", models.ModeExternal, func(c *models.Curriculum) { c.Semesters = c.Semesters[:7] }, RuleSemesterCount, "semesters"},
		{"renumbered semester", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[2].Number = 9 }, RuleSemesterNumber, "semesters[2].semester"},
		{"stale semester total", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[2].TotalCredits = 18 }, RuleSemesterCredits, "semesters[2].total_credits"},
		{"curriculum total mismatch", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[0].Subjects[0].Credits = 9; c.Semesters[0].RecomputeCredits() }, RuleCurriculumCredits, "total_credits"},
		{"total not 160", models.ModeExternal, func(c *models.Curriculum) { c.TotalCredits = 150 }, RuleCreditTotal, "total_credits"},
		{"blank code", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[1].Subjects[0].Code = " " }, RuleSubjectRequired, "semesters[1].subjects[0].code"},
		{"blank name", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[1].Subjects[2].Name = "" }, RuleSubjectRequired, "semesters[1].subjects[2].name"},
		{"duplicate code", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[3].Subjects[1].Code = c.Semesters[3].Subjects[0].Code }, RuleSubjectCodeUnique, "semesters[3].subjects[1].code"},
		{"negative credits", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[4].Subjects[0].Credits = -1 }, RuleSubjectCredits, "semesters[4].subjects[0].credits"},
		{"unknown type", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[5].Subjects[0].Type = "Optional" }, RuleSubjectType, "semesters[5].subjects[0].type"},
		{"four units", models.ModeExternal, func(c *models.Curriculum) { u := &c.Semesters[6].Subjects[0].Units; *u = (*u)[:4] }, RuleUnitCount, "semesters[6].subjects[0].units"},
		{"unit numbering", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[6].Subjects[1].Units[3].UnitNumber = 7 }, RuleUnitNumber, "semesters[6].subjects[1].units[3].unitNumber"},
		{"second non-credit", models.ModeExternal, func(c *models.Curriculum) { c.Semesters[7].Subjects[3].Type = models.SubjectNonCredit }, RuleNonCreditCount, "semesters"},
		{"score above 100", models.ModeExternal, func(c *models.Curriculum) { c.IndustryScore = 120 }, RuleIndustryScore, "industry_score"},
		{"missing degree", models.ModeExternal, func(c *models.Curriculum) { c.Degree = "" }, RuleCurriculumRequired, "degree"},
		{"empty OBE", models.ModeInstitutional, func(c *models.Curriculum) {
			v, _ := c.Institutional()
			v.OBE.Mapping = ""
			c.Variant = *v
		}, RuleAccreditation, "obe_mapping"},
		{"no CO-PO rows", models.ModeInstitutional, func(c *models.Curriculum) {
			v, _ := c.Institutional()
			v.COPO = nil
			c.Variant = *v
		}, RuleAccreditation, "co_po_mapping"},
		{"CO-PO score above 3", models.ModeInstitutional, func(c *models.Curriculum) {
			v, _ := c.Institutional()
			v.COPO[1].PO4 = 4
			c.Variant = *v
		}, RuleCOPOScore, "co_po_mapping[1].PO4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := curriculumtest.Sample(tt.mode)
			tt.mutate(c)

			vs := Validate(c)
			found := false
			for _, v := range vs {
				if v.Rule == tt.rule && v.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want rule %s at %s", vs, tt.rule, tt.path)
			}
		})
	}
}

func TestSemesterCreditsMessage(t *testing.T) {
	c := curriculumtest.Sample(models.ModeExternal)
	c.Semesters[2].TotalCredits = 18
	c.Semesters[2].Subjects[0].Credits = 6

	vs := Validate(c)
	for _, v := range vs {
		if v.Rule == RuleSemesterCredits {
			if !strings.Contains(v.Message, "semester 3 total_credits 18 ≠ sum of subject credits 21") {
				t.Errorf("message = %q", v.Message)
			}
			return
		}
	}
	t.Fatalf("no %s violation in %v", RuleSemesterCredits, vs)
}

func TestValidateNil(t *testing.T) {
	if vs := Validate(nil); vs != nil {
		t.Errorf("Validate(nil) = %v", vs)
	}
}

func TestViolationsRules(t *testing.T) {
	vs := Violations{{Rule: RuleUnitCount}, {Rule: RuleCreditTotal}, {Rule: RuleUnitCount}}
	got := vs.Rules()
	if len(got) != 2 || got[0] != string(RuleUnitCount) || got[1] != string(RuleCreditTotal) {
		t.Errorf("Rules() = %v", got)
	}
	if !vs.Has(RuleCreditTotal) || vs.Has(RuleCOPOScore) {
		t.Error("Has() mismatch")
	}
}
