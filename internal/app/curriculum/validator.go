// Package curriculum holds the rules a curriculum must satisfy, the decode
// step for generator output and the in-memory editor.
package curriculum

import (
	"fmt"
	"strings"

	"github.com/yigit/curricuforge/internal/app/models"
)

// Rule names the invariant a Violation breaks
type Rule string

const (
	RuleSemesterCount      Rule = "semester_count"
	RuleSemesterNumber     Rule = "semester_number"
	RuleSemesterCredits    Rule = "semester_credits"
	RuleCurriculumCredits  Rule = "curriculum_credits"
	RuleCreditTotal        Rule = "credit_total"
	RuleSubjectRequired    Rule = "subject_required"
	RuleSubjectCodeUnique  Rule = "subject_code_unique"
	RuleSubjectCredits     Rule = "subject_credits"
	RuleSubjectType        Rule = "subject_type"
	RuleUnitCount          Rule = "unit_count"
	RuleUnitNumber         Rule = "unit_number"
	RuleNonCreditCount     Rule = "non_credit_count"
	RuleIndustryScore      Rule = "industry_score"
	RuleCurriculumRequired Rule = "curriculum_required"
	RuleAccreditation      Rule = "accreditation"
	RuleCOPOScore          Rule = "copo_score"
)

// Violation is one broken invariant at a path inside the curriculum
type Violation struct {
	Rule    Rule   `json:"rule"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Violations is the result of Validate
type Violations []Violation

// Has reports whether any violation breaks rule
func (vs Violations) Has(rule Rule) bool {
	for _, v := range vs {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

// Rules lists the distinct rules in first-seen order
func (vs Violations) Rules() []string {
	seen := make(map[Rule]bool, len(vs))
	var out []string
	for _, v := range vs {
		if !seen[v.Rule] {
			seen[v.Rule] = true
			out = append(out, string(v.Rule))
		}
	}
	return out
}

// Validate checks c against every curriculum invariant. An empty result
// means the curriculum is accepted; a nil curriculum yields no violations.
func Validate(c *models.Curriculum) Violations {
	if c == nil {
		return nil
	}
	v := &validator{}

	if strings.TrimSpace(c.Degree) == "" {
		v.add(RuleCurriculumRequired, "degree", "degree is required")
	}
	if strings.TrimSpace(c.Branch) == "" {
		v.add(RuleCurriculumRequired, "branch", "branch is required")
	}
	if strings.TrimSpace(c.Specialization) == "" {
		v.add(RuleCurriculumRequired, "specialization", "specialization is required")
	}

	if len(c.Semesters) != models.SemesterCount {
		v.add(RuleSemesterCount, "semesters", "curriculum has %d semesters, want %d", len(c.Semesters), models.SemesterCount)
	}

	nonCredit := 0
	for i := range c.Semesters {
		nonCredit += v.semester(i, &c.Semesters[i])
	}
	if nonCredit != 1 {
		v.add(RuleNonCreditCount, "semesters", "curriculum has %d Non-Credit subjects, want exactly 1", nonCredit)
	}

	if sum := c.SemesterCredits(); sum != c.TotalCredits {
		v.add(RuleCurriculumCredits, "total_credits", "total_credits %d ≠ sum of semester credits %d", c.TotalCredits, sum)
	}
	if c.TotalCredits != models.TotalCredits {
		v.add(RuleCreditTotal, "total_credits", "total_credits %d ≠ %d", c.TotalCredits, models.TotalCredits)
	}

	if c.IndustryScore < 0 || c.IndustryScore > 100 {
		v.add(RuleIndustryScore, "industry_score", "industry_score %g is outside 0-100", c.IndustryScore)
	}

	if inst, ok := c.Institutional(); ok {
		v.accreditation(inst)
	}

	return v.out
}

type validator struct {
	out Violations
}

func (v *validator) add(rule Rule, path, format string, args ...interface{}) {
	v.out = append(v.out, Violation{Rule: rule, Path: path, Message: fmt.Sprintf(format, args...)})
}

// semester validates one semester and returns its Non-Credit subject count
func (v *validator) semester(i int, sem *models.Semester) int {
	path := fmt.Sprintf("semesters[%d]", i)

	if sem.Number != i+1 {
		v.add(RuleSemesterNumber, path+".semester", "semester at position %d is numbered %d", i+1, sem.Number)
	}
	if sum := sem.SubjectCredits(); sum != sem.TotalCredits {
		v.add(RuleSemesterCredits, path+".total_credits",
			"semester %d total_credits %d ≠ sum of subject credits %d", sem.Number, sem.TotalCredits, sum)
	}

	nonCredit := 0
	codes := make(map[string]int, len(sem.Subjects))
	for j := range sem.Subjects {
		sub := &sem.Subjects[j]
		sp := fmt.Sprintf("%s.subjects[%d]", path, j)

		if strings.TrimSpace(sub.Code) == "" {
			v.add(RuleSubjectRequired, sp+".code", "subject code is required")
		} else if first, dup := codes[sub.Code]; dup {
			v.add(RuleSubjectCodeUnique, sp+".code", "code %q already used by subject %d of semester %d", sub.Code, first, sem.Number)
		} else {
			codes[sub.Code] = j
		}
		if strings.TrimSpace(sub.Name) == "" {
			v.add(RuleSubjectRequired, sp+".name", "subject name is required")
		}
		if sub.Credits < 0 {
			v.add(RuleSubjectCredits, sp+".credits", "credits %d is negative", sub.Credits)
		}
		if !sub.Type.Valid() {
			v.add(RuleSubjectType, sp+".type", "unknown subject type %q", sub.Type)
		}
		if sub.Type == models.SubjectNonCredit {
			nonCredit++
		}

		if len(sub.Units) != models.UnitsPerSubject {
			v.add(RuleUnitCount, sp+".units", "subject %s has %d units, want %d", sub.Code, len(sub.Units), models.UnitsPerSubject)
		}
		for k, u := range sub.Units {
			if u.UnitNumber != k+1 {
				v.add(RuleUnitNumber, fmt.Sprintf("%s.units[%d].unitNumber", sp, k), "unit at position %d is numbered %d", k+1, u.UnitNumber)
			}
		}
	}
	return nonCredit
}

func (v *validator) accreditation(inst *models.InstitutionalVariant) {
	if strings.TrimSpace(inst.OBE.CO) == "" || strings.TrimSpace(inst.OBE.PO) == "" || strings.TrimSpace(inst.OBE.Mapping) == "" {
		v.add(RuleAccreditation, "obe_mapping", "institutional curriculum needs CO, PO and mapping text")
	}
	if len(inst.COPO) == 0 {
		v.add(RuleAccreditation, "co_po_mapping", "institutional curriculum needs at least one CO-PO row")
	}
	for i, row := range inst.COPO {
		for j, score := range row.Scores() {
			if score < 0 || score > models.MaxCOPOScore {
				v.add(RuleCOPOScore, fmt.Sprintf("co_po_mapping[%d].PO%d", i, j+1), "%s PO%d score %d is outside 0-%d", row.CO, j+1, score, models.MaxCOPOScore)
			}
		}
	}
}
