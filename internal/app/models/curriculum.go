package models

// Unit is one of the five teaching units of a subject
type Unit struct {
	UnitNumber int      `json:"unitNumber" yaml:"unitNumber"`
	Title      string   `json:"title" yaml:"title"`
	Topics     []string `json:"topics" yaml:"topics"`
}

// Subject is a single course offered in a semester
type Subject struct {
	Code             string      `json:"code" yaml:"code"`
	Name             string      `json:"name" yaml:"name"`
	Credits          int         `json:"credits" yaml:"credits"`
	Type             SubjectType `json:"type" yaml:"type"`
	LabRequired      bool        `json:"lab_required" yaml:"lab_required"`
	HoursPerWeek     int         `json:"hoursPerWeek" yaml:"hoursPerWeek"`
	LearningOutcomes []string    `json:"learningOutcomes" yaml:"learningOutcomes"`
	CourseOutcomes   []string    `json:"courseOutcomes" yaml:"courseOutcomes"`
	Units            []Unit      `json:"units" yaml:"units"`
}

// DefaultHoursPerWeek is shown for subjects that carry no weekly hours
const DefaultHoursPerWeek = 4

// DisplayHoursPerWeek returns the weekly hours, falling back to DefaultHoursPerWeek when unset
func (s Subject) DisplayHoursPerWeek() int {
	if s.HoursPerWeek <= 0 {
		return DefaultHoursPerWeek
	}
	return s.HoursPerWeek
}

// Semester groups the subjects taught in one term.
// TotalCredits is derived from Subjects and is only written by RecomputeCredits.
type Semester struct {
	Number       int       `json:"semester" yaml:"semester"`
	TotalCredits int       `json:"total_credits" yaml:"total_credits"`
	Subjects     []Subject `json:"subjects" yaml:"subjects"`
}

// SubjectCredits sums the credits of the semester's subjects
func (s *Semester) SubjectCredits() int {
	total := 0
	for _, sub := range s.Subjects {
		total += sub.Credits
	}
	return total
}

// RecomputeCredits re-derives TotalCredits and returns it
func (s *Semester) RecomputeCredits() int {
	s.TotalCredits = s.SubjectCredits()
	return s.TotalCredits
}

// OBEMapping is the outcome-based-education narrative of an institutional curriculum
type OBEMapping struct {
	CO      string `json:"CO" yaml:"CO"`
	PO      string `json:"PO" yaml:"PO"`
	Mapping string `json:"mapping" yaml:"mapping"`
}

// COPORow scores one course outcome against the twelve program outcomes
type COPORow struct {
	CO   string `json:"CO" yaml:"CO"`
	PO1  int    `json:"PO1" yaml:"PO1"`
	PO2  int    `json:"PO2" yaml:"PO2"`
	PO3  int    `json:"PO3" yaml:"PO3"`
	PO4  int    `json:"PO4" yaml:"PO4"`
	PO5  int    `json:"PO5" yaml:"PO5"`
	PO6  int    `json:"PO6" yaml:"PO6"`
	PO7  int    `json:"PO7" yaml:"PO7"`
	PO8  int    `json:"PO8" yaml:"PO8"`
	PO9  int    `json:"PO9" yaml:"PO9"`
	PO10 int    `json:"PO10" yaml:"PO10"`
	PO11 int    `json:"PO11" yaml:"PO11"`
	PO12 int    `json:"PO12" yaml:"PO12"`
}

// Scores returns PO1..PO12 in column order
func (r COPORow) Scores() [ProgramOutcomes]int {
	return [ProgramOutcomes]int{r.PO1, r.PO2, r.PO3, r.PO4, r.PO5, r.PO6, r.PO7, r.PO8, r.PO9, r.PO10, r.PO11, r.PO12}
}

// Variant carries the mode-specific part of a curriculum. It is implemented
// only by ExternalVariant and InstitutionalVariant, so accreditation data
// cannot be attached to an external curriculum.
type Variant interface {
	Mode() GenerationMode
	sealed()
}

// ExternalVariant marks an industry-facing curriculum without accreditation data
type ExternalVariant struct{}

func (ExternalVariant) Mode() GenerationMode { return ModeExternal }
func (ExternalVariant) sealed()              {}

// InstitutionalVariant carries the OBE narrative and CO-PO table
type InstitutionalVariant struct {
	OBE  OBEMapping
	COPO []COPORow
}

func (InstitutionalVariant) Mode() GenerationMode { return ModeInstitutional }
func (InstitutionalVariant) sealed()              {}

// Curriculum is the full eight-semester programme structure
type Curriculum struct {
	Degree           string
	Branch           string
	Specialization   string
	Semesters        []Semester
	TotalCredits     int
	NonCreditSubject string
	IndustryScore    float64
	SkillMapping     map[string][]string
	Recommendations  []string
	Variant          Variant
}

// Mode reports the generation mode implied by the variant
func (c *Curriculum) Mode() GenerationMode {
	if c.Variant == nil {
		return ModeExternal
	}
	return c.Variant.Mode()
}

// Institutional returns the institutional variant if present
func (c *Curriculum) Institutional() (*InstitutionalVariant, bool) {
	switch v := c.Variant.(type) {
	case InstitutionalVariant:
		return &v, true
	case *InstitutionalVariant:
		return v, v != nil
	}
	return nil, false
}

// SemesterCredits sums the semester totals as stored
func (c *Curriculum) SemesterCredits() int {
	total := 0
	for i := range c.Semesters {
		total += c.Semesters[i].TotalCredits
	}
	return total
}

// Clone returns a deep copy
func (c *Curriculum) Clone() *Curriculum {
	if c == nil {
		return nil
	}
	out := *c
	out.Semesters = make([]Semester, len(c.Semesters))
	for i, sem := range c.Semesters {
		out.Semesters[i] = sem
		if sem.Subjects != nil {
			out.Semesters[i].Subjects = make([]Subject, len(sem.Subjects))
			for j, sub := range sem.Subjects {
				out.Semesters[i].Subjects[j] = sub.clone()
			}
		}
	}
	if c.Semesters == nil {
		out.Semesters = nil
	}
	if c.SkillMapping != nil {
		out.SkillMapping = make(map[string][]string, len(c.SkillMapping))
		for k, v := range c.SkillMapping {
			out.SkillMapping[k] = cloneStrings(v)
		}
	}
	out.Recommendations = cloneStrings(c.Recommendations)
	if inst, ok := c.Institutional(); ok {
		cp := InstitutionalVariant{OBE: inst.OBE}
		if inst.COPO != nil {
			cp.COPO = append([]COPORow(nil), inst.COPO...)
		}
		out.Variant = cp
	}
	return &out
}

func (s Subject) clone() Subject {
	s.LearningOutcomes = cloneStrings(s.LearningOutcomes)
	s.CourseOutcomes = cloneStrings(s.CourseOutcomes)
	if s.Units != nil {
		units := make([]Unit, len(s.Units))
		for i, u := range s.Units {
			u.Topics = cloneStrings(u.Topics)
			units[i] = u
		}
		s.Units = units
	}
	return s
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
