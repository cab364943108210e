package models

import "encoding/json"

// CurriculumDocument is the flat wire shape of a curriculum as exchanged
// with the generator, the HTTP API and the JSON/YAML exports.
type CurriculumDocument struct {
	Degree           string              `json:"degree" yaml:"degree"`
	Branch           string              `json:"branch" yaml:"branch"`
	Specialization   string              `json:"specialization" yaml:"specialization"`
	Mode             GenerationMode      `json:"mode,omitempty" yaml:"mode,omitempty"`
	Semesters        []Semester          `json:"semesters" yaml:"semesters"`
	TotalCredits     int                 `json:"total_credits" yaml:"total_credits"`
	NonCreditSubject string              `json:"non_credit_subject" yaml:"non_credit_subject"`
	IndustryScore    float64             `json:"industry_score" yaml:"industry_score"`
	SkillMapping     map[string][]string `json:"skill_mapping" yaml:"skill_mapping"`
	Recommendations  []string            `json:"recommendations" yaml:"recommendations"`
	OBEMapping       *OBEMapping         `json:"obe_mapping,omitempty" yaml:"obe_mapping,omitempty"`
	COPOMapping      []COPORow           `json:"co_po_mapping,omitempty" yaml:"co_po_mapping,omitempty"`
}

// HasAccreditation reports whether the document carries any OBE or CO-PO data
func (d *CurriculumDocument) HasAccreditation() bool {
	return d.OBEMapping != nil || len(d.COPOMapping) > 0
}

// Curriculum converts the document into the model for the given mode.
// Accreditation data is kept only for institutional mode.
func (d *CurriculumDocument) Curriculum(mode GenerationMode) *Curriculum {
	c := &Curriculum{
		Degree:           d.Degree,
		Branch:           d.Branch,
		Specialization:   d.Specialization,
		Semesters:        d.Semesters,
		TotalCredits:     d.TotalCredits,
		NonCreditSubject: d.NonCreditSubject,
		IndustryScore:    d.IndustryScore,
		SkillMapping:     d.SkillMapping,
		Recommendations:  d.Recommendations,
		Variant:          ExternalVariant{},
	}
	if mode == ModeInstitutional {
		v := InstitutionalVariant{COPO: d.COPOMapping}
		if d.OBEMapping != nil {
			v.OBE = *d.OBEMapping
		}
		c.Variant = v
	}
	return c
}

// Document flattens the curriculum into its wire shape
func (c *Curriculum) Document() CurriculumDocument {
	d := CurriculumDocument{
		Degree:           c.Degree,
		Branch:           c.Branch,
		Specialization:   c.Specialization,
		Mode:             c.Mode(),
		Semesters:        c.Semesters,
		TotalCredits:     c.TotalCredits,
		NonCreditSubject: c.NonCreditSubject,
		IndustryScore:    c.IndustryScore,
		SkillMapping:     c.SkillMapping,
		Recommendations:  c.Recommendations,
	}
	if inst, ok := c.Institutional(); ok {
		obe := inst.OBE
		d.OBEMapping = &obe
		d.COPOMapping = inst.COPO
	}
	return d
}

// MarshalJSON encodes the curriculum in its flat wire shape
func (c Curriculum) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// UnmarshalJSON decodes the flat wire shape. Without an explicit mode the
// presence of accreditation data selects the institutional variant.
func (c *Curriculum) UnmarshalJSON(data []byte) error {
	var d CurriculumDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	mode := d.Mode
	if !mode.Valid() {
		mode = ModeExternal
		if d.HasAccreditation() {
			mode = ModeInstitutional
		}
	}
	*c = *d.Curriculum(mode)
	return nil
}

// MarshalYAML encodes the curriculum in its flat wire shape
func (c Curriculum) MarshalYAML() (interface{}, error) {
	return c.Document(), nil
}
