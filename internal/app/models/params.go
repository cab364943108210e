package models

// Form option lists offered by the generate form
var (
	AccreditationOptions  = []string{"NAAC A++", "NBA", "Autonomous", "Deemed"}
	DegreeOptions         = []string{"B.Tech", "M.Tech", "Diploma", "B.Sc", "M.Sc"}
	BranchOptions         = []string{"CSE", "IT", "ECE", "Mechanical", "Civil", "Electrical"}
	SpecializationOptions = []string{"AI/ML", "Data Science", "Cybersecurity", "Cloud & DevOps", "Web3", "Full Stack", "Core CS"}
)

// GenerationParams are the form parameters a curriculum is generated from
type GenerationParams struct {
	InstitutionName    string         `json:"institutionName" yaml:"institutionName" binding:"max=200"`
	Accreditation      string         `json:"accreditation" yaml:"accreditation" binding:"required,oneof='NAAC A++' NBA Autonomous Deemed"`
	Degree             string         `json:"degree" yaml:"degree" binding:"required,oneof=B.Tech M.Tech Diploma B.Sc M.Sc"`
	Duration           string         `json:"duration" yaml:"duration" binding:"required,duration,max=40"`
	TotalCredits       int            `json:"totalCredits" yaml:"totalCredits" binding:"min=0,max=400"`
	IndustryAlignment  int            `json:"industryAlignment" yaml:"industryAlignment" binding:"min=0,max=100"`
	IncludeInternship  bool           `json:"includeInternship" yaml:"includeInternship"`
	IncludeCapstone    bool           `json:"includeCapstone" yaml:"includeCapstone"`
	Branch             string         `json:"branch" yaml:"branch" binding:"required,notblank,max=80"`
	Specialization     string         `json:"specialization" yaml:"specialization" binding:"required,notblank,max=80"`
	PreviousCurriculum string         `json:"previousCurriculum" yaml:"previousCurriculum" binding:"max=200000"`
	Mode               GenerationMode `json:"mode" yaml:"mode" binding:"omitempty,oneof=institutional external"`
}

// DefaultParams returns the form defaults
func DefaultParams() GenerationParams {
	return GenerationParams{
		Accreditation:     "Autonomous",
		Degree:            "B.Tech",
		Duration:          "4 Years",
		TotalCredits:      TotalCredits,
		IndustryAlignment: 80,
		IncludeInternship: true,
		IncludeCapstone:   true,
		Branch:            "CSE",
		Specialization:    "AI/ML",
	}
}
