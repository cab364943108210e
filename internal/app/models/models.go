package models

// SubjectType classifies a subject within a semester
type SubjectType string

const (
	SubjectCore      SubjectType = "Core"
	SubjectAdaptive  SubjectType = "Adaptive"
	SubjectEmerging  SubjectType = "Emerging"
	SubjectElective  SubjectType = "Elective"
	SubjectNonCredit SubjectType = "Non-Credit"
)

// SubjectTypes lists every valid subject type in display order
var SubjectTypes = []SubjectType{SubjectCore, SubjectAdaptive, SubjectEmerging, SubjectElective, SubjectNonCredit}

// Valid reports whether t is one of the known subject types
func (t SubjectType) Valid() bool {
	for _, v := range SubjectTypes {
		if t == v {
			return true
		}
	}
	return false
}

// GenerationMode selects between an accreditation-ready institutional
// curriculum and an industry-facing external one
type GenerationMode string

const (
	ModeInstitutional GenerationMode = "institutional"
	ModeExternal      GenerationMode = "external"
)

// Valid reports whether m is a known mode
func (m GenerationMode) Valid() bool {
	return m == ModeInstitutional || m == ModeExternal
}

const (
	// SemesterCount is the fixed number of semesters in a curriculum
	SemesterCount = 8
	// CreditsPerSemester is the per-semester credit target given to the generator
	CreditsPerSemester = 20
	// TotalCredits is the fixed curriculum-wide credit total
	TotalCredits = 160
	// UnitsPerSubject is the fixed number of units in every subject
	UnitsPerSubject = 5
	// ProgramOutcomes is the number of PO columns in a CO-PO row
	ProgramOutcomes = 12
	// MaxCOPOScore is the highest contribution score in a CO-PO cell
	MaxCOPOScore = 3
)
