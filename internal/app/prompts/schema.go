package prompts

import (
	"encoding/json"
	"strings"

	"github.com/yigit/curricuforge/internal/app/models"
)

// schemaDocument is an example curriculum whose values describe the
// expected content of each field. It is built from the wire type so the
// field names sent to the generator match the decoder.
func schemaDocument(mode models.GenerationMode) models.CurriculumDocument {
	units := make([]models.Unit, models.UnitsPerSubject)
	for i := range units {
		units[i] = models.Unit{UnitNumber: i + 1, Title: "string", Topics: []string{"string"}}
	}

	types := make([]string, len(models.SubjectTypes))
	for i, t := range models.SubjectTypes {
		types[i] = string(t)
	}

	doc := models.CurriculumDocument{
		Degree:         "string",
		Branch:         "string",
		Specialization: "string",
		Semesters: []models.Semester{{
			Number:       1,
			TotalCredits: models.CreditsPerSemester,
			Subjects: []models.Subject{{
				Code:             "string",
				Name:             "string",
				Credits:          4,
				Type:             models.SubjectType(strings.Join(types, "|")),
				LabRequired:      false,
				HoursPerWeek:     4,
				LearningOutcomes: []string{"string"},
				CourseOutcomes:   []string{"string"},
				Units:            units,
			}},
		}},
		TotalCredits:     models.TotalCredits,
		NonCreditSubject: "string",
		IndustryScore:    85,
		SkillMapping:     map[string][]string{"skill_name": {"subject_names"}},
		Recommendations:  []string{"string"},
	}

	if mode == models.ModeInstitutional {
		doc.OBEMapping = &models.OBEMapping{CO: "string", PO: "string", Mapping: "string"}
		doc.COPOMapping = []models.COPORow{
			{CO: "CO1", PO1: 3, PO2: 2, PO3: 1, PO12: 1},
			{CO: "CO2", PO1: 2, PO2: 3, PO3: 2, PO4: 1, PO12: 1},
		}
	}
	return doc
}

// ResponseSchema renders the JSON structure the generator must return for mode
func ResponseSchema(mode models.GenerationMode) string {
	out, err := json.MarshalIndent(schemaDocument(mode), "", "  ")
	if err != nil {
		panic(err)
	}
	return string(out)
}
