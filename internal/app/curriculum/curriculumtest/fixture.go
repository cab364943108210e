// Package curriculumtest builds well-formed curricula for tests.
package curriculumtest

import (
	"encoding/json"
	"fmt"

	"github.com/yigit/curricuforge/internal/app/models"
)

// SemesterCredits are the credits of the four credit-bearing subjects of
// every sample semester. Semester 1 additionally holds a 0-credit
// Non-Credit subject at the end.
var SemesterCredits = []int{5, 6, 4, 5}

var sampleTypes = []models.SubjectType{models.SubjectCore, models.SubjectAdaptive, models.SubjectEmerging, models.SubjectElective}

// Sample returns a curriculum that satisfies every invariant
func Sample(mode models.GenerationMode) *models.Curriculum {
	c := &models.Curriculum{
		Degree:           "B.Tech",
		Branch:           "CSE",
		Specialization:   "AI/ML",
		TotalCredits:     models.TotalCredits,
		NonCreditSubject: "Environmental Studies",
		IndustryScore:    87,
		SkillMapping: map[string][]string{
			"Python":           {"Programming Fundamentals 1"},
			"Machine Learning": {"Emerging Topics 5", "Electives 7"},
		},
		Recommendations: []string{"Add a cloud lab", "Partner with local industry"},
		Variant:         models.ExternalVariant{},
	}

	for s := 1; s <= models.SemesterCount; s++ {
		sem := models.Semester{Number: s}
		for i, credits := range SemesterCredits {
			sem.Subjects = append(sem.Subjects, subject(fmt.Sprintf("S%d%02d", s, i+1), fmt.Sprintf("Subject %d.%d", s, i+1), credits, sampleTypes[i]))
		}
		if s == 1 {
			sem.Subjects = append(sem.Subjects, subject("NC101", "Environmental Studies", 0, models.SubjectNonCredit))
		}
		sem.RecomputeCredits()
		c.Semesters = append(c.Semesters, sem)
	}

	if mode == models.ModeInstitutional {
		c.Variant = models.InstitutionalVariant{
			OBE: models.OBEMapping{
				CO:      "Course outcomes describe what students can do at the end of each subject.",
				PO:      "Program outcomes follow the NBA graduate attributes.",
				Mapping: "Each CO is scored 0-3 against PO1-PO12.",
			},
			COPO: []models.COPORow{
				{CO: "CO1", PO1: 3, PO2: 2, PO3: 1, PO12: 1},
				{CO: "CO2", PO1: 2, PO2: 3, PO3: 2, PO4: 1, PO12: 1},
			},
		}
	}
	return c
}

// SampleJSON returns Sample(mode) in its wire shape, as a generator would
func SampleJSON(mode models.GenerationMode) string {
	doc := Sample(mode).Document()
	doc.Mode = ""
	out, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func subject(code, name string, credits int, typ models.SubjectType) models.Subject {
	sub := models.Subject{
		Code:             code,
		Name:             name,
		Credits:          credits,
		Type:             typ,
		LabRequired:      credits == 1,
		HoursPerWeek:     credits + 1,
		LearningOutcomes: []string{"Explain the core ideas of " + name},
		CourseOutcomes:   []string{"CO1: apply " + name},
	}
	for u := 1; u <= models.UnitsPerSubject; u++ {
		sub.Units = append(sub.Units, models.Unit{
			UnitNumber: u,
			Title:      fmt.Sprintf("%s unit %d", name, u),
			Topics:     []string{"topic a", "topic b"},
		})
	}
	return sub
}
