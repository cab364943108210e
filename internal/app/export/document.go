// Package export turns a curriculum into downloadable artifacts.
package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/curricuforge/internal/app/models"
)

// SectionKind identifies a document section
type SectionKind string

const (
	SectionCover         SectionKind = "cover"
	SectionSemesters     SectionKind = "semesters"
	SectionSyllabus      SectionKind = "syllabus"
	SectionAccreditation SectionKind = "accreditation"
	SectionIndustry      SectionKind = "industry"
)

// SemesterColumns are the columns of every semester table
var SemesterColumns = []string{"Code", "Subject Name", "Credits", "Type", "Lab"}

// Table is a captioned grid of text cells
type Table struct {
	Caption string
	Columns []string
	Rows    [][]string
}

// Block is a heading followed by paragraphs and an optional table
type Block struct {
	Heading string
	Text    []string
	Table   *Table
}

// Section is one titled part of the document. Fields names the curriculum
// fields rendered by the section.
type Section struct {
	Kind   SectionKind
	Title  string
	Blocks []Block
	Fields []string
}

// Document is the ordered, renderer-independent content of a curriculum report
type Document struct {
	Title       string
	Product     string
	GeneratedAt time.Time
	Sections    []Section
}

// Section returns the first section of kind k
func (d *Document) Section(k SectionKind) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Kind == k {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// BuildDocument lays out c in a fixed section order: cover, semesters,
// syllabus, accreditation (institutional only), industry. Empty fields are
// skipped and skill names are sorted, so the same input gives the same document.
func BuildDocument(product string, c *models.Curriculum, params models.GenerationParams, now time.Time) Document {
	doc := Document{
		Title:       fmt.Sprintf("%s in %s (%s)", c.Degree, c.Branch, c.Specialization),
		Product:     product,
		GeneratedAt: now,
	}

	doc.Sections = append(doc.Sections, coverSection(c, params))
	if len(c.Semesters) > 0 {
		doc.Sections = append(doc.Sections, semesterSection(c), syllabusSection(c))
	}
	if inst, ok := c.Institutional(); ok {
		doc.Sections = append(doc.Sections, accreditationSection(inst))
	}
	if s := industrySection(c); len(s.Blocks) > 0 {
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

func coverSection(c *models.Curriculum, params models.GenerationParams) Section {
	s := Section{Kind: SectionCover, Title: "CURRICULUM REPORT"}
	var text []string

	text = append(text, fmt.Sprintf("%s in %s", c.Degree, c.Branch))
	s.Fields = append(s.Fields, "degree", "branch")
	if c.Specialization != "" {
		text = append(text, "Specialization: "+c.Specialization)
		s.Fields = append(s.Fields, "specialization")
	}
	text = append(text, fmt.Sprintf("Industry Alignment Score: %s%%", formatScore(c.IndustryScore)))
	s.Fields = append(s.Fields, "industry_score")
	text = append(text, fmt.Sprintf("Total Credits: %d", c.TotalCredits))
	s.Fields = append(s.Fields, "total_credits")
	text = append(text, "Curriculum Type: "+modeLabel(c.Mode()))

	if params.InstitutionName != "" {
		text = append(text, "Institution: "+params.InstitutionName)
		if params.Accreditation != "" {
			text = append(text, "Accreditation: "+params.Accreditation)
		}
	}

	s.Blocks = []Block{{Text: text}}
	return s
}

func semesterSection(c *models.Curriculum) Section {
	s := Section{Kind: SectionSemesters, Title: "Semester-wise Structure", Fields: []string{"semesters"}}
	for _, sem := range c.Semesters {
		t := &Table{
			Caption: fmt.Sprintf("Semester %d - Total Credits: %d", sem.Number, sem.TotalCredits),
			Columns: SemesterColumns,
		}
		for _, sub := range sem.Subjects {
			lab := "No"
			if sub.LabRequired {
				lab = "Yes"
			}
			t.Rows = append(t.Rows, []string{sub.Code, sub.Name, strconv.Itoa(sub.Credits), string(sub.Type), lab})
		}
		s.Blocks = append(s.Blocks, Block{Table: t})
	}
	return s
}

// syllabusSection carries the per-subject detail not shown in the semester tables
func syllabusSection(c *models.Curriculum) Section {
	s := Section{Kind: SectionSyllabus, Title: "Subject Syllabus"}
	for _, sem := range c.Semesters {
		for _, sub := range sem.Subjects {
			b := Block{Heading: fmt.Sprintf("Semester %d / %s - %s", sem.Number, sub.Code, sub.Name)}
			b.Text = append(b.Text, fmt.Sprintf("Hours per week: %d", sub.DisplayHoursPerWeek()))
			if len(sub.LearningOutcomes) > 0 {
				b.Text = append(b.Text, "Learning outcomes: "+strings.Join(sub.LearningOutcomes, "; "))
			}
			if len(sub.CourseOutcomes) > 0 {
				b.Text = append(b.Text, "Course outcomes: "+strings.Join(sub.CourseOutcomes, "; "))
			}
			for _, u := range sub.Units {
				b.Text = append(b.Text, fmt.Sprintf("Unit %d: %s - %s", u.UnitNumber, u.Title, strings.Join(u.Topics, ", ")))
			}
			s.Blocks = append(s.Blocks, b)
		}
	}
	return s
}

func accreditationSection(inst *models.InstitutionalVariant) Section {
	s := Section{Kind: SectionAccreditation, Title: "Accreditation & OBE Mapping"}

	var text []string
	if inst.OBE.CO != "" {
		text = append(text, "Course Outcomes (CO): "+inst.OBE.CO)
	}
	if inst.OBE.PO != "" {
		text = append(text, "Program Outcomes (PO): "+inst.OBE.PO)
	}
	if inst.OBE.Mapping != "" {
		text = append(text, "Mapping: "+inst.OBE.Mapping)
	}
	if len(text) > 0 {
		s.Blocks = append(s.Blocks, Block{Heading: "OBE Mapping", Text: text})
		s.Fields = append(s.Fields, "obe_mapping")
	}

	if len(inst.COPO) > 0 {
		cols := []string{"CO"}
		for i := 1; i <= models.ProgramOutcomes; i++ {
			cols = append(cols, fmt.Sprintf("PO%d", i))
		}
		t := &Table{Caption: "CO-PO Mapping Matrix", Columns: cols}
		for _, row := range inst.COPO {
			cells := []string{row.CO}
			for _, v := range row.Scores() {
				cells = append(cells, strconv.Itoa(v))
			}
			t.Rows = append(t.Rows, cells)
		}
		s.Blocks = append(s.Blocks, Block{Table: t})
		s.Fields = append(s.Fields, "co_po_mapping")
	}
	return s
}

func industrySection(c *models.Curriculum) Section {
	s := Section{Kind: SectionIndustry, Title: "Industry Alignment & Skill Mapping"}

	if len(c.SkillMapping) > 0 {
		skills := make([]string, 0, len(c.SkillMapping))
		for k := range c.SkillMapping {
			skills = append(skills, k)
		}
		sort.Strings(skills)

		t := &Table{Caption: "Skill Mapping", Columns: []string{"Skill", "Subjects"}}
		for _, k := range skills {
			t.Rows = append(t.Rows, []string{k, strings.Join(c.SkillMapping[k], ", ")})
		}
		s.Blocks = append(s.Blocks, Block{Table: t})
		s.Fields = append(s.Fields, "skill_mapping")
	}

	if len(c.Recommendations) > 0 {
		b := Block{Heading: "Recommendations"}
		for i, r := range c.Recommendations {
			b.Text = append(b.Text, fmt.Sprintf("%d. %s", i+1, r))
		}
		s.Blocks = append(s.Blocks, b)
		s.Fields = append(s.Fields, "recommendations")
	}

	if c.NonCreditSubject != "" {
		s.Blocks = append(s.Blocks, Block{Text: []string{"Non-Credit Subject: " + c.NonCreditSubject}})
		s.Fields = append(s.Fields, "non_credit_subject")
	}
	return s
}

func modeLabel(m models.GenerationMode) string {
	if m == models.ModeInstitutional {
		return "Institutional (OBE)"
	}
	return "External (Industry)"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
