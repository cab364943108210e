package prompts

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

func paramSets() map[string]models.GenerationParams {
	institutional := models.DefaultParams()
	institutional.Mode = models.ModeInstitutional
	institutional.InstitutionName = "Sunrise Institute of Technology"
	institutional.Accreditation = "NAAC A++"

	external := models.DefaultParams()
	external.Mode = models.ModeExternal
	external.Degree = "M.Sc"
	external.Specialization = "Cloud & DevOps"
	external.IncludeCapstone = false
	external.IncludeInternship = false

	revision := models.DefaultParams()
	revision.Mode = models.ModeInstitutional
	revision.PreviousCurriculum = "Semester 1: COBOL Programming, Punch Card Systems"

	return map[string]models.GenerationParams{
		"institutional": institutional,
		"external":      external,
		"revision":      revision,
	}
}

func TestBuildContainsRuleTokens(t *testing.T) {
	tokens := []string{"8", "20", "160", "Core", "Adaptive", "Emerging", "Elective", "Non-Credit", "Foundation", "OBE", "CO-PO"}

	for name, params := range paramSets() {
		t.Run(name, func(t *testing.T) {
			req, err := Build(params)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			for _, tok := range tokens {
				if !strings.Contains(req.SystemInstruction, tok) {
					t.Errorf("system instruction missing %q", tok)
				}
			}
		})
	}
}

func TestBuildEmbedsFormParameters(t *testing.T) {
	for name, params := range paramSets() {
		t.Run(name, func(t *testing.T) {
			req, err := Build(params)
			if err != nil {
				t.Fatal(err)
			}
			form, _ := json.Marshal(params)
			if !strings.Contains(req.Prompt, string(form)) {
				t.Errorf("prompt does not embed serialized parameters")
			}
			if !strings.Contains(req.Prompt, "Generate a "+string(params.Mode)+" curriculum") {
				t.Errorf("prompt does not name the mode")
			}
		})
	}
}

func TestBuildPreviousCurriculumInstruction(t *testing.T) {
	sets := paramSets()

	req, _ := Build(sets["revision"])
	if !strings.Contains(req.Prompt, "identify outdated subjects") || !strings.Contains(req.Prompt, "160-credit structure") {
		t.Error("revision prompt missing diff instruction")
	}
	if !strings.Contains(req.Prompt, "Punch Card Systems") {
		t.Error("revision prompt missing previous curriculum text")
	}

	req, _ = Build(sets["external"])
	if strings.Contains(req.Prompt, "PREVIOUS CURRICULUM") {
		t.Error("prompt has diff instruction without a previous curriculum")
	}
}

func TestBuildRejectsUnknownMode(t *testing.T) {
	params := models.DefaultParams()
	if _, err := Build(params); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Build() without mode error = %v", err)
	}
}

func TestSchemaMatchesWireShape(t *testing.T) {
	schema := ResponseSchema(models.ModeInstitutional)

	dec := json.NewDecoder(bytes.NewReader([]byte(schema)))
	dec.DisallowUnknownFields()
	var doc models.CurriculumDocument
	if err := dec.Decode(&doc); err != nil {
		t.Fatalf("schema does not decode into the wire shape: %v", err)
	}

	for _, tag := range jsonTags(reflect.TypeOf(models.CurriculumDocument{})) {
		if tag == "mode" {
			continue
		}
		if !strings.Contains(schema, `"`+tag+`":`) {
			t.Errorf("schema is missing field %q", tag)
		}
	}

	for _, typ := range models.SubjectTypes {
		if !strings.Contains(schema, string(typ)) {
			t.Errorf("schema is missing subject type %q", typ)
		}
	}
	if len(doc.Semesters[0].Subjects[0].Units) != models.UnitsPerSubject {
		t.Errorf("schema example has %d units", len(doc.Semesters[0].Subjects[0].Units))
	}
}

func TestExternalSchemaOmitsAccreditation(t *testing.T) {
	schema := ResponseSchema(models.ModeExternal)
	if strings.Contains(schema, "obe_mapping") || strings.Contains(schema, "co_po_mapping") {
		t.Error("external schema asks for accreditation data")
	}
}

// jsonTags collects the json field names of t and of the structs it contains
func jsonTags(t reflect.Type) []string {
	var tags []string
	seen := map[reflect.Type]bool{}
	var walk func(reflect.Type)
	walk = func(t reflect.Type) {
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct || seen[t] {
			return
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := strings.Split(f.Tag.Get("json"), ",")[0]
			if name != "" && name != "-" {
				tags = append(tags, name)
			}
			walk(f.Type)
		}
	}
	walk(t)
	return tags
}
