package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// StripCodeFences removes a surrounding markdown code fence, if any
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractObject returns the outermost {...} span of s and its start offset
func extractObject(s string) (string, int, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", 0, false
	}
	return s[start : end+1], start, true
}

// DecodeDocument parses raw generator text into the wire document. Any
// failure is a *apperrors.GenerationParseError.
func DecodeDocument(raw string) (*models.CurriculumDocument, error) {
	text := StripCodeFences(raw)
	if text == "" {
		return nil, apperrors.NewGenerationParseError("empty response", nil)
	}

	body, start, ok := extractObject(text)
	if !ok {
		return nil, apperrors.NewGenerationParseError("no JSON object in response", nil)
	}

	var doc models.CurriculumDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, parseError(err, int64(start))
	}
	if len(doc.Semesters) == 0 {
		return nil, apperrors.NewGenerationParseError("response contains no semesters", nil)
	}

	doc.SkillMapping = dedupeSkills(doc.SkillMapping)
	return &doc, nil
}

// Decode parses raw generator text into a curriculum for mode. Accreditation
// data returned for external mode is discarded. Semester totals are kept as
// returned so Validate can report arithmetic drift in the generator output.
func Decode(raw string, mode models.GenerationMode) (*models.Curriculum, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", apperrors.ErrValidationFailed, mode)
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, err
	}
	return doc.Curriculum(mode), nil
}

func parseError(err error, base int64) error {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		return &apperrors.GenerationParseError{Reason: syntax.Error(), Offset: base + syntax.Offset, Err: err}
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		reason := fmt.Sprintf("field %q: expected %s, got %s", typ.Field, typ.Type, typ.Value)
		return &apperrors.GenerationParseError{Reason: reason, Offset: base + typ.Offset, Err: err}
	}
	return apperrors.NewGenerationParseError(err.Error(), err)
}

// dedupeSkills treats each skill's subject list as a set, keeping first occurrence order
func dedupeSkills(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for skill, subjects := range in {
		seen := make(map[string]bool, len(subjects))
		list := make([]string, 0, len(subjects))
		for _, s := range subjects {
			if !seen[s] {
				seen[s] = true
				list = append(list, s)
			}
		}
		out[skill] = list
	}
	return out
}
