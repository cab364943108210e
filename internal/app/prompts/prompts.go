// Package prompts assembles the text sent to the curriculum generator.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// SystemInstruction is the fixed rule set given to the generator with every request
const SystemInstruction = `You are a Senior Curriculum Architect. Generate a production-ready curriculum in JSON format.

STRICT RULES:
1. Total 8 semesters, numbered 1 to 8.
2. Exactly 20 credits per semester. A semester's total_credits is the sum of its subjects' credits.
3. Total exactly 160 credits.
4. Each semester must include a mix of Core, Adaptive, Emerging, and Elective subjects.
5. Include exactly 1 Non-Credit subject in the whole curriculum (e.g., Ethics, Environmental Studies) and name it in non_credit_subject.
6. Lab subjects carry 1 credit.
7. Difficulty progression across semesters: Foundation -> Intermediate -> Advanced.
8. For institutional mode, include OBE mapping (Course Outcomes to Program Outcomes) and a CO-PO mapping table scoring each CO from 0 to 3 against PO1 to PO12. For external mode, omit both.
9. Every subject carries exactly 5 units numbered 1 to 5, each with topics, plus hours per week, learning outcomes and course outcomes.
10. industry_score is a number from 0 to 100.
11. Return ONLY a JSON object matching the requested structure. No markdown, no commentary.`

// Request is the text pair handed to a generator
type Request struct {
	SystemInstruction string
	Prompt            string
}

// Build assembles the generation request for params. It performs no I/O.
func Build(params models.GenerationParams) (Request, error) {
	if !params.Mode.Valid() {
		return Request{}, fmt.Errorf("%w: unknown generation mode %q", apperrors.ErrValidationFailed, params.Mode)
	}

	form, err := json.Marshal(params)
	if err != nil {
		return Request{}, fmt.Errorf("encode form parameters: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s curriculum for:\n%s\n\n", params.Mode, form)

	if params.IncludeInternship {
		b.WriteString("Include an industry internship in the later semesters.\n")
	}
	if params.IncludeCapstone {
		b.WriteString("Include a capstone project in the final semester.\n")
	}
	fmt.Fprintf(&b, "Target an industry alignment of about %d%%.\n\n", params.IndustryAlignment)

	if prev := strings.TrimSpace(params.PreviousCurriculum); prev != "" {
		b.WriteString("A previous curriculum is provided below. Compare the new curriculum against it, identify outdated subjects, ")
		b.WriteString("and propose modern replacements for them in recommendations while maintaining the 160-credit structure.\n")
		b.WriteString("PREVIOUS CURRICULUM:\n")
		b.WriteString(prev)
		b.WriteString("\n\n")
	}

	b.WriteString("Return JSON with this structure:\n")
	b.WriteString(ResponseSchema(params.Mode))

	return Request{SystemInstruction: SystemInstruction, Prompt: b.String()}, nil
}
