package dto

import (
	"github.com/yigit/curricuforge/internal/app/curriculum"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/session"
)

// NavigateRequest carries a view transition event
type NavigateRequest struct {
	Event string `json:"event" binding:"required,oneof=home open_generate open_trends select_mode clear_mode toggle_edit view_result" example:"select_mode"`
	Mode  string `json:"mode,omitempty" binding:"omitempty,oneof=institutional external" example:"institutional"`
}

// ToEvent converts the request to a session event
func (r NavigateRequest) ToEvent() session.Event {
	return session.Event{Type: session.EventType(r.Event), Mode: models.GenerationMode(r.Mode)}
}

// EditSubjectRequest replaces one field of a subject. Value is a string,
// number or boolean depending on the field.
type EditSubjectRequest struct {
	Field string      `json:"field" binding:"required,oneof=code name credits type lab_required hoursPerWeek" example:"credits"`
	Value interface{} `json:"value" swaggertype:"string" example:"4"`
}

// SubjectField returns the edited field
func (r EditSubjectRequest) SubjectField() curriculum.SubjectField {
	return curriculum.SubjectField(r.Field)
}
