package dto

import (
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/session"
)

// FormOptions lists the choices offered by the generate form
type FormOptions struct {
	Accreditations  []string `json:"accreditations"`
	Degrees         []string `json:"degrees"`
	Branches        []string `json:"branches"`
	Specializations []string `json:"specializations"`
	Modes           []string `json:"modes"`
}

// DefaultFormOptions returns the built-in form choices
func DefaultFormOptions() FormOptions {
	return FormOptions{
		Accreditations:  models.AccreditationOptions,
		Degrees:         models.DegreeOptions,
		Branches:        models.BranchOptions,
		Specializations: models.SpecializationOptions,
		Modes:           []string{string(models.ModeInstitutional), string(models.ModeExternal)},
	}
}

// SessionResponse is a session as returned by the API
type SessionResponse struct {
	session.Snapshot
	Options FormOptions `json:"options"`
}

// NewSessionResponse wraps a snapshot with the form options
func NewSessionResponse(snap session.Snapshot) SessionResponse {
	return SessionResponse{Snapshot: snap, Options: DefaultFormOptions()}
}

// StateResponse is returned by navigation
type StateResponse struct {
	State session.State `json:"state"`
}

// PreviousCurriculumResponse returns the text extracted from an upload
type PreviousCurriculumResponse struct {
	Filename string `json:"filename" example:"curriculum-2019.pdf"`
	Text     string `json:"text"`
	Chars    int    `json:"chars" example:"5120"`
}
