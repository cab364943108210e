package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/app/curriculum"
	"github.com/yigit/curricuforge/internal/app/export"
	"github.com/yigit/curricuforge/internal/app/generation"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/prompts"
	"github.com/yigit/curricuforge/internal/app/session"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
	"github.com/yigit/curricuforge/internal/pkg/textextract"
)

// Artifact is a rendered export ready to be served
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// CurriculumService defines the curriculum operations of a session
type CurriculumService interface {
	Generate(ctx context.Context, sessionID string, params models.GenerationParams) (*session.Snapshot, error)
	EditSubjectField(ctx context.Context, sessionID string, semIdx, subIdx int, field curriculum.SubjectField, value interface{}) (curriculum.EditResult, error)
	AddSubject(ctx context.Context, sessionID string, semIdx int) (curriculum.EditResult, error)
	RemoveSubject(ctx context.Context, sessionID string, semIdx, subIdx int) (curriculum.EditResult, error)
	Validate(ctx context.Context, sessionID string) (curriculum.Violations, error)
	Export(ctx context.Context, sessionID string, format export.Format) (*Artifact, error)
	ImportPreviousCurriculum(ctx context.Context, sessionID, filename string, data []byte) (string, error)
}

type generationEvent struct {
	Mode     models.GenerationMode `json:"mode"`
	State    *session.State        `json:"state,omitempty"`
	Warnings int                   `json:"warnings,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// curriculumServiceImpl implements the CurriculumService interface
type curriculumServiceImpl struct {
	store     *session.Store
	generator generation.Generator
	exporter  *export.Exporter
	events    EventPublisher
	logger    zerolog.Logger
}

// NewCurriculumService creates a new curriculum service instance
func NewCurriculumService(store *session.Store, generator generation.Generator, exporter *export.Exporter, events EventPublisher, logger zerolog.Logger) CurriculumService {
	return &curriculumServiceImpl{
		store:     store,
		generator: generator,
		exporter:  exporter,
		events:    publisherOrNop(events),
		logger:    logger.With().Str("component", "curriculum_service").Logger(),
	}
}

// Generate runs one generation for the session. The provider call happens
// outside the session lock; the curriculum is only replaced when the
// response decodes.
func (s *curriculumServiceImpl) Generate(ctx context.Context, sessionID string, params models.GenerationParams) (*session.Snapshot, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	accepted, err := sess.BeginGeneration(params)
	if err != nil {
		return nil, err
	}

	log := s.logger.With().
		Str("session_id", sess.ID.String()).
		Str("mode", string(accepted.Mode)).
		Str("provider", s.generator.Name()).
		Logger()
	log.Info().Str("branch", accepted.Branch).Str("specialization", accepted.Specialization).Msg("Generating curriculum")
	s.events.Publish(sess.ID.String(), EventGenerationStarted, generationEvent{Mode: accepted.Mode})

	c, genErr := s.generate(ctx, accepted, log)
	st, err := sess.FinishGeneration(c, genErr)
	if err != nil {
		log.Error().Err(err).Msg("Failed to leave generating state")
	}

	if genErr != nil {
		var parseErr *apperrors.GenerationParseError
		if errors.As(genErr, &parseErr) {
			log.Warn().Err(genErr).Int64("offset", parseErr.Offset).Msg("Generation output rejected")
		} else {
			log.Warn().Err(genErr).Msg("Generation failed")
		}
		s.events.Publish(sess.ID.String(), EventGenerationFailed, generationEvent{Mode: accepted.Mode, State: &st, Error: genErr.Error()})
		return nil, genErr
	}

	snap := sess.Snapshot()
	s.events.Publish(sess.ID.String(), EventGenerationSucceeded, generationEvent{Mode: accepted.Mode, State: &st, Warnings: len(snap.Warnings)})
	log.Info().
		Int("semesters", len(snap.Curriculum.Semesters)).
		Int("violations", len(snap.Warnings)).
		Msg("Curriculum generated")
	return &snap, nil
}

func (s *curriculumServiceImpl) generate(ctx context.Context, params models.GenerationParams, log zerolog.Logger) (*models.Curriculum, error) {
	req, err := prompts.Build(params)
	if err != nil {
		return nil, err
	}
	raw, err := s.generator.Generate(ctx, req.SystemInstruction, req.Prompt)
	if err != nil {
		return nil, err
	}
	doc, err := curriculum.DecodeDocument(raw)
	if err != nil {
		return nil, err
	}
	if params.Mode == models.ModeExternal && doc.HasAccreditation() {
		log.Warn().Msg("Dropping OBE/CO-PO data returned for an external curriculum")
	}
	return doc.Curriculum(params.Mode), nil
}

// EditSubjectField replaces one field of a subject
func (s *curriculumServiceImpl) EditSubjectField(ctx context.Context, sessionID string, semIdx, subIdx int, field curriculum.SubjectField, value interface{}) (curriculum.EditResult, error) {
	return s.edit(sessionID, func(e *curriculum.Editor) (curriculum.EditResult, error) {
		return e.EditSubjectField(semIdx, subIdx, field, value)
	})
}

// AddSubject appends the placeholder subject to a semester
func (s *curriculumServiceImpl) AddSubject(ctx context.Context, sessionID string, semIdx int) (curriculum.EditResult, error) {
	return s.edit(sessionID, func(e *curriculum.Editor) (curriculum.EditResult, error) {
		return e.AddSubject(semIdx)
	})
}

// RemoveSubject deletes a subject from a semester
func (s *curriculumServiceImpl) RemoveSubject(ctx context.Context, sessionID string, semIdx, subIdx int) (curriculum.EditResult, error) {
	return s.edit(sessionID, func(e *curriculum.Editor) (curriculum.EditResult, error) {
		return e.RemoveSubject(semIdx, subIdx)
	})
}

// edit applies op under the session lock and stores the resulting warnings
func (s *curriculumServiceImpl) edit(sessionID string, op func(e *curriculum.Editor) (curriculum.EditResult, error)) (curriculum.EditResult, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return curriculum.EditResult{}, err
	}

	var res curriculum.EditResult
	err = sess.Do(func(d *session.Data) error {
		if d.State.Generating() {
			return apperrors.ErrGenerationInProgress
		}
		r, err := op(curriculum.NewEditor(d.Curriculum))
		if err != nil {
			return err
		}
		if r.Applied {
			d.Warnings = r.Warnings
		}
		res = r
		return nil
	})
	if err != nil {
		return curriculum.EditResult{}, err
	}

	if res.Applied {
		s.events.Publish(sess.ID.String(), EventCurriculumEdited, res)
	}
	if len(res.Warnings) > 0 {
		s.logger.Debug().
			Str("session_id", sessionID).
			Strs("violations", res.Warnings.Rules()).
			Msg("Curriculum edited with warnings")
	}
	return res, nil
}

// Validate re-checks the current curriculum
func (s *curriculumServiceImpl) Validate(ctx context.Context, sessionID string) (curriculum.Violations, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var vs curriculum.Violations
	err = sess.Do(func(d *session.Data) error {
		if d.Curriculum == nil {
			return apperrors.ErrNoCurriculum
		}
		vs = curriculum.Validate(d.Curriculum)
		d.Warnings = vs
		return nil
	})
	if vs == nil && err == nil {
		vs = curriculum.Violations{}
	}
	return vs, err
}

// Export renders the current curriculum. Rendering works on a snapshot so
// the session stays editable meanwhile.
func (s *curriculumServiceImpl) Export(ctx context.Context, sessionID string, format export.Format) (*Artifact, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.Snapshot()
	if snap.Curriculum == nil {
		return nil, apperrors.ErrNoCurriculum
	}

	var buf bytes.Buffer
	if err := s.exporter.Export(&buf, format, snap.Curriculum, snap.Params); err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("format", string(format)).
		Int("bytes", buf.Len()).
		Msg("Curriculum exported")

	return &Artifact{
		Filename:    s.exporter.Filename(snap.Curriculum, format),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// ImportPreviousCurriculum extracts the text of an uploaded curriculum and
// stores it as the previousCurriculum form parameter
func (s *curriculumServiceImpl) ImportPreviousCurriculum(ctx context.Context, sessionID, filename string, data []byte) (string, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", err
	}

	text, err := textextract.Extract(filename, data)
	if err != nil {
		return "", err
	}

	err = sess.Do(func(d *session.Data) error {
		if d.State.Generating() {
			return apperrors.ErrGenerationInProgress
		}
		d.Params.PreviousCurriculum = text
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("filename", filename).
		Int("chars", len(text)).
		Msg("Previous curriculum imported")
	s.events.Publish(sess.ID.String(), EventPreviousImported, map[string]interface{}{"filename": filename, "chars": len(text)})
	return text, nil
}
