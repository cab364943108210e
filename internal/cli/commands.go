package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/yigit/curricuforge/internal/app/curriculum"
	"github.com/yigit/curricuforge/internal/app/models"
	"github.com/yigit/curricuforge/internal/app/prompts"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
	"github.com/yigit/curricuforge/internal/pkg/filestorage"
	"github.com/yigit/curricuforge/internal/pkg/textextract"
	"github.com/yigit/curricuforge/internal/pkg/validation"
)

// ErrViolations is returned by validate --strict when the curriculum breaks a rule
var ErrViolations = errors.New("curriculum has violations")

func (a *App) generateCommand() *cobra.Command {
	params := models.DefaultParams()
	var (
		mode     string
		previous string
		outDir   string
		formats  string
		rawPath  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a curriculum and export it",
		Long: `Send the form parameters to the configured generation provider, validate
the returned curriculum and write it in the requested formats.

A failed or unparseable generation writes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Mode = models.GenerationMode(mode)
			if previous != "" {
				data, err := os.ReadFile(previous)
				if err != nil {
					return fmt.Errorf("read previous curriculum: %w", err)
				}
				text, err := textextract.Extract(previous, data)
				if err != nil {
					return err
				}
				params.PreviousCurriculum = text
			}
			if err := validateParams(params); err != nil {
				return err
			}

			req, err := prompts.Build(params)
			if err != nil {
				return err
			}

			gen := a.NewGenerator(a.cfg, a.logger)
			a.logger.Info().Str("provider", gen.Name()).Str("mode", mode).Msg("Generating curriculum")
			raw, err := gen.Generate(cmd.Context(), req.SystemInstruction, req.Prompt)
			if err != nil {
				return err
			}
			if rawPath != "" {
				if err := os.WriteFile(rawPath, []byte(raw), 0o644); err != nil {
					return fmt.Errorf("save raw response: %w", err)
				}
			}

			c, err := curriculum.Decode(raw, params.Mode)
			if err != nil {
				return err
			}
			writeReport(a.Out, c, curriculum.Validate(c))

			return a.export(cmd, c, params, outDir, formats)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&mode, "mode", "m", string(models.ModeExternal), "Generation mode (institutional/external)")
	f.StringVar(&params.InstitutionName, "institution", "", "Institution name printed on the cover")
	f.StringVar(&params.Accreditation, "accreditation", params.Accreditation, "Accreditation (NAAC A++/NBA/Autonomous/Deemed)")
	f.StringVar(&params.Degree, "degree", params.Degree, "Degree")
	f.StringVar(&params.Duration, "duration", params.Duration, "Program duration")
	f.IntVar(&params.TotalCredits, "credits", params.TotalCredits, "Requested total credits")
	f.IntVar(&params.IndustryAlignment, "alignment", params.IndustryAlignment, "Industry alignment percentage (0-100)")
	f.BoolVar(&params.IncludeInternship, "internship", params.IncludeInternship, "Include an internship")
	f.BoolVar(&params.IncludeCapstone, "capstone", params.IncludeCapstone, "Include a capstone project")
	f.StringVarP(&params.Branch, "branch", "b", params.Branch, "Branch")
	f.StringVarP(&params.Specialization, "specialization", "s", params.Specialization, "Specialization")
	f.StringVar(&previous, "previous", "", "Previous curriculum (PDF or text) to compare against")
	f.StringVarP(&outDir, "out", "o", ".", "Output directory")
	f.StringVarP(&formats, "format", "f", "pdf,json", "Comma separated formats (pdf/json/yaml)")
	f.StringVar(&rawPath, "save-raw", "", "Also save the raw provider response to this file")
	return cmd
}

func (a *App) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <curriculum.json|yaml>",
		Short: "Check a saved curriculum against the curriculum rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCurriculum(args[0])
			if err != nil {
				return err
			}
			vs := curriculum.Validate(c)
			writeReport(a.Out, c, vs)
			if strict && len(vs) > 0 {
				return fmt.Errorf("%w: %d", ErrViolations, len(vs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any rule is broken")
	return cmd
}

func (a *App) exportCommand() *cobra.Command {
	var (
		institution string
		outDir      string
		formats     string
	)

	cmd := &cobra.Command{
		Use:   "export <curriculum.json|yaml>",
		Short: "Export a saved curriculum as PDF, JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCurriculum(args[0])
			if err != nil {
				return err
			}
			params := models.DefaultParams()
			params.Mode = c.Mode()
			params.InstitutionName = institution
			params.Degree = c.Degree
			params.Branch = c.Branch
			params.Specialization = c.Specialization
			return a.export(cmd, c, params, outDir, formats)
		},
	}
	f := cmd.Flags()
	f.StringVar(&institution, "institution", "", "Institution name printed on the cover")
	f.StringVarP(&outDir, "out", "o", ".", "Output directory")
	f.StringVarP(&formats, "format", "f", "pdf", "Comma separated formats (pdf/json/yaml)")
	return cmd
}

func (a *App) export(cmd *cobra.Command, c *models.Curriculum, params models.GenerationParams, outDir, formats string) error {
	list, err := parseFormats(formats)
	if err != nil {
		return err
	}
	store, err := filestorage.NewLocalStorage(outDir, a.logger)
	if err != nil {
		return err
	}
	paths, err := writeArtifacts(cmd.Context(), a.exporter(), store, list, c, params)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(a.Out, successStyle.Render("Wrote "+p))
	}
	return nil
}

// validateParams applies the same binding rules the HTTP API enforces
func validateParams(p models.GenerationParams) error {
	if err := validation.New().Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("invalid %s (%s)", fe.Field(), fe.Tag()))
		}
		return err
	}
	if !p.Mode.Valid() {
		return apperrors.NewValidationError("mode", fmt.Sprintf("unknown generation mode %q", p.Mode))
	}
	return nil
}
