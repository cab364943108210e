package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag the request models are annotated with
const TagName = "binding"

// DurationPattern accepts program durations such as "4 Years" or "18 Months"
var DurationPattern = regexp.MustCompile(`^\d{1,2} (?i:years?|months?|semesters?)$`)

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	return v.RegisterValidation("duration", duration)
}

var ginOnce sync.Once
var ginErr error

// RegisterWithGin installs the custom rules on gin's binding validator. It is
// safe to call more than once.
func RegisterWithGin() error {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			ginErr = Register(v)
		}
	})
	return ginErr
}

// New returns a standalone validator reading the binding tag, for callers
// outside gin
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(TagName)
	// Built-in tags only; Register cannot fail for these names
	_ = Register(v)
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func duration(fl validator.FieldLevel) bool {
	return DurationPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
