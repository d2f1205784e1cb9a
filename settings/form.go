package settings

import (
	"fmt"
	"strings"

	"github.com/lehigh-university-libraries/urnpubid/urn"
)

// ValidationError represents a form validation failure with context.
type ValidationError struct {
	Field   string // Form field (e.g., "urnPrefix")
	Code    string // Error code (e.g., "required", "invalid_format")
	Message string // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains all validation errors for a form submission.
type ValidationResult struct {
	Errors []ValidationError
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error message, or nil if valid.
func (r *ValidationResult) Error() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func (r *ValidationResult) add(field, code, msg string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Code: code, Message: msg})
}

// Input is a settings form submission. Nil fields keep their current value.
type Input struct {
	Prefix                   *string
	Suffix                   *string
	MonographPattern         *string
	PublicationFormatPattern *string

	// SuffixValue is the custom suffix field of the editor form, checked by
	// urn.VerifySuffix.
	SuffixValue *string
}

// Form edits the URN settings of one press.
type Form struct {
	repo      *Repository
	pressID   int64
	data      PressSettings
	suffixErr error
}

// NewForm creates a settings form for a press.
func NewForm(repo *Repository, pressID int64) *Form {
	return &Form{repo: repo, pressID: pressID}
}

// Data returns the current form data.
func (f *Form) Data() PressSettings {
	return f.data
}

// InitData loads the stored settings of the press into the form.
func (f *Form) InitData() error {
	s, err := f.repo.Load(f.pressID)
	if err != nil {
		return err
	}
	f.data = *s
	return nil
}

// ReadInput applies a submission on top of the form data.
func (f *Form) ReadInput(in Input) {
	if in.Prefix != nil {
		f.data.Prefix = strings.TrimSpace(*in.Prefix)
	}
	if in.Suffix != nil {
		f.data.Suffix = strings.TrimSpace(*in.Suffix)
	}
	if in.MonographPattern != nil {
		f.data.Patterns.Monograph = strings.TrimSpace(*in.MonographPattern)
	}
	if in.PublicationFormatPattern != nil {
		f.data.Patterns.PublicationFormat = strings.TrimSpace(*in.PublicationFormatPattern)
	}
	if in.SuffixValue != nil {
		if err := urn.VerifySuffix(*in.SuffixValue); err != nil {
			// VerifySuffix currently accepts every value.
			f.suffixErr = err
		}
	}
}

// Validate checks the form data.
func (f *Form) Validate() *ValidationResult {
	result := &ValidationResult{}

	switch {
	case f.data.Prefix == "":
		result.add("urnPrefix", "required", "URN prefix is required")
	case !urn.Validate(f.data.Prefix):
		result.add("urnPrefix", "invalid_format", `URN prefix must start with "urn:"`)
	}

	switch urn.SuffixStrategy(f.data.Suffix) {
	case "", urn.SuffixDefault:
	case urn.SuffixPattern:
		if f.data.Patterns.Monograph == "" {
			result.add("urnMonographSuffixPattern", "required", "monograph suffix pattern is required")
		}
		if f.data.Patterns.PublicationFormat == "" {
			result.add("urnPublicationFormatSuffixPattern", "required", "publication format suffix pattern is required")
		}
	default:
		result.add("urnSuffix", "invalid_value", fmt.Sprintf("unknown suffix strategy %q", f.data.Suffix))
	}

	if f.suffixErr != nil {
		result.add("urnSuffix", "invalid_value", f.suffixErr.Error())
	}

	return result
}

// Execute validates and saves the form data.
func (f *Form) Execute() error {
	if err := f.Validate().Error(); err != nil {
		return err
	}
	if f.data.Suffix == "" {
		f.data.Suffix = string(urn.SuffixDefault)
	}
	if err := f.repo.Save(&f.data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
