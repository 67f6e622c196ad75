package validation

import (
	"fmt"
	"strings"

	"cycleclub-backend/internal/domain"
)

// MaxFileSize is the upload cap for payment screenshots: 10 MiB.
const MaxFileSize = 10 << 20

// allowedImageTypes matches the upload form's accept list.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Code string

const (
	CodeMissingTier   Code = "missing_tier"
	CodeUnknownTier   Code = "unknown_tier"
	CodeRequiredField Code = "required_field"
	CodeFileMissing   Code = "file_missing"
	CodeFileTooLarge  Code = "file_too_large"
	CodeFileType      Code = "file_type"
)

// Error is a single validation violation. Field is set for
// required-field violations so the form can highlight the input.
type Error struct {
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Errors is the ordered collection of violations for one draft.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func required(field string) Error {
	return Error{Code: CodeRequiredField, Field: field, Message: "this field is required"}
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// ValidateDraft checks a registration draft against the tier catalog and
// returns every violation found, in form order, rather than stopping at the
// first. An empty result means the draft is submittable.
//
// Conditional fields are only required when the selected tier needs them; a
// stray value for a field the tier does not require is allowed and ignored.
func ValidateDraft(catalog *domain.Catalog, d domain.Draft) Errors {
	var errs Errors

	var tier domain.Tier
	tierKnown := false
	if blank(string(d.Tier)) {
		errs = append(errs, Error{Code: CodeMissingTier, Field: "paymentTier", Message: "select a package to continue"})
	} else if t, err := catalog.Get(d.Tier); err != nil {
		errs = append(errs, Error{Code: CodeUnknownTier, Field: "paymentTier", Message: "unknown package tier"})
	} else {
		tier = t
		tierKnown = true
	}

	// Base fields are mandatory for every tier.
	if blank(d.FullName) {
		errs = append(errs, required("fullName"))
	}
	if blank(d.MobileNumber) {
		errs = append(errs, required("mobileNumber"))
	}
	if blank(d.EmailAddress) {
		errs = append(errs, required("emailAddress"))
	}
	if blank(d.FullAddress) {
		errs = append(errs, required("fullAddress"))
	}
	if blank(d.Gender) {
		errs = append(errs, required("gender"))
	}
	if blank(d.StravaProfileLink) {
		errs = append(errs, required("stravaProfileLink"))
	}
	if blank(d.WhereHeard) {
		errs = append(errs, required("whereHeard"))
	}

	if tierKnown {
		if tier.RequiresDeliveryAddress && blank(d.DeliveryAddress) {
			errs = append(errs, required("deliveryAddress"))
		}
		if tier.RequiresTshirtSize && blank(d.TshirtSize) {
			errs = append(errs, required("tshirtSize"))
		}
	}

	switch {
	case d.File == nil:
		errs = append(errs, Error{Code: CodeFileMissing, Message: "payment confirmation screenshot is required"})
	case d.File.Size > MaxFileSize:
		errs = append(errs, Error{Code: CodeFileTooLarge, Message: "file size must be less than 10MB"})
	case !allowedImageTypes[strings.ToLower(d.File.ContentType)]:
		errs = append(errs, Error{Code: CodeFileType, Message: "upload an image file (JPEG, PNG, GIF, or WebP)"})
	}

	return errs
}
