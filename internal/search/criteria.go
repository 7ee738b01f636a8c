package search

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator"

	"github.com/five82/eventscout/internal/geo"
)

// Criteria is one form submission. It lives only until its query is built.
type Criteria struct {
	Keyword     string `form:"keyword" validate:"required,max=200"`
	Distance    Distance
	Category    string `form:"category"`
	RawLocation string `form:"location" validate:"max=200"`
	AutoDetect  bool   `form:"autoDetect"`
}

// LocationRequest is the part of the criteria the location resolver needs.
func (c Criteria) LocationRequest() geo.Request {
	return geo.Request{RawLocation: c.RawLocation, AutoDetect: c.AutoDetect}
}

// Distance is the search radius in km. Text that is not a finite number is
// kept verbatim and passed through for the backend to judge.
type Distance struct {
	Km      float64
	Raw     string
	Numeric bool
}

// ParseDistance reads the distance field. Blank input means fallback.
func ParseDistance(raw string, fallback float64) Distance {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Distance{Km: fallback, Raw: strconv.FormatFloat(fallback, 'f', -1, 64), Numeric: true}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Distance{Raw: raw}
	}
	return Distance{Km: v, Raw: raw, Numeric: true}
}

func (d Distance) String() string {
	if d.Numeric {
		return strconv.FormatFloat(d.Km, 'f', -1, 64)
	}
	return d.Raw
}

// ValidationError is a form constraint violation on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate applies the form's constraints and reports the first violation.
func Validate(c Criteria) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("validate criteria: %w", err)
	}
	first := verrs[0]
	return &ValidationError{Field: first.Field(), Message: constraintMessage(first.Tag(), first.Param())}
}

func constraintMessage(tag, param string) string {
	switch tag {
	case "required":
		return "Please fill out this field."
	case "max":
		return fmt.Sprintf("Please shorten this text to %s characters or less.", param)
	default:
		return "Please enter a valid value."
	}
}
