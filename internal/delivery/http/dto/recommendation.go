package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RecommendationRequest only checks presence: empty arrays and empty strings
// are accepted, null or missing fields and null array elements are not.
type RecommendationRequest struct {
	Skills          []*string `json:"skills" validate:"required,dive,required"`
	Interests       []*string `json:"interests" validate:"required,dive,required"`
	CurrentPosition *string   `json:"current_position" validate:"required"`
	DesiredRole     *string   `json:"desired_role" validate:"required"`
}

// Values dereferences a validated list. nil elements are skipped.
func Values(in []*string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

type RoadmapStepResponse struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

type RecommendationResponse struct {
	Status        string                `json:"status"`
	JobSummary    string                `json:"job_summary,omitempty"`
	MissingSkills []string              `json:"missing_skills"`
	Roadmap       []RoadmapStepResponse `json:"roadmap"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (r *RecommendationRequest) Validate() error {
	return validate.Struct(r)
}

// FieldErrors maps each failing json field to a readable message. It returns
// nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "is required"
		default:
			out[fe.Field()] = "failed " + fe.Tag() + " validation"
		}
	}
	return out
}
