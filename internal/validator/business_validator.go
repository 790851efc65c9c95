package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/course-service/internal/models"
)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateCourseCreate validates course creation rules
func (bv *BusinessValidator) ValidateCourseCreate(req *CourseCreateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if strings.TrimSpace(req.Name) == "" && !hasField(errors, "name") {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "must not be blank",
			Value:   req.Name,
			Rule:    "business_logic",
		})
	}
	if strings.TrimSpace(req.Description) == "" && !hasField(errors, "description") {
		errors = append(errors, ValidationError{
			Field:   "description",
			Message: "must not be blank",
			Value:   req.Description,
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateCourseUpdate validates a partial course update
func (bv *BusinessValidator) ValidateCourseUpdate(req *CourseUpdateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" && !hasField(errors, "name") {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "must not be blank",
			Value:   *req.Name,
			Rule:    "business_logic",
		})
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" && !hasField(errors, "description") {
		errors = append(errors, ValidationError{
			Field:   "description",
			Message: "must not be blank",
			Value:   *req.Description,
			Rule:    "business_logic",
		})
	}

	if req.IsEmpty() {
		errors = append(errors, ValidationError{
			Field:   "request",
			Message: "at least one field must be provided",
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateRegistration validates account registration, including role specific fields
func (bv *BusinessValidator) ValidateRegistration(req *RegisterRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if models.UserRole(req.Role) == models.RoleStudent && strings.TrimSpace(req.Index) == "" && !hasField(errors, "index") {
		errors = append(errors, ValidationError{
			Field:   "index",
			Message: "is required for students",
			Rule:    "business_logic",
		})
	}

	return errors
}

func (bv *BusinessValidator) registerBusinessRules() {
	// course category must be one of the fixed enumeration
	bv.validate.RegisterValidation("course_category", func(fl validator.FieldLevel) bool {
		category := models.CourseCategory(fl.Field().String())
		for _, c := range models.CourseCategories {
			if category == c {
				return true
			}
		}
		return false
	})

	bv.validate.RegisterValidation("course_level", func(fl validator.FieldLevel) bool {
		level := models.CourseLevel(fl.Field().String())
		for _, l := range models.CourseLevels {
			if level == l {
				return true
			}
		}
		return false
	})

	// duration in weeks (1-52)
	bv.validate.RegisterValidation("course_duration", func(fl validator.FieldLevel) bool {
		duration := fl.Field().Int()
		return duration >= models.MinCourseDuration && duration <= models.MaxCourseDuration
	})

	bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})
}

func hasField(errors ValidationErrors, field string) bool {
	for _, e := range errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func categoryValues() []string {
	values := make([]string, 0, len(models.CourseCategories))
	for _, c := range models.CourseCategories {
		values = append(values, string(c))
	}
	return values
}

func levelValues() []string {
	values := make([]string, 0, len(models.CourseLevels))
	for _, l := range models.CourseLevels {
		values = append(values, string(l))
	}
	return values
}
