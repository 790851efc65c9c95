package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCourse() *CourseCreateRequest {
	return &CourseCreateRequest{
		Name:        "Algorithms",
		Category:    "computer-science",
		Description: "Sorting, graphs and dynamic programming",
		Duration:    12,
		Level:       "intermediate",
	}
}

func TestValidateCourseCreate(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name       string
		mutate     func(r *CourseCreateRequest)
		wantFields []string
	}{
		{name: "valid", mutate: func(r *CourseCreateRequest) {}},
		{name: "longest duration and advanced", mutate: func(r *CourseCreateRequest) {
			r.Duration = 52
			r.Level = "advanced"
		}},
		{name: "shortest duration", mutate: func(r *CourseCreateRequest) { r.Duration = 1 }},
		{name: "zero duration", mutate: func(r *CourseCreateRequest) { r.Duration = 0 }, wantFields: []string{"duration"}},
		{name: "duration above a year", mutate: func(r *CourseCreateRequest) { r.Duration = 53 }, wantFields: []string{"duration"}},
		{name: "unknown level", mutate: func(r *CourseCreateRequest) { r.Level = "expert" }, wantFields: []string{"level"}},
		{name: "unknown category", mutate: func(r *CourseCreateRequest) { r.Category = "astrology" }, wantFields: []string{"category"}},
		{name: "missing name", mutate: func(r *CourseCreateRequest) { r.Name = "" }, wantFields: []string{"name"}},
		{name: "blank name", mutate: func(r *CourseCreateRequest) { r.Name = "   " }, wantFields: []string{"name"}},
		{name: "missing description", mutate: func(r *CourseCreateRequest) { r.Description = "" }, wantFields: []string{"description"}},
		{name: "blank description", mutate: func(r *CourseCreateRequest) { r.Description = " \t " }, wantFields: []string{"description"}},
		{name: "several problems", mutate: func(r *CourseCreateRequest) {
			r.Duration = 0
			r.Level = "expert"
		}, wantFields: []string{"duration", "level"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCourse()
			tt.mutate(req)

			errs := bv.ValidateCourseCreate(req)
			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, errs.Fields())
		})
	}
}

func TestValidateCourseUpdate(t *testing.T) {
	bv := NewBusinessValidator()

	level := "expert"
	errs := bv.ValidateCourseUpdate(&CourseUpdateRequest{Level: &level})
	assert.Equal(t, []string{"level"}, errs.Fields())

	errs = bv.ValidateCourseUpdate(&CourseUpdateRequest{})
	assert.Equal(t, []string{"request"}, errs.Fields())

	blank := "   "
	errs = bv.ValidateCourseUpdate(&CourseUpdateRequest{Name: &blank, Description: &blank})
	assert.ElementsMatch(t, []string{"name", "description"}, errs.Fields())

	duration := 10
	assert.Empty(t, bv.ValidateCourseUpdate(&CourseUpdateRequest{Duration: &duration}))
}

func TestValidateRegistration(t *testing.T) {
	bv := NewBusinessValidator()

	student := &RegisterRequest{
		Name:     "Emilija",
		Surname:  "Lakinska",
		Email:    "emilija.lakinska@students.finki.ukim.mk",
		Password: "testtest",
		Role:     "student",
	}
	assert.Equal(t, []string{"index"}, bv.ValidateRegistration(student).Fields())

	student.Index = "211123"
	assert.Empty(t, bv.ValidateRegistration(student))

	admin := *student
	admin.Role = "admin"
	assert.Equal(t, []string{"role"}, bv.ValidateRegistration(&admin).Fields())
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "validation failed", ValidationErrors{}.Error())
	assert.Equal(t, "validation failed: level must be one of: beginner, intermediate, advanced",
		ValidationErrors{{Field: "level", Message: "must be one of: beginner, intermediate, advanced"}}.Error())
	assert.Equal(t, "validation failed: 2 field errors", ValidationErrors{{Field: "a"}, {Field: "b"}}.Error())
}
