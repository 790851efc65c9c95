package validator

// CourseCreateRequest represents the request structure for creating courses
type CourseCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Category    string `json:"category" validate:"required,course_category"`
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"course_duration"`
	Level       string `json:"level" validate:"required,course_level"`
}

// CourseUpdateRequest represents a partial course update. Nil fields stay unchanged.
type CourseUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Category    *string `json:"category" validate:"omitempty,course_category"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Duration    *int    `json:"duration" validate:"omitempty,course_duration"`
	Level       *string `json:"level" validate:"omitempty,course_level"`
}

func (r *CourseUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Description == nil && r.Duration == nil && r.Level == nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Surname  string `json:"surname" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,user_role"`
	Index    string `json:"index" validate:"omitempty,max=50"`
}

type EnrollRequest struct {
	StudentID uint `json:"student_id" validate:"required,gt=0"`
}
