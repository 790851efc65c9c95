package models

import (
	"time"
)

type CourseCategory string

const (
	CategoryComputerScience CourseCategory = "computer-science"
	CategoryMathematics     CourseCategory = "mathematics"
	CategoryPhysics         CourseCategory = "physics"
	CategoryChemistry       CourseCategory = "chemistry"
	CategoryBiology         CourseCategory = "biology"
	CategoryLiterature      CourseCategory = "literature"
)

var CourseCategories = []CourseCategory{
	CategoryComputerScience,
	CategoryMathematics,
	CategoryPhysics,
	CategoryChemistry,
	CategoryBiology,
	CategoryLiterature,
}

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

var CourseLevels = []CourseLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

const (
	MinCourseDuration = 1
	MaxCourseDuration = 52
)

type Course struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ProfessorID   uint           `json:"professor_id" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null;size:255"`
	Category      CourseCategory `json:"category" gorm:"not null;size:50;index"`
	Description   string         `json:"description" gorm:"type:text;not null"`
	Duration      int            `json:"duration" gorm:"not null"`
	Level         CourseLevel    `json:"level" gorm:"not null;size:20;index"`
	EnrolledCount int            `json:"enrolled_count" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Professor *Professor   `json:"professor,omitempty" gorm:"foreignKey:ProfessorID"`
	Files     []CourseFile `json:"files" gorm:"foreignKey:CourseID"`
}

func (Course) TableName() string {
	return "courses"
}

// Enrollment is the course/student join row. ID order is enrollment order.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_course_student"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollment_course_student;index"`
	CreatedAt time.Time `json:"created_at"`

	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type CourseFile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	Filename    string    `json:"filename" gorm:"not null;size:255"`
	Filepath    string    `json:"filepath" gorm:"not null;size:512"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CourseFile) TableName() string {
	return "course_files"
}

// RosterEntry is a student as seen through one enrollment.
type RosterEntry struct {
	Student    Student
	Email      string
	EnrolledAt time.Time
}
