package services

import (
	"fmt"

	"github.com/SAP-F-2025/course-service/internal/models"
)

type Action string

const (
	ActionCourseView     Action = "course.view"
	ActionCourseCreate   Action = "course.create"
	ActionCourseUpdate   Action = "course.update"
	ActionCourseDelete   Action = "course.delete"
	ActionFileUpload     Action = "course.file.upload"
	ActionFileDelete     Action = "course.file.delete"
	ActionFileDownload   Action = "course.file.download"
	ActionEnroll         Action = "course.enroll"
	ActionUnenroll       Action = "course.unenroll"
	ActionRosterView     Action = "course.students.view"
	ActionRosterExport   Action = "course.roster.export"
	ActionStudentCourses Action = "student.courses.view"
	ActionDirectoryView  Action = "directory.view"
)

// Target is the resource an action is checked against. Unused fields stay zero.
type Target struct {
	Course *models.Course
	// Enrolled is whether the acting student is enrolled in Course.
	Enrolled bool
	// UserID is the account a per-user resource belongs to.
	UserID uint
}

// Rule decides one action. It only runs for authenticated actors.
type Rule func(actor *models.Actor, target Target) error

// AccessPolicy authorizes an actor for an action on a target.
type AccessPolicy interface {
	Authorize(actor *models.Actor, action Action, target Target) error
}

type accessPolicy struct {
	rules map[Action]Rule
}

// NewAccessPolicy returns the policy with course ownership enforced for all writes.
func NewAccessPolicy() AccessPolicy {
	p := &accessPolicy{rules: make(map[Action]Rule)}

	p.rules[ActionCourseView] = allowAuthenticated
	p.rules[ActionDirectoryView] = allowAuthenticated
	p.rules[ActionCourseCreate] = requireProfessor
	p.rules[ActionRosterView] = requireProfessorOrStudent

	for _, a := range []Action{
		ActionCourseUpdate,
		ActionCourseDelete,
		ActionFileUpload,
		ActionFileDelete,
		ActionEnroll,
		ActionUnenroll,
		ActionRosterExport,
	} {
		p.rules[a] = requireCourseOwner(a)
	}

	p.rules[ActionFileDownload] = requireOwnerOrEnrolled
	p.rules[ActionStudentCourses] = requireSelf

	return p
}

func (p *accessPolicy) Authorize(actor *models.Actor, action Action, target Target) error {
	if actor == nil || actor.User == nil {
		return ErrUnauthenticated
	}

	rule, ok := p.rules[action]
	if !ok {
		return NewPermissionError(actor.UserID(), 0, "unknown", string(action), "no rule registered")
	}

	return rule(actor, target)
}

func allowAuthenticated(actor *models.Actor, target Target) error {
	return nil
}

func requireProfessor(actor *models.Actor, target Target) error {
	if !actor.IsProfessor() {
		return NewPermissionError(actor.UserID(), 0, "course", "create", "professor role required")
	}
	return nil
}

func requireProfessorOrStudent(actor *models.Actor, target Target) error {
	if actor.IsProfessor() || actor.IsStudent() {
		return nil
	}
	return NewPermissionError(actor.UserID(), courseID(target), "course", "view_students", "professor or student role required")
}

func requireCourseOwner(action Action) Rule {
	return func(actor *models.Actor, target Target) error {
		if target.Course == nil {
			return fmt.Errorf("authorize %s: %w", action, ErrCourseNotFound)
		}
		if !actor.IsProfessor() {
			return NewPermissionError(actor.UserID(), target.Course.ID, "course", string(action), "professor role required")
		}
		if actor.Professor.ID != target.Course.ProfessorID {
			return NewPermissionError(actor.UserID(), target.Course.ID, "course", string(action), "not the course owner")
		}
		return nil
	}
}

func requireOwnerOrEnrolled(actor *models.Actor, target Target) error {
	if target.Course == nil {
		return fmt.Errorf("authorize %s: %w", ActionFileDownload, ErrCourseNotFound)
	}
	if actor.IsProfessor() && actor.Professor.ID == target.Course.ProfessorID {
		return nil
	}
	if actor.IsStudent() && target.Enrolled {
		return nil
	}
	return NewPermissionError(actor.UserID(), target.Course.ID, "course_file", "download", "not the owner or an enrolled student")
}

// requireSelf only matches identities; the caller resolves the Student profile afterwards.
func requireSelf(actor *models.Actor, target Target) error {
	if actor.UserID() != target.UserID {
		return NewPermissionError(actor.UserID(), target.UserID, "student", "view_courses", "only the student can list their courses")
	}
	return nil
}

func courseID(target Target) uint {
	if target.Course == nil {
		return 0
	}
	return target.Course.ID
}
