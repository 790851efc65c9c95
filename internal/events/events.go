package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "course-service"
	EventVersion = "1.0"
)

type EventType string

const (
	CourseCreated      EventType = "course.created"
	CourseUpdated      EventType = "course.updated"
	CourseDeleted      EventType = "course.deleted"
	EnrollmentCreated  EventType = "enrollment.created"
	EnrollmentDeleted  EventType = "enrollment.deleted"
	CourseFileUploaded EventType = "course_file.uploaded"
	CourseFileDeleted  EventType = "course_file.deleted"
)

// Event is the envelope published for every domain change.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

type CourseEventData struct {
	CourseID    uint   `json:"course_id"`
	ProfessorID uint   `json:"professor_id"`
	Name        string `json:"name"`
}

type EnrollmentEventData struct {
	CourseID  uint `json:"course_id"`
	StudentID uint `json:"student_id"`
}

type CourseFileEventData struct {
	CourseID uint   `json:"course_id"`
	FileID   uint   `json:"file_id"`
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Size     int64  `json:"size,omitempty"`
}

// Publisher sends domain events to the outside world.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event *Event) error { return nil }
func (NoopPublisher) Close() error                                    { return nil }
