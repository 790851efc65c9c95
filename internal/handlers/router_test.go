package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/storage"
	"github.com/SAP-F-2025/course-service/internal/testutil"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T, maxUploadSize int64) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	slogger := testutil.DiscardLogger()
	logger := utils.NewSlogLogger(slogger)

	root := t.TempDir()
	blobs, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})
	sm := services.NewServiceManager(db, repo, slogger, validator.New(), services.ServiceManagerConfig{
		Blobs:         blobs,
		Publisher:     events.NewMockEventPublisher(slogger),
		MaxUploadSize: maxUploadSize,
	})
	require.NoError(t, sm.Initialize(t.Context()))

	router := gin.New()
	SetupMiddleware(router, logger, []string{"*"})
	NewHandlerManager(sm, logger, HandlerConfig{
		StorageRoot:   root,
		StoragePublic: true,
	}).SetupRoutes(router)

	return &testServer{t: t, db: db, router: router}
}

func (s *testServer) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(method, path, token string, payload any) *httptest.ResponseRecorder {
	s.t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(s.t, err)
		body = bytes.NewReader(raw)
	}
	return s.do(method, path, token, body, "application/json")
}

func (s *testServer) upload(path, token, filename string, content []byte) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(s.t, err)
	_, err = part.Write(content)
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())
	return s.do(http.MethodPost, path, token, &buf, mw.FormDataContentType())
}

func (s *testServer) login(email string) string {
	s.t.Helper()
	w := s.doJSON(http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "testtest",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decode(s.t, w, &resp)
	require.NotEmpty(s.t, resp.Token)
	assert.Equal(s.t, email, resp.User.Email)
	return resp.Token
}

func (s *testServer) getCourse(token string, id uint) models.Course {
	s.t.Helper()
	w := s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d", id), token, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var course models.Course
	decode(s.t, w, &course)
	return course
}

// getCourseJSON returns the course as the client sees it, without struct decoding.
func (s *testServer) getCourseJSON(token string, id uint) map[string]any {
	s.t.Helper()
	w := s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d", id), token, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var raw map[string]any
	decode(s.t, w, &raw)
	return raw
}

func assertEmptyFiles(t *testing.T, raw map[string]any) {
	t.Helper()
	files, ok := raw["files"]
	require.True(t, ok, "files key missing: %v", raw)
	assert.Equal(t, []any{}, files)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

type courseEnvelope struct {
	Message string        `json:"message"`
	Data    models.Course `json:"data"`
}

type fileEnvelope struct {
	Message string            `json:"message"`
	Data    models.CourseFile `json:"data"`
}

func TestCourseLifecycle_EndToEnd(t *testing.T) {
	s := newTestServer(t, 0)
	testutil.CreateProfessor(t, s.db, "ivan.chorbev@professors.finki.ukim.mk")
	student := testutil.CreateStudent(t, s.db, "emilija@students.finki.ukim.mk", "211123")

	token := s.login("ivan.chorbev@professors.finki.ukim.mk")

	w := s.doJSON(http.MethodPost, "/api/courses", token, map[string]any{
		"name":        "Algorithms",
		"category":    "computer-science",
		"description": "Sorting, graphs and dynamic programming",
		"duration":    10,
		"level":       "intermediate",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created courseEnvelope
	decode(t, w, &created)
	assert.Equal(t, 0, created.Data.EnrolledCount)
	assert.Equal(t, "Algorithms", created.Data.Name)
	courseID := created.Data.ID

	var createdRaw struct {
		Data map[string]any `json:"data"`
	}
	decode(t, w, &createdRaw)
	assertEmptyFiles(t, createdRaw.Data)
	assertEmptyFiles(t, s.getCourseJSON(token, courseID))

	// enroll
	w = s.doJSON(http.MethodPost, fmt.Sprintf("/api/courses/%d/add-student", courseID), token, map[string]uint{
		"student_id": student.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var enrolled EnrollResponse
	decode(t, w, &enrolled)
	assert.Equal(t, courseID, enrolled.CourseID)
	assert.Equal(t, student.ID, enrolled.StudentID)
	assert.Equal(t, 1, s.getCourse(token, courseID).EnrolledCount)

	w = s.doJSON(http.MethodPost, fmt.Sprintf("/api/courses/%d/add-student", courseID), token, map[string]uint{
		"student_id": student.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, s.getCourse(token, courseID).EnrolledCount)

	// upload
	content := bytes.Repeat([]byte("a"), 2*1024)
	w = s.upload(fmt.Sprintf("/api/courses/%d/upload", courseID), token, "notes.pdf", content)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var uploaded fileEnvelope
	decode(t, w, &uploaded)
	assert.Equal(t, "notes.pdf", uploaded.Data.Filename)
	assert.True(t, strings.HasPrefix(uploaded.Data.Filepath, fmt.Sprintf("courses/%d/", courseID)))

	course := s.getCourse(token, courseID)
	require.Len(t, course.Files, 1)
	fileID := course.Files[0].ID

	// download
	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d/files/%d", courseID, fileID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "notes.pdf")

	// the same blob is reachable through static serving
	w = s.do(http.MethodGet, "/storage/"+uploaded.Data.Filepath, "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// cross-course delete
	other := testutil.CreateCourse(t, s.db, course.ProfessorID, "Other")
	w = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/courses/%d/files/%d", other.ID, fileID), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.Len(t, s.getCourse(token, courseID).Files, 1)

	// delete file
	w = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/courses/%d/files/%d", courseID, fileID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, s.getCourse(token, courseID).Files)
	assertEmptyFiles(t, s.getCourseJSON(token, courseID))

	w = s.doJSON(http.MethodGet, "/api/courses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]any
	decode(t, w, &listed)
	require.NotEmpty(t, listed)
	for _, c := range listed {
		assertEmptyFiles(t, c)
	}

	// logout revokes the token
	w = s.doJSON(http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.doJSON(http.MethodGet, "/api/courses", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Errors(t *testing.T) {
	s := newTestServer(t, 0)
	testutil.CreateProfessor(t, s.db, "prof@professors.finki.ukim.mk")

	tests := []struct {
		name     string
		payload  map[string]string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "unknown email",
			payload:  map[string]string{"email": "nobody@finki.ukim.mk", "password": "testtest"},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "Email not found",
		},
		{
			name:     "wrong password",
			payload:  map[string]string{"email": "prof@professors.finki.ukim.mk", "password": "wrong-password"},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "Incorrect password",
		},
		{
			name:     "missing password",
			payload:  map[string]string{"email": "prof@professors.finki.ukim.mk"},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.doJSON(http.MethodPost, "/api/login", "", tt.payload)
			assert.Equal(t, tt.wantCode, w.Code)

			var resp ErrorResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	s := newTestServer(t, 0)

	w := s.doJSON(http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Matej",
		"surname":  "Gadjovski",
		"email":    "matej@students.finki.ukim.mk",
		"password": "testtest",
		"role":     "student",
		"index":    "211124",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := s.login("matej@students.finki.ukim.mk")

	w = s.doJSON(http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var actor models.Actor
	decode(t, w, &actor)
	require.NotNil(t, actor.Student)
	assert.Equal(t, "211124", actor.Student.Index)
	assert.Nil(t, actor.Professor)
}

func TestAuthMiddleware_RejectsMissingAndUnknownTokens(t *testing.T) {
	s := newTestServer(t, 0)

	w := s.doJSON(http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.doJSON(http.MethodGet, "/api/courses", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCourseRoutes_AccessAndValidation(t *testing.T) {
	s := newTestServer(t, 0)
	owner := testutil.CreateProfessor(t, s.db, "owner@professors.finki.ukim.mk")
	testutil.CreateProfessor(t, s.db, "other@professors.finki.ukim.mk")
	testutil.CreateStudent(t, s.db, "student@students.finki.ukim.mk", "211200")
	course := testutil.CreateCourse(t, s.db, owner.ID, "Databases")

	ownerToken := s.login("owner@professors.finki.ukim.mk")
	otherToken := s.login("other@professors.finki.ukim.mk")
	studentToken := s.login("student@students.finki.ukim.mk")

	coursePath := fmt.Sprintf("/api/courses/%d", course.ID)
	valid := map[string]any{
		"name":        "Networks",
		"category":    "computer-science",
		"description": "Layers",
		"duration":    8,
		"level":       "beginner",
	}

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		payload  any
		wantCode int
	}{
		{"student cannot create", http.MethodPost, "/api/courses", studentToken, valid, http.StatusForbidden},
		{"duration out of range", http.MethodPost, "/api/courses", ownerToken, map[string]any{
			"name": "X", "category": "physics", "description": "d", "duration": 53, "level": "advanced",
		}, http.StatusUnprocessableEntity},
		{"unknown category", http.MethodPost, "/api/courses", ownerToken, map[string]any{
			"name": "X", "category": "cooking", "description": "d", "duration": 5, "level": "advanced",
		}, http.StatusUnprocessableEntity},
		{"non-owner cannot update", http.MethodPut, coursePath, otherToken, map[string]any{"name": "Stolen"}, http.StatusForbidden},
		{"non-owner cannot delete", http.MethodDelete, coursePath, otherToken, nil, http.StatusForbidden},
		{"missing course", http.MethodGet, "/api/courses/9999", studentToken, nil, http.StatusNotFound},
		{"invalid id", http.MethodGet, "/api/courses/abc", studentToken, nil, http.StatusBadRequest},
		{"invalid professor filter", http.MethodGet, "/api/courses?professor_id=x", studentToken, nil, http.StatusBadRequest},
		{"owner updates", http.MethodPut, coursePath, ownerToken, map[string]any{"duration": 20}, http.StatusOK},
		{"student lists", http.MethodGet, "/api/courses?category=computer-science", studentToken, nil, http.StatusOK},
		{"missing student", http.MethodPost, coursePath + "/add-student", ownerToken, map[string]uint{"student_id": 9999}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.doJSON(tt.method, tt.path, tt.token, tt.payload)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}

	assert.Equal(t, 20, s.getCourse(ownerToken, course.ID).Duration)

	w := s.doJSON(http.MethodDelete, coursePath, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.doJSON(http.MethodGet, coursePath, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpload_Limits(t *testing.T) {
	const limit = 4 * 1024
	s := newTestServer(t, limit)
	professor := testutil.CreateProfessor(t, s.db, "prof@professors.finki.ukim.mk")
	course := testutil.CreateCourse(t, s.db, professor.ID, "Physics I")
	token := s.login("prof@professors.finki.ukim.mk")
	path := fmt.Sprintf("/api/courses/%d/upload", course.ID)

	w := s.upload(path, token, "big.bin", bytes.Repeat([]byte("x"), limit+1))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "The file may not be greater than 4.0 KiB.", resp.Message)

	w = s.do(http.MethodPost, path, token, strings.NewReader("{}"), "application/json")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.upload(path, token, "ok.bin", bytes.Repeat([]byte("x"), limit))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, s.getCourse(token, course.ID).Files, 1)
}

func TestDownload_FilenameHeader(t *testing.T) {
	s := newTestServer(t, 0)
	professor := testutil.CreateProfessor(t, s.db, "prof@professors.finki.ukim.mk")
	course := testutil.CreateCourse(t, s.db, professor.ID, "Physics I")
	token := s.login("prof@professors.finki.ukim.mk")

	for _, name := range []string{`a"b.pdf`, "week 1; intro.pdf", "plain.pdf"} {
		t.Run(name, func(t *testing.T) {
			w := s.upload(fmt.Sprintf("/api/courses/%d/upload", course.ID), token, name, []byte("content"))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var uploaded fileEnvelope
			decode(t, w, &uploaded)
			require.Equal(t, name, uploaded.Data.Filename)

			w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d/files/%d", course.ID, uploaded.Data.ID), token, nil)
			require.Equal(t, http.StatusOK, w.Code)

			disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
			require.NoError(t, err)
			assert.Equal(t, "attachment", disposition)
			assert.Equal(t, name, params["filename"])
		})
	}
}

func TestLogoutAll_RevokesEverySession(t *testing.T) {
	s := newTestServer(t, 0)
	testutil.CreateProfessor(t, s.db, "prof@professors.finki.ukim.mk")
	testutil.CreateStudent(t, s.db, "emilija@students.finki.ukim.mk", "211123")

	first := s.login("prof@professors.finki.ukim.mk")
	second := s.login("prof@professors.finki.ukim.mk")
	other := s.login("emilija@students.finki.ukim.mk")

	w := s.doJSON(http.MethodPost, "/api/logout-all", first, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	for _, token := range []string{first, second} {
		w = s.doJSON(http.MethodGet, "/api/user", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w = s.doJSON(http.MethodGet, "/api/user", other, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(http.MethodPost, "/api/logout-all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentCoursesAndRoster(t *testing.T) {
	s := newTestServer(t, 0)
	professor := testutil.CreateProfessor(t, s.db, "prof@professors.finki.ukim.mk")
	student := testutil.CreateStudent(t, s.db, "emilija@students.finki.ukim.mk", "211123")
	other := testutil.CreateStudent(t, s.db, "matej@students.finki.ukim.mk", "211124")
	course := testutil.CreateCourse(t, s.db, professor.ID, "Calculus")

	profToken := s.login("prof@professors.finki.ukim.mk")
	studentToken := s.login("emilija@students.finki.ukim.mk")

	w := s.doJSON(http.MethodPost, fmt.Sprintf("/api/courses/%d/add-student", course.ID), profToken, map[string]uint{
		"student_id": student.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/students/%d/courses", student.UserID), studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var courses []models.Course
	decode(t, w, &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].ID)

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/students/%d/courses", other.UserID), studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d/students", course.ID), studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var students []models.Student
	decode(t, w, &students)
	require.Len(t, students, 1)
	assert.Equal(t, "211123", students[0].Index)

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d/students/export", course.ID), profToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(params["filename"], ".xlsx"), params["filename"])
	assert.NotEmpty(t, w.Body.Bytes())

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/courses/%d/students/export", course.ID), studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/courses/%d/students/%d", course.ID, student.ID), profToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, s.getCourse(profToken, course.ID).EnrolledCount)

	w = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/courses/%d/students/%d", course.ID, student.ID), profToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDirectoryAndHealth(t *testing.T) {
	s := newTestServer(t, 0)
	professor := testutil.CreateProfessor(t, s.db, "prof@professors.finki.ukim.mk")
	student := testutil.CreateStudent(t, s.db, "emilija@students.finki.ukim.mk", "211123")
	token := s.login("prof@professors.finki.ukim.mk")

	w := s.doJSON(http.MethodGet, "/api/students", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var students []models.Student
	decode(t, w, &students)
	assert.Len(t, students, 1)

	w = s.doJSON(http.MethodGet, "/api/professors", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var professors []models.Professor
	decode(t, w, &professors)
	assert.Len(t, professors, 1)

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/students/%d", student.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var gotStudent models.Student
	decode(t, w, &gotStudent)
	assert.Equal(t, student.ID, gotStudent.ID)
	assert.Equal(t, "211123", gotStudent.Index)

	w = s.doJSON(http.MethodGet, fmt.Sprintf("/api/professors/%d", professor.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var gotProfessor models.Professor
	decode(t, w, &gotProfessor)
	assert.Equal(t, professor.ID, gotProfessor.ID)

	lookups := []struct {
		path    string
		wantMsg string
	}{
		{path: "/api/students/9999", wantMsg: "Student not found"},
		{path: "/api/professors/9999", wantMsg: "Professor not found"},
	}
	for _, l := range lookups {
		w = s.doJSON(http.MethodGet, l.path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, l.path)
		var resp ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, l.wantMsg, resp.Message)
	}

	w = s.doJSON(http.MethodGet, "/api/students/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/health", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]string
	decode(t, w, &health)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "course-service", health["service"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer", "", false},
		{"Basic abc", "", false},
		{"", "", false},
		{"Bearer a b", "", false},
	}
	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}
