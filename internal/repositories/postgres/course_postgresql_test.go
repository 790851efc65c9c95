package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/course-service/internal/testutil"
)

func TestCourse_ListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := postgres.NewCoursePostgreSQL(db)

	ivan := testutil.CreateProfessor(t, db, "ivan@example.com")
	ana := testutil.CreateProfessor(t, db, "ana@example.com")

	cs := testutil.CreateCourse(t, db, ivan.ID, "Algorithms")
	math := &models.Course{ProfessorID: ana.ID, Name: "Calculus", Category: models.CategoryMathematics, Description: "limits", Duration: 20, Level: models.LevelAdvanced}
	require.NoError(t, repo.Create(ctx, nil, math))

	all, err := repo.List(ctx, nil, repositories.CourseFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	category := models.CategoryMathematics
	filtered, err := repo.List(ctx, nil, repositories.CourseFilters{Category: &category})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, math.ID, filtered[0].ID)

	byProf, err := repo.List(ctx, nil, repositories.CourseFilters{ProfessorID: &ivan.ID})
	require.NoError(t, err)
	require.Len(t, byProf, 1)
	assert.Equal(t, cs.ID, byProf[0].ID)
	assert.NotNil(t, byProf[0].Professor)
}

func TestCourse_EmptyFilesIsNotNil(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := postgres.NewCoursePostgreSQL(db)

	prof := testutil.CreateProfessor(t, db, "prof@example.com")
	course := testutil.CreateCourse(t, db, prof.ID, "Operating Systems")

	detail, err := repo.GetByIDWithDetails(ctx, nil, course.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Files)
	assert.Empty(t, detail.Files)

	all, err := repo.List(ctx, nil, repositories.CourseFilters{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].Files)
}

func TestCourse_UpdateKeepsEnrolledCount(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := postgres.NewCoursePostgreSQL(db)

	prof := testutil.CreateProfessor(t, db, "prof@example.com")
	course := testutil.CreateCourse(t, db, prof.ID, "Databases")

	stale, err := repo.GetByID(ctx, nil, course.ID)
	require.NoError(t, err)

	// counter moves after the stale copy was read
	require.NoError(t, repo.AdjustEnrolledCount(ctx, nil, course.ID, 1))

	stale.Name = "Advanced Databases"
	require.NoError(t, repo.Update(ctx, nil, stale))

	got, err := repo.GetByID(ctx, nil, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Databases", got.Name)
	assert.Equal(t, 1, got.EnrolledCount)
}

func TestCourse_DeleteAndDetails(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := postgres.NewCoursePostgreSQL(db)
	files := postgres.NewCourseFilePostgreSQL(db)

	prof := testutil.CreateProfessor(t, db, "prof@example.com")
	course := testutil.CreateCourse(t, db, prof.ID, "Databases")
	require.NoError(t, files.Create(ctx, nil, &models.CourseFile{CourseID: course.ID, Filename: "a.pdf", Filepath: "courses/1/a.pdf"}))
	require.NoError(t, files.Create(ctx, nil, &models.CourseFile{CourseID: course.ID, Filename: "b.pdf", Filepath: "courses/1/b.pdf"}))

	detailed, err := repo.GetByIDWithDetails(ctx, nil, course.ID)
	require.NoError(t, err)
	require.Len(t, detailed.Files, 2)
	assert.Equal(t, "a.pdf", detailed.Files[0].Filename)
	assert.Equal(t, prof.ID, detailed.Professor.ID)

	require.NoError(t, files.DeleteByCourse(ctx, nil, course.ID))
	require.NoError(t, repo.Delete(ctx, nil, course.ID))

	_, err = repo.GetByID(ctx, nil, course.ID)
	assert.True(t, repositories.IsNotFoundError(err))
	assert.True(t, repositories.IsNotFoundError(repo.Delete(ctx, nil, course.ID)))

	remaining, err := files.ListByCourse(ctx, nil, course.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestAccessToken_StoreLookupExpire(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tokens := postgres.NewAccessTokenPostgreSQL(db)

	require.NoError(t, tokens.Store(ctx, "digest-forever", 5, 0))
	require.NoError(t, tokens.Store(ctx, "digest-expired", 5, time.Nanosecond))

	userID, err := tokens.Lookup(ctx, "digest-forever")
	require.NoError(t, err)
	assert.Equal(t, uint(5), userID)

	time.Sleep(time.Millisecond)
	_, err = tokens.Lookup(ctx, "digest-expired")
	assert.True(t, repositories.IsNotFoundError(err))

	err = tokens.Store(ctx, "digest-forever", 6, 0)
	assert.True(t, repositories.IsDuplicateError(err))

	require.NoError(t, tokens.Revoke(ctx, "digest-forever"))
	_, err = tokens.Lookup(ctx, "digest-forever")
	assert.True(t, repositories.IsNotFoundError(err))

	require.NoError(t, tokens.RevokeAllForUser(ctx, 5))
}

func TestUser_EmailLookupIsCaseInsensitive(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	users := postgres.NewUserPostgreSQL(db)

	require.NoError(t, users.Create(ctx, nil, &models.User{Name: "Ivan", Email: "Ivan@Example.com", PasswordHash: "x", Role: models.RoleProfessor}))

	u, err := users.GetByEmail(ctx, nil, " ivan@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", u.Email)

	exists, err := users.ExistsByEmail(ctx, nil, "IVAN@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = users.Create(ctx, nil, &models.User{Name: "Dup", Email: "ivan@example.com", PasswordHash: "x", Role: models.RoleStudent})
	assert.True(t, repositories.IsDuplicateError(err))

	_, err = users.GetByEmail(ctx, nil, "missing@example.com")
	assert.True(t, repositories.IsNotFoundError(err))
}
