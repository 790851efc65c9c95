package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/course-service/internal/storage"
	"github.com/SAP-F-2025/course-service/internal/testutil"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

type testEnv struct {
	db        *gorm.DB
	repo      repositories.Repository
	blobs     *storage.LocalStore
	publisher *events.MockEventPublisher
	services  ServiceManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	logger := testutil.DiscardLogger()

	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	publisher := events.NewMockEventPublisher(logger)
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})

	sm := NewServiceManager(db, repo, logger, validator.New(), ServiceManagerConfig{
		Blobs:     blobs,
		Publisher: publisher,
	})
	require.NoError(t, sm.Initialize(t.Context()))

	return &testEnv{db: db, repo: repo, blobs: blobs, publisher: publisher, services: sm}
}

func professorActor(p *models.Professor) *models.Actor {
	return &models.Actor{User: p.User, Professor: p}
}

func studentActor(s *models.Student) *models.Actor {
	return &models.Actor{User: s.User, Student: s}
}
