package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *mockAuditLogRepository) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	args := m.Called(db, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

func newAuditTestService(repo *mockAuditLogRepository) AuditService {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAuditService(db, log, repo)
}

func TestAuditService_Log(t *testing.T) {
	repo := new(mockAuditLogRepository)
	svc := newAuditTestService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	userID := 7
	svc.Log(context.Background(), &userID, entity.AuditActionUserLogin, entity.JSON{"email": "jane@example.com"})

	created := repo.Calls[0].Arguments.Get(1).(*entity.AuditLog)
	assert.Equal(t, &userID, created.UserID)
	assert.Equal(t, entity.AuditActionUserLogin, created.Action)
	assert.Equal(t, "jane@example.com", created.Metadata["email"])
	repo.AssertExpectations(t)
}

func TestAuditService_Log_SwallowsStorageError(t *testing.T) {
	repo := new(mockAuditLogRepository)
	svc := newAuditTestService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	// Best-effort logging: a failed audit write must not panic or surface.
	assert.NotPanics(t, func() {
		svc.Log(context.Background(), nil, entity.AuditActionUserLogout, nil)
	})
}
