package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

// newTestDB returns a detached gorm handle that tolerates WithContext
// without a live connection. Every query in these tests goes through a
// mocked repository, so the handle is never dialed.
func newTestDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id int) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByCredentials(db *gorm.DB, email, digest string) (*entity.User, error) {
	args := m.Called(db, email, digest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByUserID(db *gorm.DB, userID int) ([]entity.Appointment, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

type MockPatientHistoryRepository struct {
	mock.Mock
}

func (m *MockPatientHistoryRepository) Create(db *gorm.DB, record *entity.PatientHistory) error {
	args := m.Called(db, record)
	return args.Error(0)
}

func (m *MockPatientHistoryRepository) FindByUserID(db *gorm.DB, userID int) ([]entity.PatientHistory, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientHistory), args.Error(1)
}

func (m *MockPatientHistoryRepository) FindAll(db *gorm.DB) ([]entity.PatientHistory, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientHistory), args.Error(1)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	args := m.Called(db, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Log(ctx context.Context, userID *int, action string, metadata entity.JSON) {
	m.Called(ctx, userID, action, metadata)
}

func newPermissiveAuditService() *MockAuditService {
	audit := new(MockAuditService)
	audit.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	return audit
}

func adminSession() entity.Session {
	return entity.Session{UserID: 1, Email: "admin@wecare.com", Role: entity.RoleAdmin}
}

func userSession(id int) entity.Session {
	return entity.Session{UserID: id, Email: "user@wecare.com", Role: entity.RoleUser}
}
