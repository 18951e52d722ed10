package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

func newAppointmentUsecase(repo *MockAppointmentRepository) AppointmentUsecase {
	return NewAppointmentUsecase(newTestDB(), newTestLogger(), repo, newPermissiveAuditService())
}

func TestAppointmentUsecase_Schedule_ForcesPendingAndOwner(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Appointment")).
		Run(func(args mock.Arguments) {
			apt := args.Get(1).(*entity.Appointment)
			apt.ID = 5
		}).
		Return(nil)

	result, err := uc.Schedule(context.Background(), userSession(3), &dto.ScheduleAppointmentRequest{
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, result.AppointmentID)
	assert.Equal(t, 3, result.UserID)
	assert.Equal(t, entity.AppointmentStatusPending, result.Status)
	assert.Equal(t, "2026-09-15", result.AppointmentDate)
	assert.Equal(t, "10:30", result.AppointmentTime)

	created := repo.Calls[0].Arguments.Get(1).(*entity.Appointment)
	assert.Equal(t, 3, created.UserID)
	assert.Equal(t, entity.AppointmentStatusPending, created.Status)
}

func TestAppointmentUsecase_Schedule_StorageError(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	storageErr := errors.New("connection reset")
	repo.On("Create", mock.Anything, mock.Anything).Return(storageErr)

	result, err := uc.Schedule(context.Background(), userSession(3), &dto.ScheduleAppointmentRequest{
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, storageErr)
}

func TestAppointmentUsecase_ListOwn(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	repo.On("FindByUserID", mock.Anything, 3).Return([]entity.Appointment{
		{ID: 2, UserID: 3, AppointmentDate: "2026-09-20", Status: entity.AppointmentStatusPending},
		{ID: 1, UserID: 3, AppointmentDate: "2026-09-15", Status: entity.AppointmentStatusPending},
	}, nil)

	result := uc.ListOwn(context.Background(), userSession(3))

	assert.Len(t, result, 2)
	assert.Equal(t, 2, result[0].AppointmentID)
	assert.Equal(t, 1, result[1].AppointmentID)
}

func TestAppointmentUsecase_ListOwn_DegradesToEmpty(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	repo.On("FindByUserID", mock.Anything, 3).Return(nil, errors.New("connection reset"))

	result := uc.ListOwn(context.Background(), userSession(3))

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAppointmentUsecase_ListAll_RequiresAdmin(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	result, err := uc.ListAll(context.Background(), userSession(3))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestAppointmentUsecase_ListAll_Admin(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	repo.On("FindAll", mock.Anything).Return([]entity.Appointment{
		{ID: 1, UserID: 3},
		{ID: 2, UserID: 4},
	}, nil)

	result, err := uc.ListAll(context.Background(), adminSession())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAppointmentUsecase_ListAll_DegradesToEmpty(t *testing.T) {
	repo := new(MockAppointmentRepository)
	uc := newAppointmentUsecase(repo)

	repo.On("FindAll", mock.Anything).Return(nil, errors.New("connection reset"))

	result, err := uc.ListAll(context.Background(), adminSession())

	assert.NoError(t, err)
	assert.Empty(t, result)
}
