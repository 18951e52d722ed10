package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
)

func newHistoryUsecase(repo *MockPatientHistoryRepository, now func() time.Time) PatientHistoryUsecase {
	uc := &patientHistoryUsecase{
		db:           newTestDB(),
		log:          newTestLogger(),
		historyRepo:  repo,
		auditService: newPermissiveAuditService(),
		now:          now,
	}
	return uc
}

func TestPatientHistoryUsecase_AddRecord(t *testing.T) {
	repo := new(MockPatientHistoryRepository)
	fixed := time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)
	uc := newHistoryUsecase(repo, func() time.Time { return fixed })

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientHistory")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*entity.PatientHistory)
			record.ID = 11
		}).
		Return(nil)

	result, err := uc.AddRecord(context.Background(), userSession(3), &dto.AddPatientHistoryRequest{
		Name:          "Jane Doe",
		Age:           34,
		Gender:        "Female",
		DiseaseName:   "Flu",
		Symptoms:      "fever, cough",
		SeverityLevel: "Mild",
		HeightCM:      165,
		WeightKG:      60,
		BMI:           22.04,
		TreatmentCost: 150,
	})

	assert.NoError(t, err)
	assert.Equal(t, 11, result.PatientID)
	assert.Equal(t, 3, result.UserID)
	assert.Equal(t, entity.PatientHistoryStatusCompleted, result.Status)
	assert.Equal(t, "2026-08-30", result.DiagnosisDate)
	// The caller-computed BMI is stored verbatim, never recomputed.
	assert.Equal(t, 22.04, result.BMI)

	created := repo.Calls[0].Arguments.Get(1).(*entity.PatientHistory)
	assert.Equal(t, 3, created.UserID)
	assert.Equal(t, entity.PatientHistoryStatusCompleted, created.Status)
	assert.Equal(t, "2026-08-30", created.DiagnosisDate)
}

func TestPatientHistoryUsecase_AddRecord_StorageError(t *testing.T) {
	repo := new(MockPatientHistoryRepository)
	uc := newHistoryUsecase(repo, time.Now)

	storageErr := errors.New("connection reset")
	repo.On("Create", mock.Anything, mock.Anything).Return(storageErr)

	result, err := uc.AddRecord(context.Background(), userSession(3), &dto.AddPatientHistoryRequest{
		Name:        "Jane Doe",
		Age:         34,
		Gender:      "Female",
		DiseaseName: "Flu",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, storageErr)
}

func TestPatientHistoryUsecase_ListOwn(t *testing.T) {
	repo := new(MockPatientHistoryRepository)
	uc := newHistoryUsecase(repo, time.Now)

	repo.On("FindByUserID", mock.Anything, 3).Return([]entity.PatientHistory{
		{ID: 2, UserID: 3, DiseaseName: "Cold"},
		{ID: 1, UserID: 3, DiseaseName: "Flu"},
	}, nil)

	result := uc.ListOwn(context.Background(), userSession(3))

	assert.Len(t, result, 2)
	assert.Equal(t, "Cold", result[0].DiseaseName)
}

func TestPatientHistoryUsecase_ListOwn_DegradesToEmpty(t *testing.T) {
	repo := new(MockPatientHistoryRepository)
	uc := newHistoryUsecase(repo, time.Now)

	repo.On("FindByUserID", mock.Anything, 3).Return(nil, errors.New("connection reset"))

	result := uc.ListOwn(context.Background(), userSession(3))

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestPatientHistoryUsecase_ListAll_RequiresAdmin(t *testing.T) {
	repo := new(MockPatientHistoryRepository)
	uc := newHistoryUsecase(repo, time.Now)

	result, err := uc.ListAll(context.Background(), userSession(3))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestPatientHistoryUsecase_ListAll_Admin(t *testing.T) {
	repo := new(MockPatientHistoryRepository)
	uc := newHistoryUsecase(repo, time.Now)

	repo.On("FindAll", mock.Anything).Return([]entity.PatientHistory{
		{ID: 1, UserID: 3},
		{ID: 2, UserID: 4},
	}, nil)

	result, err := uc.ListAll(context.Background(), adminSession())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}
