package usecase

import (
	"context"
	"time"

	"github.com/sarthakyadav7225/hms-WeCare/internal/converter"
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"
	"github.com/sarthakyadav7225/hms-WeCare/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientHistoryUsecase interface {
	// AddRecord persists a visit record for the session's own user id.
	// Status is forced to completed and the diagnosis date is stamped
	// server-side; the caller-supplied BMI is stored verbatim.
	AddRecord(ctx context.Context, actor entity.Session, req *dto.AddPatientHistoryRequest) (*dto.PatientHistoryResponse, error)
	ListOwn(ctx context.Context, actor entity.Session) []dto.PatientHistoryResponse
	ListAll(ctx context.Context, actor entity.Session) ([]dto.PatientHistoryResponse, error)
}

type patientHistoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	historyRepo  repository.PatientHistoryRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewPatientHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	historyRepo repository.PatientHistoryRepository,
	auditService service.AuditService,
) PatientHistoryUsecase {
	return &patientHistoryUsecase{
		db:           db,
		log:          log,
		historyRepo:  historyRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *patientHistoryUsecase) AddRecord(ctx context.Context, actor entity.Session, req *dto.AddPatientHistoryRequest) (*dto.PatientHistoryResponse, error) {
	record := &entity.PatientHistory{
		UserID:             actor.UserID,
		Name:               req.Name,
		Age:                req.Age,
		Gender:             req.Gender,
		DiseaseName:        req.DiseaseName,
		Symptoms:           req.Symptoms,
		SeverityLevel:      req.SeverityLevel,
		MedicalHistory:     req.MedicalHistory,
		DiagnosisDate:      u.now().Format("2006-01-02"),
		HeightCM:           req.HeightCM,
		WeightKG:           req.WeightKG,
		BMI:                req.BMI,
		SmokingStatus:      req.SmokingStatus,
		ExerciseLevel:      req.ExerciseLevel,
		TreatmentGiven:     req.TreatmentGiven,
		MedicinePrescribed: req.MedicinePrescribed,
		TreatmentCost:      req.TreatmentCost,
		FollowUpDate:       req.FollowUpDate,
		TotalAmount:        req.TotalAmount,
		InsuranceUsed:      req.InsuranceUsed,
		Status:             entity.PatientHistoryStatusCompleted,
	}

	if err := u.historyRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to create patient history record: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &actor.UserID, entity.AuditActionHistoryCreate, entity.JSON{
		"patient_id":   record.ID,
		"disease_name": record.DiseaseName,
	})

	return converter.PatientHistoryToResponse(record), nil
}

// ListOwn returns the caller's visit records, newest first. A storage
// failure degrades to an empty list; the outage is logged, not surfaced.
func (u *patientHistoryUsecase) ListOwn(ctx context.Context, actor entity.Session) []dto.PatientHistoryResponse {
	records, err := u.historyRepo.FindByUserID(u.db.WithContext(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to list patient history for user %d: %+v", actor.UserID, err)
		return []dto.PatientHistoryResponse{}
	}
	return converter.PatientHistoriesToResponse(records)
}

func (u *patientHistoryUsecase) ListAll(ctx context.Context, actor entity.Session) ([]dto.PatientHistoryResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	records, err := u.historyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list all patient history: %+v", err)
		return []dto.PatientHistoryResponse{}, nil
	}
	return converter.PatientHistoriesToResponse(records), nil
}
