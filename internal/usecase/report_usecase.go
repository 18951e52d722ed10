package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const topDiseaseLimit = 10

// ReportUsecase produces the aggregate figures behind the admin dashboard:
// totals, average age and BMI, treatment cost, and disease/gender breakdowns
// over the full patient history.
type ReportUsecase interface {
	Summary(ctx context.Context, actor entity.Session) (*dto.ReportSummaryResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.PatientHistoryRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	historyRepo repository.PatientHistoryRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
	}
}

func (u *reportUsecase) Summary(ctx context.Context, actor entity.Session) (*dto.ReportSummaryResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	db := u.db.WithContext(ctx)

	users, err := u.userRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to load users for report: %+v", err)
	}

	appointments, err := u.appointmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to load appointments for report: %+v", err)
	}

	records, err := u.historyRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to load patient history for report: %+v", err)
	}

	summary := &dto.ReportSummaryResponse{
		TotalUsers:         len(users),
		TotalAppointments:  len(appointments),
		TotalPatientVisits: len(records),
		GenderDistribution: map[string]int{},
		TopDiseases:        []dto.DiseaseCount{},
	}

	for _, apt := range appointments {
		if apt.IsPending() {
			summary.PendingAppointments++
		}
	}

	if len(records) == 0 {
		return summary, nil
	}

	diseaseCounts := map[string]int{}
	var ageSum, bmiSum, costSum float64
	for _, rec := range records {
		ageSum += float64(rec.Age)
		bmiSum += rec.BMI
		costSum += rec.TreatmentCost
		if rec.Gender != "" {
			summary.GenderDistribution[rec.Gender]++
		}
		if rec.DiseaseName != "" {
			diseaseCounts[rec.DiseaseName]++
		}
	}

	n := float64(len(records))
	summary.AverageAge = round1(ageSum / n)
	summary.AverageBMI = round1(bmiSum / n)
	summary.TotalTreatmentCost = costSum

	for name, count := range diseaseCounts {
		summary.TopDiseases = append(summary.TopDiseases, dto.DiseaseCount{Disease: name, Count: count})
	}
	sort.Slice(summary.TopDiseases, func(i, j int) bool {
		if summary.TopDiseases[i].Count != summary.TopDiseases[j].Count {
			return summary.TopDiseases[i].Count > summary.TopDiseases[j].Count
		}
		return summary.TopDiseases[i].Disease < summary.TopDiseases[j].Disease
	})
	if len(summary.TopDiseases) > topDiseaseLimit {
		summary.TopDiseases = summary.TopDiseases[:topDiseaseLimit]
	}

	return summary, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
