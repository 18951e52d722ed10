package usecase

import (
	"context"

	"github.com/sarthakyadav7225/hms-WeCare/internal/converter"
	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/dto"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditLogDefaultLimit = 100

type AuditLogUsecase interface {
	ListRecent(ctx context.Context, actor entity.Session) ([]dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) ListRecent(ctx context.Context, actor entity.Session) ([]dto.AuditLogResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	logs, err := u.auditRepo.FindAll(u.db.WithContext(ctx), auditLogDefaultLimit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return []dto.AuditLogResponse{}, nil
	}
	return converter.AuditLogsToResponse(logs), nil
}
