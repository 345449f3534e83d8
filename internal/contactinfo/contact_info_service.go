package contactinfo

import (
	"context"
	"errors"
	"time"

	contactinfoerrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/contactinfo/errors"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/contextutil"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=contact_info_service.go -destination=mock/contact_info_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, payload map[string]any) (ContactInformationResponse, error)
	GetByID(ctx context.Context, id string) (ContactInformationResponse, error)
	GetAll(ctx context.Context) ([]ContactInformationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contactinfo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contactinfo.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, payload map[string]any) (ContactInformationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create contact information requested", zap.String("request_id", rid))

	input, err := ValidateCreateInput(payload)
	if err != nil {
		verrs := validation.AsErrors(err)
		s.logger.Warn("create contact information payload rejected",
			zap.String("request_id", rid),
			zap.Strings("fields", verrs.Fields()),
		)
		return ContactInformationResponse{}, apperror.FromValidation(verrs)
	}

	now := time.Now().UTC()
	info := &ContactInformation{
		ID:          uuid.New(),
		FullName:    input.FullName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		Occupation:  input.Occupation,
		NationalID:  input.NationalID,
		Mobile:      input.Mobile,
		Email:       input.Email,
		CreatedAt:   &now,
	}

	if err := s.repo.Create(ctx, info); err != nil {
		s.logger.Error("create contact information persist failed", zap.String("request_id", rid), zap.Error(err))
		return ContactInformationResponse{}, err
	}

	s.logger.Info("create contact information success",
		zap.String("request_id", rid),
		zap.String("contact_information_id", info.ID.String()),
	)
	return mapToResponse(*info), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ContactInformationResponse, error) {
	s.logger.Debug("get contact information by id requested", zap.String("contact_information_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return ContactInformationResponse{}, contactinfoerrors.ErrInvalidContactInformationID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get contact information by id failed", zap.Error(err))
		return ContactInformationResponse{}, mapRepositoryError(err)
	}

	info, err := ValidateStored(rowToRaw(row))
	if err != nil {
		s.logger.Error("stored contact information failed schema validation",
			zap.String("contact_information_id", id),
			zap.Error(err),
		)
		return ContactInformationResponse{}, apperror.ErrCorruptRecord
	}

	return mapToResponse(info), nil
}

func (s *service) GetAll(ctx context.Context) ([]ContactInformationResponse, error) {
	s.logger.Debug("get all contact information requested")

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all contact information failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ContactInformationResponse, 0, len(rows))
	for _, row := range rows {
		info, err := ValidateStored(rowToRaw(row))
		if err != nil {
			s.logger.Error("stored contact information failed schema validation", zap.Error(err))
			return nil, apperror.ErrCorruptRecord
		}
		res = append(res, mapToResponse(info))
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete contact information requested", zap.String("contact_information_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return contactinfoerrors.ErrInvalidContactInformationID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete contact information failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete contact information success", zap.String("contact_information_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contactinfoerrors.ErrContactInformationNotFound
	}
	return err
}

func mapToResponse(info ContactInformation) ContactInformationResponse {
	resp := ContactInformationResponse{
		ID:         info.ID.String(),
		FullName:   info.FullName,
		Gender:     info.Gender,
		Occupation: info.Occupation,
		NationalID: info.NationalID,
		Mobile:     info.Mobile,
		Email:      info.Email,
	}
	if info.DateOfBirth != nil {
		resp.DateOfBirth = info.DateOfBirth.Format("2006-01-02")
	}
	if info.CreatedAt != nil {
		resp.CreatedAt = info.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
