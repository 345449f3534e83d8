package additionalinfo

import (
	"context"
	"errors"
	"time"

	additionalinfoerrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/additionalinfo/errors"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/contextutil"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=additional_info_service.go -destination=mock/additional_info_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, payload map[string]any) (AdditionalInformationResponse, error)
	GetByID(ctx context.Context, id string) (AdditionalInformationResponse, error)
	GetAll(ctx context.Context) ([]AdditionalInformationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("additionalinfo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("additionalinfo.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, payload map[string]any) (AdditionalInformationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create additional information requested", zap.String("request_id", rid))

	input, err := ValidateCreateInput(payload)
	if err != nil {
		verrs := validation.AsErrors(err)
		s.logger.Warn("create additional information payload rejected",
			zap.String("request_id", rid),
			zap.Strings("fields", verrs.Fields()),
		)
		return AdditionalInformationResponse{}, apperror.FromValidation(verrs)
	}

	now := time.Now().UTC()
	info := &AdditionalInformation{
		ID:             uuid.New(),
		FatherName:     input.FatherName,
		MotherName:     input.MotherName,
		NationalID:     input.NationalID,
		PlaceOfBirth:   input.PlaceOfBirth,
		MaritalStatus:  input.MaritalStatus,
		ETin:           input.ETin,
		Program:        input.Program,
		Unit:           input.Unit,
		PrlDate:        input.PrlDate,
		RegularityDate: input.RegularityDate,
		CreatedAt:      &now,
	}

	if err := s.repo.Create(ctx, info); err != nil {
		s.logger.Error("create additional information persist failed", zap.String("request_id", rid), zap.Error(err))
		return AdditionalInformationResponse{}, err
	}

	s.logger.Info("create additional information success",
		zap.String("request_id", rid),
		zap.String("additional_information_id", info.ID.String()),
	)
	return mapToResponse(*info), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AdditionalInformationResponse, error) {
	s.logger.Debug("get additional information by id requested", zap.String("additional_information_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return AdditionalInformationResponse{}, additionalinfoerrors.ErrInvalidAdditionalInformationID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get additional information by id failed", zap.Error(err))
		return AdditionalInformationResponse{}, mapRepositoryError(err)
	}

	info, err := ValidateStored(rowToRaw(row))
	if err != nil {
		s.logger.Error("stored additional information failed schema validation",
			zap.String("additional_information_id", id),
			zap.Error(err),
		)
		return AdditionalInformationResponse{}, apperror.ErrCorruptRecord
	}

	return mapToResponse(info), nil
}

func (s *service) GetAll(ctx context.Context) ([]AdditionalInformationResponse, error) {
	s.logger.Debug("get all additional information requested")

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all additional information failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AdditionalInformationResponse, 0, len(rows))
	for _, row := range rows {
		info, err := ValidateStored(rowToRaw(row))
		if err != nil {
			s.logger.Error("stored additional information failed schema validation", zap.Error(err))
			return nil, apperror.ErrCorruptRecord
		}
		res = append(res, mapToResponse(info))
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete additional information requested", zap.String("additional_information_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return additionalinfoerrors.ErrInvalidAdditionalInformationID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete additional information failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete additional information success", zap.String("additional_information_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return additionalinfoerrors.ErrAdditionalInformationNotFound
	}
	return err
}

func mapToResponse(info AdditionalInformation) AdditionalInformationResponse {
	resp := AdditionalInformationResponse{
		ID:            info.ID.String(),
		FatherName:    info.FatherName,
		MotherName:    info.MotherName,
		NationalID:    info.NationalID,
		PlaceOfBirth:  info.PlaceOfBirth,
		MaritalStatus: info.MaritalStatus,
		ETin:          info.ETin,
		Program:       info.Program,
		Unit:          info.Unit,
	}
	if info.PrlDate != nil {
		resp.PrlDate = info.PrlDate.Format("2006-01-02")
	}
	if info.RegularityDate != nil {
		resp.RegularityDate = info.RegularityDate.Format("2006-01-02")
	}
	if info.CreatedAt != nil {
		resp.CreatedAt = info.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
