package address

import (
	"context"
	"errors"
	"time"

	addresserrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/address/errors"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/contextutil"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=address_service.go -destination=mock/address_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, kind Kind, payload map[string]any) (AddressResponse, error)
	GetByID(ctx context.Context, kind Kind, id string) (AddressResponse, error)
	GetAll(ctx context.Context, kind Kind) ([]AddressResponse, error)
	Delete(ctx context.Context, kind Kind, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("address.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("address.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, kind Kind, payload map[string]any) (AddressResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create address requested",
		zap.String("request_id", rid),
		zap.String("kind", string(kind)),
	)

	input, err := ValidateCreateInput(payload)
	if err != nil {
		verrs := validation.AsErrors(err)
		s.logger.Warn("create address payload rejected",
			zap.String("request_id", rid),
			zap.Strings("fields", verrs.Fields()),
		)
		return AddressResponse{}, apperror.FromValidation(verrs)
	}

	now := time.Now().UTC()
	addr := &Address{
		ID:             uuid.New(),
		Division:       input.Division,
		District:       input.District,
		SubDistrict:    input.SubDistrict,
		PostOffice:     input.PostOffice,
		PostCode:       input.PostCode,
		Block:          input.Block,
		HouseOrVillage: input.HouseOrVillage,
		RoadNo:         input.RoadNo,
		CreatedAt:      &now,
	}

	if err := s.repo.Create(ctx, kind, addr); err != nil {
		s.logger.Error("create address persist failed", zap.String("request_id", rid), zap.Error(err))
		return AddressResponse{}, err
	}

	s.logger.Info("create address success",
		zap.String("request_id", rid),
		zap.String("address_id", addr.ID.String()),
		zap.String("kind", string(kind)),
	)
	return mapToResponse(*addr), nil
}

func (s *service) GetByID(ctx context.Context, kind Kind, id string) (AddressResponse, error) {
	s.logger.Debug("get address by id requested",
		zap.String("kind", string(kind)),
		zap.String("address_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return AddressResponse{}, addresserrors.ErrInvalidAddressID
	}

	row, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		s.logger.Error("get address by id failed", zap.Error(err))
		return AddressResponse{}, mapRepositoryError(err)
	}

	addr, err := ValidateStored(rowToRaw(row))
	if err != nil {
		s.logger.Error("stored address failed schema validation",
			zap.String("address_id", id),
			zap.Error(err),
		)
		return AddressResponse{}, apperror.ErrCorruptRecord
	}

	return mapToResponse(addr), nil
}

func (s *service) GetAll(ctx context.Context, kind Kind) ([]AddressResponse, error) {
	s.logger.Debug("get all addresses requested", zap.String("kind", string(kind)))

	rows, err := s.repo.FindAll(ctx, kind)
	if err != nil {
		s.logger.Error("get all addresses failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AddressResponse, 0, len(rows))
	for _, row := range rows {
		addr, err := ValidateStored(rowToRaw(row))
		if err != nil {
			s.logger.Error("stored address failed schema validation", zap.Error(err))
			return nil, apperror.ErrCorruptRecord
		}
		res = append(res, mapToResponse(addr))
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, kind Kind, id string) error {
	s.logger.Debug("delete address requested",
		zap.String("kind", string(kind)),
		zap.String("address_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return addresserrors.ErrInvalidAddressID
	}

	if err := s.repo.Delete(ctx, kind, id); err != nil {
		s.logger.Error("delete address failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete address success", zap.String("address_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return addresserrors.ErrAddressNotFound
	}
	return err
}

func mapToResponse(addr Address) AddressResponse {
	resp := AddressResponse{
		ID:             addr.ID.String(),
		Division:       addr.Division,
		District:       addr.District,
		SubDistrict:    addr.SubDistrict,
		PostOffice:     addr.PostOffice,
		PostCode:       addr.PostCode,
		Block:          addr.Block,
		HouseOrVillage: addr.HouseOrVillage,
		RoadNo:         addr.RoadNo,
	}
	if addr.CreatedAt != nil {
		resp.CreatedAt = addr.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
