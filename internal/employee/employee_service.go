package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/employee/errors"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/events"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/contextutil"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, payload map[string]any) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, payload map[string]any) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, payload map[string]any) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested", zap.String("request_id", rid))

	input, err := ValidateCreateInput(payload)
	if err != nil {
		verrs := validation.AsErrors(err)
		s.logger.Warn("create employee payload rejected",
			zap.String("request_id", rid),
			zap.Strings("fields", verrs.Fields()),
		)
		return EmployeeResponse{}, apperror.FromValidation(verrs)
	}

	now := time.Now().UTC()
	empl := newEmployee(input)
	empl.ID = uuid.New()
	empl.CreatedAt = &now
	empl.UpdatedAt = &now

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		EmployeeID: empl.ID.String(),
		OccurredAt: now,
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		// The record is persisted; a lost lifecycle event must not fail
		// the request.
		s.logger.Warn("create employee event publish failed",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, 0, len(rows))
	for _, row := range rows {
		empl, err := ValidateStored(rowToRaw(row))
		if err != nil {
			s.logger.Error("stored employee failed schema validation", zap.Error(err))
			return nil, apperror.ErrCorruptRecord
		}
		res = append(res, mapToResponse(empl))
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsCacheKey).Result(); err == nil {
			var opts []EmployeeOption
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	// Singleflight collapses the stampede when many forms load at once.
	v, err, _ := s.sf.Do(EmployeeOptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		opts := make([]EmployeeOption, 0, len(rows))
		for _, row := range rows {
			opts = append(opts, EmployeeOption{
				ID:                 stringValue(row["id"]),
				FullName:           stringValue(row["full_name"]),
				CurrentDesignation: stringValue(row["current_designation"]),
			})
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl, err := ValidateStored(rowToRaw(row))
	if err != nil {
		s.logger.Error("stored employee failed schema validation",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, apperror.ErrCorruptRecord
	}

	return mapToResponse(empl), nil
}

func (s *service) Update(ctx context.Context, id string, payload map[string]any) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	input, err := ValidateCreateInput(payload)
	if err != nil {
		verrs := validation.AsErrors(err)
		s.logger.Warn("update employee payload rejected",
			zap.String("request_id", rid),
			zap.Strings("fields", verrs.Fields()),
		)
		return EmployeeResponse{}, apperror.FromValidation(verrs)
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	existing, err := ValidateStored(rowToRaw(row))
	if err != nil {
		s.logger.Error("stored employee failed schema validation",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, apperror.ErrCorruptRecord
	}

	now := time.Now().UTC()
	empl := newEmployee(input)
	empl.ID = existing.ID
	empl.CreatedAt = existing.CreatedAt
	empl.UpdatedAt = &now

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.String("key", EmployeeOptionsCacheKey),
			zap.Error(err),
		)
	}
}

func newEmployee(input CreateEmployeeInput) *Employee {
	return &Employee{
		FullName:           input.FullName,
		Image:              input.Image,
		OfficeEmail:        input.OfficeEmail,
		PersonalEmail:      input.PersonalEmail,
		OfficePhone:        input.OfficePhone,
		PersonalPhone:      input.PersonalPhone,
		EmploymentType:     input.EmploymentType,
		Nationality:        input.Nationality,
		Disability:         input.Disability,
		Gender:             input.Gender,
		Religion:           input.Religion,
		JoiningDesignation: input.JoiningDesignation,
		CurrentDesignation: input.CurrentDesignation,
		DateOfBirth:        input.DateOfBirth,
		ConfirmationDate:   input.ConfirmationDate,

		BankName:      input.BankName,
		BranchName:    input.BranchName,
		AccountNumber: input.AccountNumber,
		WalletType:    input.WalletType,
		WalletNumber:  input.WalletNumber,

		AdditionalInformationID: input.AdditionalInformationID,
		PresentAddressID:        input.PresentAddressID,
		PermanentAddressID:      input.PermanentAddressID,
		SpouseInformationID:     input.SpouseInformationID,
		EmergencyContactID:      input.EmergencyContactID,
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 empl.ID.String(),
		FullName:           empl.FullName,
		Image:              empl.Image,
		OfficeEmail:        empl.OfficeEmail,
		PersonalEmail:      empl.PersonalEmail,
		OfficePhone:        empl.OfficePhone,
		PersonalPhone:      empl.PersonalPhone,
		EmploymentType:     empl.EmploymentType,
		Nationality:        empl.Nationality,
		Disability:         empl.Disability,
		Gender:             empl.Gender,
		Religion:           empl.Religion,
		JoiningDesignation: empl.JoiningDesignation,
		CurrentDesignation: empl.CurrentDesignation,

		BankName:      empl.BankName,
		BranchName:    empl.BranchName,
		AccountNumber: empl.AccountNumber,
		WalletType:    empl.WalletType,
		WalletNumber:  empl.WalletNumber,

		AdditionalInformationID: empl.AdditionalInformationID.String(),
		PresentAddressID:        empl.PresentAddressID.String(),
		PermanentAddressID:      empl.PermanentAddressID.String(),
		EmergencyContactID:      empl.EmergencyContactID.String(),
	}
	if empl.DateOfBirth != nil {
		resp.DateOfBirth = empl.DateOfBirth.Format("2006-01-02")
	}
	if empl.ConfirmationDate != nil {
		resp.ConfirmationDate = empl.ConfirmationDate.Format("2006-01-02")
	}
	if empl.SpouseInformationID != nil {
		spouseID := empl.SpouseInformationID.String()
		resp.SpouseInformationID = &spouseID
	}
	if empl.CreatedAt != nil {
		resp.CreatedAt = empl.CreatedAt.Format(time.RFC3339)
	}
	if empl.UpdatedAt != nil {
		resp.UpdatedAt = empl.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case interface{ String() string }:
		return s.String()
	default:
		return ""
	}
}
