package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee/errors"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/events"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/messaging/kafka"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/contextutil"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/counter"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	users   user.Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		users:   users,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// nextEmployeeID builds the E<MM><YY><seq> code, with one counter row per
// month so sequences restart each hiring month.
func (s *service) nextEmployeeID(ctx context.Context, joiningDate time.Time) (string, error) {
	prefix := fmt.Sprintf("E%02d%02d", int(joiningDate.Month()), joiningDate.Year()%100)
	seq, err := s.counter.GetNextValue(ctx, "employee_id:"+prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qusers := s.users.WithTx(tx)

	u := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Contact:      req.Contact,
		PasswordHash: string(hash),
		Role:         "EMPLOYEE",
	}
	if err := qusers.Create(ctx, u); err != nil {
		s.logger.Error("create employee user persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	id, err := s.nextEmployeeID(ctx, joiningDate)
	if err != nil {
		s.logger.Error("create employee generate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           id,
		UserID:       u.ID,
		DepartmentID: uuidPtr(req.DepartmentID),
		Designation:  req.Designation,
		Location:     req.Location,
		JoiningDate:  joiningDate,
	}
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.BankAccount != nil {
		account := &BankAccount{
			ID:           uuid.New(),
			EmployeeID:   empl.ID,
			BankName:     req.BankAccount.BankName,
			AccountTitle: req.BankAccount.AccountTitle,
			AccountNo:    req.BankAccount.AccountNo,
			BranchCode:   req.BankAccount.BranchCode,
		}
		if err := qtx.UpsertBankAccount(ctx, account); err != nil {
			s.logger.Error("create employee bank account persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.BankAccount = account
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID,
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	empl.User = u
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			name := ""
			if e.User != nil {
				name = e.User.Name
			}
			resp[i] = EmployeeOption{ID: e.ID, Name: name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	var resignDate *time.Time
	if req.ResignDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ResignDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
		}
		resignDate = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qusers := s.users.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.DepartmentID = uuidPtr(req.DepartmentID)
	empl.Designation = req.Designation
	empl.Location = req.Location
	empl.ResignDate = resignDate

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if empl.User != nil {
		empl.User.Name = req.Name
		empl.User.Contact = req.Contact
		if err := qusers.Update(ctx, empl.User); err != nil {
			s.logger.Error("update employee user persist failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	if req.BankAccount != nil {
		account := &BankAccount{
			ID:           uuid.New(),
			EmployeeID:   empl.ID,
			BankName:     req.BankAccount.BankName,
			AccountTitle: req.BankAccount.AccountTitle,
			AccountNo:    req.BankAccount.AccountNo,
			BranchCode:   req.BankAccount.BranchCode,
		}
		if err := qtx.UpsertBankAccount(ctx, account); err != nil {
			s.logger.Error("update employee bank account persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.BankAccount = account
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          empl.ID,
		Designation: empl.Designation,
		Location:    empl.Location,
		JoiningDate: empl.JoiningDate.Format("2006-01-02"),
	}
	if empl.User != nil {
		resp.Name = empl.User.Name
		resp.Email = empl.User.Email
		resp.Contact = empl.User.Contact
	}
	if empl.Department != nil {
		name := empl.Department.Name
		resp.Department = &name
	}
	if empl.ResignDate != nil {
		formatted := empl.ResignDate.Format("2006-01-02")
		resp.ResignDate = &formatted
	}
	if empl.BankAccount != nil {
		resp.BankAccount = &BankAccountResponse{
			BankName:     empl.BankAccount.BankName,
			AccountTitle: empl.BankAccount.AccountTitle,
			AccountNo:    empl.BankAccount.AccountNo,
			BranchCode:   empl.BankAccount.BranchCode,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}
