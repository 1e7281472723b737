package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/auth/errors"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 12 * time.Hour

// EmployeeLookup resolves the employee linked to a user, if any. Satisfied
// by the employee repository without importing that package here.
type EmployeeLookup interface {
	FindIDByUserID(ctx context.Context, userID string) (string, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	users     user.Repository
	employees EmployeeLookup
	logger    *zap.Logger
}

func NewService(users user.Repository, employees EmployeeLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, employees: employees, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	resp := UserResponse{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Contact: u.Contact,
		Role:    u.Role,
	}

	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	if s.employees != nil {
		employeeID, err := s.employees.FindIDByUserID(ctx, u.ID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login employee lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		if employeeID != "" {
			claims["employee_id"] = employeeID
			resp.EmployeeID = &employeeID
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		s.logger.Error("login token signing failed", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return LoginResponse{AccessToken: signed, User: resp}, nil
}

func (s *service) Me(ctx context.Context, userID string) (UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	resp := UserResponse{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Contact: u.Contact,
		Role:    u.Role,
	}

	if s.employees != nil {
		employeeID, err := s.employees.FindIDByUserID(ctx, u.ID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, err
		}
		if employeeID != "" {
			resp.EmployeeID = &employeeID
		}
	}

	return resp, nil
}
