package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/hrm-backend-go/internal/domain/auth"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/hrm-backend-go/internal/repository/postgresql"
)

type Service struct {
	db         database.TxBeginner
	jwtService jwt.Service
	user.UserRepository
	role.RoleRepository
	role.UserRoleRepository
	employee.EmployeeRepository
}

func NewService(
	db database.TxBeginner,
	jwtService jwt.Service,
	userRepository user.UserRepository,
	roleRepository role.RoleRepository,
	userRoleRepository role.UserRoleRepository,
	employeeRepository employee.EmployeeRepository,
) *Service {
	return &Service{
		db:                 db,
		jwtService:         jwtService,
		UserRepository:     userRepository,
		RoleRepository:     roleRepository,
		UserRoleRepository: userRoleRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Register creates a user with the default role assigned. Username uniqueness
// is case-insensitive.
func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) (user.User, error) {
	if _, err := s.UserRepository.GetByUsername(ctx, req.Username); err == nil {
		return user.User{}, user.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to check username: %w", err)
	}

	defaultRole, err := s.RoleRepository.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return user.User{}, auth.ErrDefaultRoleMissing
		}
		return user.User{}, fmt.Errorf("failed to get default role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.UserRepository.Create(txCtx, user.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         defaultRole.Name,
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if err := s.UserRoleRepository.Assign(txCtx, created.ID, defaultRole.ID); err != nil {
			return fmt.Errorf("failed to assign default role: %w", err)
		}

		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	return s.issueTokens(ctx, u)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *Service) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	token, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	return s.issueTokens(ctx, u)
}

// Me describes the authenticated caller.
func (s *Service) Me(ctx context.Context) (auth.MeResponse, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, cu.UserID)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return auth.MeResponse{
		UserID:     u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.Role,
		IsAdmin:    u.IsAdmin(),
		EmployeeID: cu.EmployeeID,
	}, nil
}

func (s *Service) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	var employeeID *string
	if emp, err := s.EmployeeRepository.GetByUserID(ctx, u.ID); err == nil {
		employeeID = &emp.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, employeeID, u.Role, u.IsAdmin())
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
