package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
	"github.com/yigit/feedbackd/internal/app/repositories"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/auth"
)

// AuthService checks credentials against the student or faculty table
type AuthService struct {
	studentRepo repositories.IStudentRepository
	facultyRepo repositories.IFacultyRepository
	verifier    auth.PasswordVerifier
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	facultyRepo repositories.IFacultyRepository,
	verifier auth.PasswordVerifier,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		verifier:    verifier,
		logger:      logger,
	}
}

// Login returns the principal for a matching id and password. Unknown login types,
// unknown ids and wrong passwords are all reported as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.Principal, error) {
	switch req.LoginType {
	case models.LoginStudent:
		return s.loginStudent(ctx, req.Username, req.Password)
	case models.LoginFaculty:
		return s.loginFaculty(ctx, req.Username, req.Password)
	default:
		s.logger.Debug().Str("loginType", string(req.LoginType)).Msg("Login rejected: unknown login type")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, apperrors.ErrUnknownLoginType)
	}
}

func (s *AuthService) loginStudent(ctx context.Context, id, password string) (*models.Principal, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupFailure(err, "student", id)
	}
	if !s.verifier.Verify(student.Password, password) {
		s.logger.Debug().Str("studentID", id).Msg("Login rejected: password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	return &models.Principal{
		UserID: student.ID,
		Name:   student.Name,
		Role:   models.RoleStudent,
		Class:  student.Class,
	}, nil
}

func (s *AuthService) loginFaculty(ctx context.Context, id, password string) (*models.Principal, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupFailure(err, "faculty", id)
	}
	if !s.verifier.Verify(faculty.Password, password) {
		s.logger.Debug().Str("facultyID", id).Msg("Login rejected: password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	return &models.Principal{
		UserID: faculty.ID,
		Name:   faculty.Name,
		Role:   models.ParseFacultyRole(faculty.Role),
	}, nil
}

func (s *AuthService) lookupFailure(err error, table, id string) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		s.logger.Debug().Str("table", table).Str("id", id).Msg("Login rejected: unknown id")
		return apperrors.ErrInvalidCredentials
	}
	s.logger.Error().Err(err).Str("table", table).Msg("Credential lookup failed")
	return fmt.Errorf("credential lookup: %w", err)
}
