package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"homepro/config"
	"homepro/models"
	"homepro/repositories"
	"homepro/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrResetUnavailable   = errors.New("password reset is currently unavailable")
)

const otpTTL = 5 * time.Minute

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(req.Email)
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "customer",
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	if err := s.userRepo.UpdateProfile(userID, req.FullName, req.Phone); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) ChangePassword(userID uuid.UUID, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return errors.New("invalid old password")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, hashedPassword)
}

// ForgotPassword emails a one-time code to the account's address. The
// code lives in Redis for five minutes. An unknown email is reported as
// success so the endpoint does not leak which accounts exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if config.RedisClient == nil {
		return ErrResetUnavailable
	}

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Printf("Password reset requested for unknown email %s", email)
			return nil
		}
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	if err := config.RedisClient.Set(ctx, otpKey(email), otp, otpTTL).Err(); err != nil {
		return err
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		return ErrResetUnavailable
	}

	return emailService.SendOTPEmail(email, otp)
}

func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if config.RedisClient == nil {
		return ErrResetUnavailable
	}

	stored, err := config.RedisClient.Get(ctx, otpKey(req.Email)).Result()
	if err != nil || stored != req.OTP {
		return ErrInvalidOTP
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordByEmail(req.Email, hashedPassword); err != nil {
		return err
	}

	config.RedisClient.Del(ctx, otpKey(req.Email))
	return nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
