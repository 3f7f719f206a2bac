package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/soumya9832/notes-backend/internal/application/command"
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
	"github.com/soumya9832/notes-backend/internal/application/mapper"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
	"github.com/soumya9832/notes-backend/internal/domain/repositories"
	"github.com/soumya9832/notes-backend/internal/infrastructure"
)

type UserService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	redisService *infrastructure.RedisService
	rateLimiter  *infrastructure.RateLimiter
	tokenTTL     time.Duration
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	redisService *infrastructure.RedisService,
	rateLimiter *infrastructure.RateLimiter,
	tokenTTL time.Duration,
) interfaces.UserService {
	return &UserService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisService: redisService,
		rateLimiter:  rateLimiter,
		tokenTTL:     tokenTTL,
	}
}

func (s *UserService) RegisterUser(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	existingUser, err := s.userRepo.FindByUsername(registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	newUser := entities.NewUser(registerCommand.Username, registerCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		// The store is the authority on uniqueness; the pre-check above
		// only narrows the race window.
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) LoginUser(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.rateLimiter.Allow(loginCommand.Username) {
		return nil, ErrTooManyLoginAttempts
	}

	user, err := s.userRepo.FindByUsername(loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, err
	}

	// Cache the token for quick validation; best-effort only.
	go func() {
		if err := s.redisService.SetToken(context.Background(), token, user.Username, s.tokenTTL); err != nil {
			log.Printf("Failed to store token in Redis: %v", err)
		}
	}()

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}
