package user

import (
	"context"
	"time"

	"github.com/twisterdot/leaderboard/internal/apperrors"
)

const storageTimeout = 3 * time.Second

type UserService struct {
	repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(ctx context.Context, creds Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return apperrors.InvalidInput("username and password are required")
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	_, err := u.repo.CreateUser(ctx, creds.Username, creds.Password)
	return err
}

func (u *UserService) Login(ctx context.Context, creds Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", apperrors.InvalidCredentials()
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	userRetrieved, err := u.repo.ValidateUser(ctx, creds.Username, creds.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetUserStats(ctx context.Context, userID uint) (*StatsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	usr, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	best, err := u.repo.BestScore(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		Username:    usr.Username,
		GamesPlayed: usr.GamesPlayed,
		TotalScore:  usr.TotalScore,
		BestScore:   best,
	}, nil
}
