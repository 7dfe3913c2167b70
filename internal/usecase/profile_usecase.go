package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type ProfileUsecase struct {
	userRepo    repo.UserRepository
	profileRepo repo.ProfileRepository
	orderRepo   repo.OrderRepository
}

// DI
func NewProfileUsecase(
	userRepo repo.UserRepository,
	profileRepo repo.ProfileRepository,
	orderRepo repo.OrderRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
	}
}

type ProfileOutput struct {
	User    UserOutput        `json:"user"`
	Profile model.UserProfile `json:"profile"`

	//プロフィール画面の統計
	TotalOrders  int64           `json:"total_orders"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	RecentOrders []OrderOutput   `json:"recent_orders"`
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Email     *string

	Phone       *string
	Bio         *string
	Gender      *string
	Website     *string
	DateOfBirth *string // YYYY-MM-DD

	EmailNotifications      *bool
	NewsletterSubscription  *bool
	NotificationPreferences map[string]bool
}

type ChangePasswordInput struct {
	CurrentPassword         string
	NewPassword             string
	NewPasswordConfirmation string
}

func (u *ProfileUsecase) Get(ctx context.Context, userID int64) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	profile, err := u.profileRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalOrders, err := u.orderRepo.CountByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	totalSpent, err := u.orderRepo.SumTotalByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recent, _, err := u.orderRepo.ListByUserID(ctx, userID, 1, 5)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	recentOut := make([]OrderOutput, 0, len(recent))
	for _, o := range recent {
		recentOut = append(recentOut, toOrderOutput(o, nil))
	}

	return ProfileOutput{
		User:         toUserOutput(user),
		Profile:      profile,
		TotalOrders:  totalOrders,
		TotalSpent:   totalSpent,
		RecentOrders: recentOut,
	}, nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID int64, in UpdateProfileInput) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	firstName := user.FirstName
	lastName := user.LastName
	email := user.Email
	if in.FirstName != nil {
		firstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		lastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		email = strings.TrimSpace(*in.Email)
		if email == "" || !strings.Contains(email, "@") {
			return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
		}
	}
	if err := u.userRepo.UpdateProfileFields(ctx, userID, firstName, lastName, email); err != nil {
		if err == repo.ErrConflict {
			return ProfileOutput{}, NewHTTPError(http.StatusConflict, "email already taken")
		}
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	profile, err := u.profileRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Phone != nil {
		profile.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Bio != nil {
		if len(*in.Bio) > 500 {
			return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "bio too long")
		}
		profile.Bio = *in.Bio
	}
	if in.Gender != nil {
		switch *in.Gender {
		case "", "M", "F", "O":
		default:
			return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "invalid gender")
		}
		profile.Gender = *in.Gender
	}
	if in.Website != nil {
		profile.Website = strings.TrimSpace(*in.Website)
	}
	if in.DateOfBirth != nil {
		if *in.DateOfBirth == "" {
			profile.DateOfBirth = nil
		} else {
			dob, err := time.Parse("2006-01-02", *in.DateOfBirth)
			if err != nil {
				return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "invalid date of birth")
			}
			profile.DateOfBirth = &dob
		}
	}
	if in.EmailNotifications != nil {
		profile.EmailNotifications = *in.EmailNotifications
	}
	if in.NewsletterSubscription != nil {
		profile.NewsletterSubscription = *in.NewsletterSubscription
	}
	if in.NotificationPreferences != nil {
		b, err := json.Marshal(in.NotificationPreferences)
		if err != nil {
			return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "invalid notification preferences")
		}
		profile.NotificationPreferences = string(b)
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, userID)
}

func (u *ProfileUsecase) ChangePassword(ctx context.Context, userID int64, in ChangePasswordInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.NewPassword) < 8 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}
	if in.NewPassword != in.NewPasswordConfirmation {
		return NewHTTPError(http.StatusBadRequest, "password confirmation does not match")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return NewHTTPError(http.StatusBadRequest, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if err := u.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
