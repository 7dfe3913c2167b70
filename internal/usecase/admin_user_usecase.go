package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 管理画面の一覧は10件/ページ固定
const adminPageSize = 10

type AdminUserUsecase struct {
	tx       repo.TransactionManager
	userRepo repo.UserRepository
}

// DI
func NewAdminUserUsecase(
	tx repo.TransactionManager,
	userRepo repo.UserRepository,
) *AdminUserUsecase {
	return &AdminUserUsecase{
		tx:       tx,
		userRepo: userRepo,
	}
}

type AdminUserListInput struct {
	Page   int
	Search string
	Status string
}

type AdminUserOutput struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	LastLoginAt string `json:"last_login_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type AdminUserListOutput struct {
	Items []AdminUserOutput `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type BulkUserActionInput struct {
	Action  string  // activate / deactivate / delete
	UserIDs []int64 `json:"user_ids"`
}

func (u *AdminUserUsecase) List(ctx context.Context, in AdminUserListInput) (AdminUserListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	switch in.Status {
	case "", "active", "inactive", "staff":
	default:
		return AdminUserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}

	users, total, err := u.userRepo.ListAdmin(ctx, repo.AdminUserListFilter{
		Page:   in.Page,
		Limit:  adminPageSize,
		Search: in.Search,
		Status: in.Status,
	})
	if err != nil {
		return AdminUserListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]AdminUserOutput, 0, len(users))
	for _, user := range users {
		items = append(items, toAdminUserOutput(user))
	}
	return AdminUserListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: adminPageSize,
	}, nil
}

func (u *AdminUserUsecase) Get(ctx context.Context, userID int64) (AdminUserOutput, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return AdminUserOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return AdminUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toAdminUserOutput(user), nil
}

func (u *AdminUserUsecase) SetActive(ctx context.Context, actorID int64, userID int64, active bool) error {
	//自分自身は無効化できない
	if !active && actorID == userID {
		return NewHTTPError(http.StatusBadRequest, "cannot deactivate yourself")
	}

	err := u.userRepo.SetActive(ctx, userID, active)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// BulkAction は選択したユーザーに一括で操作を適用する。
// 実行者自身は対象から外す。
func (u *AdminUserUsecase) BulkAction(ctx context.Context, actorID int64, in BulkUserActionInput) (int, error) {
	if len(in.UserIDs) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "user_ids required")
	}

	ids := make([]int64, 0, len(in.UserIDs))
	for _, id := range in.UserIDs {
		if id <= 0 || id == actorID {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "no applicable users")
	}

	switch in.Action {
	case "activate":
		if err := u.userRepo.SetActiveBulk(ctx, ids, true); err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	case "deactivate":
		if err := u.userRepo.SetActiveBulk(ctx, ids, false); err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	case "delete":
		if err := u.deleteUsers(ctx, ids); err != nil {
			return 0, err
		}
	default:
		return 0, NewHTTPError(http.StatusBadRequest, "invalid action")
	}

	return len(ids), nil
}

func (u *AdminUserUsecase) Delete(ctx context.Context, actorID int64, userID int64) error {
	if actorID == userID {
		return NewHTTPError(http.StatusBadRequest, "cannot delete yourself")
	}
	if _, err := u.Get(ctx, userID); err != nil {
		return err
	}
	return u.deleteUsers(ctx, []int64{userID})
}

// deleteUsers はユーザー本体と所持データをまとめて消す。
// 注文は会計記録なので残す。
func (u *AdminUserUsecase) deleteUsers(ctx context.Context, ids []int64) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, id := range ids {
			if err := r.Cart().DeleteAllByUserID(ctx, id); err != nil {
				return err
			}
			if err := r.Wishlist().DeleteAllByUserID(ctx, id); err != nil {
				return err
			}
			if err := r.Reviews().DeleteAllByUserID(ctx, id); err != nil {
				return err
			}
			if err := r.Addresses().DeleteAllByUserID(ctx, id); err != nil {
				return err
			}
			if err := r.PaymentMethods().DeleteAllByUserID(ctx, id); err != nil {
				return err
			}
			if err := r.Profiles().DeleteAllByUserID(ctx, id); err != nil {
				return err
			}
		}
		return r.Users().DeleteByIDs(ctx, ids)
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toAdminUserOutput(user model.User) AdminUserOutput {
	out := AdminUserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if user.LastLoginAt != nil {
		out.LastLoginAt = user.LastLoginAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return out
}
