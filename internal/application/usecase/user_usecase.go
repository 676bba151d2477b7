package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/repository"
	"github.com/dlsistema/dl-backend/internal/domain/role"
	"github.com/dlsistema/dl-backend/pkg/password"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 40
)

// UserUseCase administración de cuentas. El email se guarda en minúsculas
// (único case-insensitive) y el rol siempre se canonicaliza antes de persistir:
// en reposo jamás hay roles de texto libre.
type UserUseCase struct {
	repo repository.UserRepository
	tx   repository.TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, tx repository.TxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx}
}

// List devuelve la página y el total de cuentas.
func (uc *UserUseCase) List(ctx context.Context, skip, limit int) (*dto.UsersPublic, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	var out *dto.UsersPublic
	err := uc.tx.Run(ctx, func(repos repository.Repos) error {
		list, total, err := repos.Users.List(ctx, skip, limit)
		if err != nil {
			return err
		}
		items := make([]dto.UserResponse, 0, len(list))
		for _, u := range list {
			items = append(items, toUserResponse(u))
		}
		out = &dto.UsersPublic{Data: items, Count: total}
		return nil
	})
	return out, err
}

// Get busca una cuenta por id; nil si no existe o el id está malformado.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	u, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Create hashea el password, normaliza email y rol, y persiste.
// Email duplicado -> domain.ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.NewValidationError("email", "é obrigatório")
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	u := &entity.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hash,
		FullName:       in.FullName,
		IsActive:       active,
		IsSuperuser:    in.IsSuperuser,
		Role:           role.Canonicalize(in.Role),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Update aplica una actualización parcial en transacción. Un password presente
// se rehashea; un rol presente se canonicaliza. Devuelve nil si no existe.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	var out *dto.UserResponse
	err = uc.tx.Run(ctx, func(repos repository.Repos) error {
		u, err := repos.Users.GetByID(ctx, uid)
		if err != nil {
			return err
		}
		if u == nil {
			return nil
		}
		if in.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*in.Email))
			if email == "" {
				return domain.NewValidationError("email", "é obrigatório")
			}
			u.Email = email
		}
		if in.Password != nil {
			if err := validatePassword(*in.Password); err != nil {
				return err
			}
			hash, err := password.Hash(*in.Password)
			if err != nil {
				return err
			}
			u.HashedPassword = hash
		}
		if in.FullName != nil {
			u.FullName = *in.FullName
		}
		if in.Role != nil {
			u.Role = role.Canonicalize(*in.Role)
		}
		if in.IsActive != nil {
			u.IsActive = *in.IsActive
		}
		if in.IsSuperuser != nil {
			u.IsSuperuser = *in.IsSuperuser
		}
		u.UpdatedAt = time.Now()
		if err := repos.Users.Update(ctx, u); err != nil {
			return err
		}
		resp := toUserResponse(u)
		out = &resp
		return nil
	})
	return out, err
}

// Delete elimina una cuenta; true si borró, false si no había nada.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	return uc.repo.Delete(ctx, uid)
}

func validatePassword(plain string) error {
	if len(plain) < passwordMinLen {
		return domain.NewValidationError("password", "mínimo de 8 caracteres")
	}
	if len(plain) > passwordMaxLen {
		return domain.NewValidationError("password", "máximo de 40 caracteres")
	}
	return nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		Role:        string(u.Role),
	}
}
