package auth

import (
	"context"
	"strings"
	"time"

	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/role"
	"github.com/dlsistema/dl-backend/pkg/jwt"
	"github.com/dlsistema/dl-backend/pkg/password"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase orquesta el login con gate de perfil. Cada intento es un pipeline
// independiente de tres decisiones: lookup -> perfil -> password.
type AuthUseCase struct {
	authenticator Authenticator
	jwtCfg        JWTConfig
}

// NewAuthUseCase construye el caso de uso con la estrategia elegida por configuración.
func NewAuthUseCase(authenticator Authenticator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{authenticator: authenticator, jwtCfg: jwtCfg}
}

// Login valida credenciales y perfil y emite el token de acceso.
//
//  1. Lookup por email en minúsculas. Si la cuenta no existe o está inactiva se
//     quema una comparación bcrypt (paridad de timing con el caso de password
//     incorrecto) y se responde ErrInvalidCredentials, sin detalle que permita
//     enumerar cuentas.
//  2. El perfil pedido se canonicaliza y se compara con el rol de la cuenta.
//     Si difieren: ErrProfileMismatch, sin emitir token y sin importar si el
//     password era correcto.
//  3. Verificación bcrypt del password: fallo -> ErrInvalidCredentials.
//
// En éxito devuelve el token (subject = id de la cuenta) y la proyección
// pública de la cuenta; el hash jamás sale del use case.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := uc.authenticator.Lookup(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		password.DummyCompare(in.Password)
		return nil, domain.ErrInvalidCredentials
	}

	requested := role.Canonicalize(in.Profile)
	if role.Canonicalize(string(user.Role)) != requested {
		return nil, domain.ErrProfileMismatch
	}

	if !uc.authenticator.VerifyPassword(user, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.String(), string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserPublic(user),
	}, nil
}

// IssueToken es el login estilo OAuth2 (/login/access-token): valida credenciales
// sin gate de perfil y devuelve solo el token bearer.
func (uc *AuthUseCase) IssueToken(ctx context.Context, email, plain string) (*dto.Token, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.authenticator.Lookup(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		password.DummyCompare(plain)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.authenticator.VerifyPassword(user, plain) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.String(), string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.Token{AccessToken: token, TokenType: "bearer"}, nil
}

func toUserPublic(u *entity.User) dto.UserPublic {
	return dto.UserPublic{
		ID:       u.ID.String(),
		Email:    u.Email,
		Role:     string(u.Role),
		Name:     u.FullName,
		FullName: u.FullName,
	}
}
