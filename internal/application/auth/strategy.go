package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dlsistema/dl-backend/internal/domain/entity"
	"github.com/dlsistema/dl-backend/internal/domain/repository"
	"github.com/dlsistema/dl-backend/internal/domain/role"
	"github.com/dlsistema/dl-backend/pkg/password"
)

// Authenticator es la estrategia de autenticación del flujo de login.
// Se separa en Lookup y VerifyPassword porque el gate de perfil debe evaluarse
// entre ambos pasos: un perfil incorrecto responde ProfileMismatch sin importar
// si el password era válido.
//
// La estrategia se selecciona por configuración (AUTH_MODE) en el arranque,
// nunca como default silencioso dentro del flujo.
type Authenticator interface {
	// Lookup busca la cuenta por email ya en minúsculas; (nil, nil) si no existe.
	Lookup(ctx context.Context, email string) (*entity.User, error)
	// VerifyPassword valida el password en claro contra la cuenta.
	VerifyPassword(user *entity.User, plain string) bool
}

// DBAuthenticator estrategia de producción: tabla users + bcrypt.
type DBAuthenticator struct {
	users repository.UserRepository
}

// NewDBAuthenticator construye la estrategia respaldada por el repositorio de cuentas.
func NewDBAuthenticator(users repository.UserRepository) *DBAuthenticator {
	return &DBAuthenticator{users: users}
}

// Lookup busca la cuenta por email.
func (a *DBAuthenticator) Lookup(ctx context.Context, email string) (*entity.User, error) {
	return a.users.GetByEmail(ctx, email)
}

// VerifyPassword compara contra el hash bcrypt almacenado.
func (a *DBAuthenticator) VerifyPassword(user *entity.User, plain string) bool {
	return password.Verify(plain, user.HashedPassword)
}

// FakeAuthenticator estrategia de desarrollo: las tres cuentas fijas de los
// paneles, sin tocar la base de datos. Solo se activa con AUTH_MODE=fake.
type FakeAuthenticator struct {
	accounts map[string]fakeAccount
}

type fakeAccount struct {
	user     entity.User
	password string
}

// NewFakeAuthenticator construye la estrategia con las cuentas de demo
// gestor@dl.com, vendedor@dl.com y anuncios@dl.com (password "123").
func NewFakeAuthenticator() *FakeAuthenticator {
	now := time.Now()
	mk := func(id, email, name string, r role.Role, super bool) fakeAccount {
		return fakeAccount{
			user: entity.User{
				ID:          uuid.MustParse(id),
				Email:       email,
				FullName:    name,
				IsActive:    true,
				IsSuperuser: super,
				Role:        r,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			password: "123",
		}
	}
	return &FakeAuthenticator{accounts: map[string]fakeAccount{
		"gestor@dl.com":   mk("00000000-0000-0000-0000-000000000001", "gestor@dl.com", "Gestor Principal", role.Gestor, true),
		"vendedor@dl.com": mk("00000000-0000-0000-0000-000000000002", "vendedor@dl.com", "Vendedor Padrão", role.Vendedor, false),
		"anuncios@dl.com": mk("00000000-0000-0000-0000-000000000003", "anuncios@dl.com", "Analista de Anúncios", role.Anuncios, false),
	}}
}

// Lookup busca en las cuentas fijas.
func (a *FakeAuthenticator) Lookup(_ context.Context, email string) (*entity.User, error) {
	acc, ok := a.accounts[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	u := acc.user
	return &u, nil
}

// VerifyPassword compara en tiempo constante contra el password fijo de la cuenta.
func (a *FakeAuthenticator) VerifyPassword(user *entity.User, plain string) bool {
	acc, ok := a.accounts[user.Email]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(acc.password), []byte(plain)) == 1
}
