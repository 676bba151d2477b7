package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsistema/dl-backend/internal/application/auth"
	"github.com/dlsistema/dl-backend/internal/application/dto"
	"github.com/dlsistema/dl-backend/internal/domain"
	pkgjwt "github.com/dlsistema/dl-backend/pkg/jwt"
)

const (
	testSecret = "auth-usecase-test-secret"
	testIssuer = "dl-backend-test"
)

func buildAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(auth.NewFakeAuthenticator(), auth.JWTConfig{
		Secret: testSecret,
		TTL:    30 * time.Minute,
		Issuer: testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GestorConPerfilGestor_EmiteToken(t *testing.T) {
	uc := buildAuthUC()

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "gestor@dl.com",
		Password: "123",
		Profile:  "GESTOR",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "gestor@dl.com", out.User.Email)
	assert.Equal(t, "GESTOR", out.User.Role)
	assert.Equal(t, "Gestor Principal", out.User.FullName)

	// El token debe parsear y transportar id de cuenta y rol
	subject, role, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, subject)
	assert.Equal(t, "GESTOR", role)
}

// El email es case-insensitive y tolera espacios alrededor.
func TestLogin_EmailConMayusculasYEspacios(t *testing.T) {
	uc := buildAuthUC()

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Vendedor@DL.com ",
		Password: "123",
		Profile:  "VENDEDOR",
	})
	require.NoError(t, err)
	assert.Equal(t, "vendedor@dl.com", out.User.Email)
}

// El perfil pedido se canonicaliza: alias y acentos también abren el panel.
func TestLogin_PerfilConAliasYAcentos(t *testing.T) {
	uc := buildAuthUC()

	for _, profile := range []string{"ANUNCIOS", "anunciante", "anúncios", "ads"} {
		out, err := uc.Login(context.Background(), dto.LoginRequest{
			Email:    "anuncios@dl.com",
			Password: "123",
			Profile:  profile,
		})
		require.NoErrorf(t, err, "profile %q debe canonicalizar a ANUNCIOS", profile)
		assert.Equal(t, "ANUNCIOS", out.User.Role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — gate de perfil
// ──────────────────────────────────────────────────────────────────────────────

// Credenciales correctas pero perfil equivocado: ProfileMismatch, sin token.
func TestLogin_PerfilIncorrecto_RetornaProfileMismatch(t *testing.T) {
	uc := buildAuthUC()

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "vendedor@dl.com",
		Password: "123",
		Profile:  "GESTOR",
	})
	assert.ErrorIs(t, err, domain.ErrProfileMismatch)
	assert.Nil(t, out)
}

// El gate de perfil se evalúa ANTES que el password: perfil y password
// incorrectos a la vez responden ProfileMismatch, no InvalidCredentials.
func TestLogin_PerfilYPasswordIncorrectos_GanaProfileMismatch(t *testing.T) {
	uc := buildAuthUC()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "vendedor@dl.com",
		Password: "password-errado",
		Profile:  "ANUNCIOS",
	})
	assert.ErrorIs(t, err, domain.ErrProfileMismatch)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — credenciales inválidas (misma respuesta para cuenta inexistente
// y password incorrecto: anti-enumeración)
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CuentaInexistente_RetornaInvalidCredentials(t *testing.T) {
	uc := buildAuthUC()

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@dl.com",
		Password: "123",
		Profile:  "GESTOR",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestLogin_PasswordIncorrecto_RetornaInvalidCredentials(t *testing.T) {
	uc := buildAuthUC()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "gestor@dl.com",
		Password: "password-errado",
		Profile:  "GESTOR",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// IssueToken — login OAuth2 sin gate de perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestIssueToken_SinGateDePerfil(t *testing.T) {
	uc := buildAuthUC()

	tok, err := uc.IssueToken(context.Background(), "vendedor@dl.com", "123")
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "bearer", tok.TokenType)

	_, role, err := pkgjwt.Parse(testSecret, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "VENDEDOR", role)
}

func TestIssueToken_PasswordIncorrecto_RetornaInvalidCredentials(t *testing.T) {
	uc := buildAuthUC()

	_, err := uc.IssueToken(context.Background(), "vendedor@dl.com", "errado")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
