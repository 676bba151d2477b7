package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/dlsistema/dl-backend/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testSubject = "00000000-0000-0000-0000-000000000001"
	testIssuer  = "dl-backend-test"
)

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "GESTOR", testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testSubject, subject)
	assert.Equal(t, "GESTOR", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// TTL negativo: el token nace expirado
	tok, err := pkgjwt.Generate(testSecret, testSubject, "VENDEDOR", testIssuer, -time.Minute)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "GESTOR", testIssuer, time.Hour)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse(testSecret, "")
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject, "GESTOR", testIssuer, time.Hour)
	assert.Error(t, err, "no debe emitirse token sin secret")

	_, _, err = pkgjwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}

// Dos tokens emitidos con distinto rol deben transportar cada uno el suyo.
func TestJWT_RolViajaEnElToken(t *testing.T) {
	for _, r := range []string{"GESTOR", "VENDEDOR", "ANUNCIOS"} {
		tok, err := pkgjwt.Generate(testSecret, testSubject, r, testIssuer, time.Hour)
		require.NoError(t, err)

		_, role, err := pkgjwt.Parse(testSecret, tok)
		require.NoError(t, err)
		assert.Equal(t, r, role)
	}
}
