package password

import "golang.org/x/crypto/bcrypt"

// dummyHash es un hash bcrypt real de un valor descartable. Se usa para quemar
// una verificación cuando la cuenta no existe, de modo que el tiempo de respuesta
// sea comparable al de un password incorrecto (evita enumeración de cuentas).
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash genera el hash bcrypt del password en texto plano.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara el password en texto plano contra el hash almacenado.
// Un hash malformado o vacío verifica false, nunca panic ni error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// DummyCompare ejecuta una comparación bcrypt contra un hash fijo y descarta
// el resultado. Mantiene la paridad de timing del flujo de login cuando la
// búsqueda de la cuenta falla.
func DummyCompare(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
