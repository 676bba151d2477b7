// seed crea el esquema mínimo (users, produtos, items) y las tres cuentas
// iniciales de los paneles. Es idempotente: se puede correr varias veces.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que el servidor (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dlsistema/dl-backend/internal/domain/role"
	"github.com/dlsistema/dl-backend/internal/infrastructure/postgres"
	"github.com/dlsistema/dl-backend/pkg/config"
	"github.com/dlsistema/dl-backend/pkg/password"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email           TEXT NOT NULL,
    hashed_password TEXT NOT NULL,
    full_name       TEXT NOT NULL DEFAULT '',
    is_active       BOOLEAN NOT NULL DEFAULT TRUE,
    is_superuser    BOOLEAN NOT NULL DEFAULT FALSE,
    role            TEXT NOT NULL DEFAULT 'VENDEDOR',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email));

CREATE TABLE IF NOT EXISTS produtos (
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    sku        TEXT NOT NULL,
    nome       TEXT NOT NULL,
    preco      NUMERIC(12,2) NOT NULL DEFAULT 0,
    estoque    INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS items (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    owner_id    UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type seedAccount struct {
	email     string
	plain     string
	fullName  string
	role      role.Role
	superuser bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema verificado (users, produtos, items)")

	accounts := []seedAccount{
		{email: "gestor@dl.com", plain: "gestor123", fullName: "Gestor Principal", role: role.Gestor, superuser: true},
		{email: "vendedor@dl.com", plain: "vendedor123", fullName: "Vendedor Padrão", role: role.Vendedor},
		{email: "anuncios@dl.com", plain: "anuncios123", fullName: "Analista de Anúncios", role: role.Anuncios},
	}

	for _, acc := range accounts {
		hash, err := password.Hash(acc.plain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hashear password de %s: %v\n", acc.email, err)
			os.Exit(1)
		}
		tag, err := pool.Exec(ctx, `
			INSERT INTO users (email, hashed_password, full_name, is_active, is_superuser, role)
			VALUES ($1, $2, $3, TRUE, $4, $5)
			ON CONFLICT (lower(email)) DO NOTHING`,
			acc.email, hash, acc.fullName, acc.superuser, string(acc.role),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Insertar %s: %v\n", acc.email, err)
			os.Exit(1)
		}
		if tag.RowsAffected() > 0 {
			fmt.Printf("Cuenta creada: %s (%s)\n", acc.email, acc.role)
		} else {
			fmt.Printf("Cuenta ya existe: %s\n", acc.email)
		}
	}

	fmt.Println("Seed completado")
}
