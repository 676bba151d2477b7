package dto

// LoginRequest entrada del login con gate de perfil: además de las credenciales
// viene el perfil (panel) que la UI intenta abrir.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile  string `json:"profile"` // gestor | vendedor | anuncios (texto libre, se canonicaliza)
}

// UserPublic proyección pública de una cuenta: nunca incluye el hash.
// Name y FullName llevan el mismo valor; el frontend consume ambos campos.
type UserPublic struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// LoginResponse salida del login: token bearer + proyección de la cuenta.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"` // siempre "bearer"
	User        UserPublic `json:"user"`
}

// Token salida del endpoint OAuth2 /login/access-token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}

// CreateUserRequest entrada para crear una cuenta (password en claro, se hashea en el use case).
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"` // se canonicaliza; vacío -> VENDEDOR
	IsActive    *bool  `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UpdateUserRequest entrada de actualización parcial: solo los campos presentes mutan.
type UpdateUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// UserResponse salida de administración de cuentas (sin hash).
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
	Role        string `json:"role"`
}

// UsersPublic listado paginado de cuentas.
type UsersPublic struct {
	Data  []UserResponse `json:"data"`
	Count int            `json:"count"`
}
