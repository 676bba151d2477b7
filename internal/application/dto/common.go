package dto

// ApiResponse es el sobre uniforme de toda respuesta de la API:
// {ok, data, error, meta}. Exactamente una de las ramas data/error viene
// poblada y OK refleja cuál. Construir siempre vía Success/Failure.
type ApiResponse[T any] struct {
	OK    bool      `json:"ok"`
	Data  *T        `json:"data"`
	Error *string   `json:"error"`
	Meta  *PageMeta `json:"meta"`
}

// PageMeta metadatos de paginación de un listado.
// Count es el total sin filtrar, no el tamaño de la página devuelta.
type PageMeta struct {
	Count int `json:"count"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Success construye el sobre de éxito, con meta opcional (nil si no hay paginación).
func Success[T any](data T, meta *PageMeta) ApiResponse[T] {
	return ApiResponse[T]{OK: true, Data: &data, Meta: meta}
}

// Failure construye el sobre de error con el mensaje legible para el usuario.
// Nunca lleva data ni meta.
func Failure[T any](message string) ApiResponse[T] {
	return ApiResponse[T]{OK: false, Error: &message}
}

// Message payload genérico de confirmación (ej. resultado de un delete).
type Message struct {
	Message string `json:"message"`
}
