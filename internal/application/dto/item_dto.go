package dto

// CreateItemRequest entrada para crear un ítem; el owner sale del token.
type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateItemRequest actualización parcial de un ítem.
type UpdateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

// ItemsPublic listado paginado de ítems.
type ItemsPublic struct {
	Data  []ItemResponse `json:"data"`
	Count int            `json:"count"`
}
