package dto

import "github.com/shopspring/decimal"

// CreateProdutoRequest entrada para crear un producto del stock.
type CreateProdutoRequest struct {
	SKU     string          `json:"sku"`
	Nome    string          `json:"nome"`
	Preco   decimal.Decimal `json:"preco"`
	Estoque int             `json:"estoque"`
}

// UpdateProdutoRequest actualización parcial: los campos nil no mutan el valor almacenado.
type UpdateProdutoRequest struct {
	SKU     *string          `json:"sku"`
	Nome    *string          `json:"nome"`
	Preco   *decimal.Decimal `json:"preco"`
	Estoque *int             `json:"estoque"`
}

// ProdutoResponse salida de un producto.
type ProdutoResponse struct {
	ID      string          `json:"id"`
	SKU     string          `json:"sku"`
	Nome    string          `json:"nome"`
	Preco   decimal.Decimal `json:"preco"`
	Estoque int             `json:"estoque"`
}

// ProdutosPublic listado paginado de productos, con el total sin filtrar.
type ProdutosPublic struct {
	Data  []ProdutoResponse `json:"data"`
	Count int               `json:"count"`
}
