package role

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role es el rol canónico de una cuenta. Es una enumeración cerrada:
// ningún valor fuera de ella llega a persistirse.
type Role string

const (
	Gestor   Role = "GESTOR"
	Vendedor Role = "VENDEDOR"
	Anuncios Role = "ANUNCIOS"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC),
// de modo que "anúncios" y "anuncios" se normalicen igual.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Canonicalize normaliza un rol libre a la enumeración cerrada.
// Recorta espacios, pliega acentos y pasa a mayúsculas antes del mapeo:
//
//	GESTOR                                -> GESTOR
//	VENDEDOR                              -> VENDEDOR
//	ANUNCIOS | ANUNCIANTE | ANUNCIO | ADS -> ANUNCIOS
//	cualquier otra cosa (incluido vacío)  -> VENDEDOR
//
// El fallback a VENDEDOR es deliberado: esta función nunca falla. Un caller
// que necesite rechazar roles desconocidos debe validarlos antes de llamar.
func Canonicalize(raw string) Role {
	v, _, err := transform.String(foldTransformer, raw)
	if err != nil {
		v = raw
	}
	v = strings.ToUpper(strings.TrimSpace(v))

	switch v {
	case "GESTOR":
		return Gestor
	case "VENDEDOR":
		return Vendedor
	case "ANUNCIOS", "ANUNCIANTE", "ANUNCIO", "ADS":
		return Anuncios
	}
	return Vendedor
}

// Valid indica si r ya es uno de los valores canónicos.
func Valid(r Role) bool {
	switch r {
	case Gestor, Vendedor, Anuncios:
		return true
	}
	return false
}
