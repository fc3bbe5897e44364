package entity

import "time"

// Tipos de cliente.
const (
	ClientTypePersonal = "PERSONAL"
	ClientTypeBusiness = "BUSINESS"
)

// Client representa un cliente registrado.
// (IdentityDocumentType, IdentityDocumentNumber) es la clave alterna; la unicidad la garantiza el almacenamiento.
type Client struct {
	ID                     string
	FirstName              string
	LastName               string
	IdentityDocumentType   string // DNI, CE, RUC, PASSPORT
	IdentityDocumentNumber string
	Email                  string
	Phone                  string
	Address                string
	ClientType             string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Clone devuelve una copia independiente del cliente.
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
