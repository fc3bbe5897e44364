package dto

import "time"

// ClientModel representación de un cliente en el API (entrada y salida).
// ID, CreatedAt y UpdatedAt son de solo lectura: se ignoran al crear o actualizar.
type ClientModel struct {
	ID                     string     `json:"id,omitempty"`
	FirstName              string     `json:"firstName" validate:"required,max=100"`
	LastName               string     `json:"lastName" validate:"required,max=100"`
	IdentityDocumentType   string     `json:"identityDocumentType" validate:"required,oneof=DNI CE RUC PASSPORT"`
	IdentityDocumentNumber string     `json:"identityDocumentNumber" validate:"required,alphanum,max=20"`
	Email                  string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone                  string     `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address                string     `json:"address,omitempty" validate:"omitempty,max=200"`
	ClientType             string     `json:"clientType,omitempty" validate:"omitempty,oneof=PERSONAL BUSINESS"`
	CreatedAt              *time.Time `json:"createdAt,omitempty"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"`
}
