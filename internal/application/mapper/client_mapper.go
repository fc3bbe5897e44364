package mapper

import (
	"github.com/jhoicas/client-api/internal/application/dto"
	"github.com/jhoicas/client-api/internal/domain/entity"
)

// ClientMapper convierte entre entity.Client y dto.ClientModel. No tiene estado.
type ClientMapper struct{}

// NewClientMapper construye el mapper.
func NewClientMapper() ClientMapper {
	return ClientMapper{}
}

// EntityToModel convierte la entidad al modelo del API.
func (ClientMapper) EntityToModel(c *entity.Client) dto.ClientModel {
	m := dto.ClientModel{
		ID:                     c.ID,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		IdentityDocumentType:   c.IdentityDocumentType,
		IdentityDocumentNumber: c.IdentityDocumentNumber,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Address:                c.Address,
		ClientType:             c.ClientType,
	}
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		m.CreatedAt = &createdAt
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		m.UpdatedAt = &updatedAt
	}
	return m
}

// ModelToEntity convierte el modelo del API a entidad. El ID y las fechas del
// modelo se ignoran: los asigna el servicio.
func (ClientMapper) ModelToEntity(m dto.ClientModel) *entity.Client {
	clientType := m.ClientType
	if clientType == "" {
		clientType = entity.ClientTypePersonal
	}
	return &entity.Client{
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		IdentityDocumentType:   m.IdentityDocumentType,
		IdentityDocumentNumber: m.IdentityDocumentNumber,
		Email:                  m.Email,
		Phone:                  m.Phone,
		Address:                m.Address,
		ClientType:             clientType,
	}
}
