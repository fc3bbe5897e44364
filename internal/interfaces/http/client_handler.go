package http

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/client-api/internal/application/dto"
	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/pkg/logger"
)

// ClientService es lo que el handler necesita del caso de uso de clientes.
// Un (nil, nil) significa resultado vacío.
type ClientService interface {
	FindAll(ctx context.Context) iter.Seq2[*entity.Client, error]
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) (*entity.Client, error)
	Update(ctx context.Context, id string, client *entity.Client) (*entity.Client, error)
	Delete(ctx context.Context, id string) (*entity.Client, error)
	FindTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error)
}

// ClientMapper convierte entre entidad y modelo del API.
type ClientMapper interface {
	EntityToModel(c *entity.Client) dto.ClientModel
	ModelToEntity(m dto.ClientModel) *entity.Client
}

// LocationConfig datos con los que se construye la cabecera Location.
type LocationConfig struct {
	Name string
	Port string
}

// URI devuelve http://{name}:{port}/client/{id}.
func (l LocationConfig) URI(id string) string {
	return fmt.Sprintf("http://%s:%s/%s/%s", l.Name, l.Port, "client", id)
}

// ClientHandler maneja las peticiones HTTP de /v1/client.
type ClientHandler struct {
	svc       ClientService
	mapper    ClientMapper
	location  LocationConfig
	validator *Validator
	log       *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(svc ClientService, mapper ClientMapper, location LocationConfig, validator *Validator, log *logger.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, mapper: mapper, location: location, validator: validator, log: log}
}

// GetAll godoc
// @Summary      Listar clientes
// @Description  Lista los clientes registrados; la respuesta se envía en streaming
// @Tags         client
// @Produce      json
// @Success      200  {array}  dto.ClientModel
// @Router       /v1/client [get]
func (h *ClientHandler) GetAll(c *fiber.Ctx) error {
	h.log.Info().Str("op", "getAll").Msg("getAll executed")

	seq := h.svc.FindAll(c.UserContext())
	conn := c.Context().Conn()
	writeTimeout := c.App().Config().WriteTimeout
	c.Status(fiber.StatusOK)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	// El writer corre fuera del ciclo del handler: no debe tocar c.
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		h.streamClients(w, seq, func() {
			// fasthttp fija un único plazo para toda la respuesta; aquí se renueva por
			// elemento, así solo se corta a un cliente que deja de leer.
			if writeTimeout > 0 {
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			}
		})
	})
	return nil
}

// streamClients escribe un arreglo JSON elemento a elemento. Si la secuencia falla
// se corta sin el "]" final para que el cliente detecte el cuerpo truncado.
// beforeWrite se llama antes de cada escritura al socket.
func (h *ClientHandler) streamClients(w *bufio.Writer, seq iter.Seq2[*entity.Client, error], beforeWrite func()) {
	beforeWrite()
	if _, err := w.WriteString("["); err != nil {
		return
	}
	first := true
	for client, err := range seq {
		if err != nil {
			h.log.Error().Err(err).Str("op", "getAll").Msg("stream de clientes interrumpido")
			_ = w.Flush()
			return
		}
		raw, err := json.Marshal(h.mapper.EntityToModel(client))
		if err != nil {
			h.log.Error().Err(err).Str("op", "getAll").Str("id", client.ID).Msg("serializar cliente")
			_ = w.Flush()
			return
		}
		beforeWrite()
		if !first {
			_ = w.WriteByte(',')
		}
		first = false
		_, _ = w.Write(raw)
		if err := w.Flush(); err != nil {
			h.log.Warn().Err(err).Str("op", "getAll").Msg("cliente desconectado durante el stream")
			return
		}
	}
	beforeWrite()
	_, _ = w.WriteString("]")
	if err := w.Flush(); err != nil {
		h.log.Warn().Err(err).Str("op", "getAll").Msg("cliente desconectado durante el stream")
	}
}

// GetByID godoc
// @Summary      Consultar un cliente por ID
// @Tags         client
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientModel
// @Failure      404
// @Router       /v1/client/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	h.log.Info().Str("op", "getById").Str("id", id).Msg("getById executed")
	if id == "" {
		return missingParam(c, "id")
	}
	client, err := h.svc.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if client == nil {
		return emptyStatus(c, fiber.StatusNotFound)
	}
	return c.JSON(h.mapper.EntityToModel(client))
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientModel  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientModel
// @Header       201   {string}  Location  "URI del cliente creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404
// @Router       /v1/client [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	in, ok, err := h.bindModel(c)
	if !ok {
		return err
	}
	h.log.Info().Str("op", "create").Interface("request", in).Msg("create executed")

	created, err := h.svc.Create(c.UserContext(), h.mapper.ModelToEntity(in))
	if err != nil {
		return err
	}
	if created == nil {
		return emptyStatus(c, fiber.StatusNotFound)
	}
	model := h.mapper.EntityToModel(created)
	c.Location(h.location.URI(model.ID))
	return c.Status(fiber.StatusCreated).JSON(model)
}

// UpdateByID godoc
// @Summary      Actualizar cliente
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del cliente"
// @Param        body  body  dto.ClientModel  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientModel
// @Header       201   {string}  Location  "URI del cliente"
// @Failure      400
// @Router       /v1/client/{id} [put]
func (h *ClientHandler) UpdateByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingParam(c, "id")
	}
	in, ok, err := h.bindModel(c)
	if !ok {
		return err
	}
	h.log.Info().Str("op", "updateById").Str("id", id).Interface("request", in).Msg("updateById executed")

	updated, err := h.svc.Update(c.UserContext(), id, h.mapper.ModelToEntity(in))
	if err != nil {
		return err
	}
	if updated == nil {
		return emptyStatus(c, fiber.StatusBadRequest)
	}
	model := h.mapper.EntityToModel(updated)
	c.Location(h.location.URI(model.ID))
	return c.Status(fiber.StatusCreated).JSON(model)
}

// DeleteByID godoc
// @Summary      Eliminar cliente
// @Tags         client
// @Param        id   path  string  true  "ID del cliente"
// @Success      200
// @Failure      404
// @Router       /v1/client/{id} [delete]
func (h *ClientHandler) DeleteByID(c *fiber.Ctx) error {
	id := c.Params("id")
	h.log.Info().Str("op", "deleteById").Str("id", id).Msg("deleteById executed")
	if id == "" {
		return missingParam(c, "id")
	}
	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return emptyStatus(c, fiber.StatusNotFound)
	}
	return emptyStatus(c, fiber.StatusOK)
}

// GetByIdentityDocument godoc
// @Summary      Consultar cliente por documento de identidad
// @Tags         client
// @Produce      json
// @Param        identityDocumentNumber  path  string  true  "Número de documento"
// @Param        identityDocumentType    path  string  true  "Tipo de documento (DNI, CE, RUC, PASSPORT)"
// @Success      200  {object}  dto.ClientModel
// @Failure      404
// @Router       /v1/client/{identityDocumentNumber}/{identityDocumentType} [get]
func (h *ClientHandler) GetByIdentityDocument(c *fiber.Ctx) error {
	number := c.Params("identityDocumentNumber")
	docType := c.Params("identityDocumentType")
	h.log.Info().
		Str("op", "getByIdentityDocument").
		Str("identityDocumentNumber", number).
		Str("identityDocumentType", docType).
		Msg("getByIdentityDocument executed")
	if number == "" || docType == "" {
		return missingParam(c, "identityDocumentNumber/identityDocumentType")
	}
	client, err := h.svc.FindTopByIdentityDocument(c.UserContext(), number, docType)
	if err != nil {
		return err
	}
	if client == nil {
		return emptyStatus(c, fiber.StatusNotFound)
	}
	return c.JSON(h.mapper.EntityToModel(client))
}

// bindModel parsea y valida el cuerpo. Si ok es false la respuesta 400 ya está escrita
// y err es lo que el handler debe devolver.
func (h *ClientHandler) bindModel(c *fiber.Ctx) (in dto.ClientModel, ok bool, err error) {
	if err := c.BodyParser(&in); err != nil {
		return in, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := h.validator.Struct(in); len(details) > 0 {
		return in, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "el cliente no cumple las validaciones",
			Details: details,
		})
	}
	return in, true, nil
}

// emptyStatus responde sin cuerpo. c.SendStatus no sirve: escribe el texto del estado.
func emptyStatus(c *fiber.Ctx, status int) error {
	c.Status(status)
	return nil
}

func missingParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: name + " es requerido"})
}
