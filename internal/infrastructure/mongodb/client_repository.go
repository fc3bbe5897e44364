package mongodb

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/client-api/internal/domain/entity"
	"github.com/jhoicas/client-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// clientDocument es la forma del cliente en la colección.
type clientDocument struct {
	ID                     string    `bson:"_id"`
	FirstName              string    `bson:"firstName"`
	LastName               string    `bson:"lastName"`
	IdentityDocumentType   string    `bson:"identityDocumentType"`
	IdentityDocumentNumber string    `bson:"identityDocumentNumber"`
	Email                  string    `bson:"email,omitempty"`
	Phone                  string    `bson:"phone,omitempty"`
	Address                string    `bson:"address,omitempty"`
	ClientType             string    `bson:"clientType"`
	CreatedAt              time.Time `bson:"createdAt"`
	UpdatedAt              time.Time `bson:"updatedAt"`
}

func toDocument(c *entity.Client) clientDocument {
	return clientDocument{
		ID:                     c.ID,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		IdentityDocumentType:   c.IdentityDocumentType,
		IdentityDocumentNumber: c.IdentityDocumentNumber,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Address:                c.Address,
		ClientType:             c.ClientType,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func (d clientDocument) toEntity() *entity.Client {
	return &entity.Client{
		ID:                     d.ID,
		FirstName:              d.FirstName,
		LastName:               d.LastName,
		IdentityDocumentType:   d.IdentityDocumentType,
		IdentityDocumentNumber: d.IdentityDocumentNumber,
		Email:                  d.Email,
		Phone:                  d.Phone,
		Address:                d.Address,
		ClientType:             d.ClientType,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

// oldestFirst ordena por fecha de alta; _id desempata.
var oldestFirst = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

// ClientRepo implementación MongoDB de ClientRepository.
type ClientRepo struct {
	coll *mongo.Collection
}

// NewClientRepository construye el adaptador sobre la colección de clientes.
func NewClientRepository(coll *mongo.Collection) *ClientRepo {
	return &ClientRepo{coll: coll}
}

// EnsureIndexes crea el índice único de la clave alterna y el de orden. Es idempotente.
func (r *ClientRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "identityDocumentType", Value: 1}, {Key: "identityDocumentNumber", Value: 1}},
			Options: options.Index().SetName("identity_document_uq").SetUnique(true),
		},
		{
			Keys:    oldestFirst,
			Options: options.Index().SetName("created_at_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("crear índices de clientes: %w", err)
	}
	return nil
}

// All recorre el cursor documento a documento; la consulta se lanza al iterar.
func (r *ClientRepo) All(ctx context.Context) iter.Seq2[*entity.Client, error] {
	return func(yield func(*entity.Client, error) bool) {
		cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(oldestFirst))
		if err != nil {
			yield(nil, fmt.Errorf("find clients: %w", err))
			return
		}
		defer cur.Close(context.Background())
		for cur.Next(ctx) {
			var doc clientDocument
			if err := cur.Decode(&doc); err != nil {
				yield(nil, fmt.Errorf("decode client: %w", err))
				return
			}
			if !yield(doc.toEntity(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, fmt.Errorf("find clients: %w", err))
		}
	}
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}}, options.FindOne())
}

// GetTopByIdentityDocument obtiene el cliente más antiguo con ese documento.
func (r *ClientRepo) GetTopByIdentityDocument(ctx context.Context, number, docType string) (*entity.Client, error) {
	filter := bson.D{
		{Key: "identityDocumentNumber", Value: number},
		{Key: "identityDocumentType", Value: docType},
	}
	return r.findOne(ctx, filter, options.FindOne().SetSort(oldestFirst))
}

// Create inserta el cliente; (nil, nil) si viola la unicidad de _id o del documento.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	doc := toDocument(client)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return doc.toEntity(), nil
}

// Update reemplaza los campos editables y devuelve el documento resultante.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	doc := toDocument(client)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "firstName", Value: doc.FirstName},
		{Key: "lastName", Value: doc.LastName},
		{Key: "identityDocumentType", Value: doc.IdentityDocumentType},
		{Key: "identityDocumentNumber", Value: doc.IdentityDocumentNumber},
		{Key: "email", Value: doc.Email},
		{Key: "phone", Value: doc.Phone},
		{Key: "address", Value: doc.Address},
		{Key: "clientType", Value: doc.ClientType},
		{Key: "updatedAt", Value: doc.UpdatedAt},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out clientDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: doc.ID}}, update, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || mongo.IsDuplicateKeyError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return out.toEntity(), nil
}

// Delete elimina el cliente y devuelve el documento borrado.
func (r *ClientRepo) Delete(ctx context.Context, id string) (*entity.Client, error) {
	var out clientDocument
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete client: %w", err)
	}
	return out.toEntity(), nil
}

func (r *ClientRepo) findOne(ctx context.Context, filter bson.D, opts *options.FindOneOptions) (*entity.Client, error) {
	var doc clientDocument
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toEntity(), nil
}
