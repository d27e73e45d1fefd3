// Package mongodb реализует хранилище броней поверх MongoDB.
// Тот же контракт, что и у репозиториев postgres и supabase.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// reservaDoc документ коллекции reservas
type reservaDoc struct {
	ID        int64     `bson:"id"`
	Nombre    string    `bson:"nombre"`
	Telefono  string    `bson:"telefono"`
	Email     *string   `bson:"email,omitempty"`
	Personas  int       `bson:"personas"`
	Fecha     string    `bson:"fecha"` // YYYY-MM-DD
	Hora      string    `bson:"hora"`  // HH:MM
	Estado    string    `bson:"estado"`
	CreatedAt time.Time `bson:"created_at"`
}

func fromDomain(res *domain.Reservation) reservaDoc {
	return reservaDoc{
		ID:        res.ID,
		Nombre:    res.Name,
		Telefono:  res.Phone,
		Email:     res.Email,
		Personas:  res.PartySize,
		Fecha:     res.DateString(),
		Hora:      res.Time.String(),
		Estado:    string(res.Status),
		CreatedAt: res.CreatedAt,
	}
}

func (d reservaDoc) toDomain() (*domain.Reservation, error) {
	fecha, err := time.Parse(domain.DateFormat, d.Fecha)
	if err != nil {
		return nil, err
	}

	return &domain.Reservation{
		ID:        d.ID,
		Name:      d.Nombre,
		Phone:     d.Telefono,
		Email:     d.Email,
		PartySize: d.Personas,
		Date:      fecha,
		Time:      types.TimeString(d.Hora),
		Status:    domain.ReservationStatus(d.Estado),
		CreatedAt: d.CreatedAt,
	}, nil
}

// Repository репозиторий броней поверх MongoDB
type Repository struct {
	coll *mongo.Collection
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db *mongo.Database, collection string) *Repository {
	return &Repository{coll: db.Collection(collection)}
}

// Create сохраняет новую бронь. MongoDB не выдает монотонные целые id,
// поэтому id присваивается как max(id) + 1.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	nextID, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	res.ID = nextID
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, fromDomain(res)); err != nil {
		return nil, fmt.Errorf("%w: Create - insert document: %v", storage.ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var doc reservaDoc
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - find document: %v", storage.ErrExecQuery, err)
	}

	res, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode document: %v", storage.ErrScanRow, err)
	}
	return res, nil
}

// ListAll возвращает все брони, отсортированные по дате и времени
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}, {Key: "hora", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

// ListConfirmedForDate возвращает подтвержденные брони на указанную дату
func (r *Repository) ListConfirmedForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	filter := bson.M{
		"fecha":  date.Format(domain.DateFormat),
		"estado": string(domain.StatusConfirmed),
	}
	opts := options.Find().SetSort(bson.D{{Key: "hora", Value: 1}})
	return r.find(ctx, filter, opts)
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"estado": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - update document: %v", storage.ErrExecQuery, err)
	}
	if result.MatchedCount == 0 {
		return storage.ErrReservationNotFound
	}
	return nil
}

// Delete физически удаляет бронь и возвращает удаленный снимок
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	var doc reservaDoc
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - delete document: %v", storage.ErrExecQuery, err)
	}

	res, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - decode document: %v", storage.ErrScanRow, err)
	}
	return res, nil
}

// nextID возвращает следующий свободный id: max(id) + 1.
// Без атомарного счетчика два конкурентных Create могут получить
// один id - принятое ограничение, как и гонка проверки вместимости.
func (r *Repository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})

	var doc reservaDoc
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: nextID - find max id: %v", storage.ErrExecQuery, err)
	}

	return doc.ID + 1, nil
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Reservation, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find documents: %v", storage.ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	reservas := make([]*domain.Reservation, 0)
	for cursor.Next(ctx) {
		var doc reservaDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode document: %v", storage.ErrScanRow, err)
		}
		res, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: decode document id=%d: %v", storage.ErrScanRow, doc.ID, err)
		}
		reservas = append(reservas, res)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor error: %v", storage.ErrExecQuery, err)
	}

	return reservas, nil
}
