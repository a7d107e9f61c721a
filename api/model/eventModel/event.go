package eventmodel

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "issuance_events"

// IssuanceEvent is one step of a certificate's issuance trail.
type IssuanceEvent struct {
	CertificateID string    `bson:"certificate_id" json:"certificate_id"`
	Stage         string    `bson:"stage" json:"stage"`
	Status        string    `bson:"status" json:"status"`
	Detail        string    `bson:"detail,omitempty" json:"detail,omitempty"`
	At            time.Time `bson:"at" json:"at"`
}

// Stages recorded by the certificate handlers.
const (
	StageRecordCreated = "record_created"
	StagePdfRendered   = "pdf_rendered"
	StagePdfUploaded   = "pdf_uploaded"
	StageMailSent      = "mail_sent"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// IEventRepository defines the interface for issuance event operations
type IEventRepository interface {
	Record(ctx context.Context, certId string, stage string, status string, detail string) error
	ListByCertificate(ctx context.Context, certId string) ([]*IssuanceEvent, error)
}

// EventRepository stores issuance events in MongoDB
type EventRepository struct {
	db *mongo.Database
}

var _ IEventRepository = (*EventRepository)(nil)

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Record appends one event to the certificate's trail.
func (r *EventRepository) Record(ctx context.Context, certId string, stage string, status string, detail string) error {
	event := &IssuanceEvent{
		CertificateID: certId,
		Stage:         stage,
		Status:        status,
		Detail:        detail,
		At:            time.Now(),
	}

	_, insertErr := r.db.Collection(collectionName).InsertOne(ctx, event)
	if insertErr != nil {
		slog.Error("Event Record", "error", insertErr, "cert_id", certId, "stage", stage)
		return insertErr
	}

	return nil
}

// ListByCertificate returns the event trail for a certificate, newest first.
func (r *EventRepository) ListByCertificate(ctx context.Context, certId string) ([]*IssuanceEvent, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "at", Value: -1}})

	cursor, findErr := r.db.Collection(collectionName).Find(ctx, bson.M{"certificate_id": certId}, findOptions)
	if findErr != nil {
		slog.Error("Event ListByCertificate", "error", findErr, "cert_id", certId)
		return nil, findErr
	}
	defer cursor.Close(ctx)

	events := []*IssuanceEvent{}
	if decodeErr := cursor.All(ctx, &events); decodeErr != nil {
		slog.Error("Event ListByCertificate decode", "error", decodeErr, "cert_id", certId)
		return nil, decodeErr
	}

	return events, nil
}
