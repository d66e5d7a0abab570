package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecowaste-be/models"
)

// MongoReportStore implements ReportStore on a MongoDB collection.
type MongoReportStore struct {
	coll *mongo.Collection
}

func NewMongoReportStore(coll *mongo.Collection) *MongoReportStore {
	return &MongoReportStore{coll: coll}
}

func (s *MongoReportStore) Insert(ctx context.Context, r *models.WasteReport) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, r)
	return err
}

func (s *MongoReportStore) Get(ctx context.Context, id primitive.ObjectID) (*models.WasteReport, error) {
	var r models.WasteReport
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MongoReportStore) UpdateStatusCAS(ctx context.Context, id primitive.ObjectID, from, to models.ReportStatus, by primitive.ObjectID, at time.Time) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{
			"status":    to,
			"updatedBy": by,
			"updatedAt": at,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a lost race from a missing report.
		count, err := s.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrCASMismatch
	}
	return nil
}

func (s *MongoReportStore) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.WasteReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return s.find(ctx, bson.M{"reportedBy": userID}, opts)
}

func (s *MongoReportStore) ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.WasteReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.find(ctx, bson.M{"status": status}, opts)
}

func (s *MongoReportStore) ListAll(ctx context.Context) ([]models.WasteReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.find(ctx, bson.M{}, opts)
}

func (s *MongoReportStore) ListOpenUrgent(ctx context.Context, limit int) ([]models.WasteReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	filter := bson.M{
		"urgency": bson.M{"$in": []models.Urgency{models.UrgencyHigh, models.UrgencyEmergency}},
		"status":  bson.M{"$in": []models.ReportStatus{models.StatusPending, models.StatusInProgress}},
	}
	return s.find(ctx, filter, opts)
}

func (s *MongoReportStore) CountByUserAndStatus(ctx context.Context, userID primitive.ObjectID, status models.ReportStatus) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"reportedBy": userID, "status": status})
}

func (s *MongoReportStore) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"reportedBy": userID})
}

func (s *MongoReportStore) CountByStatus(ctx context.Context) (map[models.ReportStatus]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.ReportStatus `bson:"_id"`
		Count  int64               `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[models.ReportStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (s *MongoReportStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.WasteReport, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := make([]models.WasteReport, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
