package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"shogi_csa/internal/bootstrap"
	"shogi_csa/internal/domain/record"
	errs "shogi_csa/internal/errors"
)

const (
	recordsCollection = "records"
	csaKeyPrefix      = "csa:"
	csaVersionSuffix  = ":version"
	mongoTimeout      = 5 * time.Second
)

// RecordRepository keeps record documents in MongoDB and the rendered CSA
// text of each record in Redis.
type RecordRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewRecordRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *RecordRepository {
	return &RecordRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

func (r *RecordRepository) NewID() string {
	return uuid.New().String()
}

func (r *RecordRepository) Save(ctx context.Context, rec record.Record) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	if _, err := r.mongo.Collection(recordsCollection).InsertOne(ctx, recordDocument(rec)); err != nil {
		return fmt.Errorf("insert record %s: %w", rec.ID, err)
	}

	r.log.Infof("record %s saved with %d moves", rec.ID, len(rec.Moves))
	return nil
}

// recordDocument makes sure moves is stored as an array, so $push works on
// records created without any.
func recordDocument(rec record.Record) record.Record {
	if rec.Moves == nil {
		rec.Moves = []record.MoveDoc{}
	}
	return rec
}

func (r *RecordRepository) Find(ctx context.Context, id string) (record.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var rec record.Record
	err := r.mongo.Collection(recordsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, fmt.Errorf("record %s: %w", id, errs.ErrRecordNotFound)
	} else if err != nil {
		return rec, fmt.Errorf("find record %s: %w", id, err)
	}

	return rec, nil
}

func (r *RecordRepository) AppendMove(ctx context.Context, id string, move record.MoveDoc) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{
			"moves": move,
		},
	}
	res, err := r.mongo.Collection(recordsCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("append move to record %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("record %s: %w", id, errs.ErrRecordNotFound)
	}

	return nil
}

func csaKey(id string, version int64) string {
	return fmt.Sprintf("%s%s:%d", csaKeyPrefix, id, version)
}

func csaVersionKey(id string) string {
	return csaKeyPrefix + id + csaVersionSuffix
}

// CSAVersion returns the number of times the record was changed since it was
// created. Cached text is stored under the version it was read at.
func (r *RecordRepository) CSAVersion(ctx context.Context, id string) (int64, error) {
	version, err := r.redis.Get(ctx, csaVersionKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return version, nil
}

// BumpCSAVersion invalidates every cached rendering of the record.
func (r *RecordRepository) BumpCSAVersion(ctx context.Context, id string) error {
	return r.redis.Incr(ctx, csaVersionKey(id)).Err()
}

func (r *RecordRepository) CacheCSA(ctx context.Context, id string, version int64, text string) error {
	return r.redis.Set(ctx, csaKey(id, version), text, r.cfg.CacheTTL).Err()
}

// CachedCSA reports ok=false on a cache miss.
func (r *RecordRepository) CachedCSA(ctx context.Context, id string, version int64) (text string, ok bool, err error) {
	text, err = r.redis.Get(ctx, csaKey(id, version)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return text, true, nil
}
