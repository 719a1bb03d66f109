package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
	"github.com/natsoman/youtube-live-notifier/pkg/embed"
)

var errAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementRepository struct {
	readColl  *mongo.Collection
	writeColl *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) (*AnnouncementRepository, error) {
	if db == nil {
		return nil, errors.New("database is nil")
	}

	const announcementCollName = "announcement"

	return &AnnouncementRepository{
		readColl: db.Collection(announcementCollName, options.Collection().
			SetReadPreference(readpref.PrimaryPreferred()).
			SetReadConcern(readconcern.Majority()),
		),
		writeColl: db.Collection(announcementCollName, options.Collection().
			SetWriteConcern(writeconcern.Majority()),
		),
	}, nil
}

// Insert adds the announcement. An announcement of the same live stream is left untouched.
func (r *AnnouncementRepository) Insert(ctx context.Context, a *domain.Announcement) error {
	_, err := r.writeColl.InsertOne(ctx, newAnnouncementDoc(a))
	if err != nil {
		var me mongo.WriteException
		if errors.As(err, &me) {
			for _, we := range me.WriteErrors {
				if we.Code == 11000 { // duplicate key error
					continue
				}

				return err
			}
		} else {
			return err
		}
	}

	return nil
}

func (r *AnnouncementRepository) Pending(ctx context.Context, limit int) ([]domain.Announcement, error) {
	cur, err := r.readColl.Find(
		ctx,
		bson.M{"deliveredAt": nil},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: 1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = cur.Close(ctx)
	}()

	var docs []announcementDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	aa := make([]domain.Announcement, len(docs))
	for i, doc := range docs {
		a, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("restore announcement from doc: %v", err)
		}

		aa[i] = *a
	}

	return aa, nil
}

func (r *AnnouncementRepository) MarkAsDelivered(ctx context.Context, a *domain.Announcement) error {
	if !a.Delivered() {
		return errors.New("announcement is not delivered")
	}

	res, err := r.writeColl.UpdateOne(
		ctx,
		bson.M{"_id": a.ID()},
		bson.M{"$set": bson.M{"deliveredAt": a.DeliveredAt()}},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return errAnnouncementNotFound
	}

	return nil
}

type announcementDoc struct {
	VideoID     string      `bson:"_id"`
	Embed       embed.Embed `bson:"embed"`
	CreatedAt   time.Time   `bson:"createdAt"`
	DeliveredAt *time.Time  `bson:"deliveredAt"`
}

func newAnnouncementDoc(a *domain.Announcement) announcementDoc {
	return announcementDoc{
		VideoID:     a.ID(),
		Embed:       a.Embed(),
		CreatedAt:   a.CreatedAt(),
		DeliveredAt: a.DeliveredAt(),
	}
}

func (doc announcementDoc) toDomain() (*domain.Announcement, error) {
	return domain.RestoreAnnouncement(doc.VideoID, doc.Embed, doc.CreatedAt.UTC(), doc.DeliveredAt)
}
