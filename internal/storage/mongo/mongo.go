// mongo — журнал просмотров в MongoDB: альтернатива таблице item_views.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/petershoe2005/GatherU-sub000/internal/config"
)

const (
	viewsCollection = "item_views"
	defaultDBName   = "feed"
)

// Mongo — тонкий адаптер для подключения и коллекции просмотров.
type Mongo struct {
	cfg    config.MongoConfig
	client *mongodriver.Client
	db     *mongodriver.Database
	views  *mongodriver.Collection
}

// New подключается к MongoDB, проверяет его, подготавливает коллекцию и обеспечивает индексацию.
func New(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.URL))

	m := &Mongo{
		cfg:    cfg,
		client: cli,
		db:     db,
		views:  db.Collection(viewsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создает индексы журнала просмотров.
// - уникальность пары (user_id, item_id): одна запись на пару;
// - TTL по viewed_at, если ViewTTL > 0;
// - выборка последних просмотров пользователя: user_id + viewed_at(desc).
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	models := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "item_id", Value: 1}},
			Options: options.Index().SetName("user_item_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "viewed_at", Value: -1}},
			Options: options.Index().SetName("user_viewed_desc"),
		},
	}

	if m.cfg.ViewTTL > 0 {
		models = append(models, mongodriver.IndexModel{
			Keys:    bson.D{{Key: "viewed_at", Value: 1}},
			Options: options.Index().SetName("ttl_viewed_at").SetExpireAfterSeconds(int32(m.cfg.ViewTTL / time.Second)),
		})
	}

	_, err := m.views.Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("mongo ensure indexes: %w", err)
	}
	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
