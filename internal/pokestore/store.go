package pokestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsaacDSC/pokedex/internal/pokesvc"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const dbName = "pokedex"
const collectionPokemons = "pokemons"

var _ pokesvc.Storage = (*MongoStore)(nil)

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{collection: client.Database(dbName).Collection(collectionPokemons)}
}

// FindPage returns one pagination window projected to the list summary plus
// the total collection size. Results are ordered by creation time so a window
// is stable across requests.
func (s MongoStore) FindPage(ctx context.Context, limit, offset int64) ([]pokesvc.PokemonSummary, int64, error) {
	total, err := s.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, fmt.Errorf("error on count pokemons: %w", err)
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetProjection(bson.D{{Key: "id", Value: 1}, {Key: "name", Value: 1}, {Key: "type", Value: 1}})

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error on find pokemons: %w", err)
	}

	items := []pokesvc.PokemonSummary{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("error on decode pokemons: %w", err)
	}

	return items, total, nil
}

func (s MongoStore) Insert(ctx context.Context, pokemon pokesvc.Pokemon) error {
	if _, err := s.collection.InsertOne(ctx, pokemon); err != nil {
		return fmt.Errorf("error on insert pokemon: %w", err)
	}

	return nil
}

func (s MongoStore) DeleteAll(ctx context.Context) error {
	if _, err := s.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("error on delete pokemons: %w", err)
	}

	return nil
}

func (s MongoStore) FindByName(ctx context.Context, name string) (pokesvc.Pokemon, error) {
	var pokemon pokesvc.Pokemon

	filter := bson.D{{Key: "name", Value: name}}
	if err := s.collection.FindOne(ctx, filter).Decode(&pokemon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pokesvc.Pokemon{}, pokesvc.ErrNotFound
		}
		return pokesvc.Pokemon{}, fmt.Errorf("error on find pokemon %q: %w", name, err)
	}

	return pokemon, nil
}

func (s MongoStore) Count(ctx context.Context) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("error on count pokemons: %w", err)
	}

	return count, nil
}
