package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

const collectionArtworks = "artworks"

// CatalogRepository is the MongoDB-backed artwork store. Listing queries sort
// on created_at ascending so results keep insertion order, matching the
// in-memory store's contract.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionArtworks)}
}

func (r *CatalogRepository) ListArtworks(ctx context.Context) ([]domain.Artwork, error) {
	return r.list(ctx, bson.M{})
}

func (r *CatalogRepository) ListArtworksByArtist(ctx context.Context, artistID string) ([]domain.Artwork, error) {
	return r.list(ctx, bson.M{"artist_id": artistID})
}

func (r *CatalogRepository) ListFeaturedArtworks(ctx context.Context) ([]domain.Artwork, error) {
	return r.list(ctx, bson.M{"featured": true})
}

func (r *CatalogRepository) list(ctx context.Context, filter bson.M) ([]domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	artworks := []domain.Artwork{}
	if err := cur.All(ctx, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *CatalogRepository) FindArtworkByID(ctx context.Context, id string) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Artwork
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CreateArtwork assigns a fresh ID and creation timestamp and inserts the
// document. It never overwrites an existing record.
func (r *CatalogRepository) CreateArtwork(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *artwork
	stored.ID = primitive.NewObjectID().Hex()
	stored.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// EnsureIndexes creates the indexes the listing queries rely on.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "artist_id", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
