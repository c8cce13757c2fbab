package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aquarelle/artmarket/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository is the MongoDB-backed account store.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// mongoUser is the document shape. The role-tagged profile variant is split
// into two optional sub-documents; exactly one is set, selected by role.
type mongoUser struct {
	ID              string                  `bson:"_id,omitempty"`
	Email           string                  `bson:"email"`
	Name            string                  `bson:"name"`
	Role            string                  `bson:"role"`
	Avatar          string                  `bson:"avatar,omitempty"`
	PasswordHash    string                  `bson:"password_hash,omitempty"`
	CreatedAt       time.Time               `bson:"created_at"`
	ArtistProfile   *domain.ArtistProfile   `bson:"artist_profile,omitempty"`
	CustomerProfile *domain.CustomerProfile `bson:"customer_profile,omitempty"`
}

func toDocument(u *domain.User) mongoUser {
	doc := mongoUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Avatar:       u.Avatar,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
	switch p := u.Profile.(type) {
	case domain.ArtistProfile:
		doc.ArtistProfile = &p
	case domain.CustomerProfile:
		doc.CustomerProfile = &p
	}
	return doc
}

func (d mongoUser) toDomain() (*domain.User, error) {
	u := &domain.User{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		Role:         domain.Role(d.Role),
		Avatar:       d.Avatar,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
	switch u.Role {
	case domain.RoleArtist:
		if d.ArtistProfile != nil {
			u.Profile = *d.ArtistProfile
		}
	case domain.RoleCustomer:
		if d.CustomerProfile != nil {
			u.Profile = *d.CustomerProfile
		}
	default:
		return nil, fmt.Errorf("user document %s: unknown role %q", d.ID, d.Role)
	}
	return u, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain()
}

// CreateUser assigns a fresh ID and timestamp and inserts the document. Email
// uniqueness is enforced by the session service, with the unique index as a
// backstop against races.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *user
	stored.ID = primitive.NewObjectID().Hex()
	stored.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, toDocument(&stored)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &stored, nil
}

func (r *UserRepository) ListArtists(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"role": string(domain.RoleArtist)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []domain.User{}
	for cur.Next(ctx) {
		var doc mongoUser
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		u, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, cur.Err()
}

// EnsureIndexes creates the unique email index and the role filter index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
