package workspaceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coworking/database"
	"coworking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkspaceRepo implements WorkspaceRepository using MongoDB.
type MongoWorkspaceRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkspaceRepo creates a new instance of WorkspaceRepository using MongoDB.
func NewMongoWorkspaceRepo(db *mongo.Database) WorkspaceRepository {
	repo := &MongoWorkspaceRepo{coll: db.Collection("workspaces")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create workspace indexes: %v\n", err)
	}
	return repo
}

func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoWorkspaceRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "type", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a workspace by its unique ID.
func (r *MongoWorkspaceRepo) GetByID(ctx context.Context, id string) (*models.Workspace, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var ws models.Workspace
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ws)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("workspace %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workspace with id %s: %w", id, err)
	}
	return &ws, nil
}

// Create inserts a new workspace document.
func (r *MongoWorkspaceRepo) Create(ctx context.Context, ws *models.Workspace) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, ws); err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}

// Update replaces a workspace document.
func (r *MongoWorkspaceRepo) Update(ctx context.Context, ws *models.Workspace) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": ws.ID}, ws)
	if err != nil {
		return fmt.Errorf("failed to update workspace %s: %w", ws.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("workspace %s: %w", ws.ID, database.ErrNotFound)
	}
	return nil
}

// List returns the workspaces matching filter.
func (r *MongoWorkspaceRepo) List(ctx context.Context, filter models.WorkspaceFilter) ([]models.Workspace, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find()
	if sort := sortFor(filter.Sort); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer cursor.Close(ctx)

	workspaces := []models.Workspace{}
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to decode workspaces: %w", err)
	}
	return workspaces, nil
}
