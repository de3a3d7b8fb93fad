package repository

import (
	"context"
	"strings"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLoungeRepository implements the lounge catalog gateway on MongoDB.
// Lounges live in the "lounges" collection keyed by airport; provider entry
// policies live in "access_providers" and are merged onto each lounge.
type MongoLoungeRepository struct {
	lounges   *mongo.Collection
	providers *mongo.Collection
	logger    logger.Logger
}

// NewMongoLoungeRepository creates a new lounge catalog repository
func NewMongoLoungeRepository(db *mongo.Database, logger logger.Logger) repository.LoungeRepository {
	lounges := db.Collection("lounges")

	// Compound index mirrors the catalog's airport/lounge key
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "airport", Value: 1}, {Key: "loungeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	lounges.Indexes().CreateOne(ctx, indexModel)

	return &MongoLoungeRepository{
		lounges:   lounges,
		providers: db.Collection("access_providers"),
		logger:    logger,
	}
}

// GetLoungesWithAccessRules returns all lounges at an airport merged with
// their provider policies. Unknown airports yield an empty list, not an
// error.
func (r *MongoLoungeRepository) GetLoungesWithAccessRules(ctx context.Context, airportCode string) (*entity.AirportLounges, error) {
	airport := strings.ToUpper(strings.TrimSpace(airportCode))
	result := &entity.AirportLounges{Airport: airport, Lounges: []entity.Lounge{}}

	cursor, err := r.lounges.Find(ctx, bson.M{"airport": airport})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lounges []entity.Lounge
	if err := cursor.All(ctx, &lounges); err != nil {
		return nil, err
	}
	if len(lounges) == 0 {
		return result, nil
	}

	policies, err := r.providerPolicies(ctx, lounges)
	if err != nil {
		// Policies are display enrichment only; serve the catalog without them
		r.logger.Warn("Failed to load access provider policies", "airport", airport, "error", err)
		policies = map[string]entity.AccessProviderPolicy{}
	}

	for i := range lounges {
		details := make([]entity.AccessProviderPolicy, 0, len(lounges[i].AccessProviders))
		for _, provider := range lounges[i].AccessProviders {
			policy, ok := policies[provider]
			if !ok {
				policy = entity.AccessProviderPolicy{ProviderName: provider}
			}
			details = append(details, policy)
		}
		lounges[i].AccessDetails = details
	}

	result.Lounges = lounges
	return result, nil
}

// providerPolicies fetches the policy documents for every provider named by
// the given lounges
func (r *MongoLoungeRepository) providerPolicies(ctx context.Context, lounges []entity.Lounge) (map[string]entity.AccessProviderPolicy, error) {
	seen := map[string]bool{}
	var names []string
	for _, l := range lounges {
		for _, p := range l.AccessProviders {
			if !seen[p] {
				seen[p] = true
				names = append(names, p)
			}
		}
	}
	if len(names) == 0 {
		return map[string]entity.AccessProviderPolicy{}, nil
	}

	cursor, err := r.providers.Find(ctx, bson.M{"providerName": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []entity.AccessProviderPolicy
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	policies := make(map[string]entity.AccessProviderPolicy, len(docs))
	for _, doc := range docs {
		policies[doc.ProviderName] = doc
	}
	return policies, nil
}
