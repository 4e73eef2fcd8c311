package workspaceRepo

import (
	"coworking/models"

	"go.mongodb.org/mongo-driver/bson"
)

// buildFilter translates a WorkspaceFilter into a MongoDB query.
func buildFilter(f models.WorkspaceFilter) bson.M {
	query := bson.M{}
	if f.ActiveOnly {
		query["is_active"] = true
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		price := bson.M{}
		if f.PriceMin != nil {
			price["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			price["$lte"] = *f.PriceMax
		}
		query["price_per_hour"] = price
	}
	if f.CapacityMin != nil || f.CapacityMax != nil {
		capacity := bson.M{}
		if f.CapacityMin != nil {
			capacity["$gte"] = *f.CapacityMin
		}
		if f.CapacityMax != nil {
			capacity["$lte"] = *f.CapacityMax
		}
		query["capacity"] = capacity
	}
	if len(f.Features) > 0 {
		query["features"] = bson.M{"$all": f.Features}
	}
	return query
}

func sortFor(s string) bson.D {
	switch s {
	case "price_asc":
		return bson.D{{Key: "price_per_hour", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price_per_hour", Value: -1}}
	}
	return nil
}
