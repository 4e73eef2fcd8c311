package workspaceRepo

import (
	"testing"

	"coworking/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter(t *testing.T) {
	minPrice, maxCap := 10.0, 6
	got := buildFilter(models.WorkspaceFilter{
		ActiveOnly:  true,
		Type:        models.WorkspaceTypeMeetingRoom,
		Features:    []string{"projector", "Wi-Fi"},
		PriceMin:    &minPrice,
		CapacityMax: &maxCap,
	})

	assert.Equal(t, bson.M{
		"is_active":      true,
		"type":           models.WorkspaceTypeMeetingRoom,
		"features":       bson.M{"$all": []string{"projector", "Wi-Fi"}},
		"price_per_hour": bson.M{"$gte": 10.0},
		"capacity":       bson.M{"$lte": 6},
	}, got)
}

func TestBuildFilter_Empty(t *testing.T) {
	assert.Empty(t, buildFilter(models.WorkspaceFilter{}))
}

func TestSortFor(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price_per_hour", Value: 1}}, sortFor("price_asc"))
	assert.Equal(t, bson.D{{Key: "price_per_hour", Value: -1}}, sortFor("price_desc"))
	assert.Nil(t, sortFor(""))
}
