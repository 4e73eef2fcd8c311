// Command seed resets the workspaces collection with a sample floor plan and
// prints an admin and a user token for trying the API.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"coworking/config"
	"coworking/database"
	"coworking/models"
	"coworking/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.Database().Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear workspaces collection: %v", err)
	}

	layout := []struct {
		Type     string
		Count    int
		Price    float64
		Capacity int
		Features []string
	}{
		{models.WorkspaceTypeDesk, 12, 5, 1, []string{"Wi-Fi", "monitor"}},
		{models.WorkspaceTypeMeetingRoom, 4, 25, 8, []string{"Wi-Fi", "projector", "whiteboard"}},
		{models.WorkspaceTypeOffice, 2, 40, 4, []string{"Wi-Fi", "phone booth", "locker"}},
	}

	var docs []interface{}
	now := time.Now()
	for floor, kind := range layout {
		for i := 1; i <= kind.Count; i++ {
			docs = append(docs, models.Workspace{
				ID:           uuid.New().String(),
				Name:         fmt.Sprintf("%s %d", kind.Type, i),
				Type:         kind.Type,
				Location:     fmt.Sprintf("Floor %d", floor+1),
				PricePerHour: kind.Price,
				Capacity:     kind.Capacity,
				Images:       []string{},
				Features:     kind.Features,
				Coordinates:  models.Coordinates{X: float64(i * 10), Y: float64(floor * 100)},
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert workspaces: %v", err)
	}
	fmt.Printf("Inserted %d workspaces\n", len(res.InsertedIDs))

	if config.AppConfig.JWTSecret == "" {
		fmt.Println("JWT_SECRET is empty, skipping token generation")
		return
	}
	for _, who := range []struct{ id, role string }{{"admin-1", utils.RoleAdmin}, {"user-1", utils.RoleUser}} {
		token, err := utils.GenerateToken(who.id, who.role, 24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Printf("%s (%s): %s\n", who.id, who.role, token)
	}
}
