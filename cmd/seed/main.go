package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"finadvisor/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "finadvisor"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	profileColl := db.Collection("profiles")

	birthDate := time.Date(1988, 3, 14, 0, 0, 0, 0, time.UTC)

	profiles := []model.UserProfile{
		{
			UserID:         "user_demo1",
			Name:           "Anna Nowak",
			Email:          "anna.nowak@example.com",
			Phone:          "+48 601 202 303",
			GovernmentID:   "88031412345",
			BirthDate:      &birthDate,
			FinancialGoal:  "emergency_fund",
			Timeframe:      "medium",
			CurrentSavings: 8000,
			MonthlyIncome:  7500,
			TargetAmount:   27000,
			RiskTolerance:  "low",
			UpdatedAt:      time.Now(),
		},
		{
			UserID:         "user_demo2",
			Name:           "Piotr Wiśniewski",
			FinancialGoal:  "home_purchase",
			Timeframe:      "long",
			CurrentSavings: 65000,
			MonthlyIncome:  13200,
			TargetAmount:   180000,
			RiskTolerance:  "medium",
			UpdatedAt:      time.Now(),
		},
		{
			UserID:         "user_demo3",
			Name:           "Maria Zielińska",
			FinancialGoal:  "retirement",
			Timeframe:      "long",
			CurrentSavings: 42000,
			MonthlyIncome:  3600,
			TargetAmount:   500000,
			RiskTolerance:  "low",
			UpdatedAt:      time.Now(),
		},
	}

	replaceOpts := options.Replace().SetUpsert(true)
	for _, p := range profiles {
		if _, err := profileColl.ReplaceOne(ctx, bson.M{"_id": p.UserID}, p, replaceOpts); err != nil {
			log.Fatalf("Failed to seed profile %s: %v", p.UserID, err)
		}
	}

	fmt.Printf("Successfully seeded %d demo profiles into %s.profiles\n", len(profiles), dbName)
}
