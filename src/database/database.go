package database

import (
	"context"
	"fmt"
	"time"

	"Backend-Medical-Intake/src/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	FormsCollection     = "forms"
	ResponsesCollection = "responses"

	serverSelectionTimeout = 3 * time.Second
)

// ConnectMongoDB connects and pings once. A failed ping is returned to the
// caller instead of exiting: the application keeps running on the local
// ledger when the database is not reachable.
func ConnectMongoDB(ctx context.Context, mongoURI string) (*mongo.Client, error) {
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set")
	}

	// fail fast on an unreachable cluster; the local ledger takes over
	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(serverSelectionTimeout)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	// ตรวจสอบการเชื่อมต่อ
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Warnf("⚠️ MongoDB ping failed, requests will probe again: %v", err)
		return client, nil
	}

	logger.Info("✅ MongoDB connected successfully")
	ListDatabases(ctx, client)
	return client, nil
}

// ListDatabases logs the database names visible to the client.
func ListDatabases(ctx context.Context, client *mongo.Client) {
	dbs, err := client.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		logger.Warnf("⚠️ Error listing databases: %v", err)
		return
	}
	for _, db := range dbs {
		logger.Debugf("📌 database: %s", db)
	}
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(client *mongo.Client, dbName, collectionName string) *mongo.Collection {
	return client.Database(dbName).Collection(collectionName)
}
