// Command seed loads the demo catalog into Firestore so a fresh project has
// something to show. Safe to re-run: documents are written under fixed ids.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/zone2fun/py-asset/internal/business/catalog"
	"github.com/zone2fun/py-asset/internal/platform/config"
	firestoreclient "github.com/zone2fun/py-asset/internal/platform/firestore"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	client, _, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer client.Close()

	for _, p := range catalog.SeedProperties() {
		id := p.ID
		p.ID = ""
		if _, err := client.Collection("properties").Doc(id).Set(ctx, p); err != nil {
			log.Fatalf("seed property %s: %v", id, err)
		}
		log.Printf("seeded property %s: %s", id, p.Title)
	}
	log.Println("seeding complete")
}
