// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.NumUsers, "users", opts.NumUsers, "number of users to create")
	flag.IntVar(&opts.NumGroups, "groups", opts.NumGroups, "number of groups to create")
	flag.IntVar(&opts.NumPosts, "posts", opts.NumPosts, "number of posts to create")
	flag.IntVar(&opts.NumComments, "comments", opts.NumComments, "number of comments to create")
	flag.IntVar(&opts.MaxDays, "max-days", opts.MaxDays, "spread post timestamps over this many past days")
	flag.BoolVar(&opts.ShouldClean, "clean", false, "delete existing rows before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
