// Command seed creates the schema and loads demo directory data for local
// development. Operator tooling; never shipped in the API process.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"lokalpro/internal/config"
	"lokalpro/internal/domain"
	"lokalpro/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name TEXT NOT NULL,
	city TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
	email_verification_token TEXT,
	email_verification_sent_at TIMESTAMPTZ,
	password_reset_token TEXT,
	password_reset_expires_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS admin_grants (
	user_id UUID PRIMARY KEY REFERENCES users(user_id),
	granted_by UUID,
	note TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS profiles (
	profile_id UUID PRIMARY KEY,
	slug TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	categories TEXT[] NOT NULL DEFAULT '{}',
	description TEXT,
	phone TEXT,
	rating NUMERIC(3,2) NOT NULL DEFAULT 0,
	review_count INT NOT NULL DEFAULT 0,
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	avatar_url TEXT,
	media_urls TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS favorites (
	user_id UUID NOT NULL REFERENCES users(user_id),
	profile_id UUID NOT NULL REFERENCES profiles(profile_id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, profile_id)
);

CREATE TABLE IF NOT EXISTS sessions (
	session_id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(user_id),
	token_hash TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	revoked_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_sessions_token_hash ON sessions(token_hash);
CREATE INDEX IF NOT EXISTS idx_profiles_city ON profiles(city);
`

func main() {
	withDemo := flag.Bool("demo", false, "also insert demo profiles")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("Schema applied")

	if !*withDemo {
		return
	}

	repos := repository.NewRepositories(db)
	ctx := context.Background()

	demo := []domain.Profile{
		{
			ID:          uuid.New(),
			Slug:        "andi-listrik-bandung",
			Name:        "Andi Listrik",
			City:        "Bandung",
			Categories:  pq.StringArray{"electrician"},
			Rating:      4.8,
			ReviewCount: 32,
			IsVerified:  true,
		},
		{
			ID:          uuid.New(),
			Slug:        "sari-pipa-jakarta",
			Name:        "Sari Pipa",
			City:        "Jakarta",
			Categories:  pq.StringArray{"plumber", "renovation"},
			Rating:      4.5,
			ReviewCount: 18,
			IsVerified:  true,
		},
		{
			ID:         uuid.New(),
			Slug:       "budi-cat-surabaya",
			Name:       "Budi Cat & Renovasi",
			City:       "Surabaya",
			Categories: pq.StringArray{"painter", "renovation"},
			Rating:     4.1,
		},
	}

	for i := range demo {
		if err := repos.Profile.Create(ctx, &demo[i]); err != nil {
			log.Printf("Warning: skipping %s: %v", demo[i].Slug, err)
			continue
		}
		log.Printf("Seeded profile %s", demo[i].Slug)
	}
}
