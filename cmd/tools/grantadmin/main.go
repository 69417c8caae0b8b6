// Command grantadmin manages rows in the admin-grant relation. It is
// operator tooling and deliberately lives outside the API's request path.
//
//	go run ./cmd/tools/grantadmin -email ops@example.com -note "support rotation"
//	go run ./cmd/tools/grantadmin -email ops@example.com -revoke
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"lokalpro/internal/config"
	"lokalpro/internal/domain"
	"lokalpro/internal/repository"
)

func main() {
	email := flag.String("email", "", "email of the user to grant/revoke")
	revoke := flag.Bool("revoke", false, "revoke the grant instead of creating it")
	note := flag.String("note", "", "optional note stored with the grant")
	list := flag.Bool("list", false, "list current grants and exit")
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

	repos := repository.NewRepositories(db)
	ctx := context.Background()

	if *list {
		grants, err := repos.AdminGrant.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list grants: %v", err)
		}
		for _, g := range grants {
			log.Printf("admin: %s (granted %s)", g.UserID, g.CreatedAt.Format("2006-01-02"))
		}
		return
	}

	if *email == "" {
		log.Fatal("-email is required")
	}

	user, err := repos.User.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("Failed to look up user: %v", err)
	}
	if user == nil {
		log.Fatalf("No user with email %s", *email)
	}

	if *revoke {
		if err := repos.AdminGrant.Revoke(ctx, user.ID); err != nil {
			log.Fatalf("Failed to revoke grant: %v", err)
		}
		log.Printf("Revoked admin grant for %s (%s)", *email, user.ID)
		return
	}

	grant := &domain.AdminGrant{UserID: user.ID}
	if *note != "" {
		grant.Note = note
	}
	if err := repos.AdminGrant.Grant(ctx, grant); err != nil {
		log.Fatalf("Failed to create grant: %v", err)
	}
	log.Printf("Granted admin to %s (%s)", *email, user.ID)
}
