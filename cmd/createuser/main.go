// Command createuser provisions a staff account for the admin portal.
// There is no self-service registration; accounts are created from the
// command line by an operator.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/database"
	"github.com/juanrengga/seido-web/internal/pkg/env"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: createuser <name> <email> <password> [admin|editor]")
		os.Exit(1)
	}

	name, email, password := os.Args[1], os.Args[2], os.Args[3]

	role := models.RoleEditor
	if len(os.Args) > 4 {
		role = os.Args[4]
	}
	if role != models.RoleAdmin && role != models.RoleEditor {
		log.Fatalf("Unknown role %q, expected admin or editor", role)
	}

	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitGlobalFactory(database.GetDB())

	user, err := models.CreateUser(name, email, password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user.Role = role

	if err := user.Validate(); err != nil {
		log.Fatalf("Invalid user: %v", err)
	}

	if err := repository.GetGlobalFactory().GetUserRepository().Create(context.Background(), user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Created %s account %s (%s)", user.Role, user.Name, user.Email)
}
