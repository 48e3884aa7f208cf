// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup
//	└── quotes/          # Quote CRUD, favourites and seeding
//
// # Usage
//
//	db, err := database.NewDatabase("./quotebook.db")
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	store := quotes.NewRepository(db.DB)
//	if err := store.Initialize(ctx); err != nil {
//		return err
//	}
//	if _, err := store.SeedIfEmpty(ctx); err != nil {
//		return err
//	}
//	all, err := store.ListAll(ctx, "")
//
// The Database value is the single process-scoped handle. It is created
// explicitly at startup and passed to whatever needs it; nothing in this
// package keeps global state.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add Initialize(ctx) that auto-migrates the domain's entities
//  5. Add compile-time interface checks where the repository satisfies one
package database
