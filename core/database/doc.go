// Package database handles database connections for the peer store.
//
// It wraps GORM to open either a sqlite database (the default, a throwaway file or
// an in-memory database) or a MySQL database, based on the application's configuration.
//
// # Lifecycle
//
// Connect opens and pings the database. Close releases the handle and removes the
// sqlite file unless Keep is set, so every run starts and ends without residue.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db, cfg.Database)
package database
