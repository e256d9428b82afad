// Package config provides configuration management for peerdiff.
//
// Values come from, in increasing priority: struct tag defaults, an optional
// peerdiff.yaml in the config directory, a .env file and environment variables.
// The CLI applies its flags on top of the loaded Config.
//
// # Configuration Structure
//
//   - Peering: operator AS number, default announced set, router config sources
//   - Registry: whois server, query mode and timeout
//   - Database: scratch peer store (sqlite file or mysql)
//   - Storage: MinIO/S3 credentials for s3:// sources
//   - Server: HTTP port, API key and metrics path for `peerdiff serve`
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
