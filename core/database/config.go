package database

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	// MemoryName selects an in-memory sqlite database.
	MemoryName = ":memory:"
)

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite" validate:"oneof=sqlite mysql"`
	// Name is the sqlite file path or the mysql database name.
	Name string `mapstructure:"name" default:"/tmp/peerdiff.db" validate:"required"`
	// Host is the database host (mysql only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql only).
	Password string `mapstructure:"password" default:"" secret:"true"`
	// Keep leaves the sqlite file in place after the run.
	Keep bool `mapstructure:"keep" default:"false"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
