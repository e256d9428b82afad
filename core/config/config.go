package config

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"

	"peerdiff/core/database"
	"peerdiff/core/logger"
	"peerdiff/core/registry"
	"peerdiff/core/server"
	"peerdiff/core/storage"
	"peerdiff/feature/peering"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional configuration file looked up next to .env.
const FileName = "peerdiff"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Peering holds the operator AS and the router configuration sources.
	Peering peering.Config `mapstructure:"peering"`
	// Registry holds configuration for the whois registry.
	Registry registry.Config `mapstructure:"registry"`
	// Database holds configuration for the scratch peer store.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// lookupHost resolves registry servers during validation.
var lookupHost = net.LookupHost

// LoadConfig loads configuration from environment variables, .env and peerdiff.yaml.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. PEERING_ASNO -> peering.asno)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every section against its validate tags, resolving the registry server.
func (c *Config) Validate() error {
	return c.validate(validateResolvable)
}

// ValidateOffline is Validate without the DNS check on the registry server.
func (c *Config) ValidateOffline() error {
	return c.validate(func(validator.FieldLevel) bool { return true })
}

func (c *Config) validate(resolvable validator.Func) error {
	validate := validator.New()
	_ = validate.RegisterValidation("resolvable", resolvable)

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// validateResolvable accepts IP literals and host names that resolve, with an optional port.
func validateResolvable(fl validator.FieldLevel) bool {
	host := fl.Field().String()
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	addrs, err := lookupHost(host)
	return err == nil && len(addrs) > 0
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

// Setting is one flattened configuration value.
type Setting struct {
	Key   string
	Value string
}

// Settings lists every value as "section.key", masking fields tagged secret:"true".
func (c *Config) Settings() []Setting {
	var out []Setting
	collect(reflect.ValueOf(*c), "", &out)
	return out
}

func collect(v reflect.Value, prefix string, out *[]Setting) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			collect(fv, key, out)
			continue
		}

		value := fmt.Sprint(fv.Interface())
		if fv.Kind() == reflect.Slice {
			parts := make([]string, fv.Len())
			for j := range parts {
				parts[j] = fmt.Sprint(fv.Index(j).Interface())
			}
			value = strings.Join(parts, ",")
		}
		if field.Tag.Get("secret") == "true" && value != "" {
			value = "********"
		}
		*out = append(*out, Setting{Key: key, Value: value})
	}
}
