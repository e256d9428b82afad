package registry

const (
	ModeTCP  = "tcp"
	ModeExec = "exec"
)

// Config holds configuration for the routing registry (whois) collaborator.
type Config struct {
	// Server is the whois server to query.
	Server string `mapstructure:"server" default:"whois.ripe.net" validate:"required,resolvable"`
	// Mode selects how queries are performed: "tcp" speaks whois directly, "exec" spawns WhoisBin.
	Mode string `mapstructure:"mode" default:"tcp" validate:"oneof=tcp exec"`
	// WhoisBin is the whois binary used in exec mode.
	WhoisBin string `mapstructure:"whois_bin" default:"/usr/bin/whois"`
	// TimeoutSeconds bounds every single registry query.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
