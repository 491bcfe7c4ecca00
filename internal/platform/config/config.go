package config

import (
	"os"
	"strings"
)

// Server captures everything the process reads from the environment. Only the
// storage connection string and the port are operationally required; missing
// storage config degrades the store, never the process.
type Server struct {
	Addr        string
	DatabaseURL string
	Namespace   string
	Database    string
	User        string
	Pass        string
	CORSOrigins []string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	ns := os.Getenv("DB_NAMESPACE")
	if ns == "" {
		ns = "buildstone"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "buildstone"
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Server{
		Addr:        ":" + port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Namespace:   ns,
		Database:    name,
		User:        os.Getenv("DB_USER"),
		Pass:        os.Getenv("DB_PASS"),
		CORSOrigins: origins,
	}
}
