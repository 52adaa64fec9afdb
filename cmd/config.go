package cmd

// Config carries process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// AssignmentJobEnabled toggles the background auto-assignment sweep.
	AssignmentJobEnabled bool
}
