package app

// Config holds runtime wiring options for building the app.
type Config struct {
	File       string // recovery package path, e.g. $HOME/.passforge/recovery.json
	Iterations int    // PBKDF2 work factor; 0 means domain.DefaultIterations
}
