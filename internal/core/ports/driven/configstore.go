package driven

// ConfigStore provides access to the persisted application
// configuration backing AppSettings. Keys use dot notation
// ("embedding.model", "index.cap"); the settings service maps them
// onto the domain struct. Implementations handle persistence
// (e.g., a TOML file under the user's home directory) and type
// conversion.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	// The boolean reports whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value.
	// Returns "" when the key is absent or holds another type.
	GetString(key string) string

	// GetInt retrieves an integer value.
	// Returns 0 when the key is absent or holds another type.
	GetInt(key string) int

	// GetBool retrieves a boolean value.
	// Returns false when the key is absent or holds another type.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value.
	// Returns nil when the key is absent or holds another type.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
