package configs

// Store selects the key/value backend the ledger lives in. Driver is one
// of "badger", "leveldb" or "postgres". Path is the data directory for the
// embedded backends; an empty path keeps the data in memory, which is
// only useful for development.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"badger" validate:"oneof=badger leveldb postgres"`
	Path   string `env:"PATH" envDefault:"data/ledger"`
}
