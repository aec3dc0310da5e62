package constant

// Storage device identifiers accepted by the storage.active config key.
const (
	StorageSD        = "sd"
	StorageSecondary = "secondary"
)
