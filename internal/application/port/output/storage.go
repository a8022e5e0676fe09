package output

// StoragePort is the key-value store and dataset the run writes artifacts
// to. URL resolves a stored key to an address a consumer can fetch it from.
type StoragePort interface {
	SetValue(key string, data []byte, contentType string) error
	PushData(record any) error
	URL(key string) string
}
