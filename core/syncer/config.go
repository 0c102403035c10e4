package syncer

// Config holds configuration for sync orchestration.
type Config struct {
	// Workers is the number of products reconciled concurrently in a batch run.
	Workers int `mapstructure:"workers" default:"4"`
	// DraftPrefix is the storage prefix under which draft documents live.
	DraftPrefix string `mapstructure:"draft_prefix" default:"drafts/products"`
	// CacheTTLSeconds is the time-to-live for cached draft documents.
	// Zero disables caching, which is the safe default for one-shot CLI runs.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
