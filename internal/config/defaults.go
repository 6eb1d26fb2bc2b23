package config

// defaultCatalogURL is the published spreadsheet feed the catalog loads from
// when no source is configured.
const defaultCatalogURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSc2GTX3jc2NjJlR_zWVqDyTGf6bhCVc4GGaN_WMQDDlXZ8ofJVh5cbCPAD0d0lHY0anWXreyMdon33/pub?output=csv"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.URL == "" && cfg.Catalog.Path == "" {
		cfg.Catalog.URL = defaultCatalogURL
	}
	if cfg.Catalog.RefreshTTLSeconds == 0 {
		cfg.Catalog.RefreshTTLSeconds = 300
	}
	if cfg.Catalog.TimeoutSeconds == 0 {
		cfg.Catalog.TimeoutSeconds = 15
	}
	if cfg.Catalog.Table == "" {
		cfg.Catalog.Table = "parts"
	}
	if cfg.Catalog.NumberColumn == "" {
		cfg.Catalog.NumberColumn = "part_number"
	}
	if cfg.Catalog.DescriptionColumn == "" {
		cfg.Catalog.DescriptionColumn = "description"
	}
	if cfg.Search.ResultCap == 0 {
		cfg.Search.ResultCap = 50
	}
	if cfg.Search.PageSize == 0 {
		cfg.Search.PageSize = 20
	}
	if cfg.Search.MinQueryLength == 0 {
		cfg.Search.MinQueryLength = 1
	}
	if cfg.Search.HighlightCacheSize == 0 {
		cfg.Search.HighlightCacheSize = 1000
	}
	if cfg.Search.MaxRecentSearches == 0 {
		cfg.Search.MaxRecentSearches = 10
	}
	cfg.Scoring.ApplyDefaults()
}
