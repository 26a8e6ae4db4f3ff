package sync

// Config holds configuration for the sheet sync worker.
type Config struct {
	// Enabled toggles the periodic sync worker.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// IntervalSeconds is the delay between reconciliation passes.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"15"`
	// Object is the workbook object name inside the storage bucket.
	Object string `mapstructure:"object" default:"Menu.xlsx"`
	// Sheet is the worksheet name read from the workbook.
	Sheet string `mapstructure:"sheet" default:"Sheet1"`
	// TimeoutSeconds is the wall-clock limit for one full pass.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
