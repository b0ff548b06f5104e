package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints the board after every applied move
	ShowBoard bool

	// SANLog writes the move log in standard algebraic notation instead of
	// coordinate notation
	SANLog bool

	// LineLength is the maximum length of a move-log line
	LineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:  true,
		SANLog:     true,
		LineLength: 80,
	}
}
