package cli

// Config holds the configuration for the CLI.
type Config struct {
	// File is the source PDF for the extract subcommand.
	File string

	// OutputDir receives extracted images and the run report.
	OutputDir string

	// Bank is the free-text question-bank label; it is sanitized into
	// the filename token.
	Bank string

	// Dir is the folder processed by the rename subcommand.
	Dir string

	// LogLevel: debug, info, warn, error or fatal.
	LogLevel string
}

var DefaultConfig = Config{
	OutputDir: "extracted_images",
	Bank:      "BancoPreguntas",
	LogLevel:  "info",
}
