package cli

import (
	"github.com/abiiranathan/goflag"
)

// DefineFlags registers the global flags and the extract/rename
// subcommands on a new flag context. The handlers run after parsing,
// with the config already populated.
func DefineFlags(config *Config, runExtract, runRename func()) *goflag.Context {
	ctx := goflag.NewContext()

	// global flags
	ctx.AddFlag(goflag.FlagString, "log-level", "l", &config.LogLevel,
		"Log level: debug, info, warn, error or fatal", false)

	ctx.AddSubCommand("extract", "Extract the images of a PDF into named files plus a report", runExtract).
		AddFlag(goflag.FlagFilePath, "file", "f", &config.File, "The PDF document to process", true).
		AddFlag(goflag.FlagString, "output", "o", &config.OutputDir, "Output folder for images and report", false).
		AddFlag(goflag.FlagString, "bank", "b", &config.Bank, "Question-bank label used in filenames", false)

	ctx.AddSubCommand("rename", "Renumber a folder of images under a folder-derived prefix", runRename).
		AddFlag(goflag.FlagDirPath, "directory", "d", &config.Dir, "The folder with images to rename", true)

	return ctx
}
