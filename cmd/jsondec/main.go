package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	j "github.com/goccy/go-json"

	jsonsrc "github.com/reoring/jsondec/source/json"
	yamlsrc "github.com/reoring/jsondec/source/yaml"
)

// CLI defines the command-line interface
var CLI struct {
	Input         string `arg:"" help:"Path to input document. Use - for stdin."`
	Format        string `help:"Input format." enum:"auto,json,yaml" default:"auto"`
	DuplicateKeys string `help:"Duplicate object key handling." enum:"ignore,warn,error" default:"warn"`
	Quiet         bool   `help:"Suppress the canonicalized tree output." short:"q"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("jsondec"),
		kong.Description("Inspect a JSON or YAML document through the jsondec value model"),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	data, err := readInput(CLI.Input)
	if err != nil {
		return err
	}

	format := CLI.Format
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(CLI.Input)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	var tree any
	var dups []jsonsrc.Duplicate
	switch format {
	case "yaml":
		tree, err = yamlsrc.DecodeBytes(data)
	default:
		tree, dups, err = jsonsrc.DecodeBytes(data)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", CLI.Input, err)
	}

	if len(dups) > 0 {
		switch CLI.DuplicateKeys {
		case "error":
			return fmt.Errorf("duplicate key [%s] at %s", dups[0].Key, dups[0].Path)
		case "warn":
			for _, d := range dups {
				fmt.Fprintf(os.Stderr, "warning: duplicate key [%s] at %s (first occurrence kept)\n", d.Key, d.Path)
			}
		}
	}

	if !CLI.Quiet {
		out, err := j.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
