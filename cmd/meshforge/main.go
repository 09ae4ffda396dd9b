// meshforge is a CLI for turning design specifications into GLB previews.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/archiforge/meshforge/internal/config"
	"github.com/archiforge/meshforge/internal/logger"
	"github.com/archiforge/meshforge/pkg/geometry"
	"github.com/archiforge/meshforge/pkg/glb"
	"github.com/archiforge/meshforge/pkg/spec"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "validate":
		cmdValidate(args)
	case "inspect":
		cmdInspect(args)
	case "init-config":
		cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshforge - design specification to GLB preview generator

Usage:
  meshforge <command> [options]

Commands:
  generate <spec.json>    Generate a GLB preview from a spec file
  validate <spec.json>    Validate a spec file and report every violation
  inspect <file.glb>      Show the buffer layout of a GLB file
  init-config [path]      Write the default config file

Examples:
  meshforge generate -o house.glb examples/row_house.json
  meshforge validate examples/row_house.json
  meshforge inspect house.glb`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	output := fs.String("o", "out.glb", "Output GLB path")
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshforge generate [-o out.glb] <spec.json>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	normalized, ok := loadSpec(fs.Arg(0), cfg)
	if !ok {
		os.Exit(1)
	}

	builder := geometry.NewBuilder(cfg.Generator.BuilderParams(), logger.Log)
	mesh := builder.Build(normalized)

	asset, err := glb.Encode(mesh)
	if err != nil {
		// Encoder invariant violations are internal defects, not input
		// problems: full detail goes to the log, an opaque error to the user.
		var oob *glb.IndexOutOfRangeError
		if errors.As(err, &oob) {
			logger.Log.Error("mesh assembly produced out-of-range index",
				zap.Uint32("index", oob.Index),
				zap.Int("vertex_count", oob.VertexCount),
				zap.Int("face_count", len(mesh.Faces)))
			fmt.Fprintln(os.Stderr, "Error: internal error while encoding mesh")
		} else {
			logger.Log.Error("encoding failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if err := os.WriteFile(*output, asset.GLB, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Log.Info("generated GLB",
		zap.String("output", *output),
		zap.String("design_type", normalized.DesignType),
		zap.Int("stories", normalized.Stories),
		zap.Int("vertices", asset.Header.VertexCount),
		zap.Int("indices", asset.Header.IndexCount),
		zap.Int("bytes", asset.Header.TotalByteLength))

	fmt.Printf("Wrote %s (%d vertices, %d indices, %d bytes)\n",
		*output, asset.Header.VertexCount, asset.Header.IndexCount, asset.Header.TotalByteLength)
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshforge validate <spec.json>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	normalized, ok := loadSpec(fs.Arg(0), cfg)
	if !ok {
		os.Exit(1)
	}

	fmt.Printf("Spec OK: %s %gx%gx%gm, %d stories, %d objects\n",
		normalized.DesignType, normalized.Width, normalized.Length,
		normalized.Height, normalized.Stories, len(normalized.Objects))
}

// loadSpec reads, parses, and normalizes a spec file. Validation failures are
// printed as an enumerated list of every violation.
func loadSpec(path string, cfg *config.Config) (*spec.NormalizedSpec, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}

	raw, err := spec.ParseRaw(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}

	normalized, err := spec.Normalize(raw, cfg.Limits.SpecLimits())
	if err != nil {
		var verr *spec.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Spec validation failed with %d problem(s):\n", len(verr.Errs))
			for _, e := range verr.Errs {
				fmt.Fprintf(os.Stderr, "  - %v\n", e)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return nil, false
	}

	return normalized, true
}

func cmdInspect(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshforge inspect <file.glb>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, bin, err := glb.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:         %s\n", args[0])
	fmt.Printf("Total size:   %d bytes\n", len(data))
	fmt.Printf("Binary chunk: %d bytes\n", len(bin))
	fmt.Printf("Accessors:\n")
	for i, acc := range doc.Accessors {
		fmt.Printf("  [%d] %-6s componentType=%d count=%d bufferView=%d\n",
			i, acc.Type, acc.ComponentType, acc.Count, acc.BufferView)
	}
	fmt.Printf("Buffer views:\n")
	for i, view := range doc.BufferViews {
		fmt.Printf("  [%d] offset=%d length=%d\n", i, view.ByteOffset, view.ByteLength)
	}
}

func cmdInitConfig(args []string) {
	cfg := config.Default()

	var err error
	if len(args) > 0 {
		err = cfg.SaveTo(args[0])
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := "default location"
	if len(args) > 0 {
		path = args[0]
	}
	fmt.Printf("Wrote config to %s\n", path)
}
