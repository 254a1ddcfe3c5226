package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/alexhholmes/rawgen/internal/codegen"
	"github.com/alexhholmes/rawgen/internal/config"
	"github.com/alexhholmes/rawgen/internal/gate"
	"github.com/alexhholmes/rawgen/internal/spec"
)

func main() {
	app := &cli.App{
		Name:  "rawgen",
		Usage: "generate struct definitions and decoders for fixed-layout on-disk records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML target list (built-in ext4 record set when omitted)",
			},
			&cli.StringFlag{
				Name:  "specs",
				Usage: "base directory for spec file paths",
				Value: ".",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (stdout when omitted)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log per-record progress",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		log.WithField("config", path).Debug("loaded target list")
	}

	out, records, err := generate(cfg, c.String("specs"))
	if err != nil {
		return err
	}
	log.WithField("records", records).Debug("generation complete")

	if path := c.String("out"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	fmt.Print(out)
	return nil
}

// generate runs the whole pipeline for every target and returns the
// concatenated output. Any target failure aborts the run before anything is
// written to the sink.
func generate(cfg *config.Config, specDir string) (string, int, error) {
	var resolved []*gate.Record
	for i := range cfg.Targets {
		t := &cfg.Targets[i]

		pol, err := t.GatePolicy()
		if err != nil {
			return "", 0, err
		}

		path := filepath.Join(specDir, t.Spec)
		f, err := os.Open(path)
		if err != nil {
			return "", 0, fmt.Errorf("target %s: %w", t.Name, err)
		}
		rec, err := spec.Parse(f)
		f.Close()
		if err != nil {
			return "", 0, fmt.Errorf("target %s: %s: %w", t.Name, path, err)
		}

		gated, err := gate.Resolve(t.Name, rec, pol)
		if err != nil {
			return "", 0, err
		}
		log.WithFields(log.Fields{
			"record": t.Name,
			"fields": len(gated.Fields),
			"policy": pol.Strategy.String(),
		}).Debug("resolved record")

		resolved = append(resolved, gated)
	}

	var out strings.Builder
	out.WriteString(codegen.Preamble(cfg.Package, resolved))
	for i, rec := range resolved {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(codegen.NewGenerator(rec).Generate())
	}
	return out.String(), len(resolved), nil
}
