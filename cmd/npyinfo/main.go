// Diagnostic tool for inspecting .npy and .npz files
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-npy/npy"
	"github.com/robert-malhotra/go-npy/npz"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// arrayInfo is the summary printed for one array.
type arrayInfo struct {
	Name         string `yaml:"name,omitempty"`
	Version      string `yaml:"version"`
	Descr        string `yaml:"descr"`
	Shape        []int  `yaml:"shape,flow"`
	FortranOrder bool   `yaml:"fortran_order"`
	Count        int    `yaml:"count"`
}

type fileInfo struct {
	Path   string      `yaml:"path"`
	Arrays []arrayInfo `yaml:"arrays"`
}

func run(args []string, stdout, stderr io.Writer) error {
	var format string
	var verbose bool

	flagSet := pflag.NewFlagSet("npyinfo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each archive member as it is decoded")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: npyinfo [flags] <file.npy|file.npz>...\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		flagSet.Usage()
		return fmt.Errorf("no input files")
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	infos := make([]fileInfo, 0, len(paths))
	for _, path := range paths {
		info, err := inspect(path, logger)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(infos)
	}
	for _, info := range infos {
		printText(stdout, info)
	}
	return nil
}

func inspect(path string, logger *slog.Logger) (fileInfo, error) {
	info := fileInfo{Path: path}

	if strings.EqualFold(filepath.Ext(path), ".npz") {
		ar, err := npz.ReadFile(path, npz.WithLogger(logger))
		if err != nil {
			return info, err
		}
		for _, item := range ar.Items() {
			info.Arrays = append(info.Arrays, describe(item.Name, item.Array))
		}
		return info, nil
	}

	a, err := npy.ReadFile(path)
	if err != nil {
		return info, err
	}
	info.Arrays = append(info.Arrays, describe("", a))
	return info, nil
}

func describe(name string, a *npy.Array) arrayInfo {
	return arrayInfo{
		Name:         name,
		Version:      a.Version().String(),
		Descr:        a.Descr(),
		Shape:        a.Shape(),
		FortranOrder: a.FortranOrder(),
		Count:        a.Len(),
	}
}

func printText(w io.Writer, info fileInfo) {
	fmt.Fprintf(w, "=== %s ===\n", info.Path)
	for _, a := range info.Arrays {
		indent := ""
		if a.Name != "" {
			fmt.Fprintf(w, "Array %q:\n", a.Name)
			indent = "  "
		}
		fmt.Fprintf(w, "%sVersion: %s\n", indent, a.Version)
		fmt.Fprintf(w, "%sDescr: %s\n", indent, a.Descr)
		fmt.Fprintf(w, "%sShape: %v\n", indent, a.Shape)
		fmt.Fprintf(w, "%sFortran order: %t\n", indent, a.FortranOrder)
		fmt.Fprintf(w, "%sCount: %d\n", indent, a.Count)
	}
}
