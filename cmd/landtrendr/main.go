// Command landtrendr runs the trendline analysis for one pixel document:
// it reads a JSON or YAML pixel document (observations, line_cost, label
// rules), runs the analysis, and either pretty-prints the trendline and
// labels to the terminal or writes the encoded result document to stdout.
//
// Usage:
//
//	landtrendr --input pixel.json
//	landtrendr --input pixel.yaml --format yaml --output result.yaml
//	cat pixel.json | landtrendr --pretty
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/usefulrisk/landtrendr"
	"github.com/usefulrisk/landtrendr/codec"
)

func main() {
	var (
		input    = pflag.String("input", "-", "pixel document to read, or - for stdin")
		output   = pflag.String("output", "-", "file to write the result document to, or - for stdout")
		format   = pflag.String("format", "", "wire format (json or yaml); inferred from the input filename when empty")
		lineCost = pflag.Float64("line-cost", 0, "override the document's line_cost when > 0")
		pretty   = pflag.Bool("pretty", false, "print tables to the terminal instead of an encoded result document")
		flatten  = pflag.Bool("flatten", false, "include the flattened per-point and per-label maps in the result document")
	)
	pflag.Parse()

	if err := run(*input, *output, *format, *lineCost, *pretty, *flatten); err != nil {
		fmt.Fprintf(os.Stderr, "landtrendr: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, format string, lineCost float64, pretty, flatten bool) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}

	format, err = resolveFormat(format, input)
	if err != nil {
		return err
	}

	var doc codec.PixelDoc
	switch format {
	case "json":
		doc, err = codec.DecodePixelDocJSON(data)
	case "yaml":
		doc, err = codec.DecodePixelDocYAML(data)
	}
	if err != nil {
		return err
	}

	if lineCost > 0 {
		doc.LineCost = lineCost
	}

	rules, err := doc.Rules()
	if err != nil {
		return err
	}

	tl, err := landtrendr.Analyze(doc.CoreObservations(), doc.LineCost)
	if err != nil {
		return err
	}
	labels := landtrendr.ChangeLabels(tl, rules)

	if pretty {
		tl.PrettyPrint()
		landtrendr.PrintLabels(labels)
		return nil
	}

	result := codec.NewResultDoc(tl, labels, flatten)
	var encoded []byte
	switch format {
	case "json":
		encoded, err = result.EncodeJSON()
	case "yaml":
		encoded, err = result.EncodeYAML()
	}
	if err != nil {
		return err
	}

	return writeOutput(output, encoded)
}

func readInput(input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}
	return data, nil
}

// resolveFormat picks the wire format from the --format flag, falling back
// to the input filename's extension, and defaulting to json for stdin.
func resolveFormat(format, input string) (string, error) {
	if format == "" {
		switch {
		case strings.HasSuffix(input, ".yaml"), strings.HasSuffix(input, ".yml"):
			format = "yaml"
		default:
			format = "json"
		}
	}
	if format != "json" && format != "yaml" {
		return "", fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	return format, nil
}

func writeOutput(output string, data []byte) error {
	if output == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
