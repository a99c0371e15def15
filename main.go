package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/feliixx/goseqan/cache"
	"github.com/feliixx/goseqan/chart"
	"github.com/feliixx/goseqan/seqan"
)

const (
	version  = "0.1.0"
	toolName = "goseqan"
)

// Logger settings.
var log = logging.MustGetLogger(toolName)
var formatter = logging.MustStringFormatter(`%{message}`)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Input         `group:"input"`
	seqan.Options `group:"optional"`
	Output        `group:"output"`
	General       `group:"general"`
}

// Input struct to store the sequence to analyze. Exactly one
// of the fields is required
type Input struct {
	Sequence string `short:"s" long:"sequence" value-name:"<sequence>" description:"Nucleotide sequence to analyze"`
	Fasta    string `short:"i" long:"input" value-name:"<filename>" description:"Fasta file, only its first sequence is analyzed"`
	Sample   string `long:"sample" value-name:"<name>" description:"Name of a sample DNA sequence to analyze, see --list-samples"`
}

// Output struct to store output command line args
type Output struct {
	Outseq     string `short:"o" long:"outseq" value-name:"<filename>" description:"Write the protein sequence to this file in fasta format"`
	JSON       bool   `long:"json" description:"Print the analysis as JSON instead of text"`
	PlotDir    string `long:"plot-dir" value-name:"<dir>" description:"Directory where to draw the GC content and hydrophobicity plots"`
	PlotFormat string `long:"plot-format" value-name:"<format>" description:"Format of the plots" choice:"png" choice:"svg" choice:"pdf" default:"png"`
	Cache      string `long:"cache" value-name:"<filename>" description:"Bolt database used to cache analysis results"`
}

// General struct to store general command line args
type General struct {
	LogLevel    string `long:"log-level" value-name:"<level>" description:"Log level: CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG" default:"WARNING"`
	ListSamples bool   `long:"list-samples" description:"List the sample sequences and exit"`
	Help        bool   `short:"h" long:"help" description:"Show this help message"`
	Version     bool   `short:"v" long:"version" description:"Print the tool version and exit"`
}

func setupLogging(level string) error {

	logging.SetFormatter(formatter)
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))

	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	for _, module := range []string{toolName, "seqan", "cache"} {
		logging.SetLevel(lvl, module)
	}
	return nil
}

// readInput returns the raw sequence to analyze and its fasta header
func readInput(options *GlobalOptions) (raw, header string, err error) {

	nbInput := 0
	for _, in := range []string{options.Sequence, options.Fasta, options.Sample} {
		if in != "" {
			nbInput++
		}
	}
	if nbInput != 1 {
		return "", "", fmt.Errorf("exactly one of -s | --sequence, -i | --input or --sample is required, try %s --help for details", toolName)
	}

	switch {
	case options.Sample != "":
		sample, ok := seqan.Sample(options.Sample)
		if !ok {
			return "", "", fmt.Errorf("unknown sample %q, try %s --list-samples", options.Sample, toolName)
		}
		// samples are DNA sequences
		options.Type = string(seqan.DNA)
		return sample.Sequence, strings.ReplaceAll(sample.Name, " ", "_") + " " + sample.Description, nil

	case options.Fasta != "":
		in, err := os.Open(options.Fasta)
		if err != nil {
			return "", "", err
		}
		defer in.Close()

		record, err := seqan.ReadFasta(in, seqan.SequenceType(options.Type))
		if err != nil {
			return "", "", err
		}
		header = record.ID
		if record.Description != "" {
			header += " " + record.Description
		}
		return record.Sequence, header, nil
	}
	return options.Sequence, "sequence", nil
}

func analyze(options GlobalOptions, req seqan.Request) (*seqan.Result, error) {

	if options.Cache == "" {
		return seqan.Analyze(req), nil
	}

	c, err := cache.Open(options.Cache)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.Analyze(req)
}

func drawPlots(dir, format string, result *seqan.Result) error {

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	gc, err := chart.GCContent(result.GCContent)
	switch {
	case errors.Is(err, chart.ErrNoData):
		log.Warningf("sequence shorter than the GC content window, no GC content plot")
	case err != nil:
		return err
	default:
		if err := chart.Save(gc, filepath.Join(dir, "gc_content."+format)); err != nil {
			return err
		}
	}

	hydro, err := chart.Hydrophobicity(result.Hydrophobicity)
	switch {
	case errors.Is(err, chart.ErrNoData):
		log.Warningf("no valid amino acid sequence available for hydrophobicity analysis, no hydrophobicity plot")
	case err != nil:
		return err
	default:
		if err := chart.Save(hydro, filepath.Join(dir, "hydrophobicity."+format)); err != nil {
			return err
		}
	}
	return nil
}

func run(options GlobalOptions, out io.Writer) error {

	if options.ListSamples {
		return writeSamples(out, seqan.Samples())
	}

	raw, header, err := readInput(&options)
	if err != nil {
		return err
	}

	if options.Strict {
		if err := seqan.Validate(raw, seqan.SequenceType(options.Type)); err != nil {
			return err
		}
	}

	req := options.Request(raw)
	result, err := analyze(options, req)
	if err != nil {
		return err
	}
	log.Infof("%d bases analyzed, %d codons", result.Composition.Length, len(result.Residues))

	if options.Outseq != "" {
		f, err := os.Create(options.Outseq)
		if err != nil {
			return err
		}
		defer f.Close()

		err = seqan.WriteProtein(f, header, result.Frame, result.Residues, options.Trim)
		if err != nil {
			return err
		}
	}

	if options.PlotDir != "" {
		err = drawPlots(options.PlotDir, options.PlotFormat, result)
		if err != nil {
			return fmt.Errorf("fail to draw plots: %w", err)
		}
	}

	if options.JSON {
		return writeJSON(out, result)
	}
	return writeReport(out, result)
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.Parse()
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	err = setupLogging(options.LogLevel)
	if err != nil {
		fmt.Printf("wrong log level: %v\n", err)
		os.Exit(1)
	}

	err = run(options, os.Stdout)
	if err != nil {
		fmt.Printf("fail to analyze sequence:\n%v\n", err)
		os.Exit(1)
	}
}
