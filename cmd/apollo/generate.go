package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/apollolabs/apollo/internal/config"
	"github.com/apollolabs/apollo/internal/generator"
	"github.com/apollolabs/apollo/internal/llm"
	"github.com/apollolabs/apollo/internal/output"
	"github.com/apollolabs/apollo/internal/record"
)

// batchFlags are the options every generate subcommand shares.
type batchFlags struct {
	numEntries  int
	outputPath  string
	format      string
	configPath  string
	seed        uint64
	exportNeo4j bool
}

func (b *batchFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&b.numEntries, "num-entries", 0, "Number of entries to generate")
	fs.StringVar(&b.outputPath, "output", "", "Output file path")
	fs.StringVar(&b.format, "format", "", "Output format: "+strings.Join(output.Formats(), ", "))
	fs.StringVar(&b.configPath, "config", config.DefaultPath, "Path to the TOML config file")
	fs.Uint64Var(&b.seed, "seed", 0, "Random seed (0 means a fresh stream)")
	fs.BoolVar(&b.exportNeo4j, "export-neo4j", false, "Also export the batch to the configured graph store")
}

// resolve fills unset flags from the config file and returns it.
func (b *batchFlags) resolve() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(b.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if b.numEntries <= 0 {
		b.numEntries = cfg.Defaults.NumEntries
	}
	if b.format == "" {
		b.format = cfg.Defaults.Format
	}
	return cfg, nil
}

func (b *batchFlags) source() generator.Source {
	if b.seed != 0 {
		return generator.SeededSource(b.seed)
	}
	return generator.DefaultSource()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func runGenerate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: apollo generate <binary|weighted|faker|genai> [flags]")
		os.Exit(2)
	}

	switch args[0] {
	case "binary":
		generateBinary(args[1:])
	case "weighted":
		generateWeighted(args[1:])
	case "faker":
		generateFaker(args[1:])
	case "genai":
		generateGenAI(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown data type %q (want binary, weighted, faker or genai)\n", args[0])
		os.Exit(2)
	}
}

func generateBinary(args []string) {
	fs := flag.NewFlagSet("generate binary", flag.ExitOnError)
	probability := fs.Float64("probability", 0.5, "Probability of a \"Yes\" response (0.0-1.0)")
	var b batchFlags
	b.register(fs)
	fs.Parse(args)

	cfg, err := b.resolve()
	if err != nil {
		fail(err)
		return
	}
	if *probability < 0 || *probability > 1 {
		fail(fmt.Errorf("probability must be between 0 and 1, got %v", *probability))
		return
	}

	g := generator.NewBinaryGenerator(*probability, b.source())
	records := collectWithProgress(g, b.numEntries, "Generating binary data")
	finishBatch(records, "binary", &b, cfg)
}

func generateWeighted(args []string) {
	fs := flag.NewFlagSet("generate weighted", flag.ExitOnError)
	choices := fs.String("choices", "", "Comma-separated choices with probabilities (e.g. \"A:0.5,B:0.3,C:0.2\")")
	var b batchFlags
	b.register(fs)
	fs.Parse(args)

	cfg, err := b.resolve()
	if err != nil {
		fail(err)
		return
	}

	g, err := generator.NewWeightedGenerator(*choices, b.source())
	if err != nil {
		fail(err)
		return
	}
	records := collectWithProgress(g, b.numEntries, "Generating weighted data")
	finishBatch(records, "weighted", &b, cfg)
}

func generateFaker(args []string) {
	fs := flag.NewFlagSet("generate faker", flag.ExitOnError)
	provider := fs.String("provider", "name", "Faker provider (e.g. \"name\", \"address\", \"text\")")
	method := fs.String("method", "name", "Faker method (e.g. \"name\", \"city\", \"sentence\")")
	var b batchFlags
	b.register(fs)
	fs.Parse(args)

	cfg, err := b.resolve()
	if err != nil {
		fail(err)
		return
	}

	g, err := generator.NewFakerGenerator(*provider, *method, b.seed)
	if err != nil {
		fail(err)
		supported := generator.FakerMethods()
		sort.Strings(supported)
		fmt.Fprintf(os.Stderr, "Supported: %s\n", strings.Join(supported, ", "))
		return
	}
	records := collectWithProgress(g, b.numEntries, fmt.Sprintf("Generating faker data (%s.%s)", *provider, *method))
	finishBatch(records, "faker", &b, cfg)
}

func generateGenAI(args []string) {
	fs := flag.NewFlagSet("generate genai", flag.ExitOnError)
	modelType := fs.String("model-type", "", "GenAI model type (placeholder, gemini, openai, claude); empty uses the config")
	prompt := fs.String("prompt", "", "Prompt text, or @name for a configured prompt template")
	schema := fs.String("schema", "", "Path to a JSON schema file for structured output")
	numSamples := fs.Int("num-samples", 10, "Number of samples to generate")
	var b batchFlags
	b.register(fs)
	fs.Parse(args)

	cfg, err := b.resolve()
	if err != nil {
		fail(err)
		return
	}
	if *prompt == "" {
		fail(fmt.Errorf("--prompt is required"))
		return
	}
	// genai output defaults to jsonl: model replies are rarely flat enough
	// for a useful CSV.
	if b.format == cfg.Defaults.Format && !flagWasSet(fs, "format") {
		b.format = "jsonl"
	}

	promptText, err := cfg.ResolvePrompt(*prompt)
	if err != nil {
		fail(err)
		return
	}

	llmCfg := cfg.LLM
	if *modelType != "" {
		llmCfg.Provider = *modelType
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llmCfg)
	if err != nil {
		fail(err)
		return
	}

	g, err := generator.NewGenAIGenerator(client, promptText, *schema)
	if err != nil {
		fail(err)
		return
	}

	bar := progressbar.Default(int64(*numSamples), "Generating genai data")
	records, err := g.GenerateData(ctx, *numSamples, func(int) { bar.Add(1) })
	if err != nil {
		fail(err)
		return
	}
	finishBatch(records, "genai", &b, cfg)
}

func collectWithProgress(g generator.Generator, n int, description string) []*record.Record {
	bar := progressbar.Default(int64(n), description)
	return generator.Collect(g, n, func(int) { bar.Add(1) })
}

// finishBatch serializes the batch and optionally exports it. Errors are
// printed, never raised past the command boundary.
func finishBatch(records []*record.Record, source string, b *batchFlags, cfg *config.Config) {
	if b.outputPath == "" {
		b.outputPath = fmt.Sprintf("%s_data.%s", source, b.format)
	}

	serializer, err := output.ForFormat(b.format)
	if err != nil {
		fail(err)
		return
	}
	if err := serializer.Save(records, b.outputPath); err != nil {
		fail(err)
		return
	}
	fmt.Printf("%s entries saved to '%s' in %s format.\n",
		humanize.Comma(int64(len(records))), b.outputPath, b.format)

	if b.exportNeo4j {
		ctx := context.Background()
		sink, err := output.NewGraphSink(ctx, cfg.Export.Neo4jURI, cfg.Export.Neo4jUser, cfg.Export.Neo4jPassword)
		if err != nil {
			fail(err)
			return
		}
		defer sink.Close(ctx)

		batchID, err := sink.Export(ctx, records, source)
		if err != nil {
			fail(err)
			return
		}
		fmt.Printf("Batch %s exported to %s.\n", batchID, cfg.Export.Neo4jURI)
	}
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
