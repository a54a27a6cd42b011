package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/apollolabs/apollo/internal/config"
	"github.com/apollolabs/apollo/internal/generator"
	"github.com/apollolabs/apollo/internal/llm"
)

type menu struct {
	in  *bufio.Scanner
	cfg *config.Config
}

func (m *menu) prompt(label, fallback string) string {
	fmt.Printf("%s [%s]: ", label, fallback)
	if !m.in.Scan() {
		return fallback
	}
	text := strings.TrimSpace(m.in.Text())
	if text == "" {
		return fallback
	}
	return text
}

func (m *menu) promptInt(label string, fallback int) int {
	for {
		text := m.prompt(label, strconv.Itoa(fallback))
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 {
			return n
		}
		fmt.Println("Please enter a positive whole number.")
	}
}

func (m *menu) promptFloat(label string, fallback float64) float64 {
	for {
		text := m.prompt(label, strconv.FormatFloat(fallback, 'g', -1, 64))
		v, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return v
		}
		fmt.Println("Please enter a number.")
	}
}

func (m *menu) promptChoice(label string, choices []string, fallback string) string {
	for {
		text := m.prompt(fmt.Sprintf("%s (%s)", label, strings.Join(choices, "/")), fallback)
		for _, c := range choices {
			if text == c {
				return text
			}
		}
		fmt.Printf("Please choose one of: %s\n", strings.Join(choices, ", "))
	}
}

func runMenu() {
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		fail(err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	m := &menu{in: bufio.NewScanner(os.Stdin), cfg: cfg}

	fmt.Println("Welcome to Apollo, your synthetic data generation tool.")
	for {
		fmt.Print(`
Main Menu
  1. Generate data
  2. List prompt templates
  3. Exit
`)
		switch m.prompt("Enter your choice", "1") {
		case "1":
			m.generateMenu()
		case "2":
			m.listPrompts()
		case "3":
			fmt.Println("Goodbye!")
			return
		}
	}
}

func (m *menu) listPrompts() {
	if len(m.cfg.Prompts) == 0 {
		fmt.Println("No prompt templates configured. Add a [prompts] table to", config.DefaultPath)
		return
	}
	names := make([]string, 0, len(m.cfg.Prompts))
	for name := range m.cfg.Prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  @%s: %s\n", name, m.cfg.Prompts[name])
	}
}

func (m *menu) generateMenu() {
	for {
		fmt.Print(`
Generate Data
  1. Binary data (Yes/No responses)
  2. Weighted data (custom labels and probabilities)
  3. Faker data (names, addresses, text, ...)
  4. GenAI data (generative model backed)
  5. Back
`)
		switch m.prompt("Choose data type", "1") {
		case "1":
			m.generateBinary()
		case "2":
			m.generateWeighted()
		case "3":
			m.generateFaker()
		case "4":
			m.generateGenAI()
		case "5":
			return
		}
	}
}

func (m *menu) batchPrompts(defaultOutput string) batchFlags {
	b := batchFlags{configPath: config.DefaultPath}
	b.numEntries = m.promptInt("Number of entries", m.cfg.Defaults.NumEntries)
	b.format = m.promptChoice("Output format", []string{"csv", "jsonl", "yaml"}, m.cfg.Defaults.Format)
	b.outputPath = m.prompt("Output file path", defaultOutput+"."+b.format)
	return b
}

func (m *menu) generateBinary() {
	var p float64
	for {
		p = m.promptFloat("Probability of 'Yes' (0.0-1.0)", 0.5)
		if p >= 0 && p <= 1 {
			break
		}
		fmt.Println("Probability must be between 0 and 1.")
	}
	b := m.batchPrompts("binary_data")

	g := generator.NewBinaryGenerator(p, generator.DefaultSource())
	records := collectWithProgress(g, b.numEntries, "Generating binary data")
	finishBatch(records, "binary", &b, m.cfg)
}

func (m *menu) generateWeighted() {
	choices := m.prompt("Weighted choices (e.g. 'A:0.5,B:0.3,C:0.2')", "A:0.5,B:0.5")
	g, err := generator.NewWeightedGenerator(choices, generator.DefaultSource())
	if err != nil {
		fail(err)
		return
	}
	b := m.batchPrompts("weighted_data")

	records := collectWithProgress(g, b.numEntries, "Generating weighted data")
	finishBatch(records, "weighted", &b, m.cfg)
}

func (m *menu) generateFaker() {
	provider := m.prompt("Faker provider (e.g. 'name', 'address', 'text')", "name")
	method := m.prompt("Faker method (e.g. 'name', 'city', 'sentence')", "name")
	g, err := generator.NewFakerGenerator(provider, method, 0)
	if err != nil {
		fail(err)
		return
	}
	b := m.batchPrompts("faker_data")

	records := collectWithProgress(g, b.numEntries, "Generating faker data")
	finishBatch(records, "faker", &b, m.cfg)
}

func (m *menu) generateGenAI() {
	prompt := m.prompt("GenAI prompt (or @name for a template)", "Generate a short example JSON object.")
	promptText, err := m.cfg.ResolvePrompt(prompt)
	if err != nil {
		fail(err)
		return
	}
	modelType := m.promptChoice("Model type", []string{"placeholder", "gemini", "openai", "claude"}, "placeholder")
	numSamples := m.promptInt("Number of samples", 10)

	b := batchFlags{configPath: config.DefaultPath}
	b.format = m.promptChoice("Output format", []string{"jsonl", "yaml", "csv"}, "jsonl")
	b.outputPath = m.prompt("Output file path", "genai_data."+b.format)

	llmCfg := m.cfg.LLM
	llmCfg.Provider = modelType

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llmCfg)
	if err != nil {
		fail(err)
		return
	}
	g, err := generator.NewGenAIGenerator(client, promptText, "")
	if err != nil {
		fail(err)
		return
	}

	bar := progressbar.Default(int64(numSamples), "Generating genai data")
	records, err := g.GenerateData(ctx, numSamples, func(int) { bar.Add(1) })
	if err != nil {
		fail(err)
		return
	}
	finishBatch(records, "genai", &b, m.cfg)
}
