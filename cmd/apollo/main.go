package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const version = "0.2.0"

func usage() {
	fmt.Print(`apollo - synthetic data generation tool

Usage:
  apollo                    interactive mode
  apollo generate <type>    generate data (binary, weighted, faker, genai)
  apollo serve              expose the generators over HTTP
  apollo version            print the version

Run 'apollo generate <type> -h' for the flags of each generator.
`)
}

func main() {
	// API keys commonly live in a local .env; absence is fine.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		runMenu()
		return
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "version":
		fmt.Println("apollo " + version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
