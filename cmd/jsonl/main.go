package main

import (
	"flag"
	"log"
	"strings"

	"lexiquiz/internal/dataset"
)

func main() {
	input := flag.String("input", "", "JSON array file to convert")
	output := flag.String("output", "", "output .jsonl file (defaults to input with .jsonl extension)")
	flag.Parse()

	if *input == "" {
		log.Fatal("-input is required")
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(*input, ".json") + ".jsonl"
	}

	n, err := dataset.ConvertJSONL(*input, out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d records to %s", n, out)
}
