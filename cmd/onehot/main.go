package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/djeday123/onehot/pkg/config"
	"github.com/djeday123/onehot/pkg/pipeline"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("onehot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON config file (optional)")
	lower := fs.Bool("lower", true, "Lower-case the sentence before splitting")
	normName := fs.String("norm", "none", "Unicode normalization: none, nfc, nfd, nfkc, nfkd")
	level := fs.String("level", "word", "Token level: word or char")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: onehot [flags] [sentence ...]\n\n")
		fmt.Fprintf(stderr, "Splits the sentence on white space and prints its vocabulary,\n")
		fmt.Fprintf(stderr, "column index and one-hot matrix.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Tokenizer.Lowercase = true
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Flags given explicitly win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lower":
			cfg.Tokenizer.Lowercase = *lower
		case "norm":
			cfg.Tokenizer.Normalization = *normName
		case "level":
			cfg.Tokenizer.Level = *level
		}
	})

	sentence := cfg.Sentence
	if fs.NArg() > 0 {
		sentence = strings.Join(fs.Args(), " ")
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	res, err := p.Process(context.Background(), sentence)
	if err != nil {
		return fmt.Errorf("failed to encode sentence: %w", err)
	}
	return res.Format(stdout)
}
