package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mattfbacon/sneturfahi/internal/cache"
	"github.com/mattfbacon/sneturfahi/internal/config"
	"github.com/mattfbacon/sneturfahi/internal/cst"
	"github.com/mattfbacon/sneturfahi/internal/decompose"
	pipelineerrors "github.com/mattfbacon/sneturfahi/internal/errors"
	"github.com/mattfbacon/sneturfahi/internal/lexer"
)

// Output formats accepted by --emit on the lex and parse subcommands.
const (
	emitText = "text"
	emitCBOR = "cbor"
)

func main() {
	var (
		configFile string
		noColor    bool
		watch      bool
		emit       string
	)

	rootCmd := &cobra.Command{
		Use:           "lojban",
		Short:         "Decompose, lex, and parse Lojban text",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML configuration file (defaults built in if omitted)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Re-run on every save of the input file")

	loadCfg := func() (*config.Config, error) {
		if configFile == "" {
			return config.Default()
		}
		cfg, err := config.LoadFile(configFile)
		if err != nil {
			return nil, pipelineerrors.NewConfigError("loading configuration", err)
		}
		return cfg, nil
	}

	runOnFile := func(path string, fn func(cfg *config.Config, source string) error) error {
		cfg, err := loadCfg()
		if err != nil {
			return err
		}

		run := func() error {
			source, err := readInput(path)
			if err != nil {
				return pipelineerrors.NewInputError(fmt.Sprintf("reading %s", path), err)
			}
			return fn(cfg, source)
		}

		if err := run(); err != nil {
			FormatError(os.Stderr, err, "", !noColor)
		}
		if !watch || path == "-" {
			return nil
		}
		return watchFile(path, func() {
			if err := run(); err != nil {
				FormatError(os.Stderr, err, "", !noColor)
			}
		})
	}

	decomposeCmd := &cobra.Command{
		Use:   "decompose [file]",
		Short: "Split raw text into Lojban words without classifying them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnFile(argOrStdin(args), func(_ *config.Config, source string) error {
				d := decompose.New(source)
				var words []string
				for {
					span, ok := d.Next()
					if !ok {
						break
					}
					if word, ok := span.Slice(source); ok {
						words = append(words, word)
					}
				}
				DisplayWords(os.Stdout, words)
				return nil
			})
		},
	}

	lexCmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Lex text into selmaho-classified tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEmit(emit); err != nil {
				return err
			}
			return runOnFile(argOrStdin(args), func(cfg *config.Config, source string) error {
				tokens, err := lexSource(cfg, source)
				if err != nil {
					return err
				}
				if emit == emitCBOR {
					data, err := cache.NewSnapshot(tokens).Marshal()
					if err != nil {
						return pipelineerrors.NewCacheError("encoding tokens as cbor", err)
					}
					_, err = os.Stdout.Write(data)
					return err
				}
				DisplayTokens(os.Stdout, source, tokens, ShouldUseColor(noColor))
				return nil
			})
		},
	}
	lexCmd.Flags().StringVar(&emit, "emit", emitText, "Output format: text or cbor")

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse text into a concrete syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEmit(emit); err != nil {
				return err
			}
			return runOnFile(argOrStdin(args), func(cfg *config.Config, source string) error {
				tokens, err := lexSource(cfg, source)
				if err != nil {
					return err
				}
				root, err := cst.Parse(tokens)
				if err != nil {
					return err
				}
				if emit == emitCBOR {
					data, err := cache.Encode(root)
					if err != nil {
						return pipelineerrors.NewCacheError("encoding cst as cbor", err)
					}
					_, err = os.Stdout.Write(data)
					return err
				}
				DisplayTree(os.Stdout, root, ShouldUseColor(noColor))
				return nil
			})
		},
	}
	parseCmd.Flags().StringVar(&emit, "emit", emitText, "Output format: text or cbor")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Read lines of Lojban from stdin and print their parse tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			return runRepl(cfg, os.Stdin, os.Stdout, ShouldUseColor(noColor))
		},
	}

	rootCmd.AddCommand(decomposeCmd, lexCmd, parseCmd, replCmd)

	if err := rootCmd.Execute(); err != nil {
		FormatError(os.Stderr, err, "", !noColor)
		os.Exit(1)
	}
}

// lexSource runs the lexer over source, consulting and populating the
// on-disk cache described by cfg.Cache if enabled.
func lexSource(cfg *config.Config, source string) ([]lexer.Token, error) {
	var store *cache.Store
	if cfg.Cache.Enabled {
		s, err := cache.Open(cfg.Cache.Directory)
		if err == nil {
			store = s
			if snap, found, err := store.Get(source); err == nil && found {
				return snap.ToTokens(), nil
			}
		}
	}

	l := lexer.New(source)
	var tokens []lexer.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if err := l.Err(); err != nil {
		return nil, err
	}

	if store != nil {
		_ = store.Put(source, tokens)
	}
	return tokens, nil
}

func validateEmit(emit string) error {
	if emit != emitText && emit != emitCBOR {
		return pipelineerrors.NewInputError(fmt.Sprintf("unknown --emit value %q (want %q or %q)", emit, emitText, emitCBOR), nil)
	}
	return nil
}

func argOrStdin(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "-"
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// watchFile calls onChange once for every write to path, until the process
// is interrupted.
func watchFile(path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return pipelineerrors.NewInputError("starting file watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return pipelineerrors.NewInputError(fmt.Sprintf("watching %s", path), err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			FormatError(os.Stderr, err, "", false)
		}
	}
}
