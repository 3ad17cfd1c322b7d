package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	intent "github.com/millerdave152-droid/street-legacy-sub014"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/config"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/history"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/spell"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

var (
	catalogPath string
	historyPath string
	verbose     bool
	asJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "streetwise",
	Short: "Intent classification for the street legacy assistant",
	Long: `A command-line interface for the hybrid intent classification engine:
classify player input, inspect concepts, and review classification history.`,
	SilenceUsage: true,
}

func newEngine() (*intent.Engine, error) {
	store := vocab.Default()
	if catalogPath != "" {
		var err error
		store, err = config.Load(catalogPath)
		if err != nil {
			return nil, err
		}
	}

	opts := []intent.Option{}
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		opts = append(opts, intent.WithLogger(log))
	}
	return intent.New(store, opts...)
}

func openLog() (*history.Log, error) {
	l, err := history.New(historyPath)
	if err != nil {
		return nil, err
	}
	if err := l.Init(context.Background()); err != nil {
		return nil, err
	}
	return l, nil
}

func printResult(res intent.Result) {
	if asJSON {
		data, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Intent:     %s (%s)\n", res.Intent, res.FriendlyName)
	fmt.Printf("Confidence: %.2f\n", res.Confidence)
	fmt.Printf("Source:     %s\n", res.Source)
	if res.Preprocessed.WasModified {
		fmt.Printf("Normalized: %s\n", res.Preprocessed.Normalized)
	}
	for _, m := range res.TopMatches {
		fmt.Printf("  %-20s %.3f\n", m.Intent, m.Score)
	}
	for _, e := range res.Entities {
		fmt.Printf("  entity %s: %s\n", e.Kind, e.Value)
	}
}

var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "Classify a single input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		text := strings.Join(args, " ")
		res := engine.Classify(text)
		printResult(res)

		if historyPath != "" {
			log, err := openLog()
			if err != nil {
				return err
			}
			defer log.Close()
			_, err = log.Record(context.Background(), history.Entry{
				Input:      text,
				Normalized: res.Preprocessed.Normalized,
				Intent:     res.Intent,
				Confidence: res.Confidence,
				Source:     string(res.Source),
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Classify lines interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		var log *history.Log
		if historyPath != "" {
			if log, err = openLog(); err != nil {
				return err
			}
			defer log.Close()
		}

		fmt.Println("streetwise repl; empty line or ctrl-d to quit")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			res := engine.Classify(line)
			printResult(res)
			if log != nil {
				_, _ = log.Record(context.Background(), history.Entry{
					Input:      line,
					Normalized: res.Preprocessed.Normalized,
					Intent:     res.Intent,
					Confidence: res.Confidence,
					Source:     string(res.Source),
				})
			}
		}
		return scanner.Err()
	},
}

var conceptsCmd = &cobra.Command{
	Use:   "concepts <text>",
	Short: "Show the concept clusters an input touches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		concepts := engine.Concepts(strings.Join(args, " "))
		if len(concepts) == 0 {
			fmt.Println("no recognizable concepts")
			return nil
		}
		fmt.Println(strings.Join(concepts, ", "))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <word>",
	Short: "Suggest vocabulary words for a possible typo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := vocab.Default()
		if catalogPath != "" {
			var err error
			store, err = config.Load(catalogPath)
			if err != nil {
				return err
			}
		}

		corr := spell.New(store)
		for _, s := range corr.Suggest(args[0], 5) {
			fmt.Printf("%-15s %.3f (%s)\n", s.Word, s.Score, s.Source)
		}
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <phrase a> <phrase b>",
	Short: "Compare two phrases in concept space",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		threshold, _ := cmd.Flags().GetFloat64("threshold")
		similar := engine.IsSimilarTo(args[0], args[1], threshold)
		fmt.Printf("similar (threshold %.2f): %v\n", threshold, similar)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent classifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyPath == "" {
			return fmt.Errorf("--db is required for history")
		}
		log, err := openLog()
		if err != nil {
			return err
		}
		defer log.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		filter, _ := cmd.Flags().GetString("intent")

		ctx := context.Background()
		var entries []history.Entry
		if filter != "" {
			entries, err = log.ByIntent(ctx, filter, limit)
		} else {
			entries, err = log.Recent(ctx, limit)
		}
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Printf("%s  %-20s %.2f  %-22s %s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"),
				e.Intent, e.Confidence, e.Source, e.Input)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the built-in catalog to a YAML file for hand editing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(args[0], vocab.DefaultCatalog()); err != nil {
			return err
		}
		fmt.Printf("Catalog written to %s\n", args[0])
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show engine configuration and catalog sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		data, _ := json.MarshalIndent(engine.Stats(), "", "  ")
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "YAML catalog file (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&historyPath, "db", "", "SQLite history database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "output results as JSON")

	similarCmd.Flags().Float64("threshold", 0.8, "similarity threshold")
	historyCmd.Flags().Int("limit", 20, "maximum entries to show")
	historyCmd.Flags().String("intent", "", "filter by intent id")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
