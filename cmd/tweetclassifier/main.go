// Package main is the TweetClassifier CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HananMiftah/TweetClassifier/internal/analysis"
	"github.com/HananMiftah/TweetClassifier/internal/cli"
	"github.com/HananMiftah/TweetClassifier/internal/config"
	"github.com/HananMiftah/TweetClassifier/internal/dataset"
	"github.com/HananMiftah/TweetClassifier/internal/lexicon"
	"github.com/HananMiftah/TweetClassifier/internal/models"
	"github.com/HananMiftah/TweetClassifier/internal/server"
	"github.com/HananMiftah/TweetClassifier/internal/storage"
	"github.com/HananMiftah/TweetClassifier/internal/tui"
	"github.com/HananMiftah/TweetClassifier/internal/watcher"
	"github.com/HananMiftah/TweetClassifier/pkg/utils"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "classify":
		runClassify()
	case "cluster":
		runCluster()
	case "evaluate":
		runEvaluate()
	case "lexicon":
		runLexicon()
	case "runs":
		runRuns()
	case "watch":
		runWatch()
	case "tui":
		runTUI()
	case "version", "--version", "-v":
		fmt.Printf("tweetclassifier version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig resolves the configuration in precedence order (flag,
// environment variable, working-directory file, built-in defaults) and
// reports which source was used.
func loadConfig(flagPath string) (*config.Config, string, error) {
	return config.Resolve(flagPath)
}

func newLogger(cfg *config.Config, debugFlag bool) *zap.Logger {
	logger, err := utils.NewLogger(cfg.Debug || debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// Components holds the initialized services shared by the subcommands.
type Components struct {
	Store   storage.Store
	Loader  *dataset.Loader
	Lexicon *lexicon.Lexicon
	Engine  *analysis.Engine
}

func (c *Components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize run storage: %w", err)
	}

	lex := lexicon.Default()
	if cfg.Lexicon.PositivePath != "" || cfg.Lexicon.NegativePath != "" {
		lex, err = lexicon.LoadFiles(cfg.Lexicon.PositivePath, cfg.Lexicon.NegativePath)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
	}

	loader := dataset.NewLoader()
	engine := analysis.NewEngine(loader, lex, store, cfg, logger)

	return &Components{
		Store:   store,
		Loader:  loader,
		Lexicon: lex,
		Engine:  engine,
	}, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (request handling, run recording, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, source, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_source", source),
		zap.Bool("debug", cfg.Debug || *debug),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	srv := server.NewServer(components.Engine, components.Store, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func printClassifyUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: tweetclassifier classify [flags] <text>\n\n")
	fmt.Fprintf(fs.Output(), "Text is all remaining arguments joined by spaces. Multi-word tweets work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  tweetclassifier classify --dataset tweets i love this phone
  tweetclassifier classify --dataset tweets "i love this phone"   # same as above
  tweetclassifier classify --dataset data/tweets.csv --k 5 --vote weighted what a day
  tweetclassifier classify --dataset tweets --metric cosine --output json awful service
`)
}

// buildQueryText joins all positional args with spaces so multi-word
// tweets work the same with or without shell quoting.
func buildQueryText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// argsReorder moves any flags (and their values) that appear after the
// query text to the front of the slice so that flag.Parse() sees them.
// Go's flag package stops at the first non-flag argument, so
// "tweetclassifier classify \"great phone\" -k 5" would otherwise
// leave -k unparsed.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// parseOutputFormat maps the --output flag value onto a format,
// reporting whether the name was recognized.
func parseOutputFormat(name string) (cli.OutputFormat, bool) {
	switch name {
	case "json":
		return cli.OutputJSON, true
	case "text", "":
		return cli.OutputText, true
	default:
		return cli.OutputText, false
	}
}

func runClassify() {
	classifyArgs := argsReorder(os.Args[2:])

	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	datasetFlag := fs.String("dataset", "", "dataset name (from config) or file path")
	k := fs.Int("k", 0, "number of neighbors (default from config)")
	vote := fs.String("vote", "", "vote type: majority or weighted (default from config)")
	metric := fs.String("metric", "", "distance metric: default, jaccard, cosine, or levenshtein")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printClassifyUsage(fs) }
	_ = fs.Parse(classifyArgs)

	query := buildQueryText(fs.Args())
	if query == "" {
		printClassifyUsage(fs)
		os.Exit(1)
	}

	format, ok := parseOutputFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	ds, err := loadDataset(components.Engine, cfg, *datasetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	req := &models.ClassifyRequest{
		Query:  query,
		K:      pickInt(*k, cfg.Analysis.K),
		Vote:   pickString(*vote, cfg.Analysis.Vote),
		Metric: pickString(*metric, cfg.Analysis.Metric),
	}
	report, err := components.Engine.Classify(context.Background(), ds, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Classification failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteClassifyReport(os.Stdout, report, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runCluster() {
	fs := flag.NewFlagSet("cluster", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	datasetFlag := fs.String("dataset", "", "dataset name (from config) or file path")
	method := fs.String("method", "", "linkage method: average, complete, or ward (default from config)")
	metric := fs.String("metric", "", "distance metric: default, jaccard, cosine, or levenshtein")
	clusters := fs.Int("clusters", 0, "number of flat clusters to extract (default from config)")
	dendrogram := fs.Bool("dendrogram", false, "also render the merge tree")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if *datasetFlag == "" && fs.NArg() > 0 {
		*datasetFlag = fs.Arg(0)
	}

	format, ok := parseOutputFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	ds, err := loadDataset(components.Engine, cfg, *datasetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	req := &models.ClusterRequest{
		Dataset:  ds.Name,
		Method:   pickString(*method, cfg.Analysis.Method),
		Metric:   pickString(*metric, cfg.Analysis.Metric),
		Clusters: pickInt(*clusters, cfg.Analysis.Clusters),
	}
	report, err := components.Engine.Cluster(context.Background(), ds, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Clustering failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteClusterReport(os.Stdout, report, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
	if *dendrogram && format == cli.OutputText {
		cli.WriteDendrogram(os.Stdout, ds, report.Dendrogram)
	}
}

func runEvaluate() {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	datasetFlag := fs.String("dataset", "", "dataset name (from config) or file path")
	mode := fs.String("mode", "knn", "classifier to evaluate: knn (leave-one-out) or lexicon")
	k := fs.Int("k", 0, "number of neighbors (knn mode, default from config)")
	vote := fs.String("vote", "", "vote type: majority or weighted (knn mode)")
	metric := fs.String("metric", "", "distance metric (knn mode)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if *datasetFlag == "" && fs.NArg() > 0 {
		*datasetFlag = fs.Arg(0)
	}

	format, ok := parseOutputFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	ds, err := loadDataset(components.Engine, cfg, *datasetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	var report *models.ClassifyReport
	switch *mode {
	case "knn":
		req := &models.ClassifyRequest{
			K:      pickInt(*k, cfg.Analysis.K),
			Vote:   pickString(*vote, cfg.Analysis.Vote),
			Metric: pickString(*metric, cfg.Analysis.Metric),
		}
		report, err = components.Engine.EvaluateKNN(context.Background(), ds, req)
	case "lexicon":
		report, err = components.Engine.EvaluateLexicon(context.Background(), ds)
	default:
		fmt.Printf("Unknown mode %q; use knn or lexicon\n", *mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteClassifyReport(os.Stdout, report, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runLexicon() {
	lexArgs := argsReorder(os.Args[2:])

	fs := flag.NewFlagSet("lexicon", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	_ = fs.Parse(lexArgs)

	query := buildQueryText(fs.Args())
	if query == "" {
		fmt.Println("Usage: tweetclassifier lexicon [flags] <text>")
		fmt.Println("To score the heuristic against a labeled dataset, use: tweetclassifier evaluate --mode lexicon")
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	fmt.Printf("Prediction: %s\n", components.Engine.LexiconPredict(query))
}

func runRuns() {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	limit := fs.Int("limit", 20, "number of runs to list, newest first")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, ok := parseOutputFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	ctx := context.Background()
	if fs.NArg() > 0 {
		run, err := components.Store.GetRun(ctx, fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Run lookup failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteRuns(os.Stdout, []*models.Run{run}, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := components.Store.ListRuns(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run listing failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteRuns(os.Stdout, runs, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	datasetFlag := fs.String("dataset", "", "dataset name (from config) or file path")
	method := fs.String("method", "", "linkage method: average, complete, or ward")
	metric := fs.String("metric", "", "distance metric")
	clusters := fs.Int("clusters", 0, "number of flat clusters to extract")
	_ = fs.Parse(os.Args[2:])

	if *datasetFlag == "" && fs.NArg() > 0 {
		*datasetFlag = fs.Arg(0)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	ds, err := loadDataset(components.Engine, cfg, *datasetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	recluster := func(path string) {
		ds, err := components.Engine.LoadDataset(path)
		if err != nil {
			logger.Warn("reload after change failed", zap.String("path", path), zap.Error(err))
			return
		}
		req := &models.ClusterRequest{
			Dataset:  ds.Name,
			Method:   pickString(*method, cfg.Analysis.Method),
			Metric:   pickString(*metric, cfg.Analysis.Metric),
			Clusters: pickInt(*clusters, cfg.Analysis.Clusters),
		}
		report, err := components.Engine.Cluster(context.Background(), ds, req)
		if err != nil {
			logger.Warn("re-clustering failed", zap.String("path", path), zap.Error(err))
			return
		}
		_ = cli.WriteClusterReport(os.Stdout, report, cli.OutputText)
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	watchSvc := watcher.NewWatcher(ds.Path, debounce, recluster, logger)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := watchSvc.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer watchSvc.Stop()

	// Cluster once up front so the first report does not wait for an edit.
	recluster(ds.Path)
	fmt.Fprintf(os.Stderr, "Watching %s for changes. Ctrl-C to stop.\n", ds.Path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}

func runTUI() {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	datasetFlag := fs.String("dataset", "", "dataset name (from config) or file path")
	_ = fs.Parse(os.Args[2:])

	if *datasetFlag == "" && fs.NArg() > 0 {
		*datasetFlag = fs.Arg(0)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	// The TUI owns the terminal; route zap away from stdout.
	logger := zap.NewNop()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer components.Close()

	ds, err := loadDataset(components.Engine, cfg, *datasetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	analysisCfg := cfg.Analysis
	model := tui.New(components.Engine, ds, analysisCfg)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI failed: %v\n", err)
		os.Exit(1)
	}
}

// loadDataset resolves the dataset argument: an explicit name or path
// wins, otherwise the first configured dataset is used.
func loadDataset(engine *analysis.Engine, cfg *config.Config, nameOrPath string) (*models.Dataset, error) {
	if nameOrPath == "" {
		if len(cfg.Datasets) == 0 {
			return nil, fmt.Errorf("no dataset given and none configured; pass --dataset <name-or-path>")
		}
		nameOrPath = cfg.Datasets[0].Name
	}
	return engine.LoadDataset(nameOrPath)
}

// pickInt returns the flag value when set, the config default otherwise.
func pickInt(flagValue, configValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configValue
}

// pickString returns the flag value when set, the config default otherwise.
func pickString(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func printUsage() {
	fmt.Println(`tweetclassifier - Sentiment classification and clustering for short texts

Usage:
  tweetclassifier server [flags]             Start the HTTP API server
  tweetclassifier classify [flags] <text>    Predict the sentiment of one tweet
  tweetclassifier cluster [flags] [dataset]  Hierarchically cluster a dataset
  tweetclassifier evaluate [flags] [dataset] Score a classifier against ground truth
  tweetclassifier lexicon [flags] <text>     Word-list heuristic prediction for one tweet
  tweetclassifier runs [flags] [id]          Show stored run history
  tweetclassifier watch [flags] [dataset]    Re-cluster whenever the dataset file changes
  tweetclassifier tui [flags] [dataset]      Interactive classification session
  tweetclassifier version                    Show version
  tweetclassifier help                       Show this help

Server Flags:
  --config string    Config file path (default: $TWEETCLASSIFIER_CONFIG, then ./tweetclassifier.yaml)
  --debug            Enable debug logging

Classify Flags:
  --config string    Config file path
  --dataset string   Dataset name (from config) or file path
  --k int            Number of neighbors
  --vote string      Vote type: majority or weighted
  --metric string    Distance metric: default, jaccard, cosine, or levenshtein
  --output string    Output format: text or json (default: text)

Cluster Flags:
  --config string    Config file path
  --dataset string   Dataset name (from config) or file path
  --method string    Linkage method: average, complete, or ward
  --metric string    Distance metric
  --clusters int     Number of flat clusters to extract
  --dendrogram       Also render the merge tree
  --output string    Output format: text or json (default: text)

Evaluate Flags:
  --mode string      Classifier to evaluate: knn (leave-one-out) or lexicon (default: knn)
  (plus the classify flags)

Examples:
  tweetclassifier server
  tweetclassifier classify --dataset tweets "i love this phone"
  tweetclassifier cluster --method ward --clusters 3 --dendrogram data/tweets.csv
  tweetclassifier evaluate --mode lexicon data/tweets.csv
  tweetclassifier runs --limit 10
  tweetclassifier watch data/tweets.csv
  tweetclassifier tui --dataset tweets`)
}
