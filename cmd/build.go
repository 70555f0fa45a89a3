package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/avhrem/novelbind/internal/binder"
	"github.com/avhrem/novelbind/internal/chapters"
	"github.com/avhrem/novelbind/internal/config"
	"github.com/avhrem/novelbind/internal/output"
	"github.com/avhrem/novelbind/internal/providers"
	"github.com/avhrem/novelbind/internal/providers/generic"
	"github.com/avhrem/novelbind/internal/sanitize"
	"github.com/avhrem/novelbind/internal/ui"
	"github.com/avhrem/novelbind/internal/util"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagURL     string
	flagChapter string
	flagRange   string
	flagList    string

	// runtime
	flagOutput      string
	flagFormat      string
	flagGroupSize   int
	flagStartNumber int
	flagThrottleMS  int
	flagDryRun      bool
	flagSkipBroken  bool

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
)

func init() {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch a novel's chapters and bind them into paginated documents. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runBuild,
	}

	// selection
	buildCmd.Flags().StringVar(&flagURL, "url", "", "novel landing page URL")
	buildCmd.Flags().StringVar(&flagChapter, "chapter", "", "fetch a single chapter by index (e.g. 5)")
	buildCmd.Flags().StringVar(&flagRange, "range", "", "fetch a range of chapters by index (e.g. 5-12)")
	buildCmd.Flags().StringVar(&flagList, "list", "", "fetch specific chapter indices (e.g. 1,3,5)")

	// runtime
	buildCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for bound volumes")
	buildCmd.Flags().StringVar(&flagFormat, "format", "", "output format: html or markdown")
	buildCmd.Flags().IntVar(&flagGroupSize, "group-size", 0, "chapters per output volume")
	buildCmd.Flags().IntVar(&flagStartNumber, "start-number", 0, "global number of the first fetched chapter")
	buildCmd.Flags().IntVar(&flagThrottleMS, "throttle-ms", 0, "delay before each chapter request, in milliseconds")
	buildCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be fetched, don't fetch")
	buildCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "skip failed chapters instead of aborting the run")

	// headers/auth
	buildCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	buildCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	buildCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagOutput,
		Format:       flagFormat,
		GroupSize:    flagGroupSize,
		StartNumber:  flagStartNumber,
		ThrottleMS:   flagThrottleMS,
		DefaultURL:   flagURL,
		DefaultRange: flagRange,
		DefaultList:  flagList,
		Cookie:       flagCookie,
		CookieFile:   flagCookieFile,
		UserAgent:    flagUserAgent,
		SkipBroken:   flagSkipBroken,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	fmt.Println("Full config:")
	cfg.Print()
	fmt.Println()

	if cfg.DefaultURL == "" {
		return fmt.Errorf("missing --url and no default_url in config")
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:        time.Duration(cfg.TimeoutSec) * time.Second,
		ConnectTimeout: time.Duration(cfg.ConnectTimeoutSec) * time.Second,
		UserAgent:      util.PickUserAgent(cfg.UserAgent),
		Cookie:         cfg.Cookie,
		CookieFile:     cfg.CookieFile,
		DebugLogger:    logSvc,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	util.SetupInterruptHandler(cfg.Output)

	scr := generic.NewScraper(
		util.NewFetcher(client),
		sanitize.New(cfg.StripRules),
		logSvc,
		generic.Options{
			ContentSelectors: cfg.ContentSelectors,
			LinkSelectors:    cfg.LinkSelectors,
			ArchivePath:      cfg.ArchivePath,
		},
	)

	meta, allRaw, err := scr.ResolveChapters(ctx, cfg.DefaultURL)
	if err != nil {
		return err
	}

	all := make([]chapters.Chapter, len(allRaw))
	for i, c := range allRaw {
		all[i] = chapters.Chapter{Chapter: c}
	}

	printNovel(meta, len(all))

	selected := chapters.Select(all, flagChapter, cfg.DefaultRange, cfg.DefaultList)
	if len(selected) == 0 {
		return fmt.Errorf("no chapters selected")
	}

	if flagDryRun {
		fmt.Printf("Dry-run: %d chapters selected.\n\n", len(selected))
		for i, ch := range selected {
			fmt.Printf("%3d) %s\n    %s\n", i+1, ch.Name, ch.URL)
		}
		return nil
	}

	writer, err := output.NewWriter(cfg.Output, cfg.Format)
	if err != nil {
		return err
	}

	pm := ui.NewProgressManager(1)
	handle := pm.Register(chapterRunPrefix(meta))
	handle.SetTotal(len(selected))

	bnd := binder.New(scr, time.Duration(cfg.ThrottleMS)*time.Millisecond, cfg.SkipBroken, logSvc)
	stats := &ui.Stats{}
	start := time.Now()

	fetched, bytes, err := bnd.FetchAll(ctx, selected, handle)
	handle.MarkDone()
	pm.Close()
	if err != nil {
		return err
	}

	groups, err := bnd.Bind(fetched, cfg.GroupSize, cfg.StartNumber)
	if err != nil {
		return err
	}

	for _, g := range groups {
		path, size, err := writer.WriteGroup(meta, g)
		if err != nil {
			return fmt.Errorf("writing chapters %s: %w", g.Label(), err)
		}

		logSvc.Infof("wrote %s (%s)\n", path, util.Human(size))
		stats.TotalGroups.Add(1)
	}

	stats.TotalChapters.Add(int64(len(fetched)))
	stats.TotalBytes.Add(bytes)

	fmt.Println()
	fmt.Println("Build Summary:")
	fmt.Printf("Chapters: %d\n", stats.TotalChapters.Load())
	fmt.Printf("Volumes:  %d\n", stats.TotalGroups.Load())
	fmt.Printf("Content:  %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))
	fmt.Println("\nAll done.")

	return nil
}

func printNovel(meta providers.Metadata, n int) {
	if meta.Title != "" {
		fmt.Printf("Novel: %s\n", meta.Title)
	}
	if meta.Author != "" {
		fmt.Printf("Author: %s\n", meta.Author)
	}
	if meta.Status != "" {
		fmt.Printf("Status: %s\n", meta.Status)
	}
	fmt.Printf("Found %d chapters on the site.\n\n", n)
}

func chapterRunPrefix(meta providers.Metadata) string {
	if meta.Title != "" {
		return meta.Title
	}
	return "Chapters"
}
