package commands

import (
	"context"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielmarass/webmark/internal/folders"
	"github.com/danielmarass/webmark/internal/logger"
	"github.com/danielmarass/webmark/internal/prefs"
	"github.com/danielmarass/webmark/pkg/fetcher"
	"github.com/danielmarass/webmark/pkg/webmark"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a web page to a Markdown file",
	Long: `Fetch a web page and write it as a Markdown document with YAML
front matter. By default the main content is extracted, images are
downloaded next to the document, affiliate links are unwrapped, and the
filename is derived from the page title.

Examples:
  webmark convert -u "https://example.com/article"
  webmark convert -u "https://example.com/article" -o ~/notes -f article.md
  webmark convert -u "https://example.com/article" --no-images --no-aggressive`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()

	flags.StringP("url", "u", "", "URL to convert (required)")
	flags.StringP("output", "o", "", "output directory (default: preference or ~/Downloads)")
	flags.StringP("filename", "f", "", "output filename (.md appended if missing; default: derived from title)")

	flags.Bool("no-strip", false, "keep navigation, ads and other non-content elements")
	flags.Bool("no-images", false, "do not download images locally")
	flags.Bool("keep-affiliate-links", false, "do not unwrap affiliate/tracking links")
	flags.Bool("no-aggressive", false, "disable platform-specific cleanup heuristics")
	flags.Bool("open", false, "open the file after conversion")

	flags.Duration("timeout", 30*time.Second, "request timeout")

	_ = convertCmd.MarkFlagRequired("url")
}

// logNotifier forwards pipeline progress to the structured logger.
type logNotifier struct{}

func (logNotifier) Progress(stage webmark.Stage, message string) {
	if message != "" {
		logger.Info("progress", "stage", stage, "message", message)
		return
	}
	logger.Info("progress", "stage", stage)
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pageURL, _ := cmd.Flags().GetString("url")
	outputDir, _ := cmd.Flags().GetString("output")
	filename, _ := cmd.Flags().GetString("filename")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	noStrip, _ := cmd.Flags().GetBool("no-strip")
	noImages, _ := cmd.Flags().GetBool("no-images")
	keepAffiliate, _ := cmd.Flags().GetBool("keep-affiliate-links")
	noAggressive, _ := cmd.Flags().GetBool("no-aggressive")
	openAfter, _ := cmd.Flags().GetBool("open")

	if outputDir == "" {
		outputDir = prefs.DefaultOutputPath()
	}

	store, err := folders.NewStore()
	if err != nil {
		logger.Error("failed to open recent-folder store", "error", err)
		return err
	}

	opts := webmark.DefaultOptions()
	opts.StripNonContent = !noStrip
	opts.DownloadImages = !noImages
	opts.CleanAffiliateLinks = !keepAffiliate
	opts.AggressiveCleanup = !noAggressive
	opts.AutoGenerateFilename = filename == ""

	conv := webmark.New(
		webmark.WithFetcher(fetcher.NewStatic(fetcher.StaticConfig{Timeout: timeout})),
		webmark.WithNotifier(logNotifier{}),
		webmark.WithFolderStore(store),
	)
	defer func() { _ = conv.Close() }()

	result, err := conv.Convert(ctx, webmark.Request{
		URL:       pageURL,
		OutputDir: outputDir,
		Filename:  filename,
		Options:   opts,
	})
	if err != nil {
		logger.Error("conversion failed", "url", pageURL, "error", err)
		return err
	}

	cmd.Println(result.OutputPath)

	if openAfter || prefs.AutoOpenFile() {
		if err := openFile(result.OutputPath); err != nil {
			logger.Warn("failed to open file", "path", result.OutputPath, "error", err)
		}
	}
	return nil
}

func openFile(path string) error {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	return exec.Command(name, path).Start()
}
