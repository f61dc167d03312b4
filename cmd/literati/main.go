package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/literati/internal/build"
	"github.com/gubarz/literati/internal/config"
	"github.com/gubarz/literati/internal/literate"
	"github.com/gubarz/literati/internal/logging"
	"github.com/gubarz/literati/internal/output"
	"github.com/gubarz/literati/internal/render"
	_ "github.com/gubarz/literati/internal/render/all"
	"github.com/gubarz/literati/internal/render/terminal"
	"github.com/gubarz/literati/internal/ui"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "literati [path]",
	Short: "Render literate source to HTML",
	Long: `Renders literate source files to HTML.

Lines starting with "> " are code. Each run of code lines becomes a
fenced haskell block; everything else is Markdown. With no path, or
with "-", the document is read from stdin.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRender,
}

var buildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Render every literate file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List available Markdown engines",
	Args:  cobra.NoArgs,
	RunE:  runEngines,
}

var previewCmd = &cobra.Command{
	Use:   "preview [path]",
	Short: "Preview a literate file in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(previewCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/literati/literati.yaml)")
	rootCmd.PersistentFlags().StringP("engine", "e", "", "Markdown engine (default: first available)")
	rootCmd.PersistentFlags().BoolP("markdown", "M", false, "Emit Markdown instead of HTML")
	rootCmd.PersistentFlags().Bool("highlight", false, "Syntax highlight code blocks (goldmark)")
	rootCmd.PersistentFlags().String("style", "", "Highlight style")

	rootCmd.Flags().StringP("output", "o", "", "Output mode: print, copy, file")
	rootCmd.Flags().StringP("file", "f", "", "Destination for file output")
	rootCmd.Flags().BoolP("benchmark", "b", false, "Benchmark render time and exit")

	buildCmd.Flags().StringP("out", "d", "", "Output directory")

	bindFlags()
}

// bindFlags ties config keys to their command-line flags
func bindFlags() {
	viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	viper.BindPFlag("highlight", rootCmd.PersistentFlags().Lookup("highlight"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("out_dir", buildCmd.Flags().Lookup("out"))
}

// initConfig loads configuration. An explicit --config file must load;
// the default search only warns.
func initConfig() error {
	if cfgFile != "" {
		if err := config.InitFile(cfgFile); err != nil {
			return fmt.Errorf("error loading config %s: %w", cfgFile, err)
		}
	} else if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	return logging.Configure(os.Stderr, config.GetLogLevel(), config.GetLogFormat())
}

// htmlRenderer binds the engine named by --engine or config, falling back
// to the first available engine in the configured preference order.
func htmlRenderer(cmd *cobra.Command) (render.Renderer, error) {
	if style, _ := cmd.Flags().GetString("style"); style != "" {
		config.SetHighlightStyle(style)
	}
	opts := config.RenderOptions()

	if name := config.GetEngine(); name != "" {
		return render.New(name, opts)
	}

	resolver := render.NewResolver(nil, config.GetEngines(), opts)
	r, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	logging.GetLogger().Debug("engine bound", "engine", resolver.Name())
	return r, nil
}

// readSource reads the document named by args, or stdin
func readSource(args []string) (name, content string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return "", "", fmt.Errorf("error resolving path: %w", err)
	}
	content, err = literate.ReadFile(absPath)
	if err != nil {
		return "", "", fmt.Errorf("path error: %w", err)
	}
	return absPath, content, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	name, content, err := readSource(args)
	if err != nil {
		return err
	}

	mode, err := output.ParseMode(config.GetOutput())
	if err != nil {
		return err
	}
	dest, _ := cmd.Flags().GetString("file")
	if dest != "" && mode == output.ModePrint {
		mode = output.ModeFile
	}

	asMarkdown, _ := cmd.Flags().GetBool("markdown")
	benchmark, _ := cmd.Flags().GetBool("benchmark")
	start := time.Now()

	var doc string
	if asMarkdown {
		doc = literate.Transform(content)
	} else {
		r, err := htmlRenderer(cmd)
		if err != nil {
			return err
		}
		if doc, err = literate.ToHTML(content, r); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
	}

	if benchmark {
		elapsed := time.Since(start)
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("Rendered %d lines (%d bytes) in %v\n", len(literate.SplitLines(content)), len(doc), elapsed)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
		return nil
	}

	return output.NewEmitter().Emit(doc, mode, dest)
}

func runBuild(cmd *cobra.Command, args []string) error {
	asMarkdown, _ := cmd.Flags().GetBool("markdown")

	var r render.Renderer
	if !asMarkdown {
		var err error
		if r, err = htmlRenderer(cmd); err != nil {
			return err
		}
	}

	b := &build.Builder{
		Renderer:   r,
		OutDir:     config.GetOutDir(),
		Markdown:   asMarkdown,
		Extensions: config.GetExtensions(),
		Logger:     logging.GetLogger(),
	}

	result, err := b.Run(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("build error: %w", err)
	}
	if len(result.Files) == 0 {
		return fmt.Errorf("no literate files found in %s (extensions: %s)",
			args[0], strings.Join(config.GetExtensions(), ", "))
	}
	fmt.Fprintf(os.Stderr, "Wrote %d files to %s\n", len(result.Files), b.OutDir)
	return nil
}

func runEngines(cmd *cobra.Command, args []string) error {
	resolver := render.NewResolver(nil, config.GetEngines(), config.RenderOptions())
	fmt.Print(ui.FormatEngines(render.DefaultRegistry.Engines(), resolver.Name()))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	name, content, err := readSource(args)
	if err != nil {
		return err
	}

	r, err := terminal.New(config.PreviewOptions())
	if err != nil {
		return err
	}
	return ui.Run(filepath.Base(name), literate.Transform(content), r)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
