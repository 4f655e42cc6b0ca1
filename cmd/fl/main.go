package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"foldline/pkg/config"
	"foldline/pkg/export"
	"foldline/pkg/outline"
	"foldline/pkg/ui"
	"foldline/pkg/watcher"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	seedPath := flag.String("seed", "", "Load the outline from a YAML seed file")
	dropZones := flag.Bool("drop-zones", false, "Show drop zone rows under every folder")
	watch := flag.Bool("watch", false, "Reload the outline when the seed file changes (requires --seed)")
	robotHelp := flag.Bool("robot-help", false, "Show AI agent help")
	robotOutline := flag.Bool("robot-outline", false, "Output the display projection as JSON and exit")
	exportFile := flag.String("export-md", "", "Export the outline to a Markdown file (e.g., outline.md)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: fl [options]")
		fmt.Println("\nA TUI for arranging rows and folders.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("fl %s\n", Version)
		os.Exit(0)
	}

	if *robotHelp {
		printRobotHelp()
		os.Exit(0)
	}

	seed, err := loadSeed(*seedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading seed: %v\n", err)
		os.Exit(1)
	}

	engine := outline.New(outline.WithDropZones(*dropZones))
	engine.Initialize(seed.Materialize())

	if *robotOutline {
		if err := export.WriteJSON(os.Stdout, engine.DisplayList()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing outline: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *exportFile != "" {
		if err := exportMarkdown(*exportFile, seed.Name, engine.DisplayList()); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting markdown: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported outline to %s\n", *exportFile)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: fl needs a terminal. Use --robot-outline for machine output.")
		os.Exit(1)
	}

	theme := ui.DefaultTheme(lipgloss.DefaultRenderer())

	if *watch && *seedPath != "" {
		if err := runWithWatch(engine, theme, *seedPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if *watch {
		fmt.Fprintln(os.Stderr, "Warning: --watch has no effect without --seed")
	}

	if err := ui.Run(ui.NewModel(engine, theme)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSeed(path string) (*config.Seed, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func exportMarkdown(path, title string, nodes []outline.Node) error {
	if title == "" {
		title = "Outline"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteMarkdown(f, title, nodes)
}

// runWithWatch runs the TUI alongside the seed file watcher, feeding
// debounced change signals into the model as reloads.
func runWithWatch(engine *outline.Engine, theme ui.Theme, seedPath string) error {
	w, err := watcher.New(seedPath, watcher.DefaultDebounce)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := w.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		m := ui.NewModel(engine, theme, ui.WithLiveReload(w.Events(), func() (*config.Seed, error) {
			return config.Load(seedPath)
		}))
		return ui.Run(m)
	})
	return g.Wait()
}

func printRobotHelp() {
	fmt.Println("fl AI Agent Interface")
	fmt.Println("=====================")
	fmt.Println("fl arranges flat rows and single-level folders. The display")
	fmt.Println("projection is the flat list a user sees: root rows in order,")
	fmt.Println("each expanded folder followed by its indented contents.")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  --robot-outline")
	fmt.Println("      Outputs the display projection as JSON.")
	fmt.Println("      Key fields per row:")
	fmt.Println("      - index: position in the display projection")
	fmt.Println("      - kind: item, folder or dropzone")
	fmt.Println("      - nested: true for rows inside an expanded folder")
	fmt.Println("      - expanded, count: folder state and content size")
	fmt.Println("")
	fmt.Println("  --export-md <file>")
	fmt.Println("      Writes the outline as a nested Markdown list.")
	fmt.Println("")
	fmt.Println("  --seed <file>")
	fmt.Println("      Loads items and folders from a YAML catalog. Combine")
	fmt.Println("      with --drop-zones to include sentinel rows, and with")
	fmt.Println("      --watch to reload the TUI on file changes.")
}
