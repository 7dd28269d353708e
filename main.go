package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-simple-raytracer/pkg/annotate"
	"github.com/df07/go-simple-raytracer/pkg/loaders"
	"github.com/df07/go-simple-raytracer/pkg/renderer"
	"github.com/df07/go-simple-raytracer/pkg/scene"
	"github.com/df07/go-simple-raytracer/pkg/viewer"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	FOV       float64
	OutputDir string
	Caption   bool
	View      bool
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Built-in scene name, scene file name under scenes/, or path to a .json scene file")
	flag.IntVar(&config.Width, "width", 0, "Override the scene's image width")
	flag.IntVar(&config.Height, "height", 0, "Override the scene's image height")
	flag.Float64Var(&config.FOV, "fov", 0, "Override the scene's horizontal field of view in degrees")
	flag.StringVar(&config.OutputDir, "out", "output", "Directory to write renders to")
	flag.BoolVar(&config.Caption, "caption", false, "Draw the scene name and render time onto the image")
	flag.BoolVar(&config.View, "view", false, "Show the finished render in a window")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}

	return config
}

func showHelp() {
	fmt.Println("Simple Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-11s - %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListSceneFiles("scenes"); err == nil {
		for _, info := range files {
			fmt.Printf("  %s - %s\n", info.FilePath, info.Name)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
}

func run(config Config) error {
	fmt.Println("Starting Simple Raytracer...")

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	applyOverrides(selectedScene, config)

	logger := renderer.NewDefaultLogger()
	img, stats, err := selectedScene.Render(logger)
	if err != nil {
		return err
	}

	fmt.Printf("Pixels hit: %d of %d, depth limit reached %d times\n",
		stats.PixelsHit, stats.TotalPixels, stats.DepthLimitHits)

	if config.Caption {
		annotate.Caption(img, captionText(selectedScene, stats))
	}

	filename := outputPath(config.OutputDir, selectedScene.Name, time.Now())
	if err := savePNG(filename, img); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)

	if config.View {
		if err := viewer.Show(img, "Simple Raytracer - "+selectedScene.Name); err != nil {
			return fmt.Errorf("failed to show render: %w", err)
		}
	}

	return nil
}

// createScene resolves a scene by built-in name, by name of a file in scenes/, or by path
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if loaders.IsSceneFile(sceneType) {
		return scene.LoadFile(sceneType)
	}

	if s, err := scene.Builtin(sceneType); err == nil {
		return s, nil
	}

	if path := filepath.Join("scenes", sceneType+".json"); fileExists(path) {
		return scene.LoadFile(path)
	}

	return nil, fmt.Errorf("unknown scene %q (available: %s)", sceneType, strings.Join(scene.BuiltinNames(), ", "))
}

// applyOverrides replaces the scene's image settings with any non-zero command line values
func applyOverrides(s *scene.Scene, config Config) {
	if config.Width > 0 {
		s.Width = config.Width
	}
	if config.Height > 0 {
		s.Height = config.Height
	}
	if config.FOV > 0 {
		s.FieldOfView = config.FOV
	}
}

func captionText(s *scene.Scene, stats renderer.RenderStats) string {
	return fmt.Sprintf("%s  %dx%d  %v", s.Name, s.Width, s.Height, stats.Duration.Round(time.Millisecond))
}

// outputPath builds <dir>/<scene>/render_<timestamp>.png
func outputPath(dir, sceneName string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	name = strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if name == "" || name == "." {
		name = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, name, fmt.Sprintf("render_%s.png", timestamp))
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(filename)
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
