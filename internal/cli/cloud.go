package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lexicloud/pkg/service"
)

// cloudCommand creates the "cloud" command: profile a transcript file and
// render one person's word cloud.
func (c *CLI) cloudCommand() *cobra.Command {
	var (
		person      string
		accent      string
		out         string
		width       int
		height      int
		fontPath    string
		emojiURL    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "cloud <transcript>",
		Short: "Render a word cloud from a chat transcript",
		Long: `Reads a transcript of "person: text" lines, profiles every speaker,
and renders the chosen person's idiom as a word-cloud PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readTranscript(args[0])
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return fmt.Errorf("transcript %s has no attributed lines", args[0])
			}

			svc, err := c.newTranscriptService(width, height, fontPath, emojiURL)
			if err != nil {
				return err
			}
			ingestTranscript(cmd.Context(), svc, lines, c.Logger)

			if person == "" {
				speakers, counts := people(lines)
				if !interactive {
					return fmt.Errorf("pick a speaker with --person (or --interactive); transcript has %d", len(speakers))
				}
				person, err = pickPerson(speakers, counts)
				if err != nil {
					return err
				}
				if person == "" {
					printInfo("No speaker selected")
					return nil
				}
			}

			sp := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering cloud for %s...", person))
			sp.Start()
			data, err := svc.CloudPNG(cmd.Context(), person, accent)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Render failed: %v", err))
				return err
			}
			sp.Stop()

			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			printSuccess("Rendered %s's word cloud", person)
			printFile(out)
			printNextStep("View it", "open "+out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "speaker to render")
	cmd.Flags().StringVarP(&accent, "accent", "a", "", "accent color as #rrggbb")
	cmd.Flags().StringVarP(&out, "out", "o", "cloud.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVar(&fontPath, "font", "", "truetype font path (default: discover a system font)")
	cmd.Flags().StringVar(&emojiURL, "emoji-url", "", "emoji asset URL template with one %s for the ID; assets are cached on disk")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the speaker interactively")

	return cmd
}

// newTranscriptService builds a service for local transcript profiling:
// in-memory profiles, no archive. With an emoji URL, fetched assets are
// cached in the directory the cache command manages.
func (c *CLI) newTranscriptService(width, height int, fontPath, emojiURL string) (*service.Service, error) {
	cfg := service.DefaultConfig()
	if width > 0 {
		cfg.Canvas.Width = width
	}
	if height > 0 {
		cfg.Canvas.Height = height
	}
	cfg.Font.Path = fontPath
	if emojiURL != "" {
		dir, err := cacheDir()
		if err != nil {
			return nil, fmt.Errorf("get cache dir: %w", err)
		}
		cfg.Emoji.BaseURL = emojiURL
		cfg.Cache = service.CacheConfig{Backend: "file", Dir: dir}
	}
	return service.New(cfg, service.WithLogger(c.Logger))
}
