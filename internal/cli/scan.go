package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vrsandeep/mango-marks/internal/bookmarks"
	"github.com/vrsandeep/mango-marks/internal/config"
	"github.com/vrsandeep/mango-marks/internal/core"
	"github.com/vrsandeep/mango-marks/internal/metadata/providers"
	"github.com/vrsandeep/mango-marks/internal/models"
	"github.com/vrsandeep/mango-marks/internal/view"
)

type scanOptions struct {
	keepUnknown bool
	provider    string
	offline     bool
	asJSON      bool
	filter      view.Filter
}

func newScanCmd() *cobra.Command {
	var opts scanOptions
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Normalize a bookmarks file (JSON, Chromium profile or HTML export)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runScan(cmd, cfg, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.keepUnknown, "keep-unknown", false, "keep bookmarks whose type cannot be detected")
	f.StringVar(&opts.provider, "provider", "", "metadata provider (kitsu, mangadex, weebcentral, mockadex, none)")
	f.BoolVar(&opts.offline, "offline", false, "skip metadata lookups")
	f.BoolVar(&opts.asJSON, "json", false, "print items as JSON")
	f.StringVar(&opts.filter.Type, "type", "", "only show this type")
	f.StringVar(&opts.filter.Site, "site", "", "only show this site")
	f.StringVar(&opts.filter.Search, "search", "", "only show names containing this text")
	f.StringVar(&opts.filter.Chapter, "chapter", "", "only show this chapter")
	f.StringVar(&opts.filter.Sort, "sort", "", "sort by name or chapter")
	return cmd
}

func runScan(cmd *cobra.Command, cfg *config.Config, path string, opts scanOptions) error {
	nodes, err := bookmarks.Load(path)
	if err != nil {
		return err
	}

	if opts.keepUnknown {
		cfg.Pipeline.DropUnknown = false
	}
	switch {
	case opts.offline:
		cfg.Metadata.Provider = "none"
	case opts.provider != "":
		cfg.Metadata.Provider = opts.provider
	}

	provider, err := selectProvider(cfg)
	if err != nil {
		return err
	}

	items := core.NewPipeline(cfg, provider).Run(cmd.Context(), nodes)
	items = view.Apply(items, opts.filter)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	return printTable(out, items)
}

func selectProvider(cfg *config.Config) (models.MetadataProvider, error) {
	for _, p := range providers.Builtin(cfg) {
		if p.GetInfo().ID == cfg.Metadata.Provider {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown metadata provider %q", cfg.Metadata.Provider)
}

func printTable(out io.Writer, items []models.DisplayItem) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHAPTER\tTYPE\tSITE")
	for _, it := range items {
		name := it.Name
		if it.Flagged {
			name += " (?)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, it.Chapter, it.Type, it.SiteName)
	}
	fmt.Fprintf(w, "\nTotal: %d\n", len(items))
	return w.Flush()
}
