package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
	"github.com/pp-tools/pizza-pulse/pkg/runtime/terminal/export"
	"github.com/pp-tools/pizza-pulse/pkg/services/config"
	"github.com/pp-tools/pizza-pulse/pkg/services/sales"
	"github.com/pp-tools/pizza-pulse/pkg/store/csvsource"
	"github.com/pp-tools/pizza-pulse/pkg/store/httpsrc"
)

const dateLayout = "2006-01-02"

type AnalyzeCmd struct {
	file        string
	url         string
	profile     string
	profilePath string
	top         int
	from        string
	to          string
	category    string
	reporter    *export.Reporter
}

// NewAnalyzeCmd builds the analyze command. Exactly one of --file, --url or
// --profile selects the dataset; the rest narrows and shapes the report.
func NewAnalyzeCmd(defaultProfilePath string, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate a sales dataset and print the report",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.file, "file", "", "Path to a sales CSV file")
	cmd.Flags().StringVar(&ac.url, "url", "", "URL of a sales CSV dataset")
	cmd.Flags().StringVar(&ac.profile, "profile", "", "Named source profile from the profiles file")
	cmd.Flags().StringVar(&ac.profilePath, "profiles-path", defaultProfilePath, "Path to the profiles file")
	cmd.Flags().IntVar(&ac.top, "top", 5, "Number of items in the top/bottom rankings")
	cmd.Flags().StringVar(&ac.from, "from", "", "Inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ac.to, "to", "", "Inclusive end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ac.category, "category", "", "Only include records with this category")

	cmd.MarkFlagsOneRequired("file", "url", "profile")
	cmd.MarkFlagsMutuallyExclusive("file", "url", "profile")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	source, cleanup, err := ac.buildSource(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	filter, err := ac.buildFilter()
	if err != nil {
		return err
	}

	analyzer := sales.NewAnalyzer(source)
	report, err := analyzer.GenerateReport(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	top := sales.TopItems(report.RevenueByItem, ac.top)
	bottom := sales.BottomItems(report.RevenueByItem, ac.top)
	return ac.reporter.Handle(report, top, bottom, ac.top)
}

func (ac *AnalyzeCmd) buildSource(ctx context.Context) (sales.RowSource, func(), error) {
	noop := func() {}

	file, url := ac.file, ac.url
	if ac.profile != "" {
		registry, err := config.NewRegistry(ac.profilePath)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to load profiles from %s: %w", ac.profilePath, err)
		}
		profile, err := registry.GetProfile(ctx, ac.profile)
		if err != nil {
			return nil, noop, err
		}
		switch profile.Type {
		case config.SourceFile:
			file = profile.Path
		case config.SourceHTTP:
			url = profile.Path
		}
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open %s: %w", file, err)
		}
		return csvsource.NewSource(f), func() { _ = f.Close() }, nil
	}

	return httpsrc.NewSource(url), noop, nil
}

func (ac *AnalyzeCmd) buildFilter() (domain.Filter, error) {
	var filter domain.Filter
	filter.Category = ac.category

	if ac.from != "" {
		from, err := time.ParseInLocation(dateLayout, ac.from, time.UTC)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid --from date %q: expected YYYY-MM-DD", ac.from)
		}
		filter.From = &from
	}
	if ac.to != "" {
		to, err := time.ParseInLocation(dateLayout, ac.to, time.UTC)
		if err != nil {
			return domain.Filter{}, fmt.Errorf("invalid --to date %q: expected YYYY-MM-DD", ac.to)
		}
		filter.To = &to
	}

	return filter, nil
}
