package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
	"github.com/abhisek/aquamib/internal/selection"
	"github.com/abhisek/aquamib/internal/ui/i18n"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <id>...",
	Short: "Classify water quality for a sample of catalog taxa",
	Long: "Classify water quality for the taxa found in one sample. " +
		"Taxa are given by catalog ID (see `aquamib taxa list`); repeated IDs count once.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := cliLogger(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		cat := catalog.New(catalog.WithLogger(logger))
		sample := selection.New()
		for _, id := range args {
			t, err := cat.Get(id)
			if err != nil {
				return err
			}
			if !sample.Contains(id) {
				sample.Toggle(t)
			}
		}

		v, err := quality.Classify(sample.Members())
		if err != nil {
			return err
		}
		logger.Debug("sample classified",
			zap.String("quality", string(v.Band.Quality)),
			zap.Strings("taxa", sample.IDs()))

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeReportJSON(cmd.OutOrStdout(), newReport(v, sample.IDs(), cfg.Lang()))
		}
		writeReportText(cmd.OutOrStdout(), v, cfg.Lang())
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print the verdict as JSON")
}

// report is the machine-readable form of a verdict.
type report struct {
	Quality        quality.Quality      `json:"quality"`
	Label          string               `json:"label"`
	Color          string               `json:"color"`
	Description    string               `json:"description"`
	Recommendation string               `json:"recommendation"`
	AvgTolerance   float64              `json:"avg_tolerance"`
	BMWPScore      int                  `json:"bmwp_score"`
	FamilyCount    int                  `json:"family_count"`
	HasEPT         bool                 `json:"has_ept"`
	Biodiversity   quality.Biodiversity `json:"biodiversity"`
	Taxa           []string             `json:"taxa"`
}

func newReport(v quality.Verdict, ids []string, lang quality.Lang) report {
	text := v.Band.Text(lang)
	return report{
		Quality:        v.Band.Quality,
		Label:          text.Label,
		Color:          v.Band.Color,
		Description:    text.Description,
		Recommendation: text.Recommendation,
		AvgTolerance:   v.AvgTolerance,
		BMWPScore:      v.BMWPScore,
		FamilyCount:    v.FamilyCount,
		HasEPT:         v.HasEPT,
		Biodiversity:   v.Biodiversity,
		Taxa:           ids,
	}
}

func writeReportJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func writeReportText(w io.Writer, v quality.Verdict, lang quality.Lang) {
	str := i18n.For(lang)
	text := v.Band.Text(lang)

	fmt.Fprintf(w, "💧 %s (%s)\n", text.Label, v.Band.Color)
	fmt.Fprintf(w, "   %s\n\n", text.Description)
	fmt.Fprintf(w, "  %-22s %s\n", str.AvgTolerance+":", v.AvgToleranceString())
	fmt.Fprintf(w, "  %-22s %d\n", str.Families+":", v.FamilyCount)
	fmt.Fprintf(w, "  %-22s %d\n", str.BMWPScore+":", v.BMWPScore)
	fmt.Fprintf(w, "  %-22s %s\n", str.Biodiversity+":", v.Biodiversity.Label(lang))
	if v.HasEPT {
		fmt.Fprintf(w, "\n%s\n%s\n", str.EPTTitle, str.EPTText)
	}
	fmt.Fprintf(w, "\n💡 %s: %s\n", str.Recommendation, text.Recommendation)
}
