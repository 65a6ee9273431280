package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/prepmap/internal/jdsource"
	"github.com/amishk599/prepmap/internal/model"
	"github.com/amishk599/prepmap/internal/report"
)

var (
	genCompany string
	genRole    string
	genJD      string
	genJDFile  string
	genOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a roadmap for one job",
	Long: "Builds a roadmap from --company, --role and an optional job description " +
		"(inline with --jd, or from a .txt, .md, .pdf or .docx file with --jd-file).",
	Example: "  prepmap generate --company Google --role \"Software Engineer\" --jd-file posting.pdf",
	RunE:    runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genCompany, "company", "", "company name (required)")
	generateCmd.Flags().StringVar(&genRole, "role", "", "role title (required)")
	generateCmd.Flags().StringVar(&genJD, "jd", "", "job description text")
	generateCmd.Flags().StringVar(&genJDFile, "jd-file", "", "read the job description from a file")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "output path (default: roadmap_<company>_<role>_<timestamp>.json in output.dir)")
	_ = generateCmd.MarkFlagRequired("company")
	_ = generateCmd.MarkFlagRequired("role")
	generateCmd.MarkFlagsMutuallyExclusive("jd", "jd-file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	jd := genJD
	if genJDFile != "" {
		jd, err = jdsource.Load(genJDFile)
		if err != nil {
			return err
		}
		logger.Debug("job description loaded", "file", genJDFile, "chars", len(jd))
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := buildPlanner(ctx, cfg, st, report.Multi{
		report.NewLogReporter(logger),
		report.NewTerminalReporter(cmd.OutOrStdout()),
	}, logger)
	if err != nil {
		return err
	}

	_, err = p.PlanTo(ctx, model.JobInput{Company: genCompany, Role: genRole, JobDescription: jd}, genOut)
	return err
}
