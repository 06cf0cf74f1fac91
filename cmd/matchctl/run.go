package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"catalog-recon/internal/config"
	"catalog-recon/internal/reconcile/dataset"
	"catalog-recon/internal/reconcile/model"
	"catalog-recon/internal/reconcile/service"
)

type runFlags struct {
	customers     string
	manufacturers string
	items         string
	headerRow     int
	out           string
	workers       int
	categoryTag   string
	noDedupe      bool
	sisterBrands  bool
}

func newRunCmd(loadConfig func() config.Config) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Match customers against manufacturers and catalog items",
		Example: `  matchctl run --customers audit.xlsx --manufacturers mfgs.csv --items items.csv
  matchctl run --customers audit.csv --manufacturers mfgs.csv --items items.csv --out report.json --workers 8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			logger := config.SetupLogger(cfg)

			opt := model.Options{
				Workers:      cfg.MatchWorkers,
				CategoryTag:  cfg.CategoryTag,
				Dedupe:       cfg.Dedupe && !f.noDedupe,
				SisterBrands: cfg.SisterBrands || f.sisterBrands,
			}
			if cmd.Flags().Changed("workers") {
				opt.Workers = f.workers
			}
			if f.categoryTag != "" {
				opt.CategoryTag = f.categoryTag
			}

			src, closeAll, err := openSources(f)
			if err != nil {
				return err
			}
			defer closeAll()

			in, issues, err := dataset.Load(src)
			if err != nil {
				return err
			}

			ctx := logger.WithContext(cmd.Context())
			rep, err := service.Run(ctx, in, opt)
			if err != nil {
				return err
			}
			rep.Issues = append(issues, rep.Issues...)

			var w io.Writer = cmd.OutOrStdout()
			if f.out != "" {
				file, err := os.Create(f.out)
				if err != nil {
					return fmt.Errorf("create %s: %w", f.out, err)
				}
				defer file.Close()
				w = file
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.customers, "customers", "", "customer file (.csv, .xlsx, .xls)")
	fl.StringVar(&f.manufacturers, "manufacturers", "", "reference manufacturer file")
	fl.StringVar(&f.items, "items", "", "reference model/part file")
	fl.IntVar(&f.headerRow, "header-row", 1, "header row (1-based) for all files")
	fl.StringVarP(&f.out, "out", "o", "", "write the report here instead of stdout")
	fl.IntVar(&f.workers, "workers", 1, "parallel candidate generation")
	fl.StringVar(&f.categoryTag, "category-tag", "", "model marker inside primaryId")
	fl.BoolVar(&f.noDedupe, "no-dedupe", false, "keep duplicate customer rows")
	fl.BoolVar(&f.sisterBrands, "sister-brands", false, "also report codes of sister brands")
	for _, name := range []string{"customers", "manufacturers", "items"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func openSources(f runFlags) (dataset.Sources, func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, file := range files {
			_ = file.Close()
		}
	}
	open := func(path string) (dataset.Source, error) {
		file, err := os.Open(path)
		if err != nil {
			return dataset.Source{}, err
		}
		files = append(files, file)
		return dataset.Source{Filename: path, Reader: file, HeaderRow: f.headerRow}, nil
	}

	var src dataset.Sources
	var err error
	if src.Customers, err = open(f.customers); err != nil {
		closeAll()
		return src, nil, err
	}
	if src.Manufacturers, err = open(f.manufacturers); err != nil {
		closeAll()
		return src, nil, err
	}
	if src.Items, err = open(f.items); err != nil {
		closeAll()
		return src, nil, err
	}
	return src, closeAll, nil
}
