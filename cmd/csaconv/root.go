package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shogi_csa/internal/adapters"
	"shogi_csa/internal/bootstrap"
	"shogi_csa/internal/domain/csa"
	"shogi_csa/internal/domain/record"
	recordUC "shogi_csa/internal/usecase/record"
)

type options struct {
	config   string
	encoding string
	padHour  bool
	validate bool
	workers  int
	out      string
	pdf      string
}

func newRootCommand(log *zap.SugaredLogger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "csaconv [record.json ...]",
		Short: "Convert JSON game records to CSA V2.2 text",
		Long: "csaconv reads game records in the JSON shape accepted by the HTTP API and writes\n" +
			"their CSA V2.2 encoding. With no arguments it reads one record from stdin.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, log, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "optional .env file with defaults")
	flags.StringVar(&opts.encoding, "encoding", "", "output encoding: utf-8 or shift_jis")
	flags.BoolVar(&opts.padHour, "pad-hour", false, "zero-pad the hour of $START_TIME/$END_TIME")
	flags.BoolVar(&opts.validate, "validate", true, "reject records that would not produce well-formed CSA")
	flags.IntVar(&opts.workers, "workers", 0, "records rendered in parallel (default from config)")
	flags.StringVarP(&opts.out, "out", "o", "", "write CSA text to this file instead of stdout")
	flags.StringVar(&opts.pdf, "pdf", "", "also write a printable PDF sheet to this file")

	return cmd
}

func buildConfig(cmd *cobra.Command, opts options) (bootstrap.Config, error) {
	cfg, err := bootstrap.Setup(opts.config)
	if err != nil {
		return bootstrap.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.OutputEncoding = opts.encoding
	}
	if flags.Changed("pad-hour") {
		cfg.PadHour = opts.padHour
	}
	if flags.Changed("validate") {
		cfg.ValidateRecords = opts.validate
	}
	if flags.Changed("workers") {
		cfg.RenderWorkers = opts.workers
	}
	return *cfg, nil
}

func run(cmd *cobra.Command, log *zap.SugaredLogger, opts options, args []string) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	records, err := loadRecords(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	// The CLI never touches storage, so the use case runs without a store.
	uc := recordUC.NewRecordUseCase(nil, adapters.NewPDFRenderer(), cfg, log)
	texts, err := uc.RenderBatch(cmd.Context(), records)
	if err != nil {
		return err
	}
	text := strings.Join(texts, recordSeparator)

	if err = writeCSA(cmd.OutOrStdout(), opts.out, uc, text); err != nil {
		return err
	}

	if opts.pdf != "" {
		var buf bytes.Buffer
		if err = adapters.NewPDFRenderer().Render(&buf, pdfTitle(args), text); err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		if err = os.WriteFile(opts.pdf, buf.Bytes(), 0o644); err != nil {
			return err
		}
		log.Infof("pdf sheet written to %s", opts.pdf)
	}
	return nil
}

// recordSeparator is the line CSA puts between records sharing one file.
const recordSeparator = "/\n"

func writeCSA(stdout io.Writer, path string, uc *recordUC.RecordUseCase, text string) error {
	if path == "" {
		if err := uc.Encode(stdout, text); err != nil {
			return fmt.Errorf("write csa: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = uc.Encode(f, text); err != nil {
		f.Close()
		return fmt.Errorf("write csa: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func pdfTitle(args []string) string {
	if len(args) == 0 {
		return "stdin"
	}
	return strings.Join(args, ", ")
}

func loadRecords(stdin io.Reader, paths []string) ([]*csa.GameRecord, error) {
	if len(paths) == 0 {
		g, err := decodeRecord(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []*csa.GameRecord{g}, nil
	}

	records := make([]*csa.GameRecord, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		g, err := decodeRecord(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, g)
	}
	return records, nil
}

func decodeRecord(r io.Reader) (*csa.GameRecord, error) {
	var rec record.Record
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return rec.ToCSA()
}
