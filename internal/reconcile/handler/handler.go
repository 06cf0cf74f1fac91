package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"catalog-recon/internal/config"
	"catalog-recon/internal/reconcile/dataset"
	"catalog-recon/internal/reconcile/model"
	recSvc "catalog-recon/internal/reconcile/service"
)

// multipart file fields
const (
	fieldCustomers     = "customers"
	fieldManufacturers = "manufacturers"
	fieldItems         = "items"
)

// Reconcile returns the handler for r.Post("/reconcile", recHnd.Reconcile(cfg, logger)).
// It takes three files (customers, manufacturers, items) and answers with the match report.
func Reconcile(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		log := requestLogger(r, logger)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		var src dataset.Sources
		for _, f := range []struct {
			field string
			dst   *dataset.Source
		}{
			{fieldCustomers, &src.Customers},
			{fieldManufacturers, &src.Manufacturers},
			{fieldItems, &src.Items},
		} {
			file, header, err := r.FormFile(f.field)
			if err != nil {
				http.Error(w, "missing "+f.field+": "+err.Error(), http.StatusBadRequest)
				return
			}
			defer func(file multipart.File) { _ = file.Close() }(file)
			*f.dst = dataset.Source{
				Filename:  header.Filename,
				Reader:    file,
				HeaderRow: atoi(r.FormValue(f.field+"_header_row"), 1),
			}
		}

		in, issues, err := dataset.Load(src)
		if err != nil {
			writeLoadError(w, log, err)
			return
		}

		opt := options(cfg, r)
		res, err := recSvc.Run(log.WithContext(r.Context()), in, opt)
		if err != nil {
			// only a cancelled request gets here
			log.Warn().Err(err).Msg("reconcile aborted")
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
			return
		}
		res.Issues = append(issues, res.Issues...)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("customers", len(in.Customers)).
			Int("manufacturers", len(in.Manufacturers)).
			Int("items", len(in.Items)).
			Int("issues", len(res.Issues)).
			Dur("elapsed", time.Since(start)).
			Msg("reconcile done")
	}
}

// writeLoadError maps dataset failures onto status codes: a missing column is a
// schema problem (422), anything else is a bad upload (400).
func writeLoadError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var colErr *model.MissingColumnError
	if errors.As(err, &colErr) {
		log.Warn().Str("dataset", colErr.Dataset).Str("column", colErr.Column).Msg("missing column")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   colErr.Error(),
			"dataset": colErr.Dataset,
			"column":  colErr.Column,
		})
		return
	}
	log.Warn().Err(err).Msg("bad input file")
	http.Error(w, err.Error(), http.StatusBadRequest)
}
