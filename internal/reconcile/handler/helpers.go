package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"catalog-recon/internal/config"
	"catalog-recon/internal/reconcile/model"
)

// formValues is the subset of *http.Request the option parsing needs.
type formValues interface {
	FormValue(key string) string
}

// options starts from the config defaults and applies per-request form overrides.
func options(cfg config.Config, r formValues) model.Options {
	opt := model.Options{
		Workers:      cfg.MatchWorkers,
		CategoryTag:  cfg.CategoryTag,
		Dedupe:       cfg.Dedupe,
		SisterBrands: cfg.SisterBrands,
	}
	opt.Workers = atoi(r.FormValue("workers"), opt.Workers)
	opt.Dedupe = toBool(r.FormValue("dedupe"), opt.Dedupe)
	opt.SisterBrands = toBool(r.FormValue("sister_brands"), opt.SisterBrands)
	if tag := strings.TrimSpace(r.FormValue("category_tag")); tag != "" {
		opt.CategoryTag = tag
	}
	if opt.Workers < 1 {
		opt.Workers = 1
	}
	return opt
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// requestLogger prefers the rid-tagged logger the middleware put in the context.
func requestLogger(r *http.Request, fallback zerolog.Logger) zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return fallback
}
