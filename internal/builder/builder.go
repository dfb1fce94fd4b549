// Package builder orchestrates a catalog build: one sequential pass over the
// product table, rendering and writing every product page, then one index
// per category seen.
package builder

import (
	"log/slog"
	"os"
	"sort"

	"github.com/jamarko/catalogbuilder/internal/catalog"
	"github.com/jamarko/catalogbuilder/internal/config"
	cerrors "github.com/jamarko/catalogbuilder/internal/errors"
	"github.com/jamarko/catalogbuilder/internal/format"
	"github.com/jamarko/catalogbuilder/internal/logfields"
	"github.com/jamarko/catalogbuilder/internal/render"
	"github.com/jamarko/catalogbuilder/internal/site"
	"github.com/jamarko/catalogbuilder/internal/util/sets"
)

// progressInterval controls how often per-record progress is logged.
const progressInterval = 10

// Builder runs the page-generation pipeline for one configuration.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Builder. A nil logger falls back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build executes the whole pipeline and returns the run report; Pages on the
// report is the total page count. A missing template or unreadable table is
// fatal and aborts before any output is written.
func (b *Builder) Build() (*site.Report, error) {
	report := site.NewReport()

	tpl, err := os.ReadFile(b.cfg.Catalog.Template) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal,
			"failed to read page template").WithContext("path", b.cfg.Catalog.Template)
	}

	table, err := catalog.LoadCSV(b.cfg.Catalog.Data)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal,
			"failed to load product table").WithContext("path", b.cfg.Catalog.Data)
	}

	writer := site.NewWriter(b.cfg.Output.Directory, b.cfg.Output.Extension)
	if b.cfg.Output.Clean {
		if err := writer.Clean(); err != nil {
			return nil, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal,
				"failed to clean output directory")
		}
	}

	prices := format.NewPriceFormatter(b.cfg.Currencies, b.cfg.Site.DefaultCurrency)
	seen := sets.New[string]()
	pages := 0

	b.logger.Info("Building product pages", logfields.Records(table.Len()))

	for i, rec := range table.Records {
		slug := rec.PageSlug()
		images := catalog.SplitList(rec.Get(catalog.FieldImages))
		categories := catalog.SplitList(rec.Get(catalog.FieldProductType))
		if len(categories) == 0 {
			categories = []string{b.cfg.Site.DefaultCategory}
		}
		variants := table.Variants(rec)

		ctx := render.BuildContext(render.ContextInput{
			Record:   rec,
			Slug:     slug,
			Images:   images,
			Variants: variants,
			Prices:   prices,
		})
		page := render.RenderTemplate(string(tpl), ctx)

		for _, category := range categories {
			if _, err := writer.WritePage(category, slug, page); err != nil {
				report.Finish(site.OutcomeFailed)
				return report, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal,
					"failed to write product page").
					WithContext("category", category).
					WithContext("slug", slug)
			}
			seen.Add(category)
			pages++
		}

		if (i+1)%progressInterval == 0 {
			b.logger.Debug("Build progress",
				logfields.Records(i+1),
				logfields.Pages(pages),
				logfields.ProductID(rec.ID()),
				logfields.Slug(slug),
				logfields.Variants(len(variants)))
		}
	}

	categories := seen.Values()
	sort.Strings(categories)
	for _, category := range categories {
		if _, err := writer.WriteCategoryIndex(category); err != nil {
			report.Finish(site.OutcomeFailed)
			return report, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal,
				"failed to write category index").WithContext("category", category)
		}
		b.logger.Debug("Wrote category index", logfields.Category(category))
	}

	report.Records = table.Len()
	report.Pages = pages
	report.Categories = categories
	report.Finish(site.OutcomeSuccess)

	if _, err := writer.WriteReport(report); err != nil {
		// The site itself is complete; a report failure only degrades observability.
		b.logger.Warn("Failed to write build report", logfields.Error(err))
	}

	b.logger.Info("Build completed",
		logfields.Pages(pages),
		logfields.Categories(len(categories)),
		logfields.DurationMS(float64(report.Elapsed().Milliseconds())),
		slog.String("elapsed", format.FormatDuration(report.Elapsed())))

	return report, nil
}
