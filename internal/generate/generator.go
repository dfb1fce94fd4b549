// Package generate produces a synthetic product table for development and
// demo builds: parents plus linked variant rows, realistic stock and
// shipping data, and every product type represented at least once.
package generate

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jamarko/catalogbuilder/internal/catalog"
	"github.com/jamarko/catalogbuilder/internal/format"
	"github.com/jamarko/catalogbuilder/internal/logfields"
)

// productType pairs a catalog category with its short id/sku code.
type productType struct {
	Name string
	Code string
}

var productTypes = []productType{
	{"notebooks", "nb"},
	{"greeting_cards", "gc"},
	{"paper_bags", "bag"},
	{"photo_frames", "pf"},
	{"lampshades", "ls"},
	{"wrapping_papers", "wp"},
	{"boxes", "bx"},
	{"jewelry_boxes", "jb"},
	{"pencils", "ps"},
	{"uncategorized", "uc"},
}

var currencies = []string{"NPR", "INR", "USD", "EUR", "CAD", "AUD"}

var (
	sizes     = []string{"a5", "a4", "small", "medium", "large"}
	colors    = []string{"black", "white", "brown", "beige", "blue", "green"}
	patterns  = []string{"floral", "geometric", "plain", "striped"}
	materials = []string{"paper", "linen", "wood", "metal", "fabric", "leather"}
	finishes  = []string{"matte", "glossy", "textured"}
)

// variantAttributes are the attribute sets a parent's variants permute over.
var variantAttributes = [][]string{
	{"size"}, {"color"}, {"material"}, {"pattern"},
	{"size", "color"}, {"size", "pattern"}, {"color", "pattern"},
	{"material", "finish"}, {"size", "material"},
}

const (
	discountProbability  = 0.2
	restockThresholdProb = 0.7
	variantProbability   = 0.8
	maxVariantsPerParent = 3
)

// Generator produces a synthetic catalog CSV. Output is deterministic for a
// fixed seed.
type Generator struct {
	rows   int
	seed   uint64
	rng    *rand.Rand
	logger *slog.Logger
}

// New creates a Generator for the given row count. A zero seed picks a
// random one; either way the seed used is logged so runs can be reproduced.
func New(rows int, seed uint64, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if rows <= 0 {
		rows = 100
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rows:   rows,
		seed:   seed,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		logger: logger,
	}
}

// WriteCSV generates the table and writes it to path, creating intermediate
// directories. Returns the number of data rows written.
func (g *Generator) WriteCSV(path string) (int, error) {
	rows := g.generate()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return 0, fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if err := w.Write(catalog.Columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range rows {
		row := make([]string, len(catalog.Columns))
		for i, col := range catalog.Columns {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush catalog file: %w", err)
	}

	g.logger.Info("Generated synthetic catalog",
		logfields.Path(path), logfields.Rows(len(rows)), logfields.Seed(g.seed))
	return len(rows), nil
}

// generate builds the full record list: each parent directly followed by its
// variant rows, until at least g.rows rows exist. Every product type appears
// at least once when the row count allows.
func (g *Generator) generate() []catalog.Record {
	var rows []catalog.Record
	rowCount := 0
	counter := 1

	// Shuffled cycle so every type is covered before random repetition.
	cycle := make([]productType, len(productTypes))
	copy(cycle, productTypes)
	g.rng.Shuffle(len(cycle), func(i, j int) { cycle[i], cycle[j] = cycle[j], cycle[i] })

	for rowCount < g.rows {
		var pt productType
		if len(cycle) > 0 {
			pt = cycle[len(cycle)-1]
			cycle = cycle[:len(cycle)-1]
		} else {
			pt = productTypes[g.rng.IntN(len(productTypes))]
		}

		pid := fmt.Sprintf("%s%03d", pt.Code, counter)
		sku := fmt.Sprintf("%s-%03d", pt.Code, counter)
		basePrice := round2(g.uniform(2.99, 39.99))
		currency := currencies[g.rng.IntN(len(currencies))]
		parentSlug := format.Slugify(fmt.Sprintf("%s_%d", pt.Name, counter))

		images := g.placeholderImages(pid, 2, 5)

		shippingCost := fmt.Sprintf("%.2f", g.uniform(2.0, 15.0))
		shippingETA := fmt.Sprintf("%d days", 2+g.rng.IntN(13))
		shippingRegions := "Nepal"

		shortDesc := fmt.Sprintf("High quality %s", strings.ReplaceAll(pt.Name, "_", " "))
		longDesc := fmt.Sprintf("High quality %s with multiple variants.", strings.ReplaceAll(pt.Name, "_", " "))
		metaTitle := fmt.Sprintf("%s Product", format.Humanize(pt.Name))
		metaDesc := fmt.Sprintf("Buy premium %s online", pt.Name)
		imageAlt := fmt.Sprintf("%s image", pt.Name)

		base := catalog.Record{
			catalog.FieldProductType:      pt.Name,
			catalog.FieldCurrency:         currency,
			catalog.FieldShortDescription: shortDesc,
			catalog.FieldDescription:      longDesc,
			catalog.FieldMetaTitle:        metaTitle,
			catalog.FieldMetaDescription:  metaDesc,
			catalog.FieldPrimaryKeyword:   pt.Name,
			catalog.FieldImageAltText:     imageAlt,
			catalog.FieldReturnPolicy:     "30 day return",
			catalog.FieldSupplierName:     "Jamarko",
			catalog.FieldShippingCost:     shippingCost,
			catalog.FieldShippingETA:      shippingETA,
			catalog.FieldShippingRegions:  shippingRegions,
		}

		// Variant rows first so the parent can aggregate their quantity.
		var variantRows []catalog.Record
		totalQuantity := 0
		if rowCount < g.rows && g.rng.Float64() < variantProbability {
			attrs := variantAttributes[g.rng.IntN(len(variantAttributes))]
			for _, combo := range g.variantCombos(attrs) {
				if rowCount >= g.rows {
					break
				}
				values := make([]string, len(attrs))
				options := make([]string, len(attrs))
				for i, a := range attrs {
					values[i] = combo[a]
					options[i] = a + ":" + combo[a]
				}
				suffix := strings.Join(values, "-")
				variantPrice := round2(max(0.99, basePrice+basePrice*g.uniform(-0.10, 0.20)))
				quantity := g.rng.IntN(21)
				restock := g.restockThreshold(quantity)
				totalQuantity += quantity

				v := base.Clone()
				v[catalog.FieldProductID] = pid + "-" + suffix
				v[catalog.FieldParentProductID] = pid
				v[catalog.FieldProductName] = fmt.Sprintf("%s_%d", pt.Name, counter)
				v[catalog.FieldSKU] = sku + "-" + suffix
				v[catalog.FieldVariantOptions] = strings.Join(options, " | ")
				v[catalog.FieldPrice] = fmt.Sprintf("%.2f", variantPrice)
				v[catalog.FieldQuantityAvailable] = strconv.Itoa(quantity)
				v[catalog.FieldStockStatus] = g.availability(quantity, restock)
				v[catalog.FieldRestockThreshold] = restock
				v[catalog.FieldURLSlug] = format.Slugify(parentSlug + "-" + suffix)
				v[catalog.FieldImages] = catalog.JoinList(g.placeholderImages(pid+"-"+suffix, 2, 4))
				v[catalog.FieldRating] = fmt.Sprintf("%.1f", g.uniform(4.2, 4.9))
				v[catalog.FieldReviewCount] = strconv.Itoa(5 + g.rng.IntN(296))
				v[catalog.FieldDiscountPrice] = g.discountPrice(variantPrice)
				v[catalog.FieldCostPrice] = fmt.Sprintf("%.2f", round2(variantPrice*g.uniform(0.5, 0.8)))
				v[catalog.FieldDimensions] = g.dimensions()
				v[catalog.FieldWeight] = g.weight()
				v[catalog.FieldStockLocation] = g.stockLocation()
				v[catalog.FieldAdditionalDetails] = g.additionalDetails(pt.Name, strings.Join(options, " | "))
				variantRows = append(variantRows, v)
				rowCount++
			}
		}

		p := base.Clone()
		p[catalog.FieldProductID] = pid
		p[catalog.FieldParentProductID] = ""
		p[catalog.FieldProductName] = fmt.Sprintf("%s_%d", pt.Name, counter)
		p[catalog.FieldSKU] = sku
		p[catalog.FieldVariantOptions] = ""
		p[catalog.FieldPrice] = fmt.Sprintf("%.2f", basePrice)
		p[catalog.FieldQuantityAvailable] = strconv.Itoa(totalQuantity)
		p[catalog.FieldStockStatus] = g.availability(totalQuantity, "")
		p[catalog.FieldRestockThreshold] = g.restockThreshold(totalQuantity)
		p[catalog.FieldURLSlug] = parentSlug
		p[catalog.FieldImages] = catalog.JoinList(images)
		p[catalog.FieldRating] = fmt.Sprintf("%.1f", g.uniform(4.2, 4.9))
		p[catalog.FieldReviewCount] = strconv.Itoa(5 + g.rng.IntN(296))
		p[catalog.FieldDiscountPrice] = ""
		p[catalog.FieldCostPrice] = fmt.Sprintf("%.2f", round2(basePrice*g.uniform(0.5, 0.8)))
		p[catalog.FieldDimensions] = g.dimensions()
		p[catalog.FieldWeight] = g.weight()
		p[catalog.FieldStockLocation] = g.stockLocation()
		p[catalog.FieldAdditionalDetails] = g.additionalDetails(pt.Name, "")

		rows = append(rows, p)
		rows = append(rows, variantRows...)
		rowCount++
		counter++
	}

	return rows
}

// variantCombos returns up to maxVariantsPerParent distinct attribute
// combinations, sampled without replacement from the full cross product.
func (g *Generator) variantCombos(attrs []string) []map[string]string {
	pools := make([][]string, len(attrs))
	for i, a := range attrs {
		switch a {
		case "size":
			pools[i] = sizes
		case "color":
			pools[i] = colors
		case "pattern":
			pools[i] = patterns
		case "material":
			pools[i] = materials
		case "finish":
			pools[i] = finishes
		}
	}

	var all []map[string]string
	var build func(i int, current map[string]string)
	build = func(i int, current map[string]string) {
		if i == len(attrs) {
			combo := make(map[string]string, len(current))
			for k, v := range current {
				combo[k] = v
			}
			all = append(all, combo)
			return
		}
		for _, v := range pools[i] {
			current[attrs[i]] = v
			build(i+1, current)
		}
	}
	build(0, map[string]string{})

	n := min(len(all), maxVariantsPerParent)
	perm := g.rng.Perm(len(all))
	out := make([]map[string]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, all[idx])
	}
	return out
}

func (g *Generator) discountPrice(price float64) string {
	if g.rng.Float64() <= discountProbability {
		discount := round2(price * g.uniform(0.05, 0.25))
		return fmt.Sprintf("%.2f", round2(max(0.99, price-discount)))
	}
	return ""
}

func (g *Generator) restockThreshold(quantity int) string {
	if g.rng.Float64() <= restockThresholdProb {
		return strconv.Itoa(max(1, int(float64(quantity)*g.uniform(0.2, 0.4))))
	}
	return ""
}

// availability derives the stock status from quantity and the optional
// restock threshold.
func (g *Generator) availability(quantity int, restockThreshold string) string {
	if quantity == 0 {
		out := []string{"Out of Stock", "Backorder", "Preorder"}
		return out[g.rng.IntN(len(out))]
	}
	if restockThreshold != "" {
		if th, err := strconv.Atoi(restockThreshold); err == nil && quantity <= th {
			return "Low Stock"
		}
	}
	return "In Stock"
}

func (g *Generator) placeholderImages(id string, minCount, maxCount int) []string {
	n := minCount + g.rng.IntN(maxCount-minCount+1)
	imgs := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		label := strings.ReplaceAll(fmt.Sprintf("%s_%d", id, i), "_", "+")
		imgs = append(imgs, "https://placehold.co/600x600?text="+label)
	}
	return imgs
}

func (g *Generator) dimensions() string {
	return fmt.Sprintf("%d x %d x %d in", 3+g.rng.IntN(18), 3+g.rng.IntN(18), 1+g.rng.IntN(10))
}

func (g *Generator) weight() string {
	return fmt.Sprintf("%.2f lb", g.uniform(0.5, 15.0))
}

func (g *Generator) stockLocation() string {
	locations := []string{"Jamarko Warehouse", "Jamarko Retail Store A", "Jamarko Retail Store B"}
	return locations[g.rng.IntN(len(locations))]
}

// additionalDetails builds the always non-empty markdown bullet list.
func (g *Generator) additionalDetails(typeName, variantOptions string) string {
	bullets := []string{
		"- Material: " + materials[g.rng.IntN(len(materials))],
		"- Dimensions: " + g.dimensions(),
		"- Weight: " + g.weight(),
	}
	if variantOptions != "" {
		bullets = append(bullets, "- Options: "+variantOptions)
	}
	bullets = append(bullets, fmt.Sprintf("- High-quality %s product", strings.ReplaceAll(typeName, "_", " ")))
	return strings.Join(bullets, " ")
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

