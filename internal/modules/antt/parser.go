// README: Parsers for the ANTT reference feed (CSV/CKAN) and the resolution
// page (best-effort HTML heuristics).
package antt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"rotaclick/internal/modules/compliance"
)

var ErrEmptyFeed = errors.New("antt feed contains no data rows")

// feed columns, one row per operation type; scalar columns repeat on every row
// and are read from the first one.
var requiredColumns = []string{
	"versao", "custo_base_km", "custo_eixo_km", "coef_diesel",
	"tipo_operacao", "multiplicador",
}

// ParseCSVFeed reads the CKAN CSV export into a reference snapshot. Scalar
// fields come from the first data row; every row contributes one entry to the
// per-operation multiplier map. Returns the snapshot and the number of data
// rows consumed.
func ParseCSVFeed(r io.Reader, sourceURL string) (*compliance.ReferenceSnapshot, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read feed header: %w", err)
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, 0, fmt.Errorf("feed header missing column %q", col)
		}
	}

	snapshot := &compliance.ReferenceSnapshot{
		SourceURL:    sourceURL,
		FloorFormula: &compliance.FloorFormula{OperationMultipliers: map[string]float64{}},
	}

	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read feed row %d: %w", rows+1, err)
		}

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		if rows == 0 {
			snapshot.Version = field("versao")
			snapshot.EffectiveFrom = parseDate(field("vigencia_inicio"))
			snapshot.EffectiveTo = parseDate(field("vigencia_fim"))
			if v, err := parseDecimal(field("preco_diesel")); err == nil {
				snapshot.DieselReferencePrice = &v
			}
			if snapshot.FloorFormula.BaseCostPerKm, err = parseDecimal(field("custo_base_km")); err != nil {
				return nil, 0, fmt.Errorf("custo_base_km: %w", err)
			}
			if snapshot.FloorFormula.CostPerAxleKm, err = parseDecimal(field("custo_eixo_km")); err != nil {
				return nil, 0, fmt.Errorf("custo_eixo_km: %w", err)
			}
			if snapshot.FloorFormula.DieselCoefficient, err = parseDecimal(field("coef_diesel")); err != nil {
				return nil, 0, fmt.Errorf("coef_diesel: %w", err)
			}
		}

		op := field("tipo_operacao")
		mult, err := parseDecimal(field("multiplicador"))
		if err != nil {
			return nil, 0, fmt.Errorf("multiplicador for %q: %w", op, err)
		}
		if op != "" {
			snapshot.FloorFormula.OperationMultipliers[op] = mult
		}
		rows++
	}

	if rows == 0 {
		return nil, 0, ErrEmptyFeed
	}
	if _, ok := snapshot.FloorFormula.OperationMultipliers[compliance.DefaultOperationKey]; !ok {
		snapshot.FloorFormula.OperationMultipliers[compliance.DefaultOperationKey] = 1
	}
	return snapshot, rows, nil
}

// dieselPattern matches prices like "R$ 6,18" or "6.18" near the word diesel.
var dieselPattern = regexp.MustCompile(`(?i)diesel[^0-9]{0,40}R?\$?\s*([0-9]+[.,][0-9]{2,4})`)

// ParseDieselFromHTML scans a resolution page for the reference diesel price.
// The page layout changes without notice, so callers merge the extracted value
// over the previous snapshot instead of trusting the page for anything else.
func ParseDieselFromHTML(page string) (float64, bool) {
	m := dieselPattern.FindStringSubmatch(page)
	if m == nil {
		return 0, false
	}
	v, err := parseDecimal(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDecimal(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
