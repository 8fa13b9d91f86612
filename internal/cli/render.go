package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// formatKg renders a kg CO2e value with thousand separators and two
// decimals, e.g. 1234.5 -> "1,234.50".
func formatKg(v float64) string {
	rounded := math.Round(v*100) / 100
	intPart := int64(math.Trunc(math.Abs(rounded)))
	frac := math.Abs(rounded) - float64(intPart)

	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, printer.Sprintf("%d", intPart), int(math.Round(frac*100)))
}

// outputFormat resolves the --output flag: explicit value wins, then
// table on a terminal and json otherwise.
func outputFormat(flagValue string) (string, error) {
	switch strings.ToLower(flagValue) {
	case "json", "table":
		return strings.ToLower(flagValue), nil
	case "":
		if isTerminal(os.Stdout) {
			return "table", nil
		}
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table or json)", flagValue)
	}
}

// writeJSON renders v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
