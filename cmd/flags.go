package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/config"
	"github.com/spf13/pflag"
)

// formatValue is a --format flag restricted to the export formats.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "md" {
		s = config.FormatMarkdown
	}
	if !config.IsValidExportFormat(s) {
		return fmt.Errorf("must be json or markdown")
	}
	*f = formatValue(s)
	return nil
}

func (f *formatValue) Type() string { return "format" }
