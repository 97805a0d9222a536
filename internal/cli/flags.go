package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/service"
)

// parseDateFlag parses a required --date style flag.
func parseDateFlag(value string) (time.Time, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", value)
	}
	return d, nil
}

// breakListFlag accepts repeated --break values of the form "12:00-12:30"
// (or raw minutes "720-750") and collects them as break inputs.
type breakListFlag []service.BreakInput

var _ pflag.Value = (*breakListFlag)(nil)

func (f *breakListFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, b := range *f {
		parts = append(parts, b.Start+"-"+b.End)
	}
	return strings.Join(parts, ",")
}

func (f *breakListFlag) Set(value string) error {
	start, end, ok := strings.Cut(value, "-")
	if !ok {
		return fmt.Errorf("invalid break %q: want START-END", value)
	}
	*f = append(*f, service.BreakInput{Start: start, End: end})
	return nil
}

func (f *breakListFlag) Type() string { return "break" }

// formatBreaks renders a break list for display.
func formatBreaks(breaks []domain.Break) string {
	if len(breaks) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(breaks))
	for _, b := range breaks {
		parts = append(parts, fmt.Sprintf("%02d:%02d-%02d:%02d",
			(b.StartMin/60)%24, b.StartMin%60, (b.EndMin/60)%24, b.EndMin%60))
	}
	return strings.Join(parts, ", ")
}

// formatSeconds renders a duration in seconds as "7h30m".
func formatSeconds(sec int64) string {
	d := time.Duration(sec) * time.Second
	return d.Truncate(time.Minute).String()
}
