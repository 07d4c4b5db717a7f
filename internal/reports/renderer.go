package reports

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"traffic-analyzer/internal/models"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML}

//go:generate mockgen -source=renderer.go -destination=./mocks/renderer_mock.go -package=mocks
type Renderer interface {
	// Render writes the full report to w. Output is buffered, so nothing reaches
	// w when encoding fails.
	Render(w io.Writer, report *models.Report) error
	Format() Format
}

// NewRenderer returns the renderer registered for format.
func NewRenderer(format string) (Renderer, error) {
	switch Format(format) {
	case FormatText:
		return &textRenderer{}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	case FormatYAML:
		return &yamlRenderer{}, nil
	default:
		return nil, errUnsupportedFormat(format)
	}
}

func flush(w io.Writer, format Format, body []byte) error {
	if _, err := w.Write(body); err != nil {
		return errInternalRenderFailed(format, err)
	}
	return nil
}

type jsonRenderer struct{}

func (r *jsonRenderer) Format() Format {
	return FormatJSON
}

func (r *jsonRenderer) Render(w io.Writer, report *models.Report) error {
	body, err := sonic.ConfigStd.MarshalIndent(NewView(report), "", "  ")
	if err != nil {
		return errInternalRenderFailed(FormatJSON, err)
	}
	return flush(w, FormatJSON, append(body, '\n'))
}

type yamlRenderer struct{}

func (r *yamlRenderer) Format() Format {
	return FormatYAML
}

func (r *yamlRenderer) Render(w io.Writer, report *models.Report) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewView(report)); err != nil {
		return errInternalRenderFailed(FormatYAML, err)
	}
	if err := enc.Close(); err != nil {
		return errInternalRenderFailed(FormatYAML, err)
	}
	return flush(w, FormatYAML, buf.Bytes())
}

type textRenderer struct{}

func (r *textRenderer) Format() Format {
	return FormatText
}

func (r *textRenderer) Render(w io.Writer, report *models.Report) error {
	v := NewView(report)
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "TRAFFIC REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	tw := tabwriter.NewWriter(&buf, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Run ID:\t%s\n", v.RunID)
	fmt.Fprintf(tw, "  Source:\t%s\n", v.Source)
	fmt.Fprintf(tw, "  Filters:\t%s\n", v.Filters)
	fmt.Fprintf(tw, "  Lines read:\t%s\n", humanize.Comma(int64(v.Lines.Total)))
	fmt.Fprintf(tw, "  Blank lines:\t%s\n", humanize.Comma(int64(v.Lines.Blank)))
	fmt.Fprintf(tw, "  Parsed records:\t%s\n", humanize.Comma(int64(v.Lines.Parsed)))
	fmt.Fprintf(tw, "  Skipped lines:\t%s\n", humanize.Comma(int64(v.Lines.Skipped)))
	fmt.Fprintf(tw, "  Matched records:\t%s\n", humanize.Comma(v.Lines.Matched))
	fmt.Fprintf(tw, "  Total bytes:\t%s (%s bytes)\n", v.TotalBytesHuman, humanize.Comma(v.TotalBytes))
	if v.FirstSeen != "" {
		fmt.Fprintf(tw, "  Time range:\t%s .. %s\n", v.FirstSeen, v.LastSeen)
	}
	_ = tw.Flush()
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	section(&buf, "SKIPPED LINES BY REASON", len(v.SkippedByReason), func(tw *tabwriter.Writer) {
		for _, rc := range v.SkippedByReason {
			fmt.Fprintf(tw, "  %s\t%s\n", rc.Reason, humanize.Comma(int64(rc.Count)))
		}
	})
	if len(v.FailureSamples) > 0 {
		section(&buf, "SAMPLE SKIPPED LINES", len(v.FailureSamples), func(tw *tabwriter.Writer) {
			for _, s := range v.FailureSamples {
				fmt.Fprintf(tw, "  line %d\t%s\t%s\n", s.LineNumber, s.Reason, s.Detail)
			}
		})
	}

	section(&buf, fmt.Sprintf("TOP %d IPS BY REQUESTS", v.TopN), len(v.TopIPs), rankedRows(v.TopIPs))

	section(&buf, "STATUS CODES", len(v.StatusDistribution), func(tw *tabwriter.Writer) {
		for _, sc := range v.StatusDistribution {
			fmt.Fprintf(tw, "  %d\t%s\n", sc.Status, humanize.Comma(sc.Count))
		}
	})
	section(&buf, "METHODS", len(v.MethodDistribution), func(tw *tabwriter.Writer) {
		for _, mc := range v.MethodDistribution {
			fmt.Fprintf(tw, "  %s\t%s\n", mc.Method, humanize.Comma(mc.Count))
		}
	})

	section(&buf, fmt.Sprintf("TOP %d PATHS", v.TopN), len(v.TopPaths), rankedRows(v.TopPaths))
	section(&buf, "USER AGENTS", len(v.UserAgents), rankedRows(v.UserAgents))

	section(&buf, "ERRORS", 1, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Client errors (4xx):\t%s\n", humanize.Comma(v.Errors.ClientErrors))
		fmt.Fprintf(tw, "  Server errors (5xx):\t%s\n", humanize.Comma(v.Errors.ServerErrors))
		fmt.Fprintf(tw, "  Error rate:\t%s%%\n", strconv.FormatFloat(v.Errors.ErrorRate*100, 'f', 2, 64))
		fmt.Fprintf(tw, "  Requests in last 24h:\t%s\n", humanize.Comma(v.RecentRecords))
	})

	return flush(w, FormatText, buf.Bytes())
}

// section prints a titled block; rows is skipped and "(none)" printed when n is zero.
func section(buf *bytes.Buffer, title string, n int, rows func(tw *tabwriter.Writer)) {
	fmt.Fprintf(buf, "\n%s\n", title)
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	if n == 0 {
		fmt.Fprintln(buf, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(buf, 2, 4, 2, ' ', 0)
	rows(tw)
	_ = tw.Flush()
}

func rankedRows(ranked []models.RankedCount) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		for i, rc := range ranked {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, rc.Key, humanize.Comma(rc.Count))
		}
	}
}
