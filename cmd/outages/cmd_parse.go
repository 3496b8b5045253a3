package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"outageschedule/pkg/addresses"
	"outageschedule/pkg/translit"
)

const maxLineSize = 1 << 20

type parsedLine struct {
	Line    int            `json:"line"`
	Streets *addresses.Row `json:"streets,omitempty"`
	Rest    string         `json:"rest,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [line...]",
		Short: "Parse address lines into streets and house numbers",
		Long: `Parse address lines such as "MAIN ST: BB,12,15-19A," given as
arguments, or one per line from stdin when there are none.

Cyrillic text is transliterated and uppercased first unless --raw is set.
With --strict any line that is not fully parsed makes the command fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			var opts []addresses.Option
			if a.cfg.Parser.Strict {
				opts = append(opts, addresses.WithStrict())
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			failed := 0
			for i, line := range lines {
				if !a.cfg.Parser.Raw {
					line = translit.Transliterate(line)
				}
				res := parsedLine{Line: i + 1}
				row, err := addresses.Parse(line, opts...)
				if err != nil {
					failed++
					slog.WarnContext(cmd.Context(), "Failed to parse line", slog.Int("line", i+1), slog.Any("error", err))
					res.Error = err.Error()
				} else {
					res.Streets = row
					res.Rest = row.Rest()
				}

				if a.format == "json" {
					if err := enc.Encode(res); err != nil {
						return err
					}
					continue
				}
				if err := writeParsedLine(out, res); err != nil {
					return err
				}
			}

			if failed > 0 && a.cfg.Parser.Strict {
				return fmt.Errorf("%d of %d lines failed to parse", failed, len(lines))
			}
			return nil
		},
	}
}

func writeParsedLine(w io.Writer, res parsedLine) error {
	if res.Error != "" {
		_, err := fmt.Fprintf(w, "%d: error: %s\n", res.Line, res.Error)
		return err
	}
	for _, e := range res.Streets.All() {
		specs := make([]string, len(e.Numbers))
		for i, s := range e.Numbers {
			specs[i] = s.String()
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", res.Line, e.Street, strings.Join(specs, ",")); err != nil {
			return err
		}
	}
	if res.Rest != "" {
		_, err := fmt.Fprintf(w, "%d: unparsed: %s\n", res.Line, res.Rest)
		return err
	}
	return nil
}

// readLines returns the non-blank lines of r
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	var lines []string
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
