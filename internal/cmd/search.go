package cmd

import (
	"bufio"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/pathsearch/internal/config"
	"github.com/harrison/pathsearch/internal/display"
	"github.com/harrison/pathsearch/internal/fileutil"
	"github.com/harrison/pathsearch/internal/filter"
	"github.com/harrison/pathsearch/internal/logger"
	"github.com/harrison/pathsearch/internal/models"
	"github.com/harrison/pathsearch/internal/similarity"
)

// Search runs one search described by opts and writes one line per match to
// out. Unreadable directories and entries never fail the search; the returned
// error is either an invalid pattern or a failed write.
func Search(opts *config.Options, out io.Writer, log fileutil.Logger) error {
	f, err := filter.New(opts.Mode, opts.Pattern)
	if err != nil {
		return err
	}

	scanner := fileutil.NewScanner(f, fileutil.ScanOptions{
		ExecutableOnly: opts.ExecutableOnly,
		Logger:         log,
	})
	renderer := display.NewRenderer(opts.Color)

	w := bufio.NewWriter(out)

	if opts.SortApplies() {
		entries := scanner.Collect(opts.Dirs)
		similarity.Rank(opts.Pattern, entries)
		for _, e := range entries {
			if err := renderer.Render(w, e); err != nil {
				return err
			}
		}
	} else {
		err := scanner.Scan(opts.Dirs, func(e models.MatchedEntry) error {
			return renderer.Render(w, e)
		})
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

func warnSortIgnored(cmd *cobra.Command, mode filter.Mode) {
	errOut := cmd.ErrOrStderr()
	display.WarnSortIgnored(mode.String()).Display(errOut, logger.IsTerminal(errOut))
}
