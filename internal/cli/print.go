package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"wheresmy/internal/model"
	"wheresmy/internal/timeutil"
)

func renderItems(w io.Writer, items []model.Item, filter string, now time.Time) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if filter != "" {
			_, _ = f.Fprintf(w, "nothing matches %q\n", filter)
		} else {
			_, _ = f.Fprintln(w, "nothing tracked yet, try: wheresmy add Keys \"Front door\"")
		}
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	faint := color.New(color.Faint)
	for _, item := range items {
		tbl.AddRow(
			fmt.Sprintf("%s %s", item.Icon, item.Name),
			item.Location,
			faint.Sprint(timeutil.Ago(item.UpdatedAt, now)),
		)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func renderHistory(w io.Writer, item model.Item, now time.Time) {
	title := color.New(color.Bold, color.Underline)
	_, _ = title.Fprintf(w, "%s %s\n", item.Icon, item.Name)

	tbl := uitable.New()
	tbl.Separator = "  "
	faint := color.New(color.Faint)
	for i, entry := range item.History {
		marker := " "
		if i == 0 {
			marker = "●"
		}
		tbl.AddRow(marker, entry.Location, faint.Sprint(timeutil.Ago(entry.Timestamp, now)))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func renderSuggestions(w io.Writer) {
	title := color.New(color.Bold, color.Underline)

	_, _ = title.Fprintln(w, "Items")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range model.SuggestedItems {
		tbl.AddRow(s.Icon, s.Name)
	}
	_, _ = fmt.Fprintln(w, tbl)

	_, _ = title.Fprintln(w, "Locations")
	for _, loc := range model.SuggestedLocations {
		_, _ = fmt.Fprintln(w, loc)
	}
}
