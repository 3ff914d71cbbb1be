package cmd

import (
	"fmt"
	"io"
	"time"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var sessionsFilter request.SessionFilter

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions grouped by movie, theater and day",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := newCLIEnv()
		if err != nil {
			return err
		}
		defer env.close()

		svc := usecase.NewShowtimeService(env.api, env.config.App.Location, env.log)
		sessions, err := svc.GetSessionsByMovie(cmd.Context(), &sessionsFilter)
		if err != nil {
			return err
		}

		renderSessions(cmd.OutOrStdout(), sessions, env.config.App.Location)
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Int64Var(&sessionsFilter.MovieID, "movie", 0, "only this movie ID")
	sessionsCmd.Flags().Int64Var(&sessionsFilter.TheaterID, "theater", 0, "only this theater ID")
	sessionsCmd.Flags().StringVar(&sessionsFilter.Date, "date", "", "only this day (YYYY-MM-DD)")
}

func renderSessions(w io.Writer, movies []response.MovieSessionsResponse, loc *time.Location) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return
	}
	if loc == nil {
		loc = time.UTC
	}

	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Movie", "Theater", "Date", "Session", "Time", "Quality", "Language", "Price"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 30},
		{Number: 2, AutoMerge: true, WidthMax: 24},
		{Number: 3, AutoMerge: true},
	})
	t.Style().Options.SeparateRows = true

	for _, movie := range movies {
		for _, theater := range movie.Theaters {
			var items []table.Row
			for _, date := range theater.Dates {
				for _, st := range date.Showtimes {
					price := "-"
					if st.Price != nil {
						price = st.Price.StringFixed(2)
					}
					items = append(items, table.Row{
						movie.Movie.Title,
						theater.Theater.Name,
						date.Date,
						st.ID,
						st.StartTime.In(loc).Format("15:04"),
						st.Quality,
						st.Language,
						price,
					})
				}
			}
			t.AppendRows(items, rowConfigAutoMerge)
		}
		t.AppendSeparator()
	}

	t.Render()
}
