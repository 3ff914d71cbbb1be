package cmd

import (
	"fmt"
	"io"
	"strconv"

	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var seatMapCmd = &cobra.Command{
	Use:   "seatmap SESSION_ID",
	Short: "Print the seat map of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showtimeID, ok := utils.ParseID(args[0])
		if !ok {
			return fmt.Errorf("invalid session ID %q", args[0])
		}

		env, err := newCLIEnv()
		if err != nil {
			return err
		}
		defer env.close()

		// no draft is read, so no selection repository is needed
		svc := usecase.NewSeatingService(env.api, nil, env.config.Booking.SeatsPerRow, env.log)
		seatMap, err := svc.GetSeatMap(cmd.Context(), showtimeID, "")
		if err != nil {
			return err
		}

		renderSeatMap(cmd.OutOrStdout(), seatMap)
		return nil
	},
}

// seatCell marks a seat: "xx" occupied, a trailing "*" for accessible seats.
func seatCell(seat response.SeatResponse) string {
	if seat.IsOccupied {
		return "xx"
	}
	cell := strconv.Itoa(seat.SeatNumber)
	if seat.IsDisabled {
		cell += "*"
	}
	return cell
}

func renderSeatMap(w io.Writer, seatMap *response.SeatMapResponse) {
	if len(seatMap.Rows) == 0 {
		fmt.Fprintf(w, "Session %d has no seats.\n", seatMap.ShowtimeID)
		return
	}

	fmt.Fprintf(w, "Session %d - %d/%d seats available\n", seatMap.ShowtimeID, seatMap.AvailableSeats, seatMap.TotalSeats)

	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{""}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft}}
	for col := 1; col <= seatMap.SeatsPerRow; col++ {
		header = append(header, col)
		configs = append(configs, table.ColumnConfig{Number: col + 1, Align: text.AlignCenter})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, row := range seatMap.Rows {
		cells := table.Row{row.Row}
		for _, seat := range row.Seats {
			cells = append(cells, seatCell(seat))
		}
		t.AppendRow(cells)
	}

	t.Render()

	legend := "xx occupied, * accessible"
	if seatMap.PricePerSeat != nil {
		legend += ", " + seatMap.PricePerSeat.StringFixed(2) + " per seat"
	}
	fmt.Fprintln(w, legend)
}
