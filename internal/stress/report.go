package stress

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WriteReport renders a run summary table to w.
func WriteReport(w io.Writer, c Config, res Result, verifyErr error) {
	verdict := "ok"
	if verifyErr != nil {
		verdict = verifyErr.Error()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"distribution", c.Distribution})
	table.Append([]string{"goroutines", strconv.Itoa(c.Goroutines)})
	table.Append([]string{"operations", strconv.Itoa(res.TotalOps())})
	table.Append([]string{"elapsed", res.Elapsed.Round(time.Millisecond).String()})
	table.Append([]string{"throughput", fmt.Sprintf("%.0f ops/s", res.Throughput())})
	table.Append([]string{"reads", fmt.Sprintf("%d (%d hits)", res.Reads, res.Hits)})
	table.Append([]string{"adds", fmt.Sprintf("%d (%d new)", res.Adds, res.Added)})
	table.Append([]string{"removes", fmt.Sprintf("%d (%d present)", res.Removes, res.Removed)})
	table.Append([]string{"prefilled", strconv.Itoa(res.Prefilled)})
	table.Append([]string{"final size", strconv.Itoa(res.FinalSize)})
	table.Append([]string{"capacity", strconv.Itoa(res.Capacity)})
	table.Append([]string{"kicks", strconv.FormatUint(res.Stats.Kicks(), 10)})
	table.Append([]string{"resizes", strconv.FormatUint(res.Stats.Resizes(), 10)})
	table.Append([]string{"verification", verdict})
	table.Render()
}
