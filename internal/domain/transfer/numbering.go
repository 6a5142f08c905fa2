package transfer

import (
	"fmt"
	"time"
)

// FormatTransferNo builds the human-readable transfer number from the creation
// date and the per-type counter value: YYYY-MM-DD-NN, counter zero-padded to at
// least two digits. The counter is monotonic for the lifetime of the type (no
// daily rollover), so numbers issued on the same day differ by the counter alone.
func FormatTransferNo(t time.Time, count int) string {
	return fmt.Sprintf("%s-%02d", t.Format("2006-01-02"), count)
}
