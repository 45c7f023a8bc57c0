package align

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output is the structured mirror of the placement report.
type Output struct {
	// Time the search ran, ex: "2020/03/03 14:42:17"
	Time string `json:"time"`

	// Alignment path searched
	Alignment string `json:"alignment"`

	// Hits in primer then row order
	Hits []Hit `json:"hits"`
}

// writeJSON writes every placement to the filename requested.
func writeJSON(filename, alignment string, hits []Hit) (output []byte, err error) {
	// store save time, using same format as log.Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Time:      stamp,
		Alignment: alignment,
		Hits:      hits,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize results: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the results: %v", err)
	}

	return output, nil
}
