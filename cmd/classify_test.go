package cmd

import (
	"os"
	"path"
	"path/filepath"
	"testing"
)

func Test_classifyExec(t *testing.T) {
	fwd, _ := filepath.Abs(path.Join("..", "test", "input", "fwd_hits.fuzznuc"))
	rev, _ := filepath.Abs(path.Join("..", "test", "input", "rev_hits.fuzznuc"))
	out := path.Join(t.TempDir(), "out.json")

	classifyCmd.Flags().Set("forward", fwd)
	classifyCmd.Flags().Set("reverse", rev)
	classifyCmd.Flags().Set("out", out)

	classifyCmd.Run(classifyCmd, []string{})

	if _, err := os.Stat(out); err != nil {
		t.Errorf("classify wrote no results: %v", err)
	}
}
