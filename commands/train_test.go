package commands

import (
	"strings"
	"testing"
)

func TestTrainRejectsNonPositiveTemperature(t *testing.T) {
	width, height = 5, 5
	loadPath, savePath = "", ""

	for _, temp := range []string{"0", "-1"} {
		cmd := TrainCommand()
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		cmd.SetArgs([]string{"--explore", "softmax", "--temperature=" + temp, "--episodes", "10"})
		err := cmd.Execute()
		if err == nil {
			t.Fatalf("expected an error for temperature %s", temp)
		}
		if !strings.Contains(err.Error(), "temperature") {
			t.Fatalf("unexpected error for temperature %s: %v", temp, err)
		}
	}
}

func TestTrainRejectsUnknownExploration(t *testing.T) {
	width, height = 5, 5
	loadPath, savePath = "", ""

	cmd := TrainCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--explore", "bogus", "--episodes", "10"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown exploration strategy")
	}
}
