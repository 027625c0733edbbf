package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestPrintDryRun(t *testing.T) {
	var buf bytes.Buffer
	r := Report{
		Binary: "notify-send",
		Args:   []string{"-t", "5000", "-i", "dialog-information", "", ""},
		DryRun: true,
	}
	if err := Print(&buf, r, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `dry run: notify-send -t 5000 -i dialog-information "" ""` + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestPrintSentAndFailed(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, Report{Sent: true, Summary: "Build finished"}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "sent: Build finished\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := Print(&buf, Report{Error: "notify-send exited with status 1"}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "failed: notify-send exited with status 1\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	code := 1
	r := Report{Binary: "notify-send", Args: []string{"-t", "1"}, ExitCode: &code, Error: "boom"}
	if err := Print(&buf, r, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["exit_code"] != float64(1) {
		t.Errorf("expected exit_code 1, got %v", got["exit_code"])
	}
	if got["sent"] != false {
		t.Errorf("expected sent false, got %v", got["sent"])
	}
}

func TestCommandLineQuoting(t *testing.T) {
	got := CommandLine("notify-send", []string{"-t", "3000", "Build finished", `say "hi"`, "$HOME"})
	want := `notify-send -t 3000 "Build finished" "say \"hi\"" "\$HOME"`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
