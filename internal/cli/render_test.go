package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

func TestRender(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "charts.csv", sampleCSV)
	outDir := filepath.Join(dir, "out")

	if err := execute(t, c, "render", input, "-o", outDir); err != nil {
		t.Fatalf("render error: %v", err)
	}

	got := out.String()
	wants := []string{
		"share slice 0 (a): 60%",
		"share slice 1 (b): 25%",
		"share slice 2 (c): 15%",
		"Exported file: " + filepath.Join(outDir, "bars.svg"),
		"Exported file: " + filepath.Join(outDir, "share.svg"),
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if strings.Index(got, "bars.svg") > strings.Index(got, "share slice 0") {
		t.Error("blocks were not reported in input order")
	}

	for _, name := range []string{"bars.svg", "share.svg"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRenderFallsBackToDefault(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "sample.csv", sampleCSV)
	cfg := writeFile(t, dir, "config.toml",
		"[input]\ndefault = \""+filepath.ToSlash(input)+"\"\n[output]\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	if err := execute(t, c, "render", filepath.Join(dir, "missing.csv"), "--config", cfg); err != nil {
		t.Fatalf("render error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "missing.csv not found") {
		t.Errorf("output has no fallback warning\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "bars.svg")); err != nil {
		t.Errorf("bars.svg not written to configured dir: %v", err)
	}
}

func TestRenderWithoutArgumentUsesDefault(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "sample.csv", sampleCSV)
	cfg := writeFile(t, dir, "config.toml", "[input]\ndefault = \""+filepath.ToSlash(input)+"\"\n")

	if err := execute(t, c, "render", "--config", cfg, "-o", dir); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if strings.Contains(out.String(), "not found") {
		t.Errorf("default input should not warn\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Exported file:") {
		t.Errorf("nothing exported\n%s", out.String())
	}
}

func TestRenderReadsPipedInputName(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "default.csv", sampleCSV)
	mine := writeFile(t, dir, "mine.csv", "h,h\nmine,c,18,,,,false\na,3\nb,1\n")
	cfg := writeFile(t, dir, "config.toml",
		"[input]\ndefault = \""+filepath.ToSlash(def)+"\"\n[output]\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	tests := []struct {
		name string
		args []string
	}{
		{"render command", []string{"render", "--config", cfg}},
		{"bare invocation", []string{"--config", cfg}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCLI(t)
			c.SetInput(strings.NewReader(mine + "\n"))
			if err := execute(t, c, tt.args...); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}

			got := out.String()
			if want := "Exported file: " + filepath.Join(dir, "mine.svg"); !strings.Contains(got, want) {
				t.Errorf("output missing %q\n%s", want, got)
			}
			if strings.Contains(got, "bars.svg") {
				t.Errorf("default input was rendered instead of the piped one\n%s", got)
			}
		})
	}
}

func TestBareInvocationUsesDefault(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "sample.csv", sampleCSV)
	cfg := writeFile(t, dir, "config.toml", "[input]\ndefault = \""+filepath.ToSlash(input)+"\"\n")

	if err := execute(t, c, "--config", cfg, "-o", dir); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, name := range []string{"bars.svg", "share.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "Exported file:") {
		t.Errorf("nothing exported\n%s", out.String())
	}
}

func TestRootRejectsUnknownCommand(t *testing.T) {
	c, out := newTestCLI(t)
	chdir(t, t.TempDir())
	if err := execute(t, c, "rendr"); err == nil {
		t.Error("Execute(rendr) error = nil, want unknown command")
	}
	if strings.Contains(out.String(), "Exported file") {
		t.Errorf("unknown command exported files\n%s", out.String())
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	malformed := writeFile(t, dir, "bad.csv", "h,h\nout,x,1,2,3,4,true,true\n")
	zero := writeFile(t, dir, "zero.csv", "h,h\nout,c,18,,,,true\na,0\n")

	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"unknown mode", []string{"render", malformed, "-o", dir}, errs.ErrCodeMalformedInput},
		{"zero total", []string{"render", zero, "-o", dir}, errs.ErrCodeDivideByZero},
		{"no input and no default", []string{"render", filepath.Join(dir, "nope.csv"), "-o", dir}, errs.ErrCodeMissingResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCLI(t)
			chdir(t, t.TempDir()) // no sample_data.csv next to the test
			if err := execute(t, c, tt.args...); !errs.Is(err, tt.code) {
				t.Errorf("render error = %v, want %s", err, tt.code)
			}
			if strings.Contains(out.String(), "Exported file") {
				t.Errorf("failed run exported files\n%s", out.String())
			}
		})
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (equivalent to Go 1.24's t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
