package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const e2eInput = `VERSION 5.8 ;
DESIGN e2echip ;
DIEAREA ( 0 0 ) ( 100 100 ) ;
DRIVERPINS 4 ;
- DRIVERPIN_0 + DIRECTION INPUT + PLACED ( 0 0 ) ;
- DRIVERPIN_1 + DIRECTION INPUT + PLACED ( 0 10 ) ;
- DRIVERPIN_16 + DIRECTION OUTPUT + PLACED ( 10 0 ) ;
- DRIVERPIN_17 + DIRECTION OUTPUT + PLACED ( 10 10 ) ;
END DRIVERPINS
PINS 4 ;
- pin_000 + PLACED ( 1 1 ) ;
- pin_001 + PLACED ( 9 1 ) ;
- pin_002 + PLACED ( 1 9 ) ;
- pin_003 + PLACED ( 9 9 ) ;
END PINS
END DESIGN
`

// runCommand executes the root command with the given args, capturing
// stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	routeMethod = "fast"
	routeOutput = ""
	routeWorkers = 1
	routeSVGPath = ""
	renderOutput = ""
	renderStyle = ""
	verbose = false

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), err
}

func TestRouteValidateRenderE2E(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "design.def")
	if err := os.WriteFile(input, []byte(e2eInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	for _, method := range []string{"fast", "slow"} {
		t.Run(method, func(t *testing.T) {
			routed := filepath.Join(dir, method+"_routed.def")

			out, err := runCommand(t, "route", input, "-m", method, "-o", routed)
			if err != nil {
				t.Fatalf("route: %v\n%s", err, out)
			}
			for _, want := range []string{"Routed 2 chains", "Total length:", "Wrote 6 net records"} {
				if !strings.Contains(out, want) {
					t.Errorf("route output missing %q:\n%s", want, out)
				}
			}

			out, err = runCommand(t, "validate", input, routed)
			if err != nil {
				t.Fatalf("validate: %v\n%s", err, out)
			}
			for _, want := range []string{
				"All pins are routed exactly once: check",
				"Number of chains formed: 2",
				"Average length =",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("validate output missing %q:\n%s", want, out)
				}
			}

			svg := filepath.Join(dir, method+".svg")
			out, err = runCommand(t, "render", input, routed, "-o", svg)
			if err != nil {
				t.Fatalf("render: %v\n%s", err, out)
			}
			if _, err := os.Stat(svg); err != nil {
				t.Errorf("render wrote no SVG: %v", err)
			}
		})
	}
}

func TestRouteUnknownMethodE2E(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "design.def")
	if err := os.WriteFile(input, []byte(e2eInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if _, err := runCommand(t, "route", input, "-m", "psychic"); err == nil {
		t.Error("unknown method accepted")
	}
}

func TestValidateBadArtifactE2E(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "design.def")
	if err := os.WriteFile(input, []byte(e2eInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	bad := filepath.Join(dir, "bad.def")
	if err := os.WriteFile(bad, []byte("this is not a net record\n"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	if _, err := runCommand(t, "validate", input, bad); err == nil {
		t.Error("malformed artifact accepted")
	}
}
