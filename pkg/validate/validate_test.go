package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/def"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/router"
)

const sampleInput = `DESIGN testchip ;
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

func parseInput(t *testing.T) *def.File {
	t.Helper()
	p, err := def.NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := p.ParseString(sampleInput)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return file
}

func parseLinks(t *testing.T, output string) def.Links {
	t.Helper()
	p, err := def.NewLinksParser()
	if err != nil {
		t.Fatalf("NewLinksParser: %v", err)
	}
	file, err := p.ParseString(output)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	links, err := file.Links()
	if err != nil {
		t.Fatalf("Links: %v", err)
	}
	return links
}

func TestDriverNameConvention(t *testing.T) {
	tests := []struct {
		name          string
		input, output bool
	}{
		{"DRIVERPIN_0", true, false},
		{"DRIVERPIN_15", true, false},
		{"DRIVERPIN_16", false, true},
		{"DRIVERPIN_31", false, true},
		{"pin_000", false, false},
		{"DRIVERPIN_x", false, false},
	}
	for _, tt := range tests {
		if got := IsInputDriver(tt.name); got != tt.input {
			t.Errorf("IsInputDriver(%s) = %v, want %v", tt.name, got, tt.input)
		}
		if got := IsOutputDriver(tt.name); got != tt.output {
			t.Errorf("IsOutputDriver(%s) = %v, want %v", tt.name, got, tt.output)
		}
	}
}

// Serializing the fast router's output and re-parsing it through the
// validator must produce a clean report with k chains.
func TestRoundTripFastRouter(t *testing.T) {
	file := parseInput(t)
	inputs, outputs, free, err := file.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g, err := chip.NewGraph(inputs, outputs, free)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	res := router.Fast(g)

	var sb strings.Builder
	if err := def.WriteNets(&sb, g.Edges()); err != nil {
		t.Fatalf("WriteNets: %v", err)
	}

	report, err := Check(file, parseLinks(t, sb.String()))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if len(report.Chains) != 2 {
		t.Fatalf("chain count = %d, want 2", len(report.Chains))
	}
	total := 0
	for _, l := range report.ChainLengths() {
		total += l
	}
	if total != res.Total {
		t.Errorf("validator total %d != router total %d", total, res.Total)
	}
	if report.Stats.Mean != res.Stats.Mean {
		t.Errorf("validator mean %v != router mean %v", report.Stats.Mean, res.Stats.Mean)
	}
}

func TestRoundTripSlowRouter(t *testing.T) {
	file := parseInput(t)
	inputs, outputs, free, err := file.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g, err := chip.NewGraph(inputs, outputs, free)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	router.Slow(g)

	var sb strings.Builder
	if err := def.WriteNets(&sb, g.Edges()); err != nil {
		t.Fatalf("WriteNets: %v", err)
	}

	report, err := Check(file, parseLinks(t, sb.String()))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if diff := cmp.Diff([]int{12, 12}, report.ChainLengths()); diff != "" {
		t.Errorf("chain lengths (-want +got):\n%s", diff)
	}
	if report.Spread != 0 {
		t.Errorf("spread = %d, want 0", report.Spread)
	}
}

func TestCheckCycle(t *testing.T) {
	// Chain 0 loops between pin_000 and pin_001; a stray record keeps
	// the used-driver counts balanced so the walk is what fails.
	output := `- BOGUS NET NAME
  (  DRIVERPIN_0 conn_in )
  (  pin_000 conn_out )
;
- BOGUS NET NAME
  (  pin_000 conn_in )
  (  pin_001 conn_out )
;
- BOGUS NET NAME
  (  pin_001 conn_in )
  (  pin_000 conn_out )
;
- BOGUS NET NAME
  (  pin_003 conn_in )
  (  DRIVERPIN_16 conn_out )
;
- BOGUS NET NAME
  (  DRIVERPIN_1 conn_in )
  (  DRIVERPIN_17 conn_out )
;
`
	_, err := Check(parseInput(t), parseLinks(t, output))
	if !errors.Is(err, ErrCycle) {
		t.Errorf("got %v, want ErrCycle", err)
	}
}

func TestCheckBrokenChain(t *testing.T) {
	output := `- BOGUS NET NAME
  (  DRIVERPIN_0 conn_in )
  (  pin_000 conn_out )
;
- BOGUS NET NAME
  (  pin_003 conn_in )
  (  DRIVERPIN_16 conn_out )
;
- BOGUS NET NAME
  (  DRIVERPIN_1 conn_in )
  (  DRIVERPIN_17 conn_out )
;
`
	_, err := Check(parseInput(t), parseLinks(t, output))
	if !errors.Is(err, ErrBrokenChain) {
		t.Errorf("got %v, want ErrBrokenChain", err)
	}
}

func TestCheckDriverReuse(t *testing.T) {
	output := `- BOGUS NET NAME
  (  DRIVERPIN_0 conn_in )
  (  DRIVERPIN_16 conn_out )
;
- BOGUS NET NAME
  (  DRIVERPIN_1 conn_in )
  (  DRIVERPIN_16 conn_out )
;
`
	_, err := Check(parseInput(t), parseLinks(t, output))
	if !errors.Is(err, ErrDriverReuse) {
		t.Errorf("got %v, want ErrDriverReuse", err)
	}
}

func TestCheckDriverCount(t *testing.T) {
	// A single chain is below the minimum of two.
	output := `- BOGUS NET NAME
  (  DRIVERPIN_0 conn_in )
  (  DRIVERPIN_16 conn_out )
;
`
	_, err := Check(parseInput(t), parseLinks(t, output))
	if !errors.Is(err, ErrDriverCount) {
		t.Errorf("got %v, want ErrDriverCount", err)
	}
}

func TestCheckUnroutedPin(t *testing.T) {
	// Valid chains, but pin_002 and pin_003 never appear.
	output := `- BOGUS NET NAME
  (  DRIVERPIN_0 conn_in )
  (  pin_000 conn_out )
;
- BOGUS NET NAME
  (  pin_000 conn_in )
  (  pin_001 conn_out )
;
- BOGUS NET NAME
  (  pin_001 conn_in )
  (  DRIVERPIN_16 conn_out )
;
- BOGUS NET NAME
  (  DRIVERPIN_1 conn_in )
  (  DRIVERPIN_17 conn_out )
;
`
	_, err := Check(parseInput(t), parseLinks(t, output))
	if !errors.Is(err, ErrCoverage) {
		t.Errorf("got %v, want ErrCoverage", err)
	}
}

func TestCheckUnknownPin(t *testing.T) {
	output := `- BOGUS NET NAME
  (  DRIVERPIN_0 conn_in )
  (  ghost_pin conn_out )
;
- BOGUS NET NAME
  (  pin_003 conn_in )
  (  DRIVERPIN_16 conn_out )
;
- BOGUS NET NAME
  (  DRIVERPIN_1 conn_in )
  (  DRIVERPIN_17 conn_out )
;
`
	_, err := Check(parseInput(t), parseLinks(t, output))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
}
