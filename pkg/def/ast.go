package def

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
)

// File represents a complete routing description: a small header
// followed by the driver-pin and free-pin sections.
type File struct {
	Version  *VersionStmt   `parser:"@@?"`
	Design   string         `parser:"KwDesign @Ident Semicolon"`
	DieArea  *DieArea       `parser:"@@?"`
	Drivers  *DriverSection `parser:"@@"`
	FreePins *PinSection    `parser:"@@ KwEnd KwDesign"`
}

// VersionStmt is the optional format version line.
// Example: VERSION 5.8 ;
type VersionStmt struct {
	Number string `parser:"KwVersion @( Real | Integer ) Semicolon"`
}

// DieArea gives the die's bounding rectangle.
// Example: DIEAREA ( 0 0 ) ( 10000 10000 ) ;
type DieArea struct {
	X1 int `parser:"KwDieArea LParen @Integer"`
	Y1 int `parser:"@Integer RParen"`
	X2 int `parser:"LParen @Integer"`
	Y2 int `parser:"@Integer RParen Semicolon"`
}

// DriverSection lists the fixed chain endpoints.
type DriverSection struct {
	Count   int             `parser:"KwDriverPins @Integer Semicolon"`
	Records []*DriverRecord `parser:"@@* KwEnd KwDriverPins"`
}

// DriverRecord is one driver pin with its direction tag.
// Example: - DRIVERPIN_0 + DIRECTION INPUT + PLACED ( 120 4500 ) ;
type DriverRecord struct {
	Name      string `parser:"Dash @Ident"`
	Direction string `parser:"Plus KwDirection @( KwInput | KwOutput )"`
	X         int    `parser:"Plus KwPlaced LParen @Integer"`
	Y         int    `parser:"@Integer RParen Semicolon"`
}

// IsInput reports whether the record carries the INPUT direction tag.
func (d *DriverRecord) IsInput() bool {
	return strings.EqualFold(d.Direction, "INPUT")
}

// PinSection lists the free pins awaiting chain assignment.
type PinSection struct {
	Count   int          `parser:"KwPins @Integer Semicolon"`
	Records []*PinRecord `parser:"@@* KwEnd KwPins"`
}

// PinRecord is one free pin.
// Example: - pin_007 + PLACED ( 581 4092 ) ;
type PinRecord struct {
	Name string `parser:"Dash @Ident"`
	X    int    `parser:"Plus KwPlaced LParen @Integer"`
	Y    int    `parser:"@Integer RParen Semicolon"`
}

// Build converts the parsed file into driver and free-pin records for
// chip.NewGraph. Drivers keep their declaration order within each
// direction. Declared section counts must match the records present,
// and pin names must be unique across the whole file.
func (f *File) Build() (inputs, outputs, free []*chip.Pin, err error) {
	if f.Drivers.Count != len(f.Drivers.Records) {
		return nil, nil, nil, fmt.Errorf("def: DRIVERPINS declares %d records, found %d",
			f.Drivers.Count, len(f.Drivers.Records))
	}
	if f.FreePins.Count != len(f.FreePins.Records) {
		return nil, nil, nil, fmt.Errorf("def: PINS declares %d records, found %d",
			f.FreePins.Count, len(f.FreePins.Records))
	}

	seen := make(map[string]bool)
	for _, d := range f.Drivers.Records {
		if seen[d.Name] {
			return nil, nil, nil, fmt.Errorf("def: duplicate pin name %q", d.Name)
		}
		seen[d.Name] = true
		p := chip.NewPin(d.Name, d.X, d.Y)
		if d.IsInput() {
			inputs = append(inputs, p)
		} else {
			outputs = append(outputs, p)
		}
	}
	for _, r := range f.FreePins.Records {
		if seen[r.Name] {
			return nil, nil, nil, fmt.Errorf("def: duplicate pin name %q", r.Name)
		}
		seen[r.Name] = true
		free = append(free, chip.NewPin(r.Name, r.X, r.Y))
	}
	return inputs, outputs, free, nil
}

// LinksFile represents a routed-net output artifact: one record per
// edge of the chain graph.
type LinksFile struct {
	Nets []*NetRecord `parser:"@@*"`
}

// NetRecord is a single net record.
// Example:
//
//	- BOGUS NET NAME
//	  (  pin_007 conn_in )
//	  (  DRIVERPIN_16 conn_out )
//	;
type NetRecord struct {
	Name  []string   `parser:"Dash @Ident+"`
	Conns []*NetConn `parser:"@@+ Semicolon"`
}

// NetConn names one endpoint of a net record and its role.
type NetConn struct {
	Pin  string `parser:"LParen @Ident"`
	Role string `parser:"@Ident RParen"`
}

// Links maps each edge's source pin name to its destination pin name.
type Links map[string]string

// Links flattens the parsed net records into a source-to-destination
// map. Every record must have exactly one conn_in and one conn_out
// endpoint, and no pin may be the source of two records.
func (f *LinksFile) Links() (Links, error) {
	links := make(Links, len(f.Nets))
	for i, net := range f.Nets {
		var from, to string
		for _, c := range net.Conns {
			switch c.Role {
			case "conn_in":
				from = c.Pin
			case "conn_out":
				to = c.Pin
			default:
				return nil, fmt.Errorf("def: net record %d: unknown role %q", i, c.Role)
			}
		}
		if from == "" || to == "" {
			return nil, fmt.Errorf("def: net record %d: missing conn_in or conn_out", i)
		}
		if _, dup := links[from]; dup {
			return nil, fmt.Errorf("def: pin %q is conn_in of two net records", from)
		}
		links[from] = to
	}
	return links, nil
}
