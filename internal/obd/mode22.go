package obd

import (
	"log"

	"github.com/provrb/obdium/internal/command"
	"github.com/provrb/obdium/internal/response"
	"github.com/provrb/obdium/internal/scalar"
)

// ManufacturerPID is one vendor-specific Mode 22 row loaded from the
// model-PID database, grounded on obd.rs's test_mode_22_pids query
// against vehicle_pids.
type ManufacturerPID struct {
	PID         string
	Equation    string
	Unit        string
	Description string
}

// ManufacturerPIDSource loads the Mode 22 PID rows applicable to an
// engine-manufacturer key. This module ships no implementation; callers
// supply one, e.g. backed by a database or a static slice.
type ManufacturerPIDSource interface {
	PIDsForManufacturer(manufacturer string) ([]ManufacturerPID, error)
}

// EvaluateDynamicEquation evaluates equation against r's payload bytes
// (A..E bindings, only the letters equation references), mapping the
// unit string through scalar.ParseUnit, per §4.12. Evaluation failure
// or an empty payload yields scalar.NoDataScalar rather than an error,
// and is logged.
func (s *Session) EvaluateDynamicEquation(equation, unit string, r response.Response) scalar.Scalar {
	if r.IsNoData() {
		return scalar.NoDataScalar()
	}

	bindings := map[byte]float64{
		'A': float64(r.A()),
		'B': float64(r.B()),
		'C': float64(r.C()),
		'D': float64(r.D()),
		'E': float64(r.E()),
	}

	value, err := evaluateEquation(equation, bindings)
	if err != nil {
		log.Printf("obd: when evaluating dynamic equation %q: %v", equation, err)
		return scalar.NoDataScalar()
	}

	u, ok := scalar.ParseUnit(unit)
	if !ok {
		u = scalar.Unknown
	}
	return s.scalarOf(value, u)
}

// RunManufacturerPIDs queries every Mode 22 PID applicable to
// manufacturer from source and evaluates each one's equation, per
// §4.12. Unlike the service-01 readers this issues arbitrary commands
// (the PID string is the full 6-hex-char Mode 22 request, e.g.
// "221154"), matching Command::new_arb in the source.
func (s *Session) RunManufacturerPIDs(manufacturer string, source ManufacturerPIDSource) (map[string]scalar.Scalar, error) {
	rows, err := source.PIDsForManufacturer(manufacturer)
	if err != nil {
		return nil, err
	}

	results := make(map[string]scalar.Scalar, len(rows))
	for _, row := range rows {
		r := s.Query(command.NewArbitrary(row.PID))
		results[row.PID] = response.MapNoData(r, scalar.NoDataScalar(), func(r response.Response) scalar.Scalar {
			return s.EvaluateDynamicEquation(row.Equation, row.Unit, r)
		})
	}
	return results, nil
}
