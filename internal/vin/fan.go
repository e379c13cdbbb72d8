package vin

import "golang.org/x/sync/errgroup"

// Attributes is a snapshot of commonly requested VIN attributes, resolved
// concurrently since each is an independent reference-database round trip
// with no ordering requirement between them.
type Attributes struct {
	Make                string
	Model               string
	ModelYear           int
	VehicleType         string
	Manufacturer        string
	BodyClass           string
	FuelType            string
	DriveType           string
	EngineModel         string
	EngineCylinderCount int64
	EngineDisplacement  float64
	TransmissionStyle   string
	SteeringLocation    string
}

// ResolveAttributes fans the common-attribute accessors out across an
// errgroup and collects whatever resolves; a failed individual accessor
// leaves its field at the zero value rather than failing the whole fetch,
// since vPIC schemas frequently lack coverage for some attributes of a
// given VIN.
func (v *VIN) ResolveAttributes() Attributes {
	var attrs Attributes
	var g errgroup.Group

	g.Go(func() error { attrs.Make, _ = v.Make(); return nil })
	g.Go(func() error { attrs.Model, _ = v.Model(); return nil })
	g.Go(func() error { attrs.ModelYear, _ = v.ModelYear(); return nil })
	g.Go(func() error { attrs.VehicleType, _ = v.VehicleType(); return nil })
	g.Go(func() error { attrs.Manufacturer, _ = v.Manufacturer(); return nil })
	g.Go(func() error { attrs.BodyClass, _ = v.BodyClass(); return nil })
	g.Go(func() error { attrs.FuelType, _ = v.FuelType(); return nil })
	g.Go(func() error { attrs.DriveType, _ = v.DriveType(); return nil })
	g.Go(func() error { attrs.EngineModel, _ = v.EngineModel(); return nil })
	g.Go(func() error { attrs.EngineCylinderCount, _ = v.CylinderCount(); return nil })
	g.Go(func() error { attrs.EngineDisplacement, _ = v.EngineDisplacement(); return nil })
	g.Go(func() error { attrs.TransmissionStyle, _ = v.TransmissionStyle(); return nil })
	g.Go(func() error { attrs.SteeringLocation, _ = v.SteeringLocation(); return nil })

	_ = g.Wait()
	return attrs
}
