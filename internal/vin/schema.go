package vin

import (
	"sort"

	"github.com/provrb/obdium/internal/obderr"
)

// VinSchemaID resolves the reference database's VinSchemaId for this VIN:
// the first candidate from getSimilarVinSchemaIds, since that already
// intersects the engine-model pattern match with the WMI/year range.
func (v *VIN) VinSchemaID() (int64, error) {
	return v.vinSchemaID.get(func() (int64, error) {
		ids, err := v.getSimilarVinSchemaIds()
		if err != nil {
			return -1, obderr.New(obderr.InvalidVinSchemaId)
		}
		return ids[0], nil
	})
}

// ModelID resolves the VehicleModel element's AttributeId, which is itself
// the vPIC Model table's row id.
func (v *VIN) ModelID() (int64, error) {
	row, err := v.queryPattern(ElementVehicleModel)
	if err != nil {
		return -1, err
	}
	return parseID(row.attributeID)
}

// VSpecSchemaID resolves the VehicleSpecSchema row matching both this VIN's
// make and model: every VehicleSpecSchema.Id for MakeId, intersected with
// VehicleSpecSchema_Model rows for ModelId.
func (v *VIN) VSpecSchemaID() (int64, error) {
	return v.vspecSchemaID.get(func() (int64, error) {
		db, err := v.connection()
		if err != nil {
			return -1, err
		}
		makeID, err := v.MakeID()
		if err != nil {
			return -1, err
		}
		modelID, err := v.ModelID()
		if err != nil {
			return -1, err
		}

		rows, err := db.Query("SELECT Id FROM VehicleSpecSchema WHERE MakeId = ?", makeID)
		if err != nil {
			return -1, obderr.Wrap(obderr.VPICQueryError, err)
		}
		var candidates []int64
		for rows.Next() {
			var id int64
			if rows.Scan(&id) == nil {
				candidates = append(candidates, id)
			}
		}
		rows.Close()
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

		modelRows, err := db.Query("SELECT VehicleSpecSchemaId FROM VehicleSpecSchema_Model WHERE ModelId = ?", modelID)
		if err != nil {
			return -1, obderr.Wrap(obderr.VPICQueryError, err)
		}
		defer modelRows.Close()
		for modelRows.Next() {
			var specSchemaID int64
			if modelRows.Scan(&specSchemaID) != nil {
				continue
			}
			i := sort.Search(len(candidates), func(i int) bool { return candidates[i] >= specSchemaID })
			if i < len(candidates) && candidates[i] == specSchemaID {
				return specSchemaID, nil
			}
		}

		return -1, obderr.New(obderr.InvalidVSpecSchemaId)
	})
}

// VSpecPatternID disambiguates among the VSpecSchemaPatternIds sharing a
// VSpecSchemaID by a key element: each candidate pattern's IsKey row names
// an (ElementId, AttributeId), and only the candidate whose AttributeId
// matches this VIN's own resolution of that ElementId (via Pattern, not
// VehicleSpecPattern) is correct.
func (v *VIN) VSpecPatternID() (int64, error) {
	return v.vspecPatternID.get(func() (int64, error) {
		schemaID, err := v.VSpecSchemaID()
		if err != nil {
			return -1, err
		}
		db, err := v.connection()
		if err != nil {
			return -1, err
		}

		rows, err := db.Query("SELECT Id FROM VSpecSchemaPattern WHERE SchemaId = ?", schemaID)
		if err != nil {
			return -1, obderr.Wrap(obderr.VPICQueryError, err)
		}
		var candidates []int64
		for rows.Next() {
			var id int64
			if rows.Scan(&id) == nil {
				candidates = append(candidates, id)
			}
		}
		rows.Close()

		if len(candidates) == 1 {
			return candidates[0], nil
		}

		for _, patternID := range candidates {
			keyRow := db.QueryRow(
				"SELECT ElementId, AttributeId FROM VehicleSpecPattern WHERE IsKey = 1 AND VSpecSchemaPatternId = ?",
				patternID,
			)
			var keyElementID int64
			var keyAttribute string
			if keyRow.Scan(&keyElementID, &keyAttribute) != nil {
				continue
			}

			row, err := v.queryPattern(ElementId(keyElementID))
			if err != nil {
				continue
			}
			if row.attributeID == keyAttribute {
				return patternID, nil
			}
		}

		return -1, obderr.New(obderr.InvalidVSpecPatternId)
	})
}
