package vin

import (
	"strconv"
	"strings"

	"github.com/provrb/obdium/internal/obderr"
	"github.com/provrb/obdium/pkg/storage"
)

// matchPattern implements the SQL-LIKE-style matcher the reference database's
// Keys column uses: '_' matches exactly one character, '%' matches the rest
// of the key unconditionally, '[abc]'/'[a-z]' matches one character from a
// class (or, negated with a leading '^', one character outside it), and any
// other rune must match literally. The key must be fully consumed unless the
// pattern ends in '%'.
func matchPattern(key, pattern string) bool {
	ki := 0
	pi := 0
	for pi < len(pattern) {
		switch c := pattern[pi]; c {
		case '_':
			if ki >= len(key) {
				return false
			}
			ki++
			pi++
		case '%':
			return true
		case '[':
			pi++
			negated := false
			if pi < len(pattern) && pattern[pi] == '^' {
				negated = true
				pi++
			}
			var class []byte
			for pi < len(pattern) && pattern[pi] != ']' {
				start := pattern[pi]
				pi++
				if pi < len(pattern) && pattern[pi] == '-' && pi+1 < len(pattern) && pattern[pi+1] != ']' {
					end := pattern[pi+1]
					pi += 2
					for ch := start; ch <= end; ch++ {
						class = append(class, ch)
					}
				} else {
					class = append(class, start)
				}
			}
			if pi < len(pattern) {
				pi++ // consume ']'
			}
			if ki >= len(key) {
				return false
			}
			kc := key[ki]
			contains := false
			for _, cc := range class {
				if cc == kc {
					contains = true
					break
				}
			}
			if contains == negated {
				return false
			}
			ki++
		default:
			if ki >= len(key) || key[ki] != c {
				return false
			}
			ki++
			pi++
		}
	}
	return ki == len(key)
}

// asLikePattern turns a reference-database Keys value into the matchPattern
// form: '*' (the reference DB's own wildcard-for-unspecified-position
// convention) becomes '_', and a trailing '%' is appended to simulate the
// source's MSSQL LIKE semantics of matching any trailing suffix.
func asLikePattern(keys string) string {
	return strings.ReplaceAll(keys, "*", "_") + "%"
}

type patternRow struct {
	id          int64
	vinSchemaID int64
	keys        string
	elementID   ElementId
	attributeID string
}

func (v *VIN) getLookupTable(elementID ElementId) (string, bool) {
	db, err := v.connection()
	if err != nil {
		return "", false
	}
	row := db.QueryRow("SELECT LookupTable FROM Element WHERE Id = ?", int64(elementID))
	var table string
	if err := row.Scan(&table); err != nil {
		return "", false
	}
	return table, true
}

// getVSpecFromPattern resolves an element through the two-level VehicleSpec
// pattern table instead of the plain Pattern table — used for attributes
// disambiguated by trim rather than by VIN schema alone.
func (v *VIN) getVSpecFromPattern(elementID ElementId) (string, error) {
	table, ok := v.getLookupTable(elementID)
	if !ok {
		return "", obderr.New(obderr.VPICNoLookupTable)
	}

	row, err := v.queryVSpecPattern(elementID)
	if err != nil {
		return "", err
	}

	db, err := v.connection()
	if err != nil {
		return "", err
	}
	attrID, err := parseID(row.attributeID)
	if err != nil {
		return "", err
	}
	return lookupNameFromID(db, table, attrID)
}

// getSimilarVinSchemaIds returns candidate VinSchemaIds for this VIN: rows
// of Pattern keyed on the engine-model element (Id 18) whose Keys match this
// VIN's key, intersected with Wmi_VinSchema rows for this WMI whose
// [YearFrom, YearTo] range contains the VIN's model year. This mirrors
// get_vin_schema_id's inline resolution but returns every candidate instead
// of the first match — query_pattern tries each until one yields a row,
// since a single VIN key can be consistent with more than one schema.
func (v *VIN) getSimilarVinSchemaIds() ([]int64, error) {
	db, err := v.connection()
	if err != nil {
		return nil, err
	}

	modelYear, err := v.ModelYear()
	if err != nil {
		return nil, err
	}
	wmiID, err := v.WmiID()
	if err != nil {
		wmiID = -1
	}

	rows, err := db.Query("SELECT VinSchemaId, Keys FROM Pattern WHERE ElementId = ?", int64(ElementEngineModel))
	if err != nil {
		return nil, obderr.Wrap(obderr.VPICQueryError, err)
	}
	defer rows.Close()

	var byKey []int64
	key := v.Key()
	for rows.Next() {
		var schemaID int64
		var keys string
		if err := rows.Scan(&schemaID, &keys); err != nil {
			continue
		}
		if matchPattern(key, asLikePattern(keys)) {
			byKey = append(byKey, schemaID)
		}
	}

	yearRows, err := db.Query(
		"SELECT VinSchemaId FROM Wmi_VinSchema WHERE WmiId = ? AND ? BETWEEN YearFrom AND IFNULL(YearTo, 2999)",
		wmiID, modelYear,
	)
	if err != nil {
		return nil, obderr.Wrap(obderr.VPICQueryError, err)
	}
	defer yearRows.Close()

	var out []int64
	for yearRows.Next() {
		var schemaID int64
		if err := yearRows.Scan(&schemaID); err != nil {
			continue
		}
		for _, k := range byKey {
			if k == schemaID {
				out = append(out, schemaID)
				break
			}
		}
	}

	if len(out) == 0 {
		return nil, obderr.New(obderr.InvalidVinSchemaId)
	}
	return out, nil
}

// queryPattern returns the first Pattern row, across every candidate schema
// id for this VIN, matching elementID whose Keys pattern matches this VIN's
// key.
func (v *VIN) queryPattern(elementID ElementId) (patternRow, error) {
	key := v.Key()
	if v.cache != nil {
		if cached, ok, _ := storage.Get(v.cache, key, int64(elementID)); ok {
			return patternRow{elementID: elementID, attributeID: cached}, nil
		}
	}

	db, err := v.connection()
	if err != nil {
		return patternRow{}, err
	}

	schemaIDs, err := v.getSimilarVinSchemaIds()
	if err != nil {
		return patternRow{}, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(schemaIDs)), ", ")
	query := "SELECT Id, VinSchemaId, Keys, AttributeId FROM Pattern WHERE VinSchemaId IN (" + placeholders + ") AND ElementId = ?"

	args := make([]any, 0, len(schemaIDs)+1)
	for _, id := range schemaIDs {
		args = append(args, id)
	}
	args = append(args, int64(elementID))

	rows, err := db.Query(query, args...)
	if err != nil {
		return patternRow{}, obderr.Wrap(obderr.VPICQueryError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r patternRow
		var keys, attr string
		if err := rows.Scan(&r.id, &r.vinSchemaID, &keys, &attr); err != nil {
			continue
		}
		if matchPattern(key, asLikePattern(keys)) {
			r.keys = keys
			r.attributeID = attr
			r.elementID = elementID
			if v.cache != nil {
				storage.Put(v.cache, key, int64(elementID), attr)
			}
			return r, nil
		}
	}

	return patternRow{}, obderr.New(obderr.NoResultsFound)
}

func (v *VIN) queryVSpecPattern(elementID ElementId) (patternRow, error) {
	patternID, err := v.VSpecPatternID()
	if err != nil {
		return patternRow{}, err
	}
	db, err := v.connection()
	if err != nil {
		return patternRow{}, err
	}

	row := db.QueryRow(
		"SELECT Id, AttributeId FROM VehicleSpecPattern WHERE VSpecSchemaPatternId = ? AND ElementId = ?",
		patternID, int64(elementID),
	)
	var r patternRow
	if err := row.Scan(&r.id, &r.attributeID); err != nil {
		return patternRow{}, obderr.Wrap(obderr.NoResultsFound, err)
	}
	r.elementID = elementID
	r.vinSchemaID = patternID
	return r, nil
}

func parseID(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, obderr.Wrap(obderr.ParseError, err)
	}
	return n, nil
}
