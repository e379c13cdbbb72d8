package vin

import (
	"database/sql"
	"fmt"

	"github.com/provrb/obdium/internal/obderr"

	bolt "go.etcd.io/bbolt"
	_ "modernc.org/sqlite"
)

// DefaultDatabasePath is the vPIC SQLite reference database location used
// when a VIN is constructed without an explicit path override.
const DefaultDatabasePath = "./data/vpic.sqlite"

// VIN is an immutable 17-character Vehicle Identification Number plus
// memoized values derived from it. The WMI, key, WmiID, VinSchemaID,
// VSpecSchemaID and VSpecPatternID are resolved once and reused for the
// lifetime of the VIN; the other database-backed accessors query on
// every call.
type VIN struct {
	raw   string
	db    *sql.DB
	cache *bolt.DB

	wmi            memo[string]
	key            memo[string]
	wmiID          memo[int64]
	vinSchemaID    memo[int64]
	vspecSchemaID  memo[int64]
	vspecPatternID memo[int64]
}

// SetAttributeCache wires a local attribute cache (pkg/storage) into this
// VIN's Pattern-table resolution: queryPattern consults it before querying
// the reference database, and populates it after a successful resolution.
func (v *VIN) SetAttributeCache(cache *bolt.DB) {
	v.cache = cache
}

// New validates vin's length and checksum, opens the vPIC reference database
// (best effort — a failed connection limits the VIN to checksum/WMI/key
// operations but does not invalidate it), and returns the decoded VIN.
func New(raw string) (*VIN, error) {
	return NewWithDatabase(raw, DefaultDatabasePath)
}

// NewWithDatabase is New with an explicit vPIC database path, used by tests
// and by callers running against a non-default reference database copy.
func NewWithDatabase(raw string, dbPath string) (*VIN, error) {
	if len(raw) != 17 {
		return nil, obderr.New(obderr.InvalidVinLength)
	}

	v := &VIN{raw: raw}
	if _, err := v.Checksum(); err != nil {
		return nil, err
	}
	v.WMI()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil || db.Ping() != nil {
		return v, nil
	}
	v.db = db

	return v, nil
}

// String returns the raw 17-character VIN.
func (v *VIN) String() string { return v.raw }

// IsConnected reports whether the vPIC reference database is reachable.
func (v *VIN) IsConnected() bool { return v.db != nil }

func (v *VIN) connection() (*sql.DB, error) {
	if v.db == nil {
		return nil, obderr.New(obderr.VPICConnectFailed)
	}
	return v.db, nil
}

var transliteration = map[byte]int{
	'A': 1, 'J': 1,
	'B': 2, 'K': 2, 'S': 2,
	'C': 3, 'L': 3, 'T': 3,
	'D': 4, 'M': 4, 'U': 4,
	'E': 5, 'N': 5, 'V': 5,
	'F': 6, 'W': 6,
	'G': 7, 'P': 7, 'X': 7,
	'H': 8, 'Y': 8,
	'R': 9, 'Z': 9,
}

func transliterate(ch byte) (int, error) {
	if ch >= '0' && ch <= '9' {
		return int(ch - '0'), nil
	}
	if w, ok := transliteration[ch]; ok {
		return w, nil
	}
	return 0, obderr.InvalidCharacterErr(ch, -1, "unexpected character when transliterating")
}

func checksumWeight(position int) int {
	switch position {
	case 1, 11:
		return 8
	case 2, 12:
		return 7
	case 3, 13:
		return 6
	case 4, 14:
		return 5
	case 5, 15:
		return 4
	case 6, 16:
		return 3
	case 7, 17:
		return 2
	case 8:
		return 10
	case 9:
		return 0
	case 10:
		return 9
	default:
		return 0
	}
}

// Checksum recomputes the SAE J272 check digit (position 9, 1-indexed) and
// compares it against what's in the VIN, returning the check character on a
// match or InvalidCheckDigit on a mismatch.
func (v *VIN) Checksum() (byte, error) {
	sum := 0
	for i := 0; i < len(v.raw); i++ {
		t, err := transliterate(v.raw[i])
		if err != nil {
			return 0, err
		}
		sum += t * checksumWeight(i + 1)
	}

	digit := sum % 11
	var expect byte
	if digit == 10 {
		expect = 'X'
	} else {
		expect = byte('0' + digit)
	}

	found := v.raw[8]
	if found != expect {
		return 0, obderr.InvalidCheckDigitErr(expect, found)
	}
	return found, nil
}

// Key is the derived pattern-matching key: vin[3:8] + '|' + vin[9:17],
// 5 characters, a pipe, 8 characters.
func (v *VIN) Key() string {
	key, _ := v.key.get(func() (string, error) {
		if len(v.raw) != 17 {
			return "", nil
		}
		return v.raw[3:8] + "|" + v.raw[9:17], nil
	})
	return key
}

// WMI is the World Manufacturer Identifier: the first 3 characters, extended
// to 6 per ISO 3780 when position 3 is '9' (low-volume manufacturer form).
func (v *VIN) WMI() string {
	wmi, _ := v.wmi.get(func() (string, error) {
		base := v.raw[:3]
		if base[2] == '9' {
			return base + v.raw[11:14], nil
		}
		return base, nil
	})
	return wmi
}

func (v *VIN) queryWMIColumn(column string) (int64, error) {
	db, err := v.connection()
	if err != nil {
		return -1, err
	}

	row := db.QueryRow(fmt.Sprintf("SELECT %s FROM Wmi WHERE Wmi = ?", column), v.WMI())
	var val int64
	if err := row.Scan(&val); err != nil {
		return -1, obderr.Wrap(obderr.NoResultsFound, err)
	}
	return val, nil
}

// WmiID is the vPIC Wmi table row id for this VIN's WMI.
func (v *VIN) WmiID() (int64, error) {
	return v.wmiID.get(func() (int64, error) {
		return v.queryWMIColumn("Id")
	})
}

// VehicleTypeID is queried fresh on every call, matching the source's
// un-memoized accessor — it's cheap and feeds model-year resolution, which
// itself recomputes on every call.
func (v *VIN) VehicleTypeID() (int64, error) {
	return v.queryWMIColumn("VehicleTypeId")
}

// TruckTypeID is queried fresh on every call; see VehicleTypeID.
func (v *VIN) TruckTypeID() (int64, error) {
	return v.queryWMIColumn("TruckTypeId")
}

// MakeID resolves through Wmi_Make keyed by WmiID.
func (v *VIN) MakeID() (int64, error) {
	wmiID, err := v.WmiID()
	if err != nil {
		return -1, err
	}
	db, err := v.connection()
	if err != nil {
		return -1, err
	}
	row := db.QueryRow("SELECT MakeId FROM Wmi_Make WHERE WmiId = ?", wmiID)
	var makeID int64
	if err := row.Scan(&makeID); err != nil {
		return -1, obderr.Wrap(obderr.NoResultsFound, err)
	}
	return makeID, nil
}

// ManufacturerID resolves the Wmi table's ManufacturerId column.
func (v *VIN) ManufacturerID() (int64, error) {
	return v.queryWMIColumn("ManufacturerId")
}

// OrganizationID resolves Wmi_VinSchema's OrgId for this VIN's (WmiID, schema).
func (v *VIN) OrganizationID() (int64, error) {
	db, err := v.connection()
	if err != nil {
		return -1, err
	}
	wmiID, err := v.WmiID()
	if err != nil {
		return -1, err
	}
	schemaID, err := v.VinSchemaID()
	if err != nil {
		return -1, err
	}

	row := db.QueryRow("SELECT OrgId FROM Wmi_VinSchema WHERE WmiId = ? AND VinSchemaId = ?", wmiID, schemaID)
	var orgID int64
	if err := row.Scan(&orgID); err != nil {
		return -1, obderr.Wrap(obderr.NoResultsFound, err)
	}
	return orgID, nil
}

func lookupNameFromID(db *sql.DB, table string, id int64) (string, error) {
	row := db.QueryRow(fmt.Sprintf("SELECT Name FROM %s WHERE Id = ?", table), id)
	var name string
	if err := row.Scan(&name); err != nil {
		return "", obderr.Wrap(obderr.NoResultsFound, err)
	}
	return name, nil
}
