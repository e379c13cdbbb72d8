package response

import "github.com/provrb/obdium/internal/obderr"

var (
	errNoData         = obderr.New(obderr.NoData)
	errInvalidResponse = obderr.New(obderr.InvalidResponse)
)
