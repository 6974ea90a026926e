// internal/app/features/importcsv/types.go
package importcsv

import "github.com/iglesiacentral/gruposhub/internal/app/features/importcsv/csvutil"

// ConfirmRequest echoes back the validated rows the admin chose to import.
type ConfirmRequest struct {
	Groups []csvutil.GroupData `json:"groups"`
}

// ConfirmResponse reports how many rows made it in. Failed holds a
// per-group reason for rows rejected at insert time (a race against a
// concurrent create, usually a name collision).
type ConfirmResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Failed  map[string]string `json:"failed,omitempty"`
}
