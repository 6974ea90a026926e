// internal/app/features/importcsv/confirm.go
package importcsv

import (
	"net/http"

	"go.uber.org/zap"

	groupstore "github.com/iglesiacentral/gruposhub/internal/app/store/groups"
	"github.com/iglesiacentral/gruposhub/internal/app/system/htmlsanitize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// HandleConfirm persists the rows the admin approved after reviewing the
// validation report. Inserts are independent: a duplicate that appeared
// between validate and confirm fails only its own row. The batch is not
// transactional; rows inserted before a hard failure stay committed.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "import confirm")
	defer cancel()

	var req ConfirmRequest
	if err := httpjson.Read(r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if len(req.Groups) == 0 {
		httpjson.Fail(w, http.StatusBadRequest, "no hay filas para importar")
		return
	}

	groups := make([]models.Group, 0, len(req.Groups))
	for _, d := range req.Groups {
		groups = append(groups, models.Group{
			Name:                htmlsanitize.Strip(d.Name),
			Description:         htmlsanitize.Sanitize(d.Description),
			SeasonID:            d.SeasonID,
			CategoryID:          d.CategoryID,
			DistrictID:          d.DistrictID,
			Capacity:            d.Capacity,
			CurrentMembersCount: 0,
			Day:                 d.Day,
			Time:                d.Time,
			Modality:            d.Modality,
			Leaders:             d.Leaders,
			MinAge:              d.MinAge,
			MaxAge:              d.MaxAge,
			Address:             d.Address,
			TargetAudience:      d.TargetAudience,
			GeoReferencia:       d.GeoReferencia,
			LegacyID:            d.LegacyID,
		})
	}

	inserted, failed := groupstore.New(h.DB).InsertBatch(ctx, groups)

	resp := ConfirmResponse{Success: len(failed) == 0, Count: inserted}
	if len(failed) > 0 {
		resp.Failed = make(map[string]string, len(failed))
		for name, err := range failed {
			resp.Failed[name] = err.Error()
		}
	}

	h.Log.Info("import confirmed",
		zap.Int("inserted", inserted),
		zap.Int("failed", len(failed)))
	httpjson.Write(w, http.StatusOK, resp)
}
