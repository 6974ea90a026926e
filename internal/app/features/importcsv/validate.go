// internal/app/features/importcsv/validate.go
package importcsv

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/iglesiacentral/gruposhub/internal/app/features/importcsv/csvutil"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
)

// HandleValidate accepts a multipart upload ("file" field, optional
// "season" field for a batch-level season) and returns the per-row
// validation report without persisting anything.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "import validate")
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)
	if err := r.ParseMultipartForm(csvutil.MaxUploadSize); err != nil {
		httpjson.Fail(w, http.StatusRequestEntityTooLarge, "el archivo supera el tamaño máximo permitido")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "falta el archivo CSV")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		h.Log.Warn("reading uploaded CSV failed", zap.Error(err))
		httpjson.Fail(w, http.StatusBadRequest, "no se pudo leer el archivo")
		return
	}

	batchSeason := strings.TrimSpace(r.FormValue("season"))

	text := csvutil.DecodeBest(raw)
	cands, err := csvutil.ParseGroupsCSV(strings.NewReader(text), batchSeason)
	if errors.Is(err, csvutil.ErrEmptyFile) {
		httpjson.Fail(w, http.StatusBadRequest, "el archivo está vacío")
		return
	}
	if errors.Is(err, csvutil.ErrTooManyRows) {
		httpjson.Fail(w, http.StatusBadRequest, "el archivo tiene demasiadas filas")
		return
	}
	if err != nil {
		// Whole-file structural problem: blocks before any row results.
		httpjson.Fail(w, http.StatusBadRequest, "el archivo no se pudo interpretar como CSV: "+err.Error())
		return
	}

	snap, err := h.loadSnapshot(ctx)
	if err != nil {
		h.Log.Error("loading validation snapshot failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	report := csvutil.Validate(cands, snap)
	h.Log.Info("import validated",
		zap.Int("total", report.Summary.Total),
		zap.Int("valid", report.Summary.Valid),
		zap.Int("invalid", report.Summary.Invalid))
	httpjson.Write(w, http.StatusOK, report)
}
