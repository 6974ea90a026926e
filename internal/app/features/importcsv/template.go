// internal/app/features/importcsv/template.go
package importcsv

import (
	"encoding/csv"
	"net/http"
	"strings"

	"go.uber.org/zap"

	categorystore "github.com/iglesiacentral/gruposhub/internal/app/store/categories"
	districtstore "github.com/iglesiacentral/gruposhub/internal/app/store/districts"
	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
)

// templateHeaders are the Spanish spellings admins see in the download.
// Every one of them maps back through the alias table.
var templateHeaders = []string{
	"Nombre", "Descripcion", "Categoria", "Distrito", "Temporada",
	"Capacidad", "Dia", "Hora", "Modalidad", "Facilitadores",
	"EdadMinima", "EdadMaxima", "Direccion", "PublicoObjetivo",
}

// HandleTemplate serves a starter CSV whose example row uses live
// category, district and season names, so importers know which literal
// names resolve. Written with a BOM and CRLF endings for Excel.
func (h *Handler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "import template")
	defer cancel()

	categoryName := "Discipulado"
	if cats, err := categorystore.New(h.DB).ListActive(ctx); err == nil && len(cats) > 0 {
		categoryName = cats[0].Name
	}
	districtName := "Norte"
	if dists, err := districtstore.New(h.DB).ListAll(ctx); err == nil && len(dists) > 0 {
		districtName = dists[0].Name
	}
	seasonName := "Temporada"
	if se, err := seasonstore.New(h.DB, h.Log).GetActive(ctx); err == nil {
		seasonName = se.Name
	}

	example := []string{
		"Jóvenes Norte",
		"Grupo de jóvenes de la zona norte",
		categoryName,
		districtName,
		seasonName,
		"15",
		"Martes",
		"19:00",
		"Presencial",
		"Ana Pérez, Luis Gómez",
		"18",
		"30",
		"Av. Central 123",
		"Jóvenes 18-30",
	}

	var b strings.Builder
	b.WriteString("\ufeff")
	cw := csv.NewWriter(&b)
	cw.UseCRLF = true
	if err := cw.Write(templateHeaders); err == nil {
		_ = cw.Write(example)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Error("writing template CSV failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="plantilla_grupos.csv"`)
	_, _ = w.Write([]byte(b.String()))
}
