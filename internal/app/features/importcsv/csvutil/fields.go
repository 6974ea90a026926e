// internal/app/features/importcsv/csvutil/fields.go
package csvutil

// Field is the canonical name of a group attribute, decoupled from the
// header text a given CSV file uses for it.
type Field string

const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldCapacity       Field = "capacity"
	FieldCategoryName   Field = "categoryName"
	FieldDistrictName   Field = "districtName"
	FieldSeasonName     Field = "seasonName"
	FieldDay            Field = "day"
	FieldTime           Field = "time"
	FieldModality       Field = "modality"
	FieldLeaders        Field = "leaders"
	FieldMinAge         Field = "minAge"
	FieldMaxAge         Field = "maxAge"
	FieldAddress        Field = "address"
	FieldTargetAudience Field = "targetAudience"
	FieldGeoReferencia  Field = "geoReferencia"
	FieldLegacyID       Field = "legacyId"
)

// fieldAliases lists accepted header spellings per field. The field's own
// canonical name always matches too; comparison normalizes case, diacritics
// and punctuation, so "Edad Mínima", "edad_minima" and "EdadMinima" are all
// the same header.
var fieldAliases = map[Field][]string{
	FieldName:           {"Nombre", "Name", "Group Name", "Nombre del Grupo", "Grupo"},
	FieldDescription:    {"Descripcion", "Description", "Detalle"},
	FieldCapacity:       {"Capacidad", "Capacity", "Cupo", "Cupos"},
	FieldCategoryName:   {"Categoria", "Category", "Tipo Grupo"},
	FieldDistrictName:   {"Distrito", "District", "Sede", "Zona"},
	FieldSeasonName:     {"Temporada", "Season"},
	FieldDay:            {"Dia", "Day", "Dia de Reunion"},
	FieldTime:           {"Hora", "Time", "Horario"},
	FieldModality:       {"Modalidad", "Modality", "Tipo"},
	FieldLeaders:        {"Facilitadores", "Leaders", "Encargados", "Lideres"},
	FieldMinAge:         {"Edad Minima", "EdadMinima", "MinAge", "Edad Min"},
	FieldMaxAge:         {"Edad Maxima", "EdadMaxima", "MaxAge", "Edad Max"},
	FieldAddress:        {"Direccion", "Address", "Lugar"},
	FieldTargetAudience: {"Publico Objetivo", "PublicoObjetivo", "Dirigido a", "Audiencia"},
	FieldGeoReferencia:  {"GeoReferencia", "Ubicacion", "Coordenadas"},
	FieldLegacyID:       {"Id Legado", "Legacy Id", "Codigo"},
}

// fieldOrder fixes iteration order so template generation and alias
// resolution are deterministic.
var fieldOrder = []Field{
	FieldName, FieldDescription, FieldCategoryName, FieldDistrictName,
	FieldSeasonName, FieldCapacity, FieldDay, FieldTime, FieldModality,
	FieldLeaders, FieldMinAge, FieldMaxAge, FieldAddress,
	FieldTargetAudience, FieldGeoReferencia, FieldLegacyID,
}
