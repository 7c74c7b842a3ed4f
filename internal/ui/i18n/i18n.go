// Package i18n holds the user-facing wording of the terminal UI.
package i18n

import (
	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
)

// Strings is the full set of UI wording for one language.
type Strings struct {
	Tagline    string
	Credits    []string
	Selected   string // header status, formatted with the selection count
	MenuItems  [4]MenuText
	TitleHome  string
	TitleInfo  string
	TitleAdd   string
	TitleTaxa  string
	TitleStats string

	SearchPlaceholder string
	SelectedCount     string
	Analyze           string
	NoMatches         string
	UserBadge         string
	ToleranceShort    string

	FieldName        string
	FieldOrder       string
	FieldDescription string
	FieldTolerance   string
	NamePlaceholder  string
	OrderPlaceholder string
	DescPlaceholder  string
	ScaleSensitive   string
	ScaleTolerant    string
	Submit           string
	Added            string
	Incomplete       string
	AddedList        string // formatted with the count of user taxa

	Metrics        string
	AvgTolerance   string
	Families       string
	BMWPScore      string
	Biodiversity   string
	EPTTitle       string
	EPTText        string
	Identified     string
	Tolerance      string
	Recommendation string
	NewAnalysis    string
	Home           string

	Description string
	Habitat     string

	InfoWhatTitle   string
	InfoWhatText    string
	InfoScaleTitle  string
	InfoBandsTitle  string
	InfoIndexTitle  string
	InfoIndexLines  []string
	InfoCitizenHead string
	InfoCitizenText string

	GroupLabels [3]string
	GroupHints  [3]string

	KeyBack     string
	KeyQuit     string
	KeyNavigate string
	KeySelect   string
	KeyToggle   string
	KeyDetail   string
	KeySearch   string
	KeyNext     string
	KeyAdjust   string
}

// MenuText is the label and subtitle of a home menu entry.
type MenuText struct {
	Label       string
	Description string
}

// GroupLabel returns the name of a tolerance group.
func (s Strings) GroupLabel(g catalog.ToleranceGroup) string {
	return s.GroupLabels[g]
}

// GroupHint returns the water-quality interpretation of a tolerance group.
func (s Strings) GroupHint(g catalog.ToleranceGroup) string {
	return s.GroupHints[g]
}

// For returns the wording for lang, defaulting to Spanish.
func For(lang quality.Lang) Strings {
	if lang == quality.LangEN {
		return english
	}
	return spanish
}

var spanish = Strings{
	Tagline: "Monitoreo Ecológico de Calidad de Agua",
	Credits: []string{
		"🌿 Desarrollado para la conservación del agua 🌿",
		"Basado en protocolos GRUFIDES - Cajamarca, Perú",
	},
	Selected: "● %d seleccionados",
	MenuItems: [4]MenuText{
		{"Identificar Organismos", "Selecciona los MIB encontrados"},
		{"Agregar Organismo", "Registra nuevos MIB"},
		{"Información", "Sobre los bioindicadores"},
		{"Salir", ""},
	},
	TitleHome:  "Inicio",
	TitleInfo:  "Información",
	TitleAdd:   "Agregar Organismo",
	TitleTaxa:  "Seleccionar Organismos",
	TitleStats: "Resultados",

	SearchPlaceholder: "Buscar por nombre o familia...",
	SelectedCount:     "Organismos seleccionados",
	Analyze:           "Analizar Calidad",
	NoMatches:         "No se encontraron organismos",
	UserBadge:         "Usuario",
	ToleranceShort:    "Tol",

	FieldName:        "Nombre del Organismo *",
	FieldOrder:       "Familia / Orden *",
	FieldDescription: "Descripción",
	FieldTolerance:   "Tolerancia a Contaminación",
	NamePlaceholder:  "Ej: Helicopsychidae",
	OrderPlaceholder: "Ej: Trichoptera",
	DescPlaceholder:  "Características, hábitat, comportamiento...",
	ScaleSensitive:   "Sensible (agua limpia)",
	ScaleTolerant:    "Tolerante (contaminación)",
	Submit:           "Agregar Organismo ✨",
	Added:            "✅ Organismo agregado exitosamente",
	Incomplete:       "⚠️ Por favor completa el nombre y la familia del organismo",
	AddedList:        "Organismos Agregados (%d)",

	Metrics:        "Métricas de Análisis",
	AvgTolerance:   "Tolerancia Promedio",
	Families:       "Familias Detectadas",
	BMWPScore:      "Puntaje BMWP",
	Biodiversity:   "Biodiversidad",
	EPTTitle:       "✨ Indicador Positivo Detectado",
	EPTText:        "Se encontraron organismos EPT (Ephemeroptera, Plecoptera o Trichoptera), familias altamente sensibles que indican buena calidad del agua.",
	Identified:     "Organismos Identificados",
	Tolerance:      "Tolerancia",
	Recommendation: "Recomendación",
	NewAnalysis:    "Nuevo Análisis",
	Home:           "Inicio",

	Description: "Descripción",
	Habitat:     "Hábitat",

	InfoWhatTitle:  "¿Qué son los MIB?",
	InfoWhatText:   "Los Macroinvertebrados Bentónicos (MIB) son pequeños animales sin columna vertebral que viven en el fondo de ríos y lagos. Son excelentes indicadores de la calidad del agua porque diferentes especies tienen distintos niveles de tolerancia a la contaminación.",
	InfoScaleTitle: "Escala de Tolerancia",
	InfoBandsTitle: "Calidad del Agua",
	InfoIndexTitle: "Índices Utilizados",
	InfoIndexLines: []string{
		"BMWP/Col: Biological Monitoring Working Party",
		"ABI: Andean Biotic Index",
		"IBF: Índice Biótico de Familias",
		"EPT: Ephemeroptera, Plecoptera, Trichoptera (familias sensibles)",
	},
	InfoCitizenHead: "🌍 Contribuye a la Ciencia Ciudadana",
	InfoCitizenText: "Cada organismo que registras ayuda a crear una base de datos más completa para el monitoreo ambiental de los ríos en Cajamarca y el mundo.",

	GroupLabels: [3]string{"Muy Sensibles", "Moderadamente Tolerantes", "Muy Tolerantes"},
	GroupHints:  [3]string{"Indican agua muy limpia", "Agua de calidad media", "Indican contaminación"},

	KeyBack:     "Volver",
	KeyQuit:     "Salir",
	KeyNavigate: "Navegar",
	KeySelect:   "Elegir",
	KeyToggle:   "Marcar",
	KeyDetail:   "Detalle",
	KeySearch:   "Buscar/Lista",
	KeyNext:     "Siguiente",
	KeyAdjust:   "Ajustar",
}

var english = Strings{
	Tagline: "Ecological Water Quality Monitoring",
	Credits: []string{
		"🌿 Built for water conservation 🌿",
		"Based on GRUFIDES protocols - Cajamarca, Peru",
	},
	Selected: "● %d selected",
	MenuItems: [4]MenuText{
		{"Identify Organisms", "Select the MIBs you found"},
		{"Add Organism", "Register new MIBs"},
		{"Information", "About bioindicators"},
		{"Exit", ""},
	},
	TitleHome:  "Home",
	TitleInfo:  "Information",
	TitleAdd:   "Add Organism",
	TitleTaxa:  "Select Organisms",
	TitleStats: "Results",

	SearchPlaceholder: "Search by name or family...",
	SelectedCount:     "Selected organisms",
	Analyze:           "Analyze Quality",
	NoMatches:         "No organisms found",
	UserBadge:         "User",
	ToleranceShort:    "Tol",

	FieldName:        "Organism Name *",
	FieldOrder:       "Family / Order *",
	FieldDescription: "Description",
	FieldTolerance:   "Pollution Tolerance",
	NamePlaceholder:  "e.g. Helicopsychidae",
	OrderPlaceholder: "e.g. Trichoptera",
	DescPlaceholder:  "Features, habitat, behaviour...",
	ScaleSensitive:   "Sensitive (clean water)",
	ScaleTolerant:    "Tolerant (pollution)",
	Submit:           "Add Organism ✨",
	Added:            "✅ Organism added",
	Incomplete:       "⚠️ Please fill in the organism name and family",
	AddedList:        "Added Organisms (%d)",

	Metrics:        "Analysis Metrics",
	AvgTolerance:   "Average Tolerance",
	Families:       "Families Detected",
	BMWPScore:      "BMWP Score",
	Biodiversity:   "Biodiversity",
	EPTTitle:       "✨ Positive Indicator Detected",
	EPTText:        "EPT organisms were found (Ephemeroptera, Plecoptera or Trichoptera), highly sensitive families that indicate good water quality.",
	Identified:     "Identified Organisms",
	Tolerance:      "Tolerance",
	Recommendation: "Recommendation",
	NewAnalysis:    "New Analysis",
	Home:           "Home",

	Description: "Description",
	Habitat:     "Habitat",

	InfoWhatTitle:  "What are MIBs?",
	InfoWhatText:   "Benthic macroinvertebrates (MIBs) are small animals without a backbone that live on the bottom of rivers and lakes. They are excellent water-quality indicators because different species tolerate pollution to different degrees.",
	InfoScaleTitle: "Tolerance Scale",
	InfoBandsTitle: "Water Quality",
	InfoIndexTitle: "Indices Used",
	InfoIndexLines: []string{
		"BMWP/Col: Biological Monitoring Working Party",
		"ABI: Andean Biotic Index",
		"IBF: Family Biotic Index",
		"EPT: Ephemeroptera, Plecoptera, Trichoptera (sensitive families)",
	},
	InfoCitizenHead: "🌍 Contribute to Citizen Science",
	InfoCitizenText: "Every organism you record helps build a more complete dataset for monitoring rivers in Cajamarca and around the world.",

	GroupLabels: [3]string{"Very Sensitive", "Moderately Tolerant", "Very Tolerant"},
	GroupHints:  [3]string{"Indicate very clean water", "Medium quality water", "Indicate pollution"},

	KeyBack:     "Back",
	KeyQuit:     "Quit",
	KeyNavigate: "Navigate",
	KeySelect:   "Select",
	KeyToggle:   "Toggle",
	KeyDetail:   "Detail",
	KeySearch:   "Search/List",
	KeyNext:     "Next",
	KeyAdjust:   "Adjust",
}
