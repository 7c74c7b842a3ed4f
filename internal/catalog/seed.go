package catalog

import "slices"

// builtin is the immutable reference catalog, indexed by init().
var builtin = []Taxon{
	{
		ID:          "hyalellidae",
		Name:        "Hyalellidae",
		Order:       "Amphipoda",
		Tolerance:   6,
		Image:       "🦐",
		Color:       "#4ECDC4",
		Description: "Pequeño crustáceo anfípodo, blanco o semi-transparente. Tolerante a contaminación. Se alimenta de materia orgánica.",
		Habitat:     "Fondos de ríos, entre vegetación",
		BMWP:        6,
		ABI:         7,
		IBF:         8,
	},
	{
		ID:          "baetidae",
		Name:        "Baetidae",
		Order:       "Ephemeroptera",
		Tolerance:   4,
		Image:       "🐛",
		Color:       "#95E1D3",
		Description: "Ninfa de efímera con 3 colitas y branquias ovaladas. Indica aguas ligeramente contaminadas. Común en aguas rápidas.",
		Habitat:     "Rocas, troncos, hojas en corrientes rápidas",
		BMWP:        7,
		ABI:         4,
		IBF:         5,
	},
	{
		ID:          "physidae",
		Name:        "Physidae",
		Order:       "Gasteropoda",
		Tolerance:   3,
		Image:       "🐌",
		Color:       "#F38181",
		Description: "Caracol de agua dulce con abertura hacia la izquierda. Tolera cierta contaminación. Se alimenta de algas y detritus.",
		Habitat:     "Piedras y vegetación de orilla",
		BMWP:        3,
		ABI:         3,
		IBF:         8,
	},
	{
		ID:          "tipulidae",
		Name:        "Tipulidae",
		Order:       "Diptera",
		Tolerance:   3,
		Image:       "🪱",
		Color:       "#AA96DA",
		Description: "Larva de \"mosca de la humedad\" con 6+ cachitos en un extremo (coronita). Resiste contaminación. Respira por su coronita.",
		Habitat:     "Hojas y troncos podridos",
		BMWP:        5,
		ABI:         3,
		IBF:         3,
	},
	{
		ID:          "planariidae",
		Name:        "Planariidae",
		Order:       "Tricladida",
		Tolerance:   7,
		Image:       "🔷",
		Color:       "#FFB6C1",
		Description: "Organismo plano, pegajoso, marrón u oscuro. Ovalado sin patas. Indica aguas de buena a moderada calidad.",
		Habitat:     "Debajo de piedras en aguas lentas",
		BMWP:        7,
		ABI:         5,
		IBF:         4,
	},
	{
		ID:          "oligochaeta",
		Name:        "Oligochaeta",
		Order:       "Annelida",
		Tolerance:   1,
		Image:       "🪱",
		Color:       "#FCBAD3",
		Description: "Lombriz acuática con anillos finos. Sin cabeza visible. En exceso indica alta contaminación. Varios colores.",
		Habitat:     "Fondo fangoso con materia orgánica",
		BMWP:        1,
		ABI:         1,
		IBF:         8,
	},
	{
		ID:          "elmidae",
		Name:        "Elmidae",
		Order:       "Coleoptera",
		Tolerance:   6,
		Image:       "🪲",
		Color:       "#FFFACD",
		Description: "Escarabajo acuático con coraza dura segmentada. Tolera contaminación media. Vive adherido o debajo de rocas.",
		Habitat:     "Rocas en corrientes",
		BMWP:        6,
		ABI:         5,
		IBF:         4,
	},
}

// builtinByID indexes the seed for lookups and id-collision checks.
var builtinByID map[string]int

func init() {
	if err := validateTaxa(builtin); err != nil {
		panic(err)
	}
	builtinByID = make(map[string]int, len(builtin))
	for i := range builtin {
		builtinByID[builtin[i].ID] = i
	}
}

// Builtin returns the reference taxa in catalog order.
func Builtin() []Taxon {
	return slices.Clone(builtin)
}
