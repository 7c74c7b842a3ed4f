package catalog

// Tolerance bounds for a taxon. Low values indicate clean water.
const (
	MinTolerance = 1
	MaxTolerance = 10
)

// Taxon is a single benthic macroinvertebrate entry in the catalog.
type Taxon struct {
	ID          string
	Name        string
	Order       string // Taxonomic order or family label; used for EPT detection
	Tolerance   int    // 1 (most sensitive) to 10 (most tolerant)
	BMWP        int
	ABI         int
	IBF         int
	Habitat     string
	Description string
	UserAdded   bool

	// Presentation metadata, carried but never interpreted by the engine.
	Color string
	Image string
}

// ToleranceGroup buckets a tolerance value for display.
type ToleranceGroup int

const (
	GroupSensitive ToleranceGroup = iota // 1-3
	GroupModerate                        // 4-6
	GroupTolerant                        // 7-10
)

// GroupFor returns the display group for a tolerance value.
func GroupFor(tolerance int) ToleranceGroup {
	switch {
	case tolerance <= 3:
		return GroupSensitive
	case tolerance <= 6:
		return GroupModerate
	default:
		return GroupTolerant
	}
}

// Range returns the tolerance range label for a group.
func (g ToleranceGroup) Range() string {
	switch g {
	case GroupSensitive:
		return "1-3"
	case GroupModerate:
		return "4-6"
	default:
		return "7-10"
	}
}
