package catalog

// Definition describes one product kind: which route it mounts under, which
// fields are required, which enumerations apply and which query filters it
// answers. One table drives all seven catalogs instead of seven copies of the
// same controller.
type Definition struct {
	// Kind is the storage partition key and the MinIO object prefix.
	Kind string
	// Route is the path segment under /api.
	Route string
	// Label is the singular display name used in messages ("Camera not found").
	Label string
	// FilePrefix is prepended to generated upload names ("camera-169...jpg").
	FilePrefix string

	// Brands, when non-empty, constrains the brand field to the listed values.
	Brands []string
	// Categories, when non-empty, constrains the category field.
	Categories []string
	// Badges, when non-empty, constrains the badge field.
	Badges []string

	// RequireBrand / RequireCategory / RequireModel mark fields mandatory on create.
	RequireBrand    bool
	RequireCategory bool
	RequireModel    bool
	// RequireImages demands at least one image on create.
	RequireImages bool
	// RequireChannels / RequireCameras apply to recorders and systems.
	RequireChannels bool
	RequireCameras  bool

	// NameMaxLen bounds the name; DescriptionMaxLen bounds the description
	// (0 = unbounded).
	NameMaxLen        int
	DescriptionMaxLen int

	// SearchFields are matched case-insensitively as substrings by the search
	// query parameter.
	SearchFields []string

	// FilterChannels / FilterCameras enable the numeric exact-match filters.
	FilterChannels bool
	FilterCameras  bool

	// DefaultRating seeds the rating on create when the payload omits it.
	DefaultRating float64
}

var securityBrands = []string{
	"Hikvision", "Dahua", "CP Plus", "Uniview", "Axis Communications",
	"Bosch", "Honeywell", "Samsung", "Sony", "Panasonic", "Vivotek",
	"Hanwha", "Avigilon", "Pelco", "FLIR",
}

// Definitions is the full catalog table. Route handlers, validation and the
// filter builder are all parameterized by an entry of this slice.
var Definitions = []Definition{
	{
		Kind:              "camera",
		Route:             "cameras",
		Label:             "Camera",
		FilePrefix:        "camera",
		Categories:        []string{"bullet", "dome", "ptz", "fisheye", "other"},
		Badges:            []string{"Bestseller", "AI", "Premium", "Budget", "New", "Popular", ""},
		RequireImages:     true,
		NameMaxLen:        100,
		DescriptionMaxLen: 1000,
		SearchFields:      []string{"name", "description"},
		DefaultRating:     0,
	},
	{
		Kind:            "recorder",
		Route:           "recorders",
		Label:           "Recorder",
		FilePrefix:      "recorder",
		Brands:          securityBrands,
		Categories:      []string{"Network Video Recorders", "Digital Video Recorders"},
		RequireBrand:    true,
		RequireCategory: true,
		RequireImages:   true,
		RequireChannels: true,
		NameMaxLen:      200,
		SearchFields:    []string{"name", "description"},
		FilterChannels:  true,
		DefaultRating:   4.5,
	},
	{
		Kind:            "system",
		Route:           "systems",
		Label:           "System",
		FilePrefix:      "system",
		Categories:      []string{"complete-kit", "camera-recorder-combo", "enterprise", "home", "business", "other"},
		RequireCategory: true,
		RequireImages:   true,
		RequireCameras:  true,
		NameMaxLen:      200,
		SearchFields:    []string{"name", "description"},
		FilterCameras:   true,
		DefaultRating:   4.5,
	},
	{
		Kind:              "solution",
		Route:             "solutions",
		Label:             "Solution",
		FilePrefix:        "solution",
		Categories:        []string{"home", "business", "warehouse", "retail", "education", "industrial", "other"},
		RequireCategory:   true,
		NameMaxLen:        100,
		DescriptionMaxLen: 500,
		SearchFields:      []string{"name", "description", "targetAudience"},
		DefaultRating:     4.5,
	},
	{
		Kind:            "cable",
		Route:           "cables",
		Label:           "Cable",
		FilePrefix:      "cable",
		Categories:      []string{"coaxial", "ethernet", "power", "connectors", "tools", "accessories"},
		RequireCategory: true,
		SearchFields:    []string{"name", "description"},
		DefaultRating:   4.5,
	},
	{
		Kind:          "networking",
		Route:         "networking",
		Label:         "Networking product",
		FilePrefix:    "networking",
		RequireBrand:  true,
		SearchFields:  []string{"name", "description"},
		DefaultRating: 4.5,
	},
	{
		Kind:          "storage",
		Route:         "storage",
		Label:         "Storage product",
		FilePrefix:    "storage",
		RequireBrand:  true,
		RequireModel:  true,
		SearchFields:  []string{"name", "description"},
		DefaultRating: 4.5,
	},
}

// ByKind returns the definition for a kind, or nil.
func ByKind(kind string) *Definition {
	for i := range Definitions {
		if Definitions[i].Kind == kind {
			return &Definitions[i]
		}
	}
	return nil
}
