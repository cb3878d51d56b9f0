package vocabulary

// Varietal is the base visual signature of a grape before any modifier
// applies. Type is "red" or "white" and steers the age color shift.
type Varietal struct {
	Type         string   `yaml:"type" json:"type"`
	ColorBase    string   `yaml:"color_base" json:"color_base"`
	ColorHue     string   `yaml:"color_hue" json:"color_hue"`
	Opacity      float64  `yaml:"opacity" json:"opacity"`
	Texture      string   `yaml:"texture" json:"texture"`
	Structure    string   `yaml:"structure" json:"structure"`
	VisualWeight string   `yaml:"visual_weight" json:"visual_weight"`
	Notes        []string `yaml:"characteristic_notes" json:"characteristic_notes"`
	EdgeQuality  string   `yaml:"edge_quality" json:"edge_quality"`
	Composition  string   `yaml:"composition" json:"composition"`
}

// Climate modifies color, texture, and atmosphere by growing climate.
type Climate struct {
	ColorShift       string  `yaml:"color_shift" json:"color_shift"`
	SaturationAdjust float64 `yaml:"saturation_adjust" json:"saturation_adjust"`
	BrightnessAdjust float64 `yaml:"brightness_adjust" json:"brightness_adjust"`
	TextureModifier  string  `yaml:"texture_modifier" json:"texture_modifier"`
	Atmosphere       string  `yaml:"atmosphere" json:"atmosphere"`
	VisualTension    string  `yaml:"visual_tension" json:"visual_tension"`
	EdgeTreatment    string  `yaml:"edge_treatment" json:"edge_treatment"`
}

// Style captures the old-world/new-world aesthetic overlay.
type Style struct {
	Aesthetic      string `yaml:"aesthetic" json:"aesthetic"`
	Composition    string `yaml:"composition" json:"composition"`
	ColorTreatment string `yaml:"color_treatment" json:"color_treatment"`
	DetailLevel    string `yaml:"detail_level" json:"detail_level"`
	Atmosphere     string `yaml:"atmosphere" json:"atmosphere"`
}

// Oak is the process overlay from barrel treatment.
type Oak struct {
	TextureOverlay    string `yaml:"texture_overlay" json:"texture_overlay"`
	ColorInfluence    string `yaml:"color_influence" json:"color_influence"`
	FinishQuality     string `yaml:"finish_quality" json:"finish_quality"`
	MaterialReference string `yaml:"material_reference" json:"material_reference"`
}

// Age is the temporal transformation of color, texture, and aromatics.
type Age struct {
	ColorEvolution   string `yaml:"color_evolution" json:"color_evolution"`
	RedColorShift    string `yaml:"red_color_shift" json:"red_color_shift"`
	WhiteColorShift  string `yaml:"white_color_shift" json:"white_color_shift"`
	AromaticCategory string `yaml:"aromatic_category" json:"aromatic_category"`
	TextureState     string `yaml:"texture_state" json:"texture_state"`
	Integration      string `yaml:"integration" json:"integration"`
	VisualClarity    string `yaml:"visual_clarity" json:"visual_clarity"`
	TimeSignature    string `yaml:"time_signature" json:"time_signature"`
}

// Finish is the temporal-decay dimension of the tasting.
type Finish struct {
	LengthDescriptor string `yaml:"length_descriptor" json:"length_descriptor"`
	EdgeTreatment    string `yaml:"edge_treatment" json:"edge_treatment"`
	FadePattern      string `yaml:"fade_pattern" json:"fade_pattern"`
	AtmosphericDepth string `yaml:"atmospheric_depth" json:"atmospheric_depth"`
}

// AromaCluster groups individual notes under a shared palette.
type AromaCluster struct {
	Notes        []string `yaml:"notes" json:"notes"`
	ColorPalette []string `yaml:"color_palette" json:"color_palette"`
	Brightness   string   `yaml:"brightness" json:"brightness"`
	Texture      string   `yaml:"texture" json:"texture"`
}

// Profile is a complete tasting input: the varietal plus every modifier
// and the 1-10 balance scales.
type Profile struct {
	Varietal      string   `yaml:"varietal" json:"varietal"`
	Climate       string   `yaml:"climate" json:"climate"`
	Style         string   `yaml:"style" json:"style"`
	Oak           string   `yaml:"oak" json:"oak"`
	Age           string   `yaml:"age" json:"age"`
	Acidity       float64  `yaml:"acidity" json:"acidity"`
	Tannin        float64  `yaml:"tannin" json:"tannin"`
	Sweetness     float64  `yaml:"sweetness" json:"sweetness"`
	Alcohol       float64  `yaml:"alcohol" json:"alcohol"`
	Body          float64  `yaml:"body" json:"body"`
	FinishLength  string   `yaml:"finish_length" json:"finish_length"`
	PrimaryAromas []string `yaml:"primary_aromas" json:"primary_aromas,omitempty"`
}

// --- Composed output ---

// VisualVocabulary is the full composed parameter set for image
// generation, one section per categorical layer.
type VisualVocabulary struct {
	BaseColor              BaseColor              `json:"base_color"`
	OpacityClarity         OpacityClarity         `json:"opacity_clarity"`
	TextureSurface         TextureSurface         `json:"texture_surface"`
	CompositionalStructure CompositionalStructure `json:"compositional_structure"`
	AtmosphericQualities   AtmosphericQualities   `json:"atmospheric_qualities"`
	MaterialReferences     MaterialReferences     `json:"material_references"`
	ColorPalette           ColorPalette           `json:"color_palette"`
	AromaticDescriptors    AromaticDescriptors    `json:"aromatic_descriptors"`
	BalanceRelationships   BalanceRelationships   `json:"balance_relationships"`
	FinishDimension        FinishDimension        `json:"finish_dimension"`
	Metadata               Metadata               `json:"metadata"`
	RegionalPreset         string                 `json:"regional_preset,omitempty"`
}

type BaseColor struct {
	Hue          string `json:"hue"`
	Description  string `json:"description"`
	AgeModified  string `json:"age_modified"`
	ClimateShift string `json:"climate_shift"`
}

type OpacityClarity struct {
	BaseOpacity  float64 `json:"base_opacity"`
	Clarity      string  `json:"clarity"`
	VisualWeight string  `json:"visual_weight"`
}

type TextureSurface struct {
	BaseTexture     string `json:"base_texture"`
	Structure       string `json:"structure"`
	ClimateModifier string `json:"climate_modifier"`
	OakOverlay      string `json:"oak_overlay"`
	AgeState        string `json:"age_state"`
}

type CompositionalStructure struct {
	BaseComposition string `json:"base_composition"`
	StyleAesthetic  string `json:"style_aesthetic"`
	VisualTension   string `json:"visual_tension"`
	Integration     string `json:"integration"`
	EdgeQuality     string `json:"edge_quality"`
	EdgeTreatment   string `json:"edge_treatment"`
}

type AtmosphericQualities struct {
	ClimateAtmosphere string `json:"climate_atmosphere"`
	StyleAtmosphere   string `json:"style_atmosphere"`
	FinishDepth       string `json:"finish_depth"`
	FadePattern       string `json:"fade_pattern"`
	TimeSignature     string `json:"time_signature"`
}

type MaterialReferences struct {
	OakMaterials  string `json:"oak_materials"`
	FinishQuality string `json:"finish_quality"`
	AgePatina     string `json:"age_patina"`
}

type ColorPalette struct {
	Primary          string   `json:"primary"`
	AromaPalette     []string `json:"aroma_palette"`
	SaturationAdjust float64  `json:"saturation_adjust"`
	BrightnessAdjust float64  `json:"brightness_adjust"`
	ColorTreatment   string   `json:"color_treatment"`
}

type AromaticDescriptors struct {
	CharacteristicNotes []string `json:"characteristic_notes"`
	AromaCategory       string   `json:"aroma_category"`
	AromaTextures       []string `json:"aroma_textures"`
}

type BalanceRelationships struct {
	Acidity       float64 `json:"acidity"`
	Tannin        float64 `json:"tannin"`
	Sweetness     float64 `json:"sweetness"`
	Alcohol       float64 `json:"alcohol"`
	Body          float64 `json:"body"`
	VisualTension string  `json:"visual_tension"`
	VisualWeight  string  `json:"visual_weight"`
}

type FinishDimension struct {
	Length        string `json:"length"`
	Descriptor    string `json:"descriptor"`
	EdgeTreatment string `json:"edge_treatment"`
	FadePattern   string `json:"fade_pattern"`
}

type Metadata struct {
	Varietal string `json:"varietal"`
	Climate  string `json:"climate"`
	Style    string `json:"style"`
	Oak      string `json:"oak"`
	Age      string `json:"age"`
}
