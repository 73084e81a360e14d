package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Rate component labels
	StateRateLabel           = "STATE"
	CountyRateLabel          = "COUNTY"
	CityRateLabel            = "CITY"
	SpecialDistrictRateLabel = "SPECIAL_DISTRICT"

	// Prefix for synthesized special-district labels built from a
	// jurisdiction name, e.g. DISTRICT_METRO_TRANSIT
	DistrictLabelPrefix = "DISTRICT_"

	// Well-known fee codes
	DocFeeCode      = "DOC"
	TitleFeeCode    = "TITLE"
	RegistrationFee = "REG"
)
