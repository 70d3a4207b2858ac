package sources

const (
	// WorldGeoJSONURL is a public domain country outline collection keyed by properties.name.
	WorldGeoJSONURL = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json"

	DefaultPopulationPath = "data/population_data_corrected.csv"
	DefaultGeoJSONPath    = "data/countries_filtered.geo.json"
)
