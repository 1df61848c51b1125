package conformance

import "github.com/goliatone/go-covjson/internal/schema"

// Sample documents are decoded from JSON on every call so callers receive a
// fresh copy they are free to mutate.

const sampleGridDomain = `{
	"type": "Domain",
	"domainType": "Grid",
	"axes": {
		"x": {"values": [1, 2, 3]},
		"y": {"values": [20, 21]},
		"z": {"values": [1]},
		"t": {"values": ["2008-01-01T04:00:00Z"]}
	},
	"referencing": [{
		"coordinates": ["t"],
		"system": {"type": "TemporalRS", "calendar": "Gregorian"}
	}, {
		"coordinates": ["y", "x", "z"],
		"system": {"type": "GeographicCRS", "id": "http://www.opengis.net/def/crs/EPSG/0/4979"}
	}]
}`

const sampleTrajectoryDomain = `{
	"type": "Domain",
	"domainType": "Trajectory",
	"axes": {
		"composite": {
			"dataType": "tuple",
			"coordinates": ["t", "x", "y"],
			"values": [
				["2008-01-01T04:00:00Z", 1, 20],
				["2008-01-01T04:30:00Z", 2, 21]
			]
		}
	},
	"referencing": [{
		"coordinates": ["t"],
		"system": {"type": "TemporalRS", "calendar": "Gregorian"}
	}, {
		"coordinates": ["x", "y"],
		"system": {"type": "GeographicCRS", "id": "http://www.opengis.net/def/crs/OGC/1.3/CRS84"}
	}]
}`

const samplePointSeriesDomain = `{
	"type": "Domain",
	"domainType": "PointSeries",
	"axes": {
		"x": {"values": [-10.1]},
		"y": {"values": [-40.2]},
		"t": {"values": ["2013-01-13T11:12:20Z", "2013-01-13T12:12:20Z"]}
	},
	"referencing": [{
		"coordinates": ["x", "y"],
		"system": {"type": "GeographicCRS", "id": "http://www.opengis.net/def/crs/OGC/1.3/CRS84"}
	}]
}`

const polygonValues = `[[[100.0, 0.0], [101.0, 0.0], [101.0, 1.0], [100.0, 1.0], [100.0, 0.0]]]`

const secondPolygonValues = `[[[200.0, 10.0], [201.0, 10.0], [201.0, 11.0], [200.0, 11.0], [200.0, 10.0]]]`

const crs84Referencing = `"referencing": [{
		"coordinates": ["x", "y"],
		"system": {"type": "GeographicCRS", "id": "http://www.opengis.net/def/crs/OGC/1.3/CRS84"}
	}]`

// sampleDomains holds one domain per domain type. Grid, PointSeries and
// Trajectory share the literals above.
var sampleDomains = map[string]string{
	"Grid":        sampleGridDomain,
	"PointSeries": samplePointSeriesDomain,
	"Trajectory":  sampleTrajectoryDomain,
	"Point": `{
	"type": "Domain",
	"domainType": "Point",
	"axes": {
		"x": {"values": [1]},
		"y": {"values": [20]},
		"z": {"values": [5]},
		"t": {"values": ["2008-01-01T04:00:00Z"]}
	},
	` + crs84Referencing + `
}`,
	"VerticalProfile": `{
	"type": "Domain",
	"domainType": "VerticalProfile",
	"axes": {
		"x": {"values": [-10.1]},
		"y": {"values": [-40.2]},
		"z": {"values": [5, 8, 14]},
		"t": {"values": ["2013-01-13T11:12:20Z"]}
	},
	` + crs84Referencing + `
}`,
	"MultiPoint": `{
	"type": "Domain",
	"domainType": "MultiPoint",
	"axes": {
		"t": {"values": ["2008-01-01T04:00:00Z"]},
		"composite": {
			"dataType": "tuple",
			"coordinates": ["x", "y", "z"],
			"values": [[1, 20, 1], [2, 21, 3]]
		}
	},
	` + crs84Referencing + `
}`,
	"MultiPointSeries": `{
	"type": "Domain",
	"domainType": "MultiPointSeries",
	"axes": {
		"t": {"values": ["2008-01-01T04:00:00Z", "2008-01-01T05:00:00Z"]},
		"composite": {
			"dataType": "tuple",
			"coordinates": ["x", "y"],
			"values": [[1, 20], [2, 21]]
		}
	},
	` + crs84Referencing + `
}`,
	"Section": `{
	"type": "Domain",
	"domainType": "Section",
	"axes": {
		"z": {"values": [10, 20, 30]},
		"composite": {
			"dataType": "tuple",
			"coordinates": ["t", "x", "y"],
			"values": [
				["2008-01-01T04:00:00Z", 1, 20],
				["2008-01-01T04:30:00Z", 2, 21]
			]
		}
	},
	` + crs84Referencing + `
}`,
	"Polygon": `{
	"type": "Domain",
	"domainType": "Polygon",
	"axes": {
		"z": {"values": [2]},
		"t": {"values": ["2008-01-01T04:00:00Z"]},
		"composite": {
			"dataType": "polygon",
			"coordinates": ["x", "y"],
			"values": [` + polygonValues + `]
		}
	},
	` + crs84Referencing + `
}`,
	"PolygonSeries": `{
	"type": "Domain",
	"domainType": "PolygonSeries",
	"axes": {
		"t": {"values": ["2008-01-01T04:00:00Z", "2008-01-01T05:00:00Z"]},
		"composite": {
			"dataType": "polygon",
			"coordinates": ["x", "y"],
			"values": [` + polygonValues + `]
		}
	},
	` + crs84Referencing + `
}`,
	"MultiPolygon": `{
	"type": "Domain",
	"domainType": "MultiPolygon",
	"axes": {
		"composite": {
			"dataType": "polygon",
			"coordinates": ["x", "y"],
			"values": [` + polygonValues + `, ` + secondPolygonValues + `]
		}
	},
	` + crs84Referencing + `
}`,
	"MultiPolygonSeries": `{
	"type": "Domain",
	"domainType": "MultiPolygonSeries",
	"axes": {
		"z": {"values": [2]},
		"t": {"values": ["2008-01-01T04:00:00Z", "2008-01-01T05:00:00Z"]},
		"composite": {
			"dataType": "polygon",
			"coordinates": ["x", "y"],
			"values": [` + polygonValues + `, ` + secondPolygonValues + `]
		}
	},
	` + crs84Referencing + `
}`,
}

const sampleNdArray = `{
	"type": "NdArray",
	"dataType": "float",
	"shape": [4, 2],
	"axisNames": ["y", "x"],
	"values": [12.3, 12.5, 11.5, 23.1, null, null, 10.1, 9.1]
}`

const sampleTiledNdArray = `{
	"type": "TiledNdArray",
	"dataType": "float",
	"axisNames": ["t", "y", "x"],
	"shape": [2, 5, 10],
	"tileSets": [{
		"tileShape": [null, null, null],
		"urlTemplate": "http://example.com/a/all.covjson"
	}, {
		"tileShape": [1, null, null],
		"urlTemplate": "http://example.com/b/{t}.covjson"
	}, {
		"tileShape": [null, 2, 3],
		"urlTemplate": "http://example.com/c/{y}-{x}.covjson"
	}]
}`

const sampleContinuousParameter = `{
	"type": "Parameter",
	"description": {"en": "The sea surface temperature in degrees Celsius"},
	"observedProperty": {
		"id": "http://vocab.nerc.ac.uk/standard_name/sea_surface_temperature/",
		"label": {"en": "Sea Surface Temperature"},
		"description": {"en": "The temperature of sea water near the surface"}
	},
	"unit": {
		"label": {"en": "Degree Celsius"},
		"symbol": {"value": "Cel", "type": "http://www.opengis.net/def/uom/UCUM/"}
	}
}`

const sampleCategoricalParameter = `{
	"type": "Parameter",
	"observedProperty": {
		"label": {"en": "Land Cover"},
		"categories": [{
			"id": "http://example.com/land_cover/categories/grass",
			"label": {"en": "Grass"}
		}, {
			"id": "http://example.com/land_cover/categories/forest",
			"label": {"en": "Forest"}
		}]
	},
	"categoryEncoding": {
		"http://example.com/land_cover/categories/grass": 1,
		"http://example.com/land_cover/categories/forest": [2, 3]
	}
}`

const sampleParameterGroup = `{
	"type": "ParameterGroup",
	"label": {"en": "Daily sea surface temperature with uncertainty information"},
	"description": {"en": "Long description..."},
	"observedProperty": {
		"id": "http://vocab.nerc.ac.uk/standard_name/sea_surface_temperature/",
		"label": {"en": "Sea surface temperature"}
	},
	"members": ["SST_mean", "SST_stddev"]
}`

const sampleIdentifierRS = `{
	"type": "IdentifierRS",
	"id": "https://en.wikipedia.org/wiki/ISO_3166-1_alpha-2",
	"label": {"en": "ISO 3166-1 alpha-2 codes"},
	"targetConcept": {
		"id": "http://dbpedia.org/resource/Country",
		"label": {"en": "Country", "de": "Land"}
	},
	"identifiers": {
		"de": {
			"id": "http://dbpedia.org/resource/Germany",
			"label": {"de": "Deutschland", "en": "Germany"}
		},
		"gb": {
			"id": "http://dbpedia.org/resource/United_Kingdom",
			"label": {"de": "Vereinigtes Königreich", "en": "United Kingdom"}
		}
	}
}`

const sampleCoverage = `{
	"type": "Coverage",
	"domain": {
		"type": "Domain",
		"domainType": "Grid",
		"axes": {
			"x": {"values": [-10, -5, 0]},
			"y": {"values": [40, 50]},
			"z": {"values": [5]},
			"t": {"values": ["2010-01-01T00:12:20Z"]}
		},
		"referencing": [{
			"coordinates": ["y", "x", "z"],
			"system": {"type": "GeographicCRS", "id": "http://www.opengis.net/def/crs/EPSG/0/4979"}
		}, {
			"coordinates": ["t"],
			"system": {"type": "TemporalRS", "calendar": "Gregorian"}
		}]
	},
	"parameters": {
		"ICEC": {
			"type": "Parameter",
			"observedProperty": {
				"id": "http://vocab.nerc.ac.uk/standard_name/sea_ice_area_fraction/",
				"label": {"en": "Sea Ice Concentration"}
			}
		}
	},
	"ranges": {
		"ICEC": {
			"type": "NdArray",
			"dataType": "float",
			"axisNames": ["t", "z", "y", "x"],
			"shape": [1, 1, 2, 3],
			"values": [0.5, 0.6, 0.4, 0.6, 0.2, null]
		}
	}
}`

const sampleCoverageCollection = `{
	"type": "CoverageCollection",
	"parameters": {
		"PSAL": {
			"type": "Parameter",
			"description": {"en": "The measured salinity, in practical salinity units (psu) of the sea water"},
			"unit": {"symbol": "psu"},
			"observedProperty": {
				"id": "http://vocab.nerc.ac.uk/standard_name/sea_water_salinity/",
				"label": {"en": "Sea Water Salinity"}
			}
		}
	},
	"referencing": [{
		"coordinates": ["x", "y"],
		"system": {"type": "GeographicCRS", "id": "http://www.opengis.net/def/crs/OGC/1.3/CRS84"}
	}, {
		"coordinates": ["z"],
		"system": {"type": "VerticalCRS", "id": "http://www.opengis.net/def/crs/EPSG/0/5703"}
	}, {
		"coordinates": ["t"],
		"system": {"type": "TemporalRS", "calendar": "Gregorian"}
	}],
	"domainType": "VerticalProfile",
	"coverages": [{
		"type": "Coverage",
		"domain": {
			"type": "Domain",
			"axes": {
				"x": {"values": [-10.1]},
				"y": {"values": [-40.2]},
				"z": {"values": [5, 8, 14]},
				"t": {"values": ["2013-01-13T11:12:20Z"]}
			}
		},
		"ranges": {
			"PSAL": {
				"type": "NdArray",
				"dataType": "float",
				"axisNames": ["z"],
				"shape": [3],
				"values": [43.7, 43.8, 43.9]
			}
		}
	}, {
		"type": "Coverage",
		"domain": {
			"type": "Domain",
			"axes": {
				"x": {"values": [-11.1]},
				"y": {"values": [-45.2]},
				"z": {"values": [4, 7, 9]},
				"t": {"values": ["2013-01-13T12:12:20Z"]}
			}
		},
		"ranges": {
			"PSAL": {
				"type": "NdArray",
				"dataType": "float",
				"axisNames": ["z"],
				"shape": [3],
				"values": [42.7, 41.8, 40.9]
			}
		}
	}]
}`

// SampleGridDomain returns a Grid domain with four primitive axes.
func SampleGridDomain() schema.Document { return mustDecode(sampleGridDomain) }

// SampleTrajectoryDomain returns a Trajectory domain with a tuple composite axis.
func SampleTrajectoryDomain() schema.Document { return mustDecode(sampleTrajectoryDomain) }

// SamplePointSeriesDomain returns a PointSeries domain.
func SamplePointSeriesDomain() schema.Document { return mustDecode(samplePointSeriesDomain) }

// SampleDomain returns the sample domain of the given domain type, e.g.
// "MultiPolygonSeries". It panics for unknown types.
func SampleDomain(domainType string) schema.Document {
	literal, ok := sampleDomains[domainType]
	if !ok {
		panic("conformance: no sample domain of type " + domainType)
	}
	return mustDecode(literal)
}

// DomainTypes lists the domain types SampleDomain knows, in a stable order.
var DomainTypes = []string{
	"Grid",
	"Point",
	"PointSeries",
	"VerticalProfile",
	"MultiPoint",
	"MultiPointSeries",
	"Trajectory",
	"Section",
	"Polygon",
	"PolygonSeries",
	"MultiPolygon",
	"MultiPolygonSeries",
}

// SampleNdArray returns a 2D float NdArray with missing values.
func SampleNdArray() schema.Document { return mustDecode(sampleNdArray) }

// SampleTiledNdArray returns a TiledNdArray with three tile sets.
func SampleTiledNdArray() schema.Document { return mustDecode(sampleTiledNdArray) }

// SampleContinuousParameter returns a parameter with a typed unit symbol.
func SampleContinuousParameter() schema.Document { return mustDecode(sampleContinuousParameter) }

// SampleCategoricalParameter returns a parameter with categories and a category encoding.
func SampleCategoricalParameter() schema.Document { return mustDecode(sampleCategoricalParameter) }

// SampleParameterGroup returns a parameter group with label and observed property.
func SampleParameterGroup() schema.Document { return mustDecode(sampleParameterGroup) }

// SampleIdentifierRS returns an IdentifierRS reference system.
func SampleIdentifierRS() schema.Document { return mustDecode(sampleIdentifierRS) }

// SampleCoverage returns a standalone Grid coverage with one NdArray range.
func SampleCoverage() schema.Document { return mustDecode(sampleCoverage) }

// SampleCoverageCollection returns a collection of two vertical profile coverages sharing parameters and referencing.
func SampleCoverageCollection() schema.Document { return mustDecode(sampleCoverageCollection) }

// Decode parses a JSON literal into the value shape validators expect. It
// panics on malformed input and is meant for test tables.
func Decode(literal string) any {
	value, err := schema.DecodeBytes([]byte(literal))
	if err != nil {
		panic(err)
	}
	return value
}

func mustDecode(literal string) schema.Document {
	return Decode(literal).(map[string]any)
}
