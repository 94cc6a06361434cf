// Package states provides US state code normalization and shortest-corridor
// search over the state adjacency graph.
package states

// nameToCode maps full state names (uppercase) to 2-letter codes.
// 50 states plus the District of Columbia.
var nameToCode = map[string]string{
	"ALABAMA":              "AL",
	"ALASKA":               "AK",
	"ARIZONA":              "AZ",
	"ARKANSAS":             "AR",
	"CALIFORNIA":           "CA",
	"COLORADO":             "CO",
	"CONNECTICUT":          "CT",
	"DELAWARE":             "DE",
	"FLORIDA":              "FL",
	"GEORGIA":              "GA",
	"HAWAII":               "HI",
	"IDAHO":                "ID",
	"ILLINOIS":             "IL",
	"INDIANA":              "IN",
	"IOWA":                 "IA",
	"KANSAS":               "KS",
	"KENTUCKY":             "KY",
	"LOUISIANA":            "LA",
	"MAINE":                "ME",
	"MARYLAND":             "MD",
	"MASSACHUSETTS":        "MA",
	"MICHIGAN":             "MI",
	"MINNESOTA":            "MN",
	"MISSISSIPPI":          "MS",
	"MISSOURI":             "MO",
	"MONTANA":              "MT",
	"NEBRASKA":             "NE",
	"NEVADA":               "NV",
	"NEW HAMPSHIRE":        "NH",
	"NEW JERSEY":           "NJ",
	"NEW MEXICO":           "NM",
	"NEW YORK":             "NY",
	"NORTH CAROLINA":       "NC",
	"NORTH DAKOTA":         "ND",
	"OHIO":                 "OH",
	"OKLAHOMA":             "OK",
	"OREGON":               "OR",
	"PENNSYLVANIA":         "PA",
	"RHODE ISLAND":         "RI",
	"SOUTH CAROLINA":       "SC",
	"SOUTH DAKOTA":         "SD",
	"TENNESSEE":            "TN",
	"TEXAS":                "TX",
	"UTAH":                 "UT",
	"VERMONT":              "VT",
	"VIRGINIA":             "VA",
	"WASHINGTON":           "WA",
	"WEST VIRGINIA":        "WV",
	"WISCONSIN":            "WI",
	"WYOMING":              "WY",
	"DISTRICT OF COLUMBIA": "DC",
}

// codeToName is the reverse of nameToCode, built once at init.
var codeToName = func() map[string]string {
	m := make(map[string]string, len(nameToCode))
	for name, code := range nameToCode {
		m[code] = name
	}
	return m
}()

// neighbors is the land-border adjacency graph of the 51 codes. AK and HI
// have no land neighbors. Every code in nameToCode has an entry.
var neighbors = map[string][]string{
	"AL": {"FL", "GA", "TN", "MS"},
	"AK": {},
	"AZ": {"CA", "NV", "UT", "NM", "CO"},
	"AR": {"TX", "OK", "MO", "TN", "MS", "LA"},
	"CA": {"OR", "NV", "AZ"},
	"CO": {"WY", "NE", "KS", "OK", "NM", "AZ", "UT"},
	"CT": {"NY", "MA", "RI"},
	"DE": {"MD", "PA", "NJ"},
	"FL": {"AL", "GA"},
	"GA": {"FL", "AL", "TN", "NC", "SC"},
	"HI": {},
	"ID": {"WA", "OR", "NV", "UT", "WY", "MT"},
	"IL": {"WI", "IA", "MO", "KY", "IN", "MI"},
	"IN": {"MI", "OH", "KY", "IL"},
	"IA": {"MN", "SD", "NE", "MO", "IL", "WI"},
	"KS": {"NE", "CO", "OK", "MO"},
	"KY": {"IL", "IN", "OH", "WV", "VA", "TN", "MO"},
	"LA": {"TX", "AR", "MS"},
	"ME": {"NH"},
	"MD": {"VA", "WV", "PA", "DE", "DC"},
	"MA": {"NY", "VT", "NH", "RI", "CT"},
	"MI": {"WI", "IN", "OH"},
	"MN": {"ND", "SD", "IA", "WI"},
	"MS": {"LA", "AR", "TN", "AL"},
	"MO": {"IA", "IL", "KY", "TN", "AR", "OK", "KS", "NE"},
	"MT": {"ID", "WY", "SD", "ND"},
	"NE": {"SD", "IA", "MO", "KS", "CO", "WY"},
	"NV": {"OR", "ID", "UT", "AZ", "CA"},
	"NH": {"VT", "ME", "MA"},
	"NJ": {"NY", "PA", "DE"},
	"NM": {"AZ", "UT", "CO", "OK", "TX"},
	"NY": {"PA", "NJ", "CT", "MA", "VT"},
	"NC": {"VA", "TN", "GA", "SC"},
	"ND": {"MT", "SD", "MN"},
	"OH": {"PA", "WV", "KY", "IN", "MI"},
	"OK": {"KS", "CO", "NM", "TX", "AR", "MO"},
	"OR": {"WA", "ID", "NV", "CA"},
	"PA": {"NY", "NJ", "DE", "MD", "WV", "OH"},
	"RI": {"MA", "CT"},
	"SC": {"NC", "GA"},
	"SD": {"ND", "MT", "WY", "NE", "IA", "MN"},
	"TN": {"KY", "VA", "NC", "GA", "AL", "MS", "AR", "MO"},
	"TX": {"NM", "OK", "AR", "LA"},
	"UT": {"ID", "WY", "CO", "NM", "AZ", "NV"},
	"VT": {"NY", "NH", "MA"},
	"VA": {"MD", "DC", "WV", "KY", "TN", "NC"},
	"WA": {"ID", "OR"},
	"WV": {"OH", "PA", "MD", "VA", "KY"},
	"WI": {"MN", "IA", "IL", "MI"},
	"WY": {"MT", "SD", "NE", "CO", "UT", "ID"},
	"DC": {"MD", "VA"},
}
