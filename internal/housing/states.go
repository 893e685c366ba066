package housing

// stateNames maps two-letter postal abbreviations to full state names.
var stateNames = map[string]string{
	"OH": "Ohio", "KY": "Kentucky", "AS": "American Samoa",
	"NV": "Nevada", "WY": "Wyoming", "NA": "National",
	"AL": "Alabama", "MD": "Maryland", "AK": "Alaska",
	"UT": "Utah", "OR": "Oregon", "MT": "Montana",
	"IL": "Illinois", "TN": "Tennessee", "DC": "District of Columbia",
	"VT": "Vermont", "ID": "Idaho", "AR": "Arkansas",
	"ME": "Maine", "WA": "Washington", "HI": "Hawaii",
	"WI": "Wisconsin", "MI": "Michigan", "IN": "Indiana",
	"NJ": "New Jersey", "AZ": "Arizona", "GU": "Guam",
	"MS": "Mississippi", "PR": "Puerto Rico", "NC": "North Carolina",
	"TX": "Texas", "SD": "South Dakota", "MP": "Northern Mariana Islands",
	"IA": "Iowa", "MO": "Missouri", "CT": "Connecticut",
	"WV": "West Virginia", "SC": "South Carolina", "LA": "Louisiana",
	"KS": "Kansas", "NY": "New York", "NE": "Nebraska",
	"OK": "Oklahoma", "FL": "Florida", "CA": "California",
	"CO": "Colorado", "PA": "Pennsylvania", "DE": "Delaware",
	"NM": "New Mexico", "RI": "Rhode Island", "MN": "Minnesota",
	"VI": "Virgin Islands", "NH": "New Hampshire", "MA": "Massachusetts",
	"GA": "Georgia", "ND": "North Dakota", "VA": "Virginia",
}

// StateName returns the full name for an abbreviation.
func StateName(abbr string) (string, bool) {
	name, ok := stateNames[abbr]
	return name, ok
}
