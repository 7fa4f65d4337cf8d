package coldata

// Composite cost-of-living indices by metro, US average = 100.
var cityData = map[string]City{
	"San Francisco, CA":  {"San Francisco, CA", "USA", Indices{120, 250, 130, 110, 180}},
	"New York, NY":       {"New York, NY", "USA", Indices{110, 180, 115, 120, 150}},
	"Honolulu, HI":       {"Honolulu, HI", "USA", Indices{145, 200, 140, 125, 165}},
	"San Jose, CA":       {"San Jose, CA", "USA", Indices{118, 240, 125, 108, 175}},
	"Boston, MA":         {"Boston, MA", "USA", Indices{105, 165, 120, 110, 145}},
	"Seattle, WA":        {"Seattle, WA", "USA", Indices{115, 160, 110, 115, 140}},
	"Washington, DC":     {"Washington, DC", "USA", Indices{108, 155, 115, 112, 138}},
	"Los Angeles, CA":    {"Los Angeles, CA", "USA", Indices{110, 145, 120, 115, 135}},
	"San Diego, CA":      {"San Diego, CA", "USA", Indices{112, 150, 115, 110, 137}},
	"Portland, OR":       {"Portland, OR", "USA", Indices{105, 135, 98, 108, 125}},
	"Miami, FL":          {"Miami, FL", "USA", Indices{108, 130, 105, 110, 120}},
	"Denver, CO":         {"Denver, CO", "USA", Indices{102, 120, 95, 100, 110}},
	"Austin, TX":         {"Austin, TX", "USA", Indices{95, 110, 98, 95, 105}},
	"Atlanta, GA":        {"Atlanta, GA", "USA", Indices{96, 105, 92, 98, 103}},
	"Philadelphia, PA":   {"Philadelphia, PA", "USA", Indices{100, 115, 110, 105, 110}},
	"Minneapolis, MN":    {"Minneapolis, MN", "USA", Indices{98, 108, 95, 100, 105}},
	"Sacramento, CA":     {"Sacramento, CA", "USA", Indices{102, 115, 105, 103, 110}},
	"Salt Lake City, UT": {"Salt Lake City, UT", "USA", Indices{93, 105, 88, 95, 100}},
	"Raleigh, NC":        {"Raleigh, NC", "USA", Indices{94, 100, 90, 94, 98}},
	"Chicago, IL":        {"Chicago, IL", "USA", Indices{98, 95, 90, 105, 100}},
	"Dallas, TX":         {"Dallas, TX", "USA", Indices{92, 95, 94, 96, 96}},
	"Houston, TX":        {"Houston, TX", "USA", Indices{90, 92, 96, 95, 94}},
	"Phoenix, AZ":        {"Phoenix, AZ", "USA", Indices{95, 98, 100, 97, 98}},
	"Tampa, FL":          {"Tampa, FL", "USA", Indices{96, 100, 98, 95, 99}},
	"Charlotte, NC":      {"Charlotte, NC", "USA", Indices{94, 98, 92, 96, 97}},
	"Nashville, TN":      {"Nashville, TN", "USA", Indices{93, 100, 88, 94, 97}},
	"Las Vegas, NV":      {"Las Vegas, NV", "USA", Indices{96, 102, 94, 98, 100}},
	"Orlando, FL":        {"Orlando, FL", "USA", Indices{95, 98, 96, 94, 97}},
	"San Antonio, TX":    {"San Antonio, TX", "USA", Indices{88, 85, 92, 90, 88}},
	"Columbus, OH":       {"Columbus, OH", "USA", Indices{90, 88, 86, 92, 90}},
	"Indianapolis, IN":   {"Indianapolis, IN", "USA", Indices{88, 82, 88, 90, 87}},
	"Kansas City, MO":    {"Kansas City, MO", "USA", Indices{87, 83, 90, 89, 87}},
	"Pittsburgh, PA":     {"Pittsburgh, PA", "USA", Indices{92, 85, 95, 88, 90}},
	"Cincinnati, OH":     {"Cincinnati, OH", "USA", Indices{89, 82, 87, 88, 87}},
	"Richmond, VA":       {"Richmond, VA", "USA", Indices{91, 88, 89, 90, 90}},
	"Milwaukee, WI":      {"Milwaukee, WI", "USA", Indices{90, 86, 88, 91, 89}},
	"St. Louis, MO":      {"St. Louis, MO", "USA", Indices{87, 80, 92, 89, 86}},
	"Oklahoma City, OK":  {"Oklahoma City, OK", "USA", Indices{84, 75, 88, 86, 81}},
	"Detroit, MI":        {"Detroit, MI", "USA", Indices{86, 72, 90, 87, 82}},
	"Memphis, TN":        {"Memphis, TN", "USA", Indices{83, 73, 85, 84, 80}},
	"Birmingham, AL":     {"Birmingham, AL", "USA", Indices{82, 70, 88, 83, 78}},
	"Cleveland, OH":      {"Cleveland, OH", "USA", Indices{85, 68, 92, 85, 80}},
	"Louisville, KY":     {"Louisville, KY", "USA", Indices{84, 74, 86, 85, 81}},
	"Tulsa, OK":          {"Tulsa, OK", "USA", Indices{82, 72, 87, 84, 79}},
	"Albuquerque, NM":    {"Albuquerque, NM", "USA", Indices{85, 76, 84, 86, 82}},
	"Tupelo, MS":         {"Tupelo, MS", "USA", Indices{80, 70, 85, 80, 79}},
	"Decatur, IL":        {"Decatur, IL", "USA", Indices{80, 70, 85, 80, 79}},
	"Harlingen, TX":      {"Harlingen, TX", "USA", Indices{81, 71, 86, 81, 80}},
	"McAllen, TX":        {"McAllen, TX", "USA", Indices{81, 71, 86, 81, 80}},
	"Richmond, IN":       {"Richmond, IN", "USA", Indices{82, 72, 87, 82, 81}},
}
