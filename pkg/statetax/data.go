package statetax

// 2025 state income tax rates. Bracket bounds are taxable income in dollars;
// rates are percentages. States listed without brackets or a flat rate levy
// no income tax.
var stateTaxData = map[string]StateInfo{
	"AL": {
		Name:         "Alabama",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2, 0, 500},
			{4, 500, 3000},
			{5, 3000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2, 0, 1000},
			{4, 1000, 6000},
			{5, 6000, Unbounded},
		},
	},
	"AK": {Name: "Alaska", HasIncomeTax: false},
	"AZ": {Name: "Arizona", HasIncomeTax: true, FlatRate: 2.5},
	"AR": {
		Name:         "Arkansas",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2, 0, 5099},
			{3, 5099, 10199},
			{3.4, 10199, 14299},
			{4.4, 14299, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2, 0, 5099},
			{3, 5099, 10199},
			{3.4, 10199, 14299},
			{4.4, 14299, Unbounded},
		},
	},
	"CA": {
		Name:             "California",
		HasIncomeTax:     true,
		SingleDeduction:  5540,
		MarriedDeduction: 11080,
		SingleBrackets: []Bracket{
			{1, 0, 10412},
			{2, 10412, 24684},
			{4, 24684, 38959},
			{6, 38959, 54081},
			{8, 54081, 68350},
			{9.3, 68350, 349137},
			{10.3, 349137, 418961},
			{11.3, 418961, 698271},
			{12.3, 698271, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{1, 0, 20824},
			{2, 20824, 49368},
			{4, 49368, 77918},
			{6, 77918, 108162},
			{8, 108162, 136700},
			{9.3, 136700, 698274},
			{10.3, 698274, 837922},
			{11.3, 837922, 1396542},
			{12.3, 1396542, Unbounded},
		},
	},
	"CO": {Name: "Colorado", HasIncomeTax: true, FlatRate: 4.4},
	"CT": {
		Name:         "Connecticut",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2, 0, 10000},
			{4.5, 10000, 50000},
			{5.5, 50000, 100000},
			{6, 100000, 200000},
			{6.5, 200000, 250000},
			{6.9, 250000, 500000},
			{6.99, 500000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2, 0, 20000},
			{4.5, 20000, 100000},
			{5.5, 100000, 200000},
			{6, 200000, 400000},
			{6.5, 400000, 500000},
			{6.9, 500000, 1000000},
			{6.99, 1000000, Unbounded},
		},
	},
	"DE": {
		Name:         "Delaware",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2.2, 0, 2000},
			{3.9, 2000, 5000},
			{4.8, 5000, 10000},
			{5.2, 10000, 20000},
			{5.55, 20000, 25000},
			{6.6, 25000, 60000},
			{6.6, 60000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2.2, 0, 2000},
			{3.9, 2000, 5000},
			{4.8, 5000, 10000},
			{5.2, 10000, 20000},
			{5.55, 20000, 25000},
			{6.6, 25000, 60000},
			{6.6, 60000, Unbounded},
		},
	},
	"FL": {Name: "Florida", HasIncomeTax: false},
	"GA": {
		Name:         "Georgia",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{1, 0, 750},
			{2, 750, 2250},
			{3, 2250, 3750},
			{4, 3750, 5250},
			{5, 5250, 7000},
			{5.75, 7000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{1, 0, 1000},
			{2, 1000, 3000},
			{3, 3000, 5000},
			{4, 5000, 7000},
			{5, 7000, 10000},
			{5.75, 10000, Unbounded},
		},
	},
	"HI": {
		Name:         "Hawaii",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{1.4, 0, 2400},
			{3.2, 2400, 4800},
			{5.5, 4800, 9600},
			{6.4, 9600, 14400},
			{6.8, 14400, 19200},
			{7.2, 19200, 24000},
			{7.6, 24000, 36000},
			{7.9, 36000, 48000},
			{8.25, 48000, 150000},
			{9, 150000, 175000},
			{10, 175000, 200000},
			{11, 200000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{1.4, 0, 4800},
			{3.2, 4800, 9600},
			{5.5, 9600, 19200},
			{6.4, 19200, 28800},
			{6.8, 28800, 38400},
			{7.2, 38400, 48000},
			{7.6, 48000, 72000},
			{7.9, 72000, 96000},
			{8.25, 96000, 300000},
			{9, 300000, 350000},
			{10, 350000, 400000},
			{11, 400000, Unbounded},
		},
	},
	"ID": {Name: "Idaho", HasIncomeTax: true, FlatRate: 5.8},
	"IL": {Name: "Illinois", HasIncomeTax: true, FlatRate: 4.95},
	"IN": {Name: "Indiana", HasIncomeTax: true, FlatRate: 3.15},
	"IA": {Name: "Iowa", HasIncomeTax: true, FlatRate: 3.8},
	"KS": {
		Name:         "Kansas",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{3.1, 0, 15000},
			{5.25, 15000, 30000},
			{5.7, 30000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{3.1, 0, 30000},
			{5.25, 30000, 60000},
			{5.7, 60000, Unbounded},
		},
	},
	"KY": {Name: "Kentucky", HasIncomeTax: true, FlatRate: 4.5},
	"LA": {Name: "Louisiana", HasIncomeTax: true, FlatRate: 3},
	"ME": {
		Name:         "Maine",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{5.8, 0, 24500},
			{6.75, 24500, 58050},
			{7.15, 58050, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{5.8, 0, 49050},
			{6.75, 49050, 116100},
			{7.15, 116100, Unbounded},
		},
	},
	"MD": {
		Name:         "Maryland",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2, 0, 1000},
			{3, 1000, 2000},
			{4, 2000, 3000},
			{4.75, 3000, 100000},
			{5, 100000, 125000},
			{5.25, 125000, 150000},
			{5.5, 150000, 250000},
			{5.75, 250000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2, 0, 1000},
			{3, 1000, 2000},
			{4, 2000, 3000},
			{4.75, 3000, 150000},
			{5, 150000, 175000},
			{5.25, 175000, 225000},
			{5.5, 225000, 300000},
			{5.75, 300000, Unbounded},
		},
	},
	"MA": {Name: "Massachusetts", HasIncomeTax: true, FlatRate: 5},
	"MI": {Name: "Michigan", HasIncomeTax: true, FlatRate: 4.25},
	"MN": {
		Name:         "Minnesota",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{5.35, 0, 30070},
			{6.8, 30070, 98760},
			{7.85, 98760, 183340},
			{9.85, 183340, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{5.35, 0, 43950},
			{6.8, 43950, 174610},
			{7.85, 174610, 304970},
			{9.85, 304970, Unbounded},
		},
	},
	"MS": {Name: "Mississippi", HasIncomeTax: true, FlatRate: 4.7},
	"MO": {
		Name:             "Missouri",
		HasIncomeTax:     true,
		SingleDeduction:  15750,
		MarriedDeduction: 31500,
		SingleBrackets: []Bracket{
			{2, 0, 1207},
			{2.5, 1207, 2414},
			{3, 2414, 3621},
			{3.5, 3621, 4828},
			{4, 4828, 6035},
			{4.5, 6035, 7242},
			{4.8, 7242, 8449},
			{4.95, 8449, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2, 0, 1207},
			{2.5, 1207, 2414},
			{3, 2414, 3621},
			{3.5, 3621, 4828},
			{4, 4828, 6035},
			{4.5, 6035, 7242},
			{4.8, 7242, 8449},
			{4.95, 8449, Unbounded},
		},
	},
	"MT": {
		Name:         "Montana",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{4.7, 0, 20500},
			{5.9, 20500, 51600},
			{6.75, 51600, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{4.7, 0, 41000},
			{5.9, 41000, 103200},
			{6.75, 103200, Unbounded},
		},
	},
	"NE": {
		Name:         "Nebraska",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2.46, 0, 3700},
			{3.51, 3700, 22170},
			{5.01, 22170, 35730},
			{6.84, 35730, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2.46, 0, 7390},
			{3.51, 7390, 44350},
			{5.01, 44350, 71460},
			{6.84, 71460, Unbounded},
		},
	},
	"NV": {Name: "Nevada", HasIncomeTax: false},
	"NH": {Name: "New Hampshire", HasIncomeTax: false},
	"NJ": {
		Name:         "New Jersey",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{1.4, 0, 20000},
			{1.75, 20000, 35000},
			{3.5, 35000, 40000},
			{5.525, 40000, 75000},
			{6.37, 75000, 500000},
			{8.97, 500000, 1000000},
			{10.75, 1000000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{1.4, 0, 20000},
			{1.75, 20000, 50000},
			{2.45, 50000, 70000},
			{3.5, 70000, 80000},
			{5.525, 80000, 150000},
			{6.37, 150000, 500000},
			{8.97, 500000, 1000000},
			{10.75, 1000000, Unbounded},
		},
	},
	"NM": {
		Name:         "New Mexico",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{1.7, 0, 5500},
			{3.2, 5500, 11000},
			{4.7, 11000, 16000},
			{4.9, 16000, 210000},
			{5.9, 210000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{1.7, 0, 8000},
			{3.2, 8000, 16000},
			{4.7, 16000, 24000},
			{4.9, 24000, 315000},
			{5.9, 315000, Unbounded},
		},
	},
	"NY": {
		Name:         "New York",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{4, 0, 8500},
			{4.5, 8500, 11700},
			{5.25, 11700, 13900},
			{5.5, 13900, 80650},
			{6, 80650, 215400},
			{6.85, 215400, 1077550},
			{9.65, 1077550, 5000000},
			{10.3, 5000000, 25000000},
			{10.9, 25000000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{4, 0, 17150},
			{4.5, 17150, 23600},
			{5.25, 23600, 27900},
			{5.5, 27900, 161550},
			{6, 161550, 323200},
			{6.85, 323200, 2155350},
			{9.65, 2155350, 5000000},
			{10.3, 5000000, 25000000},
			{10.9, 25000000, Unbounded},
		},
	},
	"NC": {Name: "North Carolina", HasIncomeTax: true, FlatRate: 4.5},
	"ND": {Name: "North Dakota", HasIncomeTax: true, FlatRate: 2.9},
	"OH": {
		Name:         "Ohio",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{0, 0, 26050},
			{2.75, 26050, 46100},
			{3.226, 46100, 92150},
			{3.688, 92150, 115300},
			{3.99, 115300, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{0, 0, 26050},
			{2.75, 26050, 46100},
			{3.226, 46100, 92150},
			{3.688, 92150, 115300},
			{3.99, 115300, Unbounded},
		},
	},
	"OK": {
		Name:         "Oklahoma",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{0.25, 0, 1000},
			{0.75, 1000, 2500},
			{1.75, 2500, 3750},
			{2.75, 3750, 4900},
			{3.75, 4900, 7200},
			{4.75, 7200, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{0.25, 0, 2000},
			{0.75, 2000, 5000},
			{1.75, 5000, 7500},
			{2.75, 7500, 9800},
			{3.75, 9800, 12200},
			{4.75, 12200, Unbounded},
		},
	},
	"OR": {
		Name:         "Oregon",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{4.75, 0, 4050},
			{6.75, 4050, 10200},
			{8.75, 10200, 125000},
			{9.9, 125000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{4.75, 0, 8100},
			{6.75, 8100, 20400},
			{8.75, 20400, 250000},
			{9.9, 250000, Unbounded},
		},
	},
	"PA": {Name: "Pennsylvania", HasIncomeTax: true, FlatRate: 3.07},
	"RI": {
		Name:         "Rhode Island",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{3.75, 0, 73450},
			{4.75, 73450, 166950},
			{5.99, 166950, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{3.75, 0, 73450},
			{4.75, 73450, 166950},
			{5.99, 166950, Unbounded},
		},
	},
	"SC": {
		Name:         "South Carolina",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{0, 0, 3200},
			{3, 3200, 16040},
			{6.4, 16040, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{0, 0, 3200},
			{3, 3200, 16040},
			{6.4, 16040, Unbounded},
		},
	},
	"SD": {Name: "South Dakota", HasIncomeTax: false},
	"TN": {Name: "Tennessee", HasIncomeTax: false},
	"TX": {Name: "Texas", HasIncomeTax: false},
	"UT": {Name: "Utah", HasIncomeTax: true, FlatRate: 4.65},
	"VT": {
		Name:         "Vermont",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{3.35, 0, 45400},
			{6.6, 45400, 110050},
			{7.6, 110050, 229550},
			{8.75, 229550, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{3.35, 0, 75850},
			{6.6, 75850, 183400},
			{7.6, 183400, 279450},
			{8.75, 279450, Unbounded},
		},
	},
	"VA": {
		Name:         "Virginia",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2, 0, 3000},
			{3, 3000, 5000},
			{5, 5000, 17000},
			{5.75, 17000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2, 0, 3000},
			{3, 3000, 5000},
			{5, 5000, 17000},
			{5.75, 17000, Unbounded},
		},
	},
	"WA": {Name: "Washington", HasIncomeTax: false},
	"WV": {
		Name:         "West Virginia",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{2.36, 0, 10000},
			{3.15, 10000, 25000},
			{3.54, 25000, 40000},
			{4.72, 40000, 60000},
			{5.12, 60000, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{2.36, 0, 10000},
			{3.15, 10000, 25000},
			{3.54, 25000, 40000},
			{4.72, 40000, 60000},
			{5.12, 60000, Unbounded},
		},
	},
	"WI": {
		Name:         "Wisconsin",
		HasIncomeTax: true,
		SingleBrackets: []Bracket{
			{3.54, 0, 13810},
			{4.65, 13810, 27630},
			{5.3, 27630, 304170},
			{7.65, 304170, Unbounded},
		},
		MarriedBrackets: []Bracket{
			{3.54, 0, 18420},
			{4.65, 18420, 36840},
			{5.3, 36840, 405560},
			{7.65, 405560, Unbounded},
		},
	},
	"WY": {Name: "Wyoming", HasIncomeTax: false},
}
