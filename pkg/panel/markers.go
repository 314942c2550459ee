package panel

// identityMarkers lists the identity-vigilance loci kept on the panel for
// sample-identity checks. They are not CNV-informative: their ratios are
// still computed and written, only anomaly reporting is withheld.
var identityMarkers = map[string]bool{
	"PENTA":          true,
	"224830378":      true,
	"224869380":      true,
	"224862488":      true,
	"224879644":      true,
	"224829586":      true,
	"224851112":      true,
	"TH01":           true,
	"224825605":      true,
	"224824531":      true,
	"AMEX":           true,
	"AMEY":           true,
	"D1MS201754411":  true,
	"MON27":          true,
	"BAT26":          true,
	"D2MS62063094":   true,
	"NR24":           true,
	"BAT25":          true,
	"D5MS172421761":  true,
	"D6MS142691951":  true,
	"D7MS1787520":    true,
	"D7MS74608741":   true,
	"D11MS106695515": true,
	"D13MS31722621":  true,
	"NR21":           true,
	"D15MS45897772":  true,
	"D16MS18882660":  true,
	"D17MS19314918":  true,
}
