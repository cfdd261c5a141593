// Package category holds the fixed, closed set of incident category codes and
// the keyword tables used to classify free-text records into them.
package category

import "strings"

// The eleven category codes. Every canonical event carries exactly one of
// these; nothing else is ever emitted.
const (
	Drone    = "DRONE"    // drone/UAV activity
	Infra    = "INFRA"    // infrastructure sabotage
	CBRN     = "CBRN"     // nuclear/hazmat
	Terror   = "TERROR"   // terrorism
	Intel    = "INTEL"    // intelligence/espionage
	Legal    = "LEGAL"    // legal cases
	Mil      = "MIL"      // military
	Hybrid   = "HYBRID"   // hybrid/influence operations
	Maritime = "MARITIME" // maritime incidents
	GPS      = "GPS"      // GPS/signal jamming
	Policy   = "POLICY"   // policy/politics
)

// Fallback is assigned when neither the cat field nor any alias matches.
const Fallback = Policy

// All lists every code in display and alias-priority order. Chart axes are
// built from this list so they stay stable across filter changes.
var All = []string{Drone, Infra, CBRN, Terror, Intel, Legal, Mil, Hybrid, Maritime, GPS, Policy}

// Info is the static presentation table entry for one code: display label,
// glyph identifier and marker color. Consumed by the rendering frontend,
// never computed.
type Info struct {
	Label string `json:"label"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

var Table = map[string]Info{
	Drone:    {Label: "Drönare/UAV", Glyph: "uav", Color: "#9b59b6"},
	Infra:    {Label: "Infrastruktursabotage", Glyph: "pylon", Color: "#3498db"},
	CBRN:     {Label: "Kärnkraft/farligt ämne", Glyph: "radiation", Color: "#f39c12"},
	Terror:   {Label: "Terrorism", Glyph: "blast", Color: "#e74c3c"},
	Intel:    {Label: "Spioneri/underrättelse", Glyph: "eye", Color: "#34495e"},
	Legal:    {Label: "Rättsfall", Glyph: "gavel", Color: "#795548"},
	Mil:      {Label: "Militärt", Glyph: "shield", Color: "#27ae60"},
	Hybrid:   {Label: "Hybrid/påverkan", Glyph: "wave", Color: "#e67e22"},
	Maritime: {Label: "Maritimt", Glyph: "anchor", Color: "#16a085"},
	GPS:      {Label: "GPS/signalstörning", Glyph: "satellite", Color: "#8e44ad"},
	Policy:   {Label: "Politik/policy", Glyph: "doc", Color: "#7f8c8d"},
}

// defaultAliases maps each code to lower-cased substrings searched for in the
// concatenated title+summary+place+country blob. Scanned in the order of All;
// the first code with any hit wins, so earlier codes take priority when a
// blob mentions several.
var defaultAliases = map[string][]string{
	Drone:    {"drone", "drönare", "dronare", "uav", "quadcopter", "obemannad farkost"},
	Infra:    {"sabotage", "infrastruktur", "pipeline", "gasledning", "elnät", "kraftnät", "undervattenskabel", "telekabel", "power grid", "substation"},
	CBRN:     {"kärnkraft", "karnkraft", "radioaktiv", "radioactive", "nuclear", "hazmat", "kemikalieutsläpp", "strålning"},
	Terror:   {"terror", "attentat", "bombhot", "sprängdåd", "explosion"},
	Intel:    {"spioneri", "spion", "espionage", "underrättelse", "underrattelse", "intelligence officer", "agent avslöjad"},
	Legal:    {"åtal", "rättegång", "rattegang", "häktad", "dömd", "court", "trial", "indicted"},
	Mil:      {"militär", "militar", "försvarsmakten", "forsvarsmakten", "military", "nato", "beredskap"},
	Hybrid:   {"hybrid", "påverkanskampanj", "paverkanskampanj", "desinformation", "disinformation", "influence operation"},
	Maritime: {"fartyg", "vessel", "skuggflotta", "shadow fleet", "maritim", "maritime", "hamn", "östersjön", "ostersjon", "baltic sea"},
	GPS:      {"gps", "jamming", "gnss", "signalstörning", "signalstorning", "spoofing"},
	Policy:   {"riksdag", "regering", "proposition", "lagförslag", "policy", "sanktion"},
}

// Classifier resolves raw category strings and free text to a code. The
// zero-config classifier uses the built-in alias table; deployments can
// override per-code alias lists from the config file.
type Classifier struct {
	aliases map[string][]string
}

// Default returns a classifier with the built-in alias table.
func Default() *Classifier {
	return &Classifier{aliases: defaultAliases}
}

// WithAliases returns a classifier whose alias lists for the given codes
// replace the built-in ones. Unknown codes in the override are ignored;
// codes not mentioned keep their defaults.
func WithAliases(overrides map[string][]string) *Classifier {
	merged := make(map[string][]string, len(defaultAliases))
	for code, list := range defaultAliases {
		merged[code] = list
	}
	for code, list := range overrides {
		code = strings.ToUpper(strings.TrimSpace(code))
		if !Valid(code) {
			continue
		}
		merged[code] = list
	}
	return &Classifier{aliases: merged}
}

// Valid reports whether code is one of the fixed category codes.
func Valid(code string) bool {
	_, ok := Table[code]
	return ok
}

// Resolve classifies one record. rawCat is the record's own cat/category
// field, blob the concatenated free text. Exact code match wins; otherwise
// the alias lists are scanned in priority order; otherwise Fallback.
func (c *Classifier) Resolve(rawCat, blob string) string {
	if code := strings.ToUpper(strings.TrimSpace(rawCat)); Valid(code) {
		return code
	}
	blob = strings.ToLower(blob)
	for _, code := range All {
		for _, kw := range c.aliases[code] {
			if strings.Contains(blob, kw) {
				return code
			}
		}
	}
	return Fallback
}
