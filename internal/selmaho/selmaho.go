// Package selmaho classifies Lojban words into their grammatical category
// (selmaho in Lojban terminology).
package selmaho

// Selmaho is the grammatical classification of a word. Most variants are
// selmaho proper, the grammatical type of a cmavo. A few others represent
// non-cmavo word types (Cmevla, Gismu, Fuhivla, Lujvo) and some are
// "technical" markers used only by this pipeline (AnyText, UnknownCmavo,
// ZoiDelimiter).
type Selmaho int

const (
	A Selmaho = iota
	Bai
	Bahe
	Be
	Bei
	Beho
	Bihe
	Bihi
	Bo
	Boi
	Bu
	By
	Cai
	Caha
	Cei
	Cehe
	Co
	Coi
	Cu
	Cuhe
	Daho
	Doi
	Dohu
	Fa
	Faha
	Faho
	Fehe
	Fehu
	Fiho
	Foi
	Fuha
	Fuhe
	Fuho
	Ga
	Gaho
	Gehu
	Gi
	Giha
	Goi
	Goha
	Guha
	I
	Ja
	Jai
	Joi
	Johi
	Ke
	Kei
	Kehe
	Ki
	Koha
	Ku
	Kuhe
	Kuho
	La
	Lau
	Lahe
	Le
	Lehu
	Li
	Lihu
	Loho
	Lohu
	Lu
	Luhu
	Mai
	Maho
	Me
	Mehu
	Moi
	Mohe
	Mohi
	Na
	Nai
	Nahe
	Nahu
	Nihe
	Niho
	Noi
	Nu
	Nuha
	Nuhi
	Nuhu
	Pa
	Pehe
	Peho
	Pu
	Raho
	Roi
	Sa
	Se
	Sei
	Sehu
	Si
	Soi
	Su
	Tahe
	Tei
	Tehu
	To
	Toi
	Tuhe
	Ui
	Va
	Vau
	Vei
	Veha
	Veho
	Viha
	Vuho
	Vuhu
	Xi
	Y
	Zaho
	Zei
	Zeha
	Zi
	Zihe
	Zo
	Zoi
	Zohu

	// experimental selmaho (every cmavo in these tags is experimental)
	Bahei
	Beihe
	Boihoi
	Boihohu
	Cahei
	Ceheihoi
	Cohai
	Cohehohe
	Cohuho // treated like Co
	Cuhau
	Dauho // treated like Ui
	Dehai
	Dehau // treated like Ui
	Dohoi
	Fauha  // treated like Ui
	Fahoho // treated like Faho
	Fihoi
	Foihe
	Gahuhau
	Gehuhi
	Gihei
	Gihoi
	Gohoi
	Ihau
	Jaiha
	Jaihi
	Jauhu
	Jahoi
	Jihoi
	Joihi
	Johe
	Juhau
	Juhei
	Juhuhi
	Kauhai
	Kauhu
	Keihau
	Keihi
	Kehai
	Kehei
	Keheiha
	Kehehau
	Kehehu
	Kehuhi
	Kuhau
	Kuhei
	Kuhoihu
	Kyhoi
	Lehai
	Lihau
	Lihei
	Lohai
	Lohoi
	Luhei
	Mauhau
	Mauhe
	Mauho
	Meihe
	Meiho
	Mehoi
	Muhoi
	Muhohu
	Neihai
	Noiha
	Noihau
	Noihahu
	Noihi
	Nohoi
	Rauho
	Rehaihe
	Sauhu
	Sahau
	Sahoi
	Seihau
	Seiho
	Sehehi
	Sehoihoi
	Sihihei
	Sihihoi
	Sihoi
	Soihi
	Sohehai
	Sohoi
	Taihu
	Tauho
	Tahoi
	Tahuhi
	Teihu
	Tehoihoi
	Toihe
	Toiho
	Vauhehoi
	Vauhohoi
	Vuhoi
	Vyhy
	Xauhe
	Xauheho
	Xauho
	Xauhoi
	Xauhoho
	Xahoihahoiha // treated like an error
	Xehau
	Xoi
	Xoha
	Xohehohe
	Xohi
	Xuhau
	Yhi
	Zaihai
	Zaihu
	Zauhehu
	Zeihei
	Zeihoi // in jbovlaste, ZEI'OI (a lowercase apostrophe in a selmaho)
	Ziheha
	Zihehau
	Zihoi
	Zoihai
	Zoihohe
	Zohau
	Zohehu
	Zohiho
	Zohoi

	// non-cmavo selmaho: the first three are all brivla and treated the
	// same by parsers, but the distinction is kept for other consumers.
	Gismu
	Fuhivla
	Lujvo
	Cmevla

	// technical selmaho
	// UnknownCmavo: words with cmavo form but not a recognized selmaho.
	UnknownCmavo
	// AnyText: unrecognized text, e.g. the contents of a zoi quote.
	AnyText
	// ZoiDelimiter: emitted only by the lexer, not a selmaho proper.
	ZoiDelimiter
)

var experimentalSelmaho = map[Selmaho]bool{
	Bahei: true, Beihe: true, Boihoi: true, Boihohu: true, Cahei: true,
	Ceheihoi: true, Cohai: true, Cohehohe: true, Cohuho: true, Cuhau: true,
	Dauho: true, Dehai: true, Dehau: true, Dohoi: true, Fauha: true,
	Fahoho: true, Fihoi: true, Foihe: true, Gahuhau: true, Gehuhi: true,
	Gihei: true, Gihoi: true, Gohoi: true, Ihau: true, Jaiha: true,
	Jaihi: true, Jauhu: true, Jahoi: true, Jihoi: true, Joihi: true,
	Johe: true, Juhau: true, Juhei: true, Juhuhi: true, Kauhai: true,
	Kauhu: true, Keihau: true, Keihi: true, Kehai: true, Kehei: true,
	Keheiha: true, Kehehau: true, Kehehu: true, Kehuhi: true, Kuhau: true,
	Kuhei: true, Kuhoihu: true, Kyhoi: true, Lehai: true, Lihau: true,
	Lihei: true, Lohai: true, Lohoi: true, Luhei: true, Mauhau: true,
	Mauhe: true, Mauho: true, Meihe: true, Meiho: true, Mehoi: true,
	Muhoi: true, Muhohu: true, Neihai: true, Noiha: true, Noihau: true,
	Noihahu: true, Noihi: true, Nohoi: true, Rauho: true, Rehaihe: true,
	Sauhu: true, Sahau: true, Sahoi: true, Seihau: true, Seiho: true,
	Sehehi: true, Sehoihoi: true, Sihihei: true, Sihihoi: true, Sihoi: true,
	Soihi: true, Sohehai: true, Sohoi: true, Taihu: true, Tauho: true,
	Tahoi: true, Tahuhi: true, Teihu: true, Tehoihoi: true, Toihe: true,
	Toiho: true, Vauhehoi: true, Vauhohoi: true, Vuhoi: true, Vyhy: true,
	Xauhe: true, Xauheho: true, Xauho: true, Xauhoi: true, Xauhoho: true,
	Xahoihahoiha: true, Xehau: true, Xoi: true, Xoha: true, Xohehohe: true,
	Xohi: true, Xuhau: true, Yhi: true, Zaihai: true, Zaihu: true,
	Zauhehu: true, Zeihei: true, Zeihoi: true, Ziheha: true, Zihehau: true,
	Zihoi: true, Zoihai: true, Zoihohe: true, Zohau: true, Zohehu: true,
	Zohiho: true, Zohoi: true,
	UnknownCmavo: true,
}

// IsFundamentallyExperimental reports whether every cmavo belonging to
// this selmaho is experimental. It is false for all non-cmavo and
// technical selmaho except UnknownCmavo.
func (s Selmaho) IsFundamentallyExperimental() bool {
	return experimentalSelmaho[s]
}

var selmahoNames = map[Selmaho]string{
	A: "A", Bai: "BAI", Bahe: "BAhE", Be: "BE", Bei: "BEI", Beho: "BEhO",
	Bihe: "BIhE", Bihi: "BIhI", Bo: "BO", Boi: "BOI", Bu: "BU", By: "BY",
	Cai: "CAI", Caha: "CAhA", Cei: "CEI", Cehe: "CEhE", Co: "CO", Coi: "COI",
	Cu: "CU", Cuhe: "CUhE", Daho: "DAhO", Doi: "DOI", Dohu: "DOhU", Fa: "FA",
	Faha: "FAhA", Faho: "FAhO", Fehe: "FEhE", Fehu: "FEhU", Fiho: "FIhO",
	Foi: "FOI", Fuha: "FUhA", Fuhe: "FUhE", Fuho: "FUhO", Ga: "GA",
	Gaho: "GAhO", Gehu: "GEhU", Gi: "GI", Giha: "GIhA", Goi: "GOI",
	Goha: "GOhA", Guha: "GUhA", I: "I", Ja: "JA", Jai: "JAI", Joi: "JOI",
	Johi: "JOhI", Ke: "KE", Kei: "KEI", Kehe: "KEhE", Ki: "KI", Koha: "KOhA",
	Ku: "KU", Kuhe: "KUhE", Kuho: "KUhO", La: "LA", Lau: "LAU", Lahe: "LAhE",
	Le: "LE", Lehu: "LEhU", Li: "LI", Lihu: "LIhU", Loho: "LOhO",
	Lohu: "LOhU", Lu: "LU", Luhu: "LUhU", Mai: "MAI", Maho: "MAhO", Me: "ME",
	Mehu: "MEhU", Moi: "MOI", Mohe: "MOhE", Mohi: "MOhI", Na: "NA",
	Nai: "NAI", Nahe: "NAhE", Nahu: "NAhU", Nihe: "NIhE", Niho: "NIhO",
	Noi: "NOI", Nu: "NU", Nuha: "NUhA", Nuhi: "NUhI", Nuhu: "NUhU",
	Pa: "PA", Pehe: "PEhE", Peho: "PEhO", Pu: "PU", Raho: "RAhO", Roi: "ROI",
	Sa: "SA", Se: "SE", Sei: "SEI", Sehu: "SEhU", Si: "SI", Soi: "SOI",
	Su: "SU", Tahe: "TAhE", Tei: "TEI", Tehu: "TEhU", To: "TO", Toi: "TOI",
	Tuhe: "TUhE", Ui: "UI", Va: "VA", Vau: "VAU", Vei: "VEI", Veha: "VEhA",
	Veho: "VEhO", Viha: "VIhA", Vuho: "VUhO", Vuhu: "VUhU", Xi: "XI",
	Y: "Y", Zaho: "ZAhO", Zei: "ZEI", Zeha: "ZEhA", Zi: "ZI", Zihe: "ZIhE",
	Zo: "ZO", Zoi: "ZOI", Zohu: "ZOhU",
	Gismu: "GISMU", Fuhivla: "FUhIVLA", Lujvo: "LUJVO", Cmevla: "CMEVLA",
	UnknownCmavo: "UNKNOWN_CMAVO", AnyText: "ANY_TEXT", ZoiDelimiter: "ZOI_DELIMITER",

	// experimental selmaho that the fast-path cmavo table actually assigns
	// (quote-construct triggers); the remaining experimental tags in the
	// block above have no cmavo assigned to them yet and so have no need
	// of a distinct display/lookup name.
	Muhoi: "MUhOI", Sohehai: "SOhEHAI", Mehoi: "MEhOI", Zohoi: "ZOhOI", Dohoi: "DOhOI",
}

func (s Selmaho) String() string {
	if name, ok := selmahoNames[s]; ok {
		return name
	}
	return "EXPERIMENTAL_SELMAHO"
}

var selmahoByName = func() map[string]Selmaho {
	out := make(map[string]Selmaho, len(selmahoNames))
	for s, name := range selmahoNames {
		out[name] = s
	}
	return out
}()

// parseSelmahoName looks up a Selmaho by the same name String() returns for
// it, for loading the embedded cmavo table by name instead of by constant.
func parseSelmahoName(name string) (Selmaho, bool) {
	s, ok := selmahoByName[name]
	return s, ok
}
