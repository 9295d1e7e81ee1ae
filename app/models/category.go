package models

// Category is one entry of the service catalog. Key is the canonical,
// already-normalized identifier of the category; it is both the value a
// catalog tile searches for and the group key for synonym expansion, so the
// browsable catalog and the matcher cannot drift apart.
type Category struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Synonyms    []string `json:"synonyms,omitempty"`
}

// Catalog returns the static category table. Callers must treat the result
// as read-only.
func Catalog() []Category {
	return catalog
}

var catalog = []Category{
	{
		ID:          "1",
		Key:         "elektrika",
		Name:        "Električari",
		Description: "Instalacije, popravke kvarova i osvetljenje.",
		Icon:        "electrician",
		Synonyms: []string{
			"elektricar", "električar", "struja", "osigurac", "osigurač", "automatski osigurac",
			"uticnica", "utičnica", "prekidac", "prekidač", "rasveta", "svetlo", "kvar",
		},
	},
	{
		ID:          "2",
		Key:         "vodoinstalater",
		Name:        "Vodoinstalateri",
		Description: "Hitne intervencije, montaža sanitarija i odgušenja.",
		Icon:        "plumber",
		Synonyms: []string{
			"vodoinstalater", "vodoinstalateri", "cev", "cevi", "pukla cev", "curenje", "curi",
			"slavina", "wc", "bojler", "odgusenje", "odgušenje", "kanalizacija", "sifon",
		},
	},
	{
		ID:          "3",
		Key:         "moler",
		Name:        "Moleri i Gipsari",
		Description: "Krečenje, gletovanje i dekorativne tehnike.",
		Icon:        "painter",
		Synonyms: []string{
			"moler", "moleri", "krecenje", "krečenje", "gletovanje", "gips", "gipsar", "farbanje",
		},
	},
	{
		ID:          "4",
		Key:         "keramicari",
		Name:        "Keramičari",
		Description: "Postavljanje pločica, fugovanje, kupatila i kuhinje.",
		Icon:        "tiler",
		Synonyms: []string{
			"keramicar", "keramičar", "pločice", "plocice", "fugovanje", "kupatilo", "kuhinja",
		},
	},
	{
		ID:          "5",
		Key:         "krovopokrivaci",
		Name:        "Krovopokrivači",
		Description: "Crep, lim, oluci, sanacije i popravke.",
		Icon:        "roofer",
		Synonyms: []string{
			"krov", "crep", "crepovi", "lim", "oluk", "oluci", "gradja", "tegola",
		},
	},
	{
		ID:          "6",
		Key:         "pvc",
		Name:        "PVC stolarija",
		Description: "Ugradnja, servis, dihtovanje, okovi, roletne.",
		Icon:        "pvc",
		Synonyms: []string{
			"pvc", "stolarija", "prozori", "prozor", "vrata", "roletne", "komarnici", "dihtovanje", "okovi",
		},
	},
	{
		ID:          "7",
		Key:         "bravar",
		Name:        "Bravari",
		Description: "Otključavanje, brave, cilindri.",
		Icon:        "locksmith",
		Synonyms: []string{
			"bravar", "brava", "brave", "cilindar", "cilindri", "otkljucavanje", "otključavanje", "kljuc", "ključ",
		},
	},
	{
		ID:          "8",
		Key:         "klima servis",
		Name:        "Servis Klima",
		Description: "Montaža, servis i dopuna freona.",
		Icon:        "aircondition",
		Synonyms: []string{
			"klima", "klime", "servis klime", "dopuna freona", "freon", "montaza klime", "montaža klime",
			"ciscenje klime", "čišćenje klime",
		},
	},
	{
		ID:          "9",
		Key:         "grejanje",
		Name:        "Grejanje",
		Description: "Radijatori, kotlovi, servisi, intervencije.",
		Icon:        "heating",
		Synonyms: []string{
			"grejanje", "radijator", "radijatori", "kotao", "kotlovi", "peć", "pec", "toplana", "bojler",
		},
	},
	{
		ID:          "10",
		Key:         "kamera",
		Name:        "Video nadzor",
		Description: "Kamere, alarmi, instalacija i podešavanje.",
		Icon:        "camera",
		Synonyms: []string{
			"kamera", "kamere", "video nadzor", "nadzor", "dvr", "nvr", "alarm", "alarmsistem",
		},
	},
	{
		ID:          "11",
		Key:         "racunar servis",
		Name:        "IT Servis",
		Description: "Popravka računara, instalacija sistema i mreža.",
		Icon:        "computer",
		Synonyms: []string{
			"racunar", "računar", "kompjuter", "laptop", "windows", "instalacija", "mreza", "mreža", "servis racunara",
		},
	},
	{
		ID:          "12",
		Key:         "servis bele tehnike",
		Name:        "Servis bele tehnike",
		Description: "Popravke veš mašina, sudomašina, frižidera, šporeta i bojlera.",
		Icon:        "appliances",
		Synonyms: []string{
			"bela tehnika", "servis bele tehnike", "ves masina", "veš masina", "vesmasina",
			"sudomasina", "sudomašina", "frizider", "frižider", "zamrzivac", "zamrzivač",
			"sporet", "šporet", "rerna", "ringla", "bojler",
		},
	},
}

// CategoryByKey looks up a catalog entry by its canonical key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range catalog {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
