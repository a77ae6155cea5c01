package classify

// Keyword tables seeded from the backend's reference data. Package-level
// read-only configuration; order encodes priority, so more specific keywords
// go before generic ones. Accented and plain spellings are both listed because
// bank descriptions are inconsistent about diacritics.

// CategoryKeywords maps description keywords to expense/income category ids.
var CategoryKeywords = []Entry{
	{Keyword: "mercadona", ID: 1},
	{Keyword: "carrefour", ID: 1},
	{Keyword: "supermercado", ID: 1},
	{Keyword: "amazon", ID: 2},
	{Keyword: "nómina", ID: 3},
	{Keyword: "nomina", ID: 3},
	{Keyword: "transferencia", ID: 4},
	{Keyword: "restaurante", ID: 5},
	{Keyword: "gasolinera", ID: 6},
	{Keyword: "farmacia", ID: 7},
}

// SourceKeywords maps description keywords to income source ids.
var SourceKeywords = []Entry{
	{Keyword: "empresa", ID: 1},
	{Keyword: "nómina", ID: 1},
	{Keyword: "nomina", ID: 1},
	{Keyword: "ingreso", ID: 2},
	{Keyword: "bizum", ID: 3},
}

// PlaceKeywords maps description keywords to place ids.
var PlaceKeywords = []Entry{
	{Keyword: "mercadona", ID: 1},
	{Keyword: "carrefour", ID: 2},
	{Keyword: "amazon", ID: 3},
}
