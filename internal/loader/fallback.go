package loader

import "github.com/mbarros/linhatempo/internal/event"

// fallbackRows is the embedded sample dataset served when the remote
// sheet cannot be read. Reduced content beats an error screen.
var fallbackRows = []event.Event{
	{
		Period:      "A partir de 1760",
		Title:       "Primeira Revolução Industrial",
		Description: "Transição da manufatura para a maquinofatura, uso do carvão e máquina a vapor.",
		Theme:       "Geografia Econômica",
	},
	{
		Period:      "1884-1885",
		Title:       "Conferência de Berlim",
		Description: "Formalização da 'Partilha da África' pelas potências europeias.",
		Theme:       "Geopolítica",
	},
	{
		Period:      "1939-1945",
		Title:       "Segunda Guerra Mundial",
		Description: "Consolidou EUA e URSS como superpotências; início da ordem bipolar.",
		Theme:       "Geopolítica",
	},
}

// Fallback returns a fresh, derived copy of the embedded dataset.
// Callers get their own slice; the embedded rows are never aliased.
func Fallback() []event.Event {
	return event.DeriveAll(fallbackRows)
}
