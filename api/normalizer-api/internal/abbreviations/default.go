// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_abbreviations

// Entries are applied top to bottom; "km/h" has to stay ahead of "km".
var defaultEntries = []Entry{
	// titles
	{"Sra.", "Senhora"},
	{"Sr.", "Senhor"},
	{"Srta.", "Senhorita"},
	{"Dra.", "Doutora"},
	{"Dr.", "Doutor"},
	{"Profa.", "Professora"},
	{"Prof.", "Professor"},
	{"Exmo.", "Excelentíssimo"},
	{"Exma.", "Excelentíssima"},
	{"V.Exa.", "Vossa Excelência"},
	{"Eng.", "Engenheiro"},

	// addresses
	{"Av.", "Avenida"},
	{"Pç.", "Praça"},
	{"Rod.", "Rodovia"},
	{"apto.", "apartamento"},
	{"nº", "número"},
	{"n.º", "número"},

	// units
	{"km/h", "quilômetros por hora"},
	{"km", "quilômetros"},
	{"kg", "quilos"},
	{"cm", "centímetros"},
	{"mm", "milímetros"},
	{"ml", "mililitros"},
	{"min", "minutos"},
	{"seg", "segundos"},
	{"°C", "graus Celsius"},

	// shorthand
	{"p.ex.", "por exemplo"},
	{"etc.", "etcetera"},
	{"obs.", "observação"},
	{"pág.", "página"},
	{"tel.", "telefone"},
	{"vc", "você"},
	{"vcs", "vocês"},
	{"tb", "também"},
	{"pq", "porque"},
	{"q", "que"},
}

// Default returns a fresh copy of the built-in pt-BR table.
func Default() *Table {
	return NewTable(defaultEntries...)
}
