package commands

import (
	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/printer"
)

// printListing writes a numbered, date ordered listing of records.
func printListing(p *printer.Printer, records []*challenge.Challenge) {
	records = challenge.SortedByDate(records)
	if len(records) == 0 {
		p.Printf("No challenges found.")
		return
	}

	p.Printf("total challenges: %d", len(records))
	for i, ch := range records {
		p.Printf("%s", challenge.FormatLine(ch, i+1))
	}
}

// printByStatus writes one listing per status.
func printByStatus(p *printer.Printer, records []*challenge.Challenge) {
	for _, status := range challenge.Statuses() {
		var filtered []*challenge.Challenge
		for _, ch := range records {
			if ch.Status() == status {
				filtered = append(filtered, ch)
			}
		}
		p.Header(status.String() + " challenges")
		printListing(p, filtered)
	}
}
