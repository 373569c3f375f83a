// Package cli is the terminal front end of the inventory manager. It stands
// in for the desktop window: it collects input with line prompts, calls the
// services and reports each outcome as a "Title: message" notification.
//
// Not logged in:
//
//	register, login, help, exit | quit
//
// Logged in:
//
//	list | l           show all materials
//	find <barcode>     look a material up by barcode
//	add                add a material (prompts for each field)
//	update <id>        rewrite a material, Enter keeps the current value
//	delete <id>        remove a material
//	report             print the inventory report
//	export             write the report to .xlsx or .csv
//	logout, help, exit | quit
package cli
