package domain

// Material is one inventory line item. Barcode is unique across the table.
type Material struct {
	ID       int64
	Name     string
	Barcode  string
	Quantity int64 // no lower bound, negative stock is accepted
	Unit     string
}

// MaterialInput carries the editable fields of a material for add and
// update. The id is never part of the input.
type MaterialInput struct {
	Name     string
	Barcode  string
	Quantity int64
	Unit     string
}
