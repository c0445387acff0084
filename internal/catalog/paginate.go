package catalog

// DefaultBatchSize is how many records a result page carries.
const DefaultBatchSize = 6

// Paginator walks an already-filtered list in fixed-size batches. Re-filtering
// is expressed by Reset, which starts over from the first batch.
type Paginator struct {
	list   []Property
	batch  int
	offset int
}

func NewPaginator(list []Property, batch int) *Paginator {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &Paginator{list: list, batch: batch}
}

// Next returns the next batch, advancing the cursor. Returns an empty slice
// once the list is exhausted.
func (p *Paginator) Next() []Property {
	if p.offset >= len(p.list) {
		return nil
	}
	end := p.offset + p.batch
	if end > len(p.list) {
		end = len(p.list)
	}
	page := p.list[p.offset:end]
	p.offset = end
	return page
}

// HasMore is true iff the next batch's start index is still within the list.
func (p *Paginator) HasMore() bool {
	return p.offset < len(p.list)
}

// Reset replaces the underlying list and rewinds to the first batch.
func (p *Paginator) Reset(list []Property) {
	p.list = list
	p.offset = 0
}
