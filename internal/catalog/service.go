package catalog

// Service owns the immutable record set and answers search queries over it.
// It replaces ambient module-scope catalog data with an injected dependency.
type Service struct {
	records []Property
}

func NewService(records []Property) *Service {
	own := make([]Property, len(records))
	copy(own, records)
	return &Service{records: own}
}

// All returns a copy of the full catalog in seed order.
func (s *Service) All() []Property {
	out := make([]Property, len(s.records))
	copy(out, s.records)
	return out
}

// Featured returns the records flagged for the landing page.
func (s *Service) Featured() []Property {
	var out []Property
	for _, p := range s.records {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// GetByID looks a record up by its identifier.
func (s *Service) GetByID(id string) (*Property, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			p := s.records[i]
			return &p, true
		}
	}
	return nil, false
}

// SearchResult is one batch of a filtered catalog walk.
type SearchResult struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
	Offset     int        `json:"offset"`
	HasMore    bool       `json:"hasMore"`
}

// Search filters the catalog and returns the batch starting at offset. A
// non-positive limit falls back to DefaultBatchSize.
func (s *Service) Search(c FilterCriteria, offset, limit int) SearchResult {
	filtered := Apply(s.records, c)
	if limit <= 0 {
		limit = DefaultBatchSize
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + limit
	if offset > len(filtered) {
		offset = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return SearchResult{
		Properties: filtered[offset:end],
		Total:      len(filtered),
		Offset:     offset,
		HasMore:    end < len(filtered),
	}
}
