package dataset

// WorldAverages are the means over valid records. All fields stay 0 when no record is valid.
type WorldAverages struct {
	Population   float64
	Growth       float64
	Density      float64
	MedianAge    float64
	Urban        float64
	Fertility    float64
	ValidRecords int
}

// ComputeAverages averages the six radar metrics over records with population, median age and
// fertility rate all greater than zero.
func ComputeAverages(records []CountryRecord) WorldAverages {
	var avg WorldAverages
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		avg.Population += r.Population
		avg.Growth += r.YearlyChangePercent
		avg.Density += r.Density
		avg.MedianAge += r.MedianAge
		avg.Urban += r.UrbanPercent
		avg.Fertility += r.FertilityRate
		avg.ValidRecords++
	}
	if avg.ValidRecords == 0 {
		return WorldAverages{}
	}
	n := float64(avg.ValidRecords)
	avg.Population /= n
	avg.Growth /= n
	avg.Density /= n
	avg.MedianAge /= n
	avg.Urban /= n
	avg.Fertility /= n
	return avg
}

// Store is the read-only record set. It is safe for concurrent readers once built.
type Store struct {
	records  []CountryRecord
	byName   map[string]int
	averages WorldAverages
}

// NewStore indexes records by exact name and computes the world averages. When two rows share a
// name the first one wins, matching a first-match linear scan.
func NewStore(records []CountryRecord) *Store {
	s := &Store{
		records: make([]CountryRecord, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	copy(s.records, records)
	for i, r := range s.records {
		if _, ok := s.byName[r.Name]; !ok {
			s.byName[r.Name] = i
		}
	}
	s.averages = ComputeAverages(s.records)
	return s
}

// Lookup resolves a geometry feature name to its row. Names must match byte for byte.
func (s *Store) Lookup(name string) (CountryRecord, bool) {
	if s == nil {
		return CountryRecord{}, false
	}
	i, ok := s.byName[name]
	if !ok {
		return CountryRecord{}, false
	}
	return s.records[i], true
}

// Population returns the population for name, or 0 when the join misses.
func (s *Store) Population(name string) float64 {
	r, _ := s.Lookup(name)
	return r.Population
}

func (s *Store) Averages() WorldAverages { return s.averages }

func (s *Store) Len() int { return len(s.records) }

// Records returns a copy of the rows in table order.
func (s *Store) Records() []CountryRecord {
	out := make([]CountryRecord, len(s.records))
	copy(out, s.records)
	return out
}
