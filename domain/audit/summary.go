package audit

// Metric labels emitted on the summary sheet, in the fixed output order.
const (
	MetricTotal      = "Total de Linhas"
	MetricUnique     = "Contratos Únicos"
	MetricDuplicated = "Contratos Duplicados"
)

// Summary holds the aggregate counters over one filtered partition.
// Invariant: Total == Unique + Duplicated.
type Summary struct {
	Total      int
	Unique     int
	Duplicated int
}

// SummaryEntry is one (metric, value) pair of the summary sheet.
type SummaryEntry struct {
	Metric string
	Value  int
}

// Entries returns the summary rows in their fixed order.
func (s Summary) Entries() []SummaryEntry {
	return []SummaryEntry{
		{Metric: MetricTotal, Value: s.Total},
		{Metric: MetricUnique, Value: s.Unique},
		{Metric: MetricDuplicated, Value: s.Duplicated},
	}
}
