package audit

// Column names that form the audit file contract. The status and key columns
// must exist in the uploaded sheet; the flag column is appended to the output.
const (
	StatusColumn = "AUDITADO"
	KeyColumn    = "CONTRATO"
	FlagColumn   = "DUPLICADO"
)

// Status codes recognized in the AUDITADO column after normalization.
// Any other value excludes the row from both partitions.
const (
	StatusAudited    = "AUDI"
	StatusNotAudited = "NAUD"
)

// Output workbook vocabulary. Sheet names and header text are consumed by
// downstream tooling and must not change.
const (
	SheetProcessed = "Dados Processados"
	SheetSummary   = "Resumo"

	SummaryMetricHeader = "Métrica"
	SummaryValueHeader  = "Valor"
)

// DestinationColumns are filtered when present in the upload: rows whose
// normalized value matches an excluded destination code are dropped.
var DestinationColumns = []string{"DESTINO DE PAGAMENTO", "DESTINO DE COMPLEMENTO"}

// ExcludedDestinations holds destination codes in their normalized
// (uppercased, trimmed) form.
var ExcludedDestinations = map[string]bool{
	"0X0": true,
	"1X4": true,
	"6X4": true,
	"8X4": true,
}

// Mode selects which status partition the caller wants.
type Mode string

const (
	ModeAudited    Mode = "audited"
	ModeNotAudited Mode = "not-audited"
)

// ParseMode validates a caller-supplied mode token. The token set is closed;
// anything outside it is rejected before any file is read.
func ParseMode(token string) (Mode, bool) {
	switch Mode(token) {
	case ModeAudited, ModeNotAudited:
		return Mode(token), true
	default:
		return "", false
	}
}

// StatusCode returns the AUDITADO value this mode selects.
func (m Mode) StatusCode() string {
	if m == ModeNotAudited {
		return StatusNotAudited
	}
	return StatusAudited
}
