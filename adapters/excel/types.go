package excel

// RawRowData represents a row of raw sheet data as string key-value pairs
type RawRowData map[string]string

// SheetData represents one parsed worksheet
type SheetData struct {
	Headers []string     // Column headers, in source order
	Rows    []RawRowData // Data rows
}

// Sheet describes one worksheet to serialize into an output workbook
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}
