package vocab

// Entry is one immutable vocabulary record. The JSON keys mirror the
// CSV export columns.
type Entry struct {
	Word      string `json:"word"`
	POS       string `json:"pos"`
	Meaning   string `json:"kr"`
	Example   string `json:"ex"`
	ExampleKR string `json:"ex_kr"`
}
