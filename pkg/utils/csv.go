package utils

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
)

// utf8BOM prefixes CSV downloads so Excel detects the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RespondCSV streams a CSV attachment with the given header row and rows.
func RespondCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := w.Write(utf8BOM); err != nil {
		log.Printf("failed to write csv bom: %v", err)
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		log.Printf("failed to write csv header: %v", err)
		return
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			log.Printf("failed to write csv row: %v", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("failed to flush csv: %v", err)
	}
}
