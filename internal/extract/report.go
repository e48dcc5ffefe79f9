// # internal/extract/report.go
//
// Pulls the stacktrace section out of an upstream _report.jsonl file so it
// can be fed to the comparator as plain text.
package extract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"tracesim/internal/errors"
	"tracesim/internal/parser"
)

// containersDelimiter precedes the stacktrace section inside the report's
// "obj" field.
const containersDelimiter = "**Excluded Containers:**"

type reportRecord struct {
	Obj json.RawMessage `json:"obj"`
}

// FromReportFile reads a JSONL report, parses its last record and returns
// the normalized stacktrace text found after the excluded-containers
// delimiter.
func FromReportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInputUnavailable, "cannot read report file")
	}
	text, err := FromReport(data)
	if err != nil {
		return "", errors.AddContext(err, errors.CtxPath, path)
	}
	return text, nil
}

// FromReport extracts the stacktrace from raw JSONL report content.
func FromReport(data []byte) (string, error) {
	line := lastNonEmptyLine(string(data))
	if line == "" {
		return "", errors.New(errors.CodeValidationError, "report file has no records")
	}

	var rec reportRecord
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return "", errors.Wrap(err, errors.CodeValidationError, "report record is not valid JSON")
	}

	var obj string
	if err := json.Unmarshal(rec.Obj, &obj); err != nil {
		return "", errors.New(errors.CodeValidationError, "report 'obj' field is not a string")
	}

	idx := strings.Index(obj, containersDelimiter)
	if idx == -1 {
		return "", errors.New(errors.CodeValidationError, "excluded-containers delimiter not found in report")
	}

	section := strings.TrimSpace(obj[idx+len(containersDelimiter):])
	return parser.StripTimestamps(section), nil
}

// OutputPath derives the sibling stacktrace filename for a report path:
// x_report.jsonl becomes x_stacktrace.txt.
func OutputPath(reportPath string) string {
	dir := filepath.Dir(reportPath)
	name := filepath.Base(reportPath)
	if strings.HasSuffix(name, "_report.jsonl") {
		name = strings.TrimSuffix(name, "_report.jsonl") + "_stacktrace.txt"
	} else {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "_stacktrace.txt"
	}
	return filepath.Join(dir, name)
}

func lastNonEmptyLine(text string) string {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
