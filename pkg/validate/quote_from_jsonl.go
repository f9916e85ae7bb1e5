package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// LineError - причина отказа для конкретной строки.
type LineError struct {
	Line int
	Err  error
}

// JSONLResult - статистика проверки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	Errors            []LineError
}

// Summary - "N valid / M invalid".
func (r JSONLResult) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", r.ValidLinesCount, r.InvalidLinesCount)
}

// QuoteJSONLStream - читает JSONL, считает итоги по каждой строке и пишет валидные в ow.
// Пустые строки пропускаются; невалидные попадают в Errors, поток не прерывается.
func QuoteJSONLStream(ctx context.Context, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	enc := json.NewEncoder(ow)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		quote, err := QuoteFromJSON(line)
		if err != nil {
			res.InvalidLinesCount++
			res.Errors = append(res.Errors, LineError{Line: lineNo, Err: err})
			continue
		}

		// Encode добавляет перевод строки сам.
		if err := enc.Encode(quote); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
