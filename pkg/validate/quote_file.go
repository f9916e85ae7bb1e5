package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat - формат по расширению для FormatAuto; по умолчанию JSON.
func DetectFormat(path string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// QuoteFile - проверяет файл (JSON - один запрос, JSONL - по запросу на строку).
func QuoteFile(ctx context.Context, filePath string, format InputFormat, ow io.Writer) (JSONLResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return JSONLResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return QuoteReader(ctx, file, DetectFormat(filePath, format), ow)
}

// QuoteReader - то же для произвольного reader'а (stdin). FormatAuto трактуется как JSONL.
func QuoteReader(ctx context.Context, ir io.Reader, format InputFormat, ow io.Writer) (JSONLResult, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return JSONLResult{}, fmt.Errorf("read input: %w", err)
		}
		quote, err := QuoteFromJSON(raw)
		if err != nil {
			return JSONLResult{InvalidLinesCount: 1, Errors: []LineError{{Line: 1, Err: err}}}, nil
		}
		if err := json.NewEncoder(ow).Encode(quote); err != nil {
			return JSONLResult{}, fmt.Errorf("write json: %w", err)
		}
		return JSONLResult{ValidLinesCount: 1}, nil

	case FormatJSONL, FormatAuto:
		return QuoteJSONLStream(ctx, ir, ow)

	default:
		return JSONLResult{}, fmt.Errorf("unsupported format: %s", format)
	}
}
