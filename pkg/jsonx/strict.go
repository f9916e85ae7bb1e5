// Package jsonx - строгий разбор JSON-объектов для всех входов сервиса (HTTP, Kafka, файлы).
package jsonx

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData - после объекта во входе есть ещё данные.
var ErrTrailingData = errors.New("trailing data after object")

// DecodeStrict - разбирает ровно один JSON-объект из r в v.
// Неизвестные поля и любые данные после объекта - ошибка.
// Ошибки чтения r (например *http.MaxBytesError) возвращаются как есть.
func DecodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	err := dec.Decode(new(struct{}))
	if errors.Is(err, io.EOF) {
		return nil
	}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if err == nil || errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrTrailingData
	}
	return err
}
