package logger

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field is a structured logging attribute.
type Field interface {
	AddTo(event *zerolog.Event)
	GetKeyValue() (string, interface{})
}

type field struct {
	key   string
	value interface{}
	add   func(*zerolog.Event)
}

func (f field) AddTo(event *zerolog.Event) { f.add(event) }

func (f field) GetKeyValue() (string, interface{}) { return f.key, f.value }

func String(key, value string) Field {
	return field{key, value, func(e *zerolog.Event) { e.Str(key, value) }}
}

func Strings(key string, value []string) Field {
	return String(key, strings.Join(value, ", "))
}

func Int(key string, value int) Field {
	return field{key, value, func(e *zerolog.Event) { e.Int(key, value) }}
}

func Int64(key string, value int64) Field {
	return field{key, value, func(e *zerolog.Event) { e.Int64(key, value) }}
}

func Uint64(key string, value uint64) Field {
	return field{key, value, func(e *zerolog.Event) { e.Uint64(key, value) }}
}

func Float64(key string, value float64) Field {
	return field{key, value, func(e *zerolog.Event) { e.Float64(key, value) }}
}

func Bool(key string, value bool) Field {
	return field{key, value, func(e *zerolog.Event) { e.Bool(key, value) }}
}

// Duration logs d in milliseconds.
func Duration(key string, d time.Duration) Field {
	return Int64(key, d.Milliseconds())
}

func Error(err error) Field {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return field{"error", msg, func(e *zerolog.Event) { e.Err(err) }}
}

func Any(key string, value interface{}) Field {
	return field{key, value, func(e *zerolog.Event) { e.Interface(key, value) }}
}
