package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Middleware) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogEntry define a estrutura de um log para garantir o formato JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// levels ordena os níveis aceitos em LOG_LEVEL.
var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// SimpleLogger é a implementação concreta da interface Logger: uma linha JSON por entrada.
type SimpleLogger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel int
	exit     func(code int)
}

// NewLogger cria um Logger que escreve em stderr.
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter cria um Logger que escreve no writer informado (usado nos testes).
// Níveis desconhecidos caem para "info".
func NewLoggerWithWriter(level string, out io.Writer) *SimpleLogger {
	minLevel, ok := levels[strings.ToLower(level)]
	if !ok {
		minLevel = levels["info"]
	}
	return &SimpleLogger{out: out, minLevel: minLevel, exit: os.Exit}
}

// Nop devolve um Logger que descarta todas as entradas.
func Nop() Logger {
	return NewLoggerWithWriter("fatal", io.Discard)
}

// logf formata a entrada como JSON e a escreve na saída configurada.
func (l *SimpleLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     strings.ToUpper(level),
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// Campo não serializável: registra a mensagem sem os campos.
		entry.Fields = nil
		entry.Error = marshalErr.Error()
		jsonBytes, _ = json.Marshal(entry)
	}

	l.mu.Lock()
	l.out.Write(append(jsonBytes, '\n'))
	l.mu.Unlock()

	if level == "fatal" {
		l.exit(1)
	}
}

// shouldLog compara o nível da entrada com o nível mínimo configurado.
func (l *SimpleLogger) shouldLog(level string) bool {
	target, ok := levels[level]
	if !ok {
		return false
	}
	return target >= l.minLevel
}

// Implementações da Interface Logger

func (l *SimpleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("debug", msg, fields, nil)
}

func (l *SimpleLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("info", msg, fields, nil)
}

func (l *SimpleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("warn", msg, fields, nil)
}

func (l *SimpleLogger) Error(msg string, err error) {
	l.logf("error", msg, nil, err)
}

func (l *SimpleLogger) Fatal(msg string, err error) {
	l.logf("fatal", msg, nil, err)
}
