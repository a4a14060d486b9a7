package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config del logger del servicio.
type Config struct {
	Service string    // estampado como campo "service" en cada línea
	Env     string    // development usa consola legible; cualquier otro, JSON
	Level   string    // debug, info, warn, error (default info)
	Writer  io.Writer // destino alternativo (tests); default os.Stdout
}

// Logger envuelve zerolog para que el resto del código no dependa
// de la librería directamente.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger del servicio. En development escribe consola con hora
// corta (los logs del taller se miran en una terminal local); en producción
// escribe JSON para que el hosting los indexe.
func New(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stdout
	if cfg.Writer != nil {
		w = cfg.Writer
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()

	// Las librerías que loguean por el global de zerolog salen por acá también
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop devuelve un logger que descarta todo. Para tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithComponent devuelve un sublogger con el campo "component" fijo
// (por ejemplo "audit" o "http").
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Zerolog expone el logger interno para los casos que necesitan la API cruda.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
