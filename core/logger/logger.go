package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.Mutex
	sugar *zap.SugaredLogger
)

// Init builds the process-wide logger. Debug mode switches to the console
// encoder with colored levels; production logs JSON.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if sugar == nil {
		l, _ := zap.NewProduction(zap.AddCallerSkip(1))
		sugar = l.Sugar()
	}
	return sugar
}

func Info(msg string, keysAndValues ...any) {
	get().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	get().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	get().Errorw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	get().Fatalw(msg, normalize(keysAndValues)...)
}

// normalize tolerates a trailing bare error passed without a key, e.g.
// logger.Error("DoctorRepository:Create", err).
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	head, tail := args[:len(args)-1], args[len(args)-1]
	out := make([]any, 0, len(args)+1)
	out = append(out, head...)
	if err, ok := tail.(error); ok {
		return append(out, "error", err)
	}
	return append(out, "detail", tail)
}
