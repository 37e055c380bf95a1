package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	zaplogger *zap.Logger
	sugar     *zap.SugaredLogger
	curLevel  string
	curMode   string
)

// SkipUntilTrueCaller is the skip level which prints out the actual caller
// instead of the wrappers in this package.
const SkipUntilTrueCaller = 1

func init() {
	err := InitConsoleLog(ModeFull, "INFO")
	if err != nil {
		panic(err)
	}
}

const (
	ModeSimple = "SIMPLE"
	ModeFull   = "FULL"
)

var levelMap = map[string]zapcore.Level{
	"DEBUG": zapcore.DebugLevel,
	"INFO":  zapcore.InfoLevel,
	"WARN":  zapcore.WarnLevel,
	"ERROR": zapcore.ErrorLevel,
	"FATAL": zapcore.FatalLevel,
}

var modeMap = map[string]LogModeEncoder{
	ModeSimple: getSimpleEncoder,
	ModeFull:   getFullEncoder,
}

type SinkType int

const (
	SinkConsole SinkType = iota // default
	SinkFile
	SinkMulti
)

var sinkMap = map[string]SinkType{
	"":        SinkConsole,
	"CONSOLE": SinkConsole,
	"FILE":    SinkFile,
	"MULTI":   SinkMulti,
}

func GetSinkType(sink string) (SinkType, error) {
	sinkType, ok := sinkMap[strings.ToUpper(sink)]
	if !ok {
		return SinkConsole, fmt.Errorf("illegal sink: %s", sink)
	}
	return sinkType, nil
}

func updateLogger(logger *zap.Logger, mode, level string) {
	zaplogger = logger
	sugar = logger.Sugar()
	curMode = strings.ToUpper(mode)
	curLevel = strings.ToUpper(level)
}

// InitConsoleLog set the console log level and mode for debugging.
func InitConsoleLog(mode, level string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(
		modeEncoder(),
		createConsoleWriter(),
		zapLevel,
	)
	updateLogger(newZapLogger(core), mode, level)
	return nil
}

// InitFileLog set the file log level and filename for debugging.
func InitFileLog(mode, level, filename string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(
		modeEncoder(),
		createFileWriter(filename),
		zapLevel,
	)
	updateLogger(newZapLogger(core), mode, level)
	return nil
}

// InitMultiLog set the log mode, level, filename for debugging.
// The logger will print both to console and files.
func InitMultiLog(mode, level, filename string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(
		modeEncoder(),
		zapcore.NewMultiWriteSyncer(
			createConsoleWriter(),
			createFileWriter(filename),
		),
		zapLevel,
	)
	updateLogger(newZapLogger(core), mode, level)
	return nil
}

func newZapLogger(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(SkipUntilTrueCaller))
}

func getEncoderAndLevel(mode, level string) (LogModeEncoder, zapcore.Level, error) {
	modeEncoder, ok := modeMap[strings.ToUpper(mode)]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log mode: %s", mode)
	}
	zapLevel, ok := levelMap[strings.ToUpper(level)]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log level: %s", level)
	}
	return modeEncoder, zapLevel, nil
}

// createConsoleWriter writes to stderr, leaving stdout to command output.
func createConsoleWriter() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func createFileWriter(filename string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxAge:     30, // days
		MaxBackups: 7,
		LocalTime:  true,
	})
}

type LogModeEncoder func() zapcore.Encoder

func getSimpleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.CallerKey = ""
	encoderConfig.FunctionKey = ""
	encoderConfig.EncodeTime = nil
	encoderConfig.EncodeLevel = nil
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getFullEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.FunctionKey = "func"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}
