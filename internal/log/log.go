package log

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init builds the process logger and installs it as the zap global.
// mode "production" logs JSON; anything else uses the development console
// encoder. A non-empty file adds a rotated JSON sink.
func Init(mode, file string) (*zap.Logger, error) {
	var zc zap.Config
	if mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		console := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		if mode == "production" {
			console = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		}
		core := zapcore.NewTee(
			zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(rotated), zc.Level),
			zapcore.NewCore(console, zapcore.AddSync(os.Stdout), zc.Level),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
	} else {
		var err error
		logger, err = zc.Build(zap.AddCaller(), zap.AddCallerSkip(2))
		if err != nil {
			return nil, err
		}
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func write(level zapcore.Level, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	zf := make([]zap.Field, 0, 8)
	zf = append(zf, zap.String("kind", kind))
	if c != nil {
		zf = append(zf,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			zf = append(zf, zap.String("req_id", rid))
		}
	}
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	if len(fields) > 0 {
		zf = append(zf, zap.Any("fields", fields))
	}
	if ce := zap.L().Check(level, action); ce != nil {
		ce.Write(zf...)
	}
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(zapcore.InfoLevel, "info", c, action, nil, fields)
}
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(zapcore.InfoLevel, "audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(zapcore.WarnLevel, "security", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(zapcore.ErrorLevel, "error", c, action, err, fields)
}
