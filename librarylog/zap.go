//go:build !solution

package librarylog

import (
	"strings"

	"go.uber.org/zap"

	"gitlab.com/rogov-ks/library/library"
)

// Zap forwards library messages to a zap logger.
type Zap struct {
	logger *zap.Logger
}

func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger}
}

func (z *Zap) Log(tag library.Tag, msg string) {
	fields := []zap.Field{zap.String("event", tag.String())}
	// у таблицы со счетчиками лишние переводы строк по краям
	msg = strings.TrimSpace(msg)
	if tag == library.TagCancelled {
		z.logger.Warn(msg, fields...)
		return
	}
	z.logger.Info(msg, fields...)
}
