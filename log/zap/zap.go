package zap

import (
	"sort"

	"github.com/unkn0wn-root/bicodec/codeccache"
	"go.uber.org/zap"
)

var _ codeccache.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f codeccache.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f codeccache.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f codeccache.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f codeccache.Fields) { z.L.Error(msg, zf(f)...) }

// zf converts the field map in sorted key order so repeated events render
// their fields stably.
func zf(f codeccache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, len(keys))
	for i, k := range keys {
		out[i] = zap.Any(k, f[k])
	}
	return out
}
