package rmux_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmux"
	"github.com/rohanthewiz/rmux/consts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedDispatcher() (*rmux.Dispatcher, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	d := rmux.NewDispatcher()
	d.Use(rmux.RequestInfo(zap.New(core)))
	return d, logs
}

func TestRequestInfoSuccess(t *testing.T) {
	d, logs := observedDispatcher()

	d.Get("/ok", func(ctx rmux.Context) (any, error) { return "ok", nil })
	get(d, "/ok")

	assert.Equal(t, logs.Len(), 1)
	entry := logs.All()[0]
	assert.Equal(t, entry.Level, zapcore.InfoLevel)
	assert.Equal(t, entry.Message, "request completed")

	fields := map[string]zapcore.Field{}
	for _, field := range entry.Context {
		fields[field.Key] = field
	}
	assert.Equal(t, fields["method"].String, "GET")
	assert.Equal(t, fields["path"].String, "/ok")
	assert.Equal(t, fields["status"].Integer, int64(200))
	assert.True(t, fields["duration"].Key != "")
}

func TestRequestInfoClientError(t *testing.T) {
	d, logs := observedDispatcher()

	d.Get("/nope", func(ctx rmux.Context) (any, error) {
		ctx.Status(consts.StatusNotFound)
		return "gone", nil
	})
	get(d, "/nope")

	assert.Equal(t, logs.Len(), 1)
	assert.Equal(t, logs.All()[0].Level, zapcore.WarnLevel)
}

func TestRequestInfoServerError(t *testing.T) {
	d, logs := observedDispatcher()

	d.Get("/oops", func(ctx rmux.Context) (any, error) {
		ctx.Status(consts.StatusInternalServerError)
		return "bad", nil
	})
	get(d, "/oops")

	assert.Equal(t, logs.Len(), 1)
	assert.Equal(t, logs.All()[0].Level, zapcore.ErrorLevel)
}

func TestRequestInfoFailedRequest(t *testing.T) {
	d, logs := observedDispatcher()

	d.Get("/err", func(ctx rmux.Context) (any, error) {
		return nil, errors.New("broke")
	})

	response := get(d, "/err")
	assert.Equal(t, response.Status(), 500)

	assert.Equal(t, logs.Len(), 1)
	entry := logs.All()[0]
	assert.Equal(t, entry.Level, zapcore.ErrorLevel)
	assert.Equal(t, entry.Message, "request failed")
}

func TestRequestInfoNilLogger(t *testing.T) {
	d := rmux.NewDispatcher()
	d.Use(rmux.RequestInfo(nil))
	d.Get("/quiet", func(ctx rmux.Context) (any, error) { return "quiet", nil })

	response := get(d, "/quiet")
	assert.Equal(t, string(response.Body()), "quiet")
}
