// Package sentry wraps sentry-go with a small builder so call sites can attach
// the echo request, tags and extras before reporting. Nothing is sent until
// Init runs with a DSN outside the "local" environment.
package sentry

import (
	"sync"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long Fatal and Flush wait for buffered events.
var FlushTime = 2 * time.Second

var (
	mu     sync.RWMutex
	appEnv string
	dsn    string
)

// Init configures the sentry client from the loaded settings.
func Init(env, sentryDSN string) error {
	configure(env, sentryDSN)
	return sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              sentryDSN,
		Environment:      env,
		AttachStacktrace: true,
	})
}

func Flush() {
	sentrygo.Flush(FlushTime)
}

func configure(env, sentryDSN string) {
	mu.Lock()
	defer mu.Unlock()
	appEnv, dsn = env, sentryDSN
}

func enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return appEnv != "local" && dsn != ""
}

type Sentry struct {
	context       echo.Context
	error         error
	level         sentrygo.Level
	extras        map[string]interface{}
	tags          map[string]string
	contextValues map[string]sentrygo.Context
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) WithContextValues(values map[string]sentrygo.Context) *Sentry {
	s.contextValues = values
	return s
}

func (s *Sentry) Error(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelError).send()
}

// Fatal reports err and flushes. It does not exit; the caller decides.
func (s *Sentry) Fatal(err error) {
	s.WithError(err).WithLevel(sentrygo.LevelFatal).send()
	Flush()
}

func (s *Sentry) send() {
	if !enabled() || s.error == nil {
		return
	}
	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureException(s.error)
	})
}

// getHub prefers the per-request hub installed by the echo middleware.
func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	if s.level != "" {
		scope.SetLevel(s.level)
	}
	if len(s.extras) > 0 {
		scope.SetExtras(s.extras)
	}
	if len(s.tags) > 0 {
		scope.SetTags(s.tags)
	}
	for key, value := range s.contextValues {
		scope.SetContext(key, value)
	}
	if s.context != nil && s.context.Request() != nil {
		scope.SetRequest(s.context.Request())
	}
}

func WithContext(c echo.Context) *Sentry { return new(Sentry).WithContext(c) }

func WithTags(tags map[string]string) *Sentry { return new(Sentry).WithTags(tags) }

func Error(err error) { new(Sentry).Error(err) }
func Fatal(err error) { new(Sentry).Fatal(err) }
