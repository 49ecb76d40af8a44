// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// NewServerLogger adapts a zap Logger onto a golang Logger in a way that is appropriate
// for http.Server.ErrorLog.  Everything written to the returned logger is logged at error level.
func NewServerLogger(logger *zap.Logger) *stdlog.Logger {
	if logger == nil {
		logger = sallust.Default()
	}

	l, err := zap.NewStdLogAt(logger, zap.ErrorLevel)
	if err != nil {
		// only possible with an invalid level, which ErrorLevel is not
		return zap.NewStdLog(logger)
	}

	return l
}

// NewServerConnStateLogger adapts a zap Logger onto a connection state handler appropriate
// for http.Server.ConnState.  State changes are logged at debug level.
func NewServerConnStateLogger(logger *zap.Logger) func(net.Conn, http.ConnState) {
	if logger == nil {
		logger = sallust.Default()
	}

	return func(c net.Conn, cs http.ConnState) {
		logger.Debug(
			"connection state change",
			zap.Stringer("remoteAddress", c.RemoteAddr()),
			zap.Stringer("state", cs),
		)
	}
}

// StartOptions represents the subset of server options that have to do with how
// an HTTP server is started.
type StartOptions struct {
	// Logger is the zap Logger to use for server startup and error logging.  If not
	// supplied, sallust.Default() is used instead.
	Logger *zap.Logger `json:"-"`

	// Listener is the optional net.Listener to use.  If not supplied, the http.Server default
	// listener is used.
	Listener net.Listener `json:"-"`

	// DisableKeepAlives indicates whether the server should honor keep alives
	DisableKeepAlives bool `json:"disableKeepAlives,omitempty"`

	// CertificateFile is the HTTPS certificate file.  If both this field and KeyFile are set,
	// an HTTPS starter function is created.
	CertificateFile string `json:"certificateFile,omitempty"`

	// KeyFile is the HTTPS key file.  If both this field and CertificateFile are set,
	// an HTTPS starter function is created.
	KeyFile string `json:"keyFile,omitempty"`
}

// NewStarter returns a starter closure for the given HTTP server.  The start options are first
// applied to the server instance, and the server instance must not have already been started prior
// to invoking this method.
//
// The returned closure will invoke the correct method on the server to start it, e.g. Serve, ServeTLS, etc.
// A server that was shut down returns http.ErrServerClosed, which is logged at info level.
func NewStarter(o StartOptions, s httpServer) func() error {
	if o.Logger == nil {
		o.Logger = sallust.Default()
	}

	s.SetKeepAlivesEnabled(!o.DisableKeepAlives)

	var starter func() error
	switch tls := len(o.CertificateFile) > 0 && len(o.KeyFile) > 0; {
	case tls && o.Listener != nil:
		starter = func() error {
			return s.ServeTLS(o.Listener, o.CertificateFile, o.KeyFile)
		}

	case tls:
		starter = func() error {
			return s.ListenAndServeTLS(o.CertificateFile, o.KeyFile)
		}

	case o.Listener != nil:
		starter = func() error {
			return s.Serve(o.Listener)
		}

	default:
		starter = s.ListenAndServe
	}

	return func() error {
		o.Logger.Info("starting server")
		err := starter()
		if errors.Is(err, http.ErrServerClosed) {
			o.Logger.Info("server closed")
		} else {
			o.Logger.Error("server exited", zap.Error(err))
		}

		return err
	}
}

// httpServer exposes the set of methods expected of an http.Server by this package.
type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(string, string) error

	Serve(net.Listener) error
	ServeTLS(net.Listener, string, string) error

	SetKeepAlivesEnabled(bool)
}

// ServerOptions describes the superset of options for both construction an http.Server and
// starting it.  The mapstructure names match the keys under each server's configuration section.
type ServerOptions struct {
	// Logger is the zap Logger to use for server startup and error logging.  If not
	// supplied, sallust.Default() is used instead.
	Logger *zap.Logger `json:"-" mapstructure:"-"`

	// Address is the bind address of the server.  If not supplied, defaults to the internal net/http default.
	Address string `json:"address,omitempty"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `json:"readTimeout,omitempty"`

	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout,omitempty"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `json:"writeTimeout,omitempty"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration `json:"idleTimeout,omitempty"`

	// MaxConnections caps the connections the server holds open at once.  Nonpositive means unlimited.
	MaxConnections int `json:"maxConnections,omitempty"`

	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header's
	// keys and values.
	MaxHeaderBytes int `json:"maxHeaderBytes,omitempty"`

	// Listener is the optional net.Listener to use.  If not supplied, the http.Server default
	// listener is used.
	Listener net.Listener `json:"-" mapstructure:"-"`

	// DisableKeepAlives indicates whether the server should honor keep alives
	DisableKeepAlives bool `json:"disableKeepAlives,omitempty"`

	// CertificateFile is the HTTPS certificate file.
	CertificateFile string `json:"certificateFile,omitempty"`

	// KeyFile is the HTTPS key file.
	KeyFile string `json:"keyFile,omitempty"`
}

// StartOptions produces a StartOptions with the corresponding values from this ServerOptions
func (so *ServerOptions) StartOptions() StartOptions {
	logger := so.Logger
	if logger == nil {
		logger = sallust.Default()
	}

	return StartOptions{
		Logger:            logger.With(zap.String("address", so.Address)),
		Listener:          so.Listener,
		DisableKeepAlives: so.DisableKeepAlives,
		CertificateFile:   so.CertificateFile,
		KeyFile:           so.KeyFile,
	}
}

// NewServer creates a Server from a supplied set of options.  The handler is installed as-is.
func NewServer(o ServerOptions, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              o.Address,
		Handler:           handler,
		ReadTimeout:       o.ReadTimeout,
		ReadHeaderTimeout: o.ReadHeaderTimeout,
		WriteTimeout:      o.WriteTimeout,
		IdleTimeout:       o.IdleTimeout,
		MaxHeaderBytes:    o.MaxHeaderBytes,
		ErrorLog:          NewServerLogger(o.Logger),
		ConnState:         NewServerConnStateLogger(o.Logger),
	}
}
