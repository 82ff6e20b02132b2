package handlers

import "expvar"

// Published under /debug/vars as "auth".
var authMetrics = expvar.NewMap("auth")

const (
	metricRegisterOK       = "register_ok"
	metricRegisterConflict = "register_conflict"
	metricLoginOK          = "login_ok"
	metricLoginFailed      = "login_failed"
	metricErrorsInternal   = "errors_internal"
)

func incr(key string) { authMetrics.Add(key, 1) }
