// Copyright 2026 rdfcanon contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package canon

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// Logger adapts a logr.Logger to this package's needs: verbosity-keyed
// convenience methods for canonicalization-run logging (iteration
// counts, fixed-point convergence, distinguish group sizes and step
// counts, never raw hash bytes).
type Logger struct {
	logr.Logger
}

// NewLogger builds a Logger backed by zap, in production or development
// mode.
func NewLogger(production bool) (*Logger, error) {
	var zc zap.Config
	if production {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.DisableCaller = true
	zc.DisableStacktrace = true

	z, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: zapr.NewLogger(z).WithName("canon")}, nil
}

// NewDiscardLogger returns a Logger that drops everything, for callers
// that don't want canonicalization logging (and the default used by
// Canonicalize when no Logger is supplied).
func NewDiscardLogger() *Logger {
	return &Logger{Logger: logr.Discard()}
}

// Info logs at the default verbosity.
func (l *Logger) Info(msg string, kv ...interface{}) {
	l.Logger.V(0).Info(msg, kv...)
}

// Debug logs detail useful while developing against this package:
// iteration counts, partition sizes.
func (l *Logger) Debug(msg string, kv ...interface{}) {
	l.Logger.V(1).Info(msg, kv...)
}

// Trace logs the most granular detail: per-quad accumulation steps.
// Expensive enough that callers should gate it behind an explicit
// verbosity configuration in their own logr sink.
func (l *Logger) Trace(msg string, kv ...interface{}) {
	l.Logger.V(2).Info(msg, kv...)
}
