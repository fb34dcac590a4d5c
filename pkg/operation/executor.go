// Copyright 2025 walteh LLC
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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/magetools/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/singleflight"
)

// 📢 Reporter shows one-line status messages to the user
type Reporter interface {
	StatusMessage(ctx context.Context, msg string)
}

// ✅ Result is the outcome of one submitted copy
type Result struct {
	Source      string
	Destination string
	Err         error
}

// 🏃 Executor runs copies in the background and reports their outcome
type Executor struct {
	copier   *Copier
	reporter Reporter
	group    singleflight.Group
}

// 🏗️ NewExecutor creates a new executor
func NewExecutor(copier *Copier, reporter Reporter) *Executor {
	return &Executor{
		copier:   copier,
		reporter: reporter,
	}
}

// ⚡ Submit starts copying source to destination on its own goroutine and
// returns a channel that receives exactly one Result before being closed.
// Identical submissions still in flight share a single copy.
func (e *Executor) Submit(ctx context.Context, source, destination string) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		defer close(results)

		key := source + "\x00" + destination
		v, _, _ := e.group.Do(key, func() (interface{}, error) {
			return e.run(ctx, source, destination), nil
		})

		results <- v.(Result)
	}()

	return results
}

// 🔄 run performs one copy, reporting before and after
func (e *Executor) run(ctx context.Context, source, destination string) (res Result) {
	logger := zerolog.Ctx(ctx)
	res = Result{Source: source, Destination: destination}

	defer func() {
		if r := recover(); r != nil {
			res.Err = errors.Errorf("copy panicked: %v", r)
			e.report(ctx, status.CopyFailed(source, destination, res.Err))
		}
	}()

	e.report(ctx, status.Copying(source, destination))

	if err := e.copier.Copy(ctx, source, destination); err != nil {
		logger.Error().Err(err).Str("source", source).Str("destination", destination).Msg("copy failed")
		res.Err = err
		e.report(ctx, status.CopyFailed(source, destination, err))
		return res
	}

	logger.Debug().Str("source", source).Str("destination", destination).Msg("copy finished")
	e.report(ctx, status.Copied(source, destination))
	return res
}

func (e *Executor) report(ctx context.Context, msg string) {
	if e.reporter != nil {
		e.reporter.StatusMessage(ctx, msg)
	}
}
