// Package health reports whether the service's dependencies are reachable.
package health

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const checkTimeout = 800 * time.Millisecond

type Status struct {
	OK bool `json:"ok"`
}

type CheckResult struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type Report struct {
	Status    Status                 `json:"status"`
	UptimeSec int                    `json:"uptime_sec"`
	Checks    map[string]CheckResult `json:"checks"`
	Time      string                 `json:"time"`
}

type CheckFunc func(ctx context.Context) error

type Checker struct {
	start  time.Time
	names  []string
	checks map[string]CheckFunc
}

func NewChecker() *Checker {
	return &Checker{start: time.Now(), checks: map[string]CheckFunc{}}
}

func (h *Checker) Register(name string, fn CheckFunc) *Checker {
	if _, ok := h.checks[name]; !ok {
		h.names = append(h.names, name)
	}
	h.checks[name] = fn
	return h
}

// Run executes every check under a shared deadline.
func (h *Checker) Run(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	r := Report{Status: Status{OK: true}, Checks: make(map[string]CheckResult, len(h.names))}
	for _, name := range h.names {
		res := CheckResult{OK: true}
		if err := h.checks[name](ctx); err != nil {
			res = CheckResult{OK: false, Err: err.Error()}
			r.Status.OK = false
		}
		r.Checks[name] = res
	}
	r.UptimeSec = int(time.Since(h.start).Seconds())
	r.Time = time.Now().UTC().Format(time.RFC3339)
	return r
}

// Database pings the pool behind db.
func Database(db *gorm.DB) CheckFunc {
	return func(ctx context.Context) error {
		if db == nil {
			return errors.New("gorm db is nil")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
