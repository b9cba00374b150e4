package weather

import (
	"context"

	"github.com/h809829-coder/agrosmart/pkg/logger"
)

type Service struct{ p Provider }

func NewService(p Provider) *Service { return &Service{p: p} }

// Advisory never fails: an upstream error yields the mock report marked
// degraded.
func (s *Service) Advisory(ctx context.Context, lat, lon float64) *Report {
	r, err := s.p.Current(ctx, lat, lon)
	if err != nil {
		logger.Warnf(ctx, "weather: upstream failed, serving defaults: %v", err)
		r = MockReport()
		r.Degraded = true
	}
	return r
}
