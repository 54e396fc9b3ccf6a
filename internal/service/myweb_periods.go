package service

import (
	"moodgarden/internal/facade"
	"moodgarden/internal/period"
)

// MyWebPeriodsService answers the reporting feature's period queries through
// the myweb facade, so a frozen or snapshot clock configured for that feature
// is honored.
type MyWebPeriodsService struct {
	router *facade.Router
}

func NewMyWebPeriodsService(router *facade.Router) *MyWebPeriodsService {
	return &MyWebPeriodsService{router: router}
}

// WeeklyPeriods returns the week containing the feature's current instant and the
// week before it. One clock read serves both, so the pair never straddles a
// boundary.
func (s *MyWebPeriodsService) WeeklyPeriods() (current, completed period.Range) {
	ref := s.router.MyWeb.Now()
	return period.CurrentWeekly(ref), period.CompletedWeekly(ref)
}

// MonthlyPeriods is the calendar-month analog of WeeklyPeriods.
func (s *MyWebPeriodsService) MonthlyPeriods() (current, completed period.Range) {
	ref := s.router.MyWeb.Now()
	return period.CurrentMonthly(ref), period.CompletedMonthly(ref)
}
