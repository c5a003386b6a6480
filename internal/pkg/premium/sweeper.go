package premium

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"

	"github.com/envaran/EnvaranMatch/app/repository"
)

// Sweeper bulk-downgrades expired premium accounts on a nightly schedule, so
// accounts that are never read still lose access on time.
type Sweeper struct {
	users repository.UserRepository
	cron  *cron.Cron
}

// NewSweeper creates a sweeper over the user repository.
func NewSweeper(users repository.UserRepository) *Sweeper {
	return &Sweeper{users: users, cron: cron.New()}
}

// Start schedules the nightly run at 03:00 server time and runs one sweep
// immediately so a restart never leaves stale plans until the next night.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("0 3 * * *", s.Run); err != nil {
		return err
	}
	s.cron.Start()
	go s.Run()
	return nil
}

// Stop halts the schedule. Running sweeps finish.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Run performs a single sweep.
func (s *Sweeper) Run() {
	n, err := s.users.DowngradeExpired(time.Now())
	if err != nil {
		log.Errorf("[Premium] expiry sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Infof("[Premium] expiry sweep downgraded %d accounts", n)
	}
}
