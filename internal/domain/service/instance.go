package service

import (
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Dependencies are the adapters the services are built on
type Dependencies struct {
	DataManager     contract.DataManager
	SlackClient     contract.SlackClient
	Notifier        contract.Notifier
	TimeTable       contract.TimeTableProvider
	EventLog        contract.EventLog
	Clock           contract.Clock
	Fs              afero.Fs
	SlackRatePerSec float64
	RetentionDays   int
}

type Instance struct {
	Members      *memberService
	Directory    *directory
	Broadcaster  *Broadcaster
	Scheduler    *Scheduler
	Housekeeping *Housekeeper
}

func NewInstance(deps Dependencies, cfg SchedulerConfig, log zerolog.Logger) *Instance {
	if deps.Clock == nil {
		deps.Clock = NewClock()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	directory := newDirectory(deps.DataManager, deps.SlackClient, logger.Component(log, "directory"))
	broadcaster := NewBroadcaster(deps.Notifier, deps.SlackRatePerSec, logger.Component(log, "broadcaster"))

	return &Instance{
		Members:     newMemberService(deps.DataManager, deps.SlackClient, deps.Fs, logger.Component(log, "members")),
		Directory:   directory,
		Broadcaster: broadcaster,
		Scheduler: NewScheduler(cfg, deps.TimeTable, directory, broadcaster, deps.EventLog,
			deps.DataManager, deps.Clock, logger.Component(log, "scheduler")),
		Housekeeping: NewHousekeeper(deps.DataManager, deps.Clock, deps.RetentionDays, logger.Component(log, "housekeeping")),
	}
}
