package cronjobs

import (
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvitationSweeper deletes expired, never-used invitation codes.
type InvitationSweeper struct {
	DB *gorm.DB
}

func NewInvitationSweeper(db *gorm.DB) *InvitationSweeper {
	return &InvitationSweeper{DB: db}
}

func (s *InvitationSweeper) Start() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("03:00").Do(func() {
		purged, err := services.PurgeExpiredInvitations()
		if err != nil {
			config.Logger.Error("invitation sweep failed", zap.Error(err))
			return
		}
		if purged > 0 {
			config.Logger.Info("purged expired invitations", zap.Int64("count", purged))
		}
	})

	scheduler.StartAsync()
	config.Logger.Info("invitation sweeper started")

	return scheduler
}
