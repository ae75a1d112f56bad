package reminderController

import (
	"context"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/reminder"
	"hridayavayu/internal/repositories"
)

type ReminderController struct {
	reminderRepo repositories.ReminderRepository
	log          logger.Logger
}

func New(reminderRepo repositories.ReminderRepository) *ReminderController {
	return &ReminderController{
		reminderRepo: reminderRepo,
		log:          logger.New("ReminderController"),
	}
}

// SetReminder stores the submitted schedule. Times are deduplicated but
// otherwise trusted to be pre-formatted 12-hour strings.
func (rc *ReminderController) SetReminder(ctx context.Context, request *SetReminderRequest) error {
	log := rc.log.Function("SetReminder")

	schedule := reminder.NewSchedule()
	for _, t := range request.Times {
		schedule.AddFormatted(t)
	}

	record := &ReminderSchedule{
		RemindMe: request.RemindMe,
		Times:    schedule.Times(),
	}

	if err := rc.reminderRepo.Save(ctx, record); err != nil {
		return log.Err("failed to save reminder schedule", err)
	}

	return nil
}
