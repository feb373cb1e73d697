package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"factorygate.in/factorygate/infrastructure/communication"
	"factorygate.in/factorygate/infrastructure/devops"
	"factorygate.in/factorygate/infrastructure/filesystem"
	"factorygate.in/factorygate/lambdas/daily-report/helper"
	"factorygate.in/factorygate/report"
	"factorygate.in/factorygate/store"
)

// HandleRequest builds the attendance workbook for the previous day, uploads
// it to S3 and mails it to the configured recipients.
func HandleRequest(ctx context.Context, event events.CloudWatchEvent) error {
	cfg, err := devops.LoadAppConfig(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := store.Open(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	slack := communication.ConnectSlack(communication.SlackOption{
		InfoChannelID:  cfg.Slack.InfoChannel,
		ErrorChannelID: cfg.Slack.ErrorChannel,
	})

	settings, err := st.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	day := time.Now().In(settings.Location()).AddDate(0, 0, -1)

	punches, err := st.GetAllEvents(ctx)
	if err != nil {
		return fmt.Errorf("get events: %w", err)
	}
	attempts, err := st.GetUnauthorized(ctx)
	if err != nil {
		return fmt.Errorf("get unauthorized: %w", err)
	}

	workbook, err := report.BuildWorkbook(punches, attempts, report.DayFilter(day))
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", day.Format("2006-01-02"))

	if cfg.Report.Bucket != "" {
		key := "reports/" + filename
		if err := filesystem.WriteFile(cfg.Report.Bucket, key, ctx, workbook); err != nil {
			return fmt.Errorf("upload report: %w", err)
		}
		log.Printf("[INFO] uploaded report to s3://%s/%s", cfg.Report.Bucket, key)
	}

	if cfg.Report.From != "" && len(cfg.Report.To) > 0 {
		err = helper.SendEmail(ctx, &helper.EmailInfo{
			From:    cfg.Report.From,
			To:      cfg.Report.To,
			Subject: fmt.Sprintf("Factory attendance report %s", day.Format("02/01/2006")),
			Text:    fmt.Sprintf("Attendance and unauthorized punch report for %s is attached.", day.Format("02/01/2006")),
			Attachments: []helper.Attachment{
				{
					Filename:    filename,
					ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
					Content:     workbook,
				},
			},
		})
		if err != nil {
			return fmt.Errorf("send email: %w", err)
		}
	}

	if err := slack.Info(fmt.Sprintf("Daily attendance report for %s generated", day.Format("02/01/2006"))); err != nil {
		log.Printf("[ERROR] slack notice: %v", err)
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
