package smtp

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/drivers/mailer"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"fmt"
	"net/smtp"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpService struct {
	Client   *mailer.SMTPClient
	sendMail sendMailFunc
}

func NewSmtpService(client *mailer.SMTPClient) contracts.NotificationSender {
	return &smtpService{
		Client:   client,
		sendMail: smtp.SendMail,
	}
}

func (svc *smtpService) Send(ctx context.Context, notification *models.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, from, notification.Recipient, notification.Subject, notification.Body))
	err := svc.sendMail(svc.Client.Addr(), svc.Client.Auth, from, []string{notification.Recipient}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
