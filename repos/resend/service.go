package resend

import (
	"context"
	"fmt"
	"os"

	resend "github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Service sends transactional mail through Resend.
type Service struct {
	client  *resend.Client
	hostURL string
	logger  zerolog.Logger
}

// NewService creates a new mail service.
func NewService(hostURL string, logger zerolog.Logger) *Service {
	resendKey := os.Getenv("RESEND_KEY")
	return &Service{
		client:  resend.NewClient(resendKey),
		hostURL: hostURL,
		logger:  logger,
	}
}

// SendInvite mails an invite link carrying the given code.
func (s *Service) SendInvite(ctx context.Context, request InviteRequest, code string) error {
	body := inviteTemplate(fmt.Sprintf("%s/join/%s", s.hostURL, code))
	params := &resend.SendEmailRequest{
		From:    "equipo@furia.fc",
		To:      []string{request.Email},
		Subject: "Te invitaron a Furia FC",
		Html:    body,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error().Err(err).Str("email", request.Email).Msg("failed to send invite mail")
		return err
	}
	return nil
}

func inviteTemplate(url string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f4f4f4;
            margin: 0;
            padding: 20px;
        }
        .container {
            background-color: #ffffff;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            box-shadow: 0 0 10px rgba(0,0,0,0.1);
        }
        .button {
            display: block;
            width: 200px;
            height: 50px;
            margin: 20px auto;
            background-color: #007BFF;
            color: #ffffff;
            font-size: 16px;
            text-align: center;
            line-height: 50px;
            text-decoration: none;
            border-radius: 5px;
        }
        .button:hover {
            background-color: #0056b3;
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>Hola,</h2>
        <p>Te invitaron a unirte al plantel de Furia FC. Toca el boton para aceptar:</p>
        <a href="%s" class="button">Unirme</a>
        <p>Nos vemos en la cancha,<br>Furia FC</p>
    </div>
</body>
</html>`, url)
}
