package notifications

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/SuryaShibin2198/Surya/config"
)

// TwilioGateway sends SMS through the Twilio REST API.
type TwilioGateway struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioGateway(cfg *config.Config) *TwilioGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &TwilioGateway{client: client, from: cfg.TwilioPhoneNumber}
}

func (g *TwilioGateway) Send(toNumber, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(g.from)
	params.SetBody(body)

	_, err := g.client.Api.CreateMessage(params)
	return err
}
